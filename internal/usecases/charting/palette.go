package charting

// palette é a sequência fixa de cores usada quando a série não define uma cor
var palette = [...]string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ColorAt retorna a cor da paleta para o índice, ciclando pelo tamanho da paleta
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

func colorOr(explicit string, i int) string {
	if explicit != "" {
		return explicit
	}
	return ColorAt(i)
}
