package domain

// CTR calcula a taxa de cliques em porcentagem. Sem impressões o resultado é 0.
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// ConversionRate calcula a taxa de conversão em porcentagem. Sem cliques o resultado é 0.
func ConversionRate(conversions, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

// ROAS calcula o retorno sobre o investimento em anúncios
func ROAS(revenue, spend float64) float64 {
	if spend <= 0 {
		return 0
	}
	return revenue / spend
}

// Share retorna a fração part/total, ou 0 quando total não é positivo
func Share(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return part / total
}
