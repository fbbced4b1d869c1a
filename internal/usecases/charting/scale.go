package charting

import (
	"math"
	"strconv"

	"github.com/samber/lo"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

const (
	DefaultWidth   = 800.0
	DefaultHeight  = 300.0
	DefaultPadding = 40.0
)

// tickFractions são as posições fixas dos ticks nos dois eixos
var tickFractions = []float64{0, 0.25, 0.5, 0.75, 1}

// layout guarda tudo que line e bar compartilham: o eixo x formado pela união
// dos rótulos e a escala linear do eixo y
type layout struct {
	width       float64
	height      float64
	padding     float64
	innerWidth  float64
	innerHeight float64
	labels      []string
	labelIndex  map[string]int
	minValue    float64
	maxValue    float64
	yRange      float64
}

func newLayout(input domain.ChartInput, padding float64) (*layout, bool) {
	labels := lo.Uniq(lo.FlatMap(input.Series, func(s domain.ChartSeries, _ int) []string {
		return lo.Map(s.Data, func(p domain.DataPoint, _ int) string { return p.Label })
	}))
	if len(labels) == 0 {
		return nil, false
	}

	values := lo.FlatMap(input.Series, func(s domain.ChartSeries, _ int) []float64 {
		return lo.Map(s.Data, func(p domain.DataPoint, _ int) float64 { return p.Value })
	})

	width, height := input.Width, input.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	maxValue := lo.Max(values)
	minValue := lo.Min(values)

	// margem de 10% abaixo de um mínimo negativo para não cortar a origem
	axisMin := 0.0
	if minValue < 0 {
		axisMin = minValue * 1.1
	}

	yRange := maxValue - axisMin
	if yRange == 0 {
		yRange = 1
	}

	l := &layout{
		width:       width,
		height:      height,
		padding:     padding,
		innerWidth:  math.Max(width-2*padding, 0),
		innerHeight: math.Max(height-2*padding, 0),
		labels:      labels,
		labelIndex:  make(map[string]int, len(labels)),
		minValue:    axisMin,
		maxValue:    maxValue,
		yRange:      yRange,
	}
	for i, label := range labels {
		l.labelIndex[label] = i
	}

	return l, true
}

// x mapeia o índice ordinal de um rótulo para pixels. Com um único rótulo o
// ponto fica na borda esquerda da área de plotagem.
func (l *layout) x(i int) float64 {
	if len(l.labels) <= 1 {
		return l.padding
	}
	return l.padding + float64(i)/float64(len(l.labels)-1)*l.innerWidth
}

func (l *layout) y(v float64) float64 {
	return l.padding + (l.maxValue-v)/l.yRange*l.innerHeight
}

// baseline é o y onde as barras começam: zero, limitado ao intervalo do eixo
func (l *layout) baseline() float64 {
	return l.y(math.Min(math.Max(0, l.minValue), l.maxValue))
}

func (l *layout) yTicks(format domain.ValueFormatter) []domain.AxisTick {
	ticks := make([]domain.AxisTick, 0, len(tickFractions))
	for _, f := range tickFractions {
		v := l.minValue + f*(l.maxValue-l.minValue)
		ticks = append(ticks, domain.AxisTick{Label: format(v), Position: l.y(v)})
	}
	return ticks
}

func (l *layout) xTicks() []domain.AxisTick {
	ticks := make([]domain.AxisTick, 0, len(tickFractions))
	last := -1
	for _, f := range tickFractions {
		i := int(math.Round(f * float64(len(l.labels)-1)))
		if i == last {
			continue
		}
		last = i
		ticks = append(ticks, domain.AxisTick{Label: l.labels[i], Position: l.x(i)})
	}
	return ticks
}

func (l *layout) labelTicks() []domain.AxisTick {
	return lo.Map(l.labels, func(label string, i int) domain.AxisTick {
		return domain.AxisTick{Label: label, Position: l.x(i)}
	})
}

func (l *layout) geometry(title string, kind domain.ChartKind, format domain.ValueFormatter) domain.ChartGeometry {
	return domain.ChartGeometry{
		Title:    title,
		Kind:     kind,
		Width:    l.width,
		Height:   l.height,
		Padding:  l.padding,
		Labels:   l.labelTicks(),
		XTicks:   l.xTicks(),
		YTicks:   l.yTicks(format),
		MinValue: l.minValue,
		MaxValue: l.maxValue,
		Baseline: l.baseline(),
	}
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
