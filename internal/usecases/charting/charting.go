package charting

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// barGroupRatio é a fração do espaço de cada rótulo ocupada pelo grupo de barras
const barGroupRatio = 0.8

type Charter interface {
	Build(kind domain.ChartKind, input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry
	Line(input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry
	Bar(input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry
}

type Service struct {
	padding float64
}

func NewService() Charter {
	return &Service{padding: DefaultPadding}
}

func (s *Service) Build(kind domain.ChartKind, input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry {
	if kind == domain.ChartBar {
		return s.Bar(input, format)
	}
	return s.Line(input, format)
}

// Line calcula os caminhos SVG de cada série sobre a união dos rótulos
func (s *Service) Line(input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry {
	format = formatterOr(format)

	l, ok := newLayout(input, s.padding)
	if !ok {
		return emptyGeometry(input, domain.ChartLine, s.padding)
	}

	geometry := l.geometry(input.Title, domain.ChartLine, format)
	geometry.Legend = legend(input.Series)
	geometry.Lines = make([]domain.LinePath, 0, len(input.Series))

	for i, series := range input.Series {
		line := domain.LinePath{
			Name:   series.Name,
			Color:  colorOr(series.Color, i),
			Points: make([]domain.PlotPoint, 0, len(series.Data)),
		}

		var path strings.Builder
		for _, p := range series.Data {
			idx, ok := l.labelIndex[p.Label]
			if !ok {
				continue
			}

			x, y := l.x(idx), l.y(p.Value)
			if path.Len() == 0 {
				path.WriteString("M")
			} else {
				path.WriteString(" L")
			}
			path.WriteString(coord(x) + " " + coord(y))

			line.Points = append(line.Points, domain.PlotPoint{
				Label:   p.Label,
				Value:   p.Value,
				X:       x,
				Y:       y,
				Tooltip: tooltip(series.Name, p.Label, format(p.Value)),
			})
		}
		line.Path = path.String()

		geometry.Lines = append(geometry.Lines, line)
	}

	return geometry
}

// Bar agrupa as barras de todas as séries centralizadas no x de cada rótulo
func (s *Service) Bar(input domain.ChartInput, format domain.ValueFormatter) domain.ChartGeometry {
	format = formatterOr(format)

	l, ok := newLayout(input, s.padding)
	if !ok {
		return emptyGeometry(input, domain.ChartBar, s.padding)
	}

	geometry := l.geometry(input.Title, domain.ChartBar, format)
	geometry.Legend = legend(input.Series)
	geometry.Bars = make([]domain.Bar, 0, len(l.labels)*len(input.Series))

	// o primeiro e o último rótulo ficam nas bordas do padding, então o grupo
	// não pode passar de 2*padding para caber no canvas
	groupWidth := min(l.innerWidth/float64(len(l.labels))*barGroupRatio, 2*l.padding)
	barWidth := 0.0
	if len(input.Series) > 0 {
		barWidth = groupWidth / float64(len(input.Series))
	}
	base := geometry.Baseline

	for j, series := range input.Series {
		color := colorOr(series.Color, j)
		for _, p := range series.Data {
			idx, ok := l.labelIndex[p.Label]
			if !ok {
				continue
			}

			top := l.y(p.Value)
			height := base - top
			if height < 0 {
				top, height = base, -height
			}

			geometry.Bars = append(geometry.Bars, domain.Bar{
				Series:  series.Name,
				Label:   p.Label,
				Value:   p.Value,
				X:       l.x(idx) - groupWidth/2 + float64(j)*barWidth,
				Y:       top,
				Width:   barWidth,
				Height:  height,
				Color:   color,
				Tooltip: tooltip(series.Name, p.Label, format(p.Value)),
			})
		}
	}

	return geometry
}

func emptyGeometry(input domain.ChartInput, kind domain.ChartKind, padding float64) domain.ChartGeometry {
	width, height := input.Width, input.Height
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	return domain.ChartGeometry{
		Title:   input.Title,
		Kind:    kind,
		Width:   width,
		Height:  height,
		Padding: padding,
		Empty:   true,
		Labels:  []domain.AxisTick{},
		XTicks:  []domain.AxisTick{},
		YTicks:  []domain.AxisTick{},
		Legend:  legend(input.Series),
	}
}

func legend(series []domain.ChartSeries) []domain.LegendEntry {
	return lo.Map(series, func(s domain.ChartSeries, i int) domain.LegendEntry {
		return domain.LegendEntry{Name: s.Name, Color: colorOr(s.Color, i)}
	})
}

func tooltip(series, label, value string) string {
	return fmt.Sprintf("%s (%s): %s", series, label, value)
}

func formatterOr(format domain.ValueFormatter) domain.ValueFormatter {
	if format != nil {
		return format
	}
	return utils.FormatNumber
}
