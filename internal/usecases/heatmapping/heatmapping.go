package heatmapping

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/charting"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// Raio dos círculos em metros
const (
	BaseRadius  = 10000.0
	RadiusSpan  = 150000.0
	neutralRate = 0.5
)

type HeatMapper interface {
	Build(input domain.HeatInput, format domain.ValueFormatter) domain.HeatGeometry
}

type Service struct{}

func NewService() HeatMapper {
	return &Service{}
}

// Build normaliza os valores em [0,1] e converte cada ponto num marcador
// circular. Quando todos os valores são iguais, todos recebem raio intermediário.
func (s *Service) Build(input domain.HeatInput, format domain.ValueFormatter) domain.HeatGeometry {
	if format == nil {
		format = utils.FormatNumber
	}

	if len(input.Points) == 0 {
		return domain.HeatGeometry{
			Title:   input.Title,
			Empty:   true,
			Markers: []domain.HeatMarker{},
			Table:   []domain.HeatMarker{},
		}
	}

	values := lo.Map(input.Points, func(p domain.HeatPoint, _ int) float64 { return p.Value })
	minValue, maxValue := lo.Min(values), lo.Max(values)

	markers := make([]domain.HeatMarker, 0, len(input.Points))
	for i, p := range input.Points {
		formatted := format(p.Value)
		color := p.Color
		if color == "" {
			color = charting.ColorAt(i)
		}

		markers = append(markers, domain.HeatMarker{
			Region:         p.Region,
			Country:        p.Country,
			Value:          p.Value,
			FormattedValue: formatted,
			Lat:            p.Lat,
			Lng:            p.Lng,
			Radius:         Radius(p.Value, minValue, maxValue),
			Color:          color,
			PopupText:      fmt.Sprintf("%s, %s: %s", p.Region, p.Country, formatted),
			TooltipText:    fmt.Sprintf("%s: %s", p.Region, formatted),
		})
	}

	table := make([]domain.HeatMarker, len(markers))
	copy(table, markers)
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Value > table[j].Value
	})

	return domain.HeatGeometry{
		Title:    input.Title,
		MinValue: minValue,
		MaxValue: maxValue,
		Markers:  markers,
		Table:    table,
	}
}

// Radius retorna o raio em metros para um valor dentro do intervalo [min, max]
func Radius(value, minValue, maxValue float64) float64 {
	t := neutralRate
	if maxValue != minValue {
		t = (value - minValue) / (maxValue - minValue)
	}
	return BaseRadius + t*RadiusSpan
}
