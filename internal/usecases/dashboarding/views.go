package dashboarding

import (
	"github.com/samber/lo"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

func (s *Service) Overview() (*domain.Overview, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return &snapshot.Overview, nil
}

func (s *Service) Demographics() (*domain.DemographicRollup, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return &snapshot.Demographics, nil
}

func (s *Service) Devices() ([]domain.DeviceSummary, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Devices, nil
}

func (s *Service) Regions() ([]domain.RegionPoint, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Regions, nil
}

func (s *Service) Weekly() ([]domain.WeeklyPoint, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snapshot.Weekly, nil
}

// size aplica o tamanho configurado quando a requisição não informa
func (s *Service) size(width, height float64) (float64, float64) {
	if width <= 0 {
		width = s.chart.Width
	}
	if height <= 0 {
		height = s.chart.Height
	}
	return width, height
}

// weekLabels usa o início da semana como rótulo. Semanas sem início ou que
// compartilham o início com outra usam a chave completa, para não caírem no
// mesmo ponto do eixo x.
func weekLabels(weeks []domain.WeeklyPoint) []string {
	starts := lo.CountValuesBy(weeks, func(w domain.WeeklyPoint) string {
		return w.WeekStart
	})

	return lo.Map(weeks, func(w domain.WeeklyPoint, _ int) string {
		if w.WeekStart == "" || starts[w.WeekStart] > 1 {
			return w.Key
		}
		return w.WeekStart
	})
}

// WeeklyChart plota investimento e receita por semana, um ponto do eixo x por
// semana agregada (rótulos em weekLabels)
func (s *Service) WeeklyChart(kind domain.ChartKind, width, height float64) (*domain.ChartGeometry, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	spend := domain.ChartSeries{Name: "Investimento", Data: make([]domain.DataPoint, 0, len(snapshot.Weekly))}
	revenue := domain.ChartSeries{Name: "Receita", Data: make([]domain.DataPoint, 0, len(snapshot.Weekly))}
	labels := weekLabels(snapshot.Weekly)
	for i, w := range snapshot.Weekly {
		label := labels[i]
		spend.Data = append(spend.Data, domain.DataPoint{Label: label, Value: w.Spend})
		revenue.Data = append(revenue.Data, domain.DataPoint{Label: label, Value: w.Revenue})
	}

	width, height = s.size(width, height)
	geometry := s.charter.Build(kind, domain.ChartInput{
		Title:  "Desempenho semanal",
		Series: []domain.ChartSeries{spend, revenue},
		Width:  width,
		Height: height,
	}, utils.FormatCurrency)

	return &geometry, nil
}

func deviceValue(d domain.DeviceSummary, metric DeviceMetric) float64 {
	switch metric {
	case DeviceImpressions:
		return float64(d.Impressions)
	case DeviceConversions:
		return float64(d.Conversions)
	case DeviceSpend:
		return d.Spend
	case DeviceRevenue:
		return d.Revenue
	case DeviceCTR:
		return d.CTR
	case DeviceConversionRate:
		return d.ConversionRate
	default:
		return float64(d.Clicks)
	}
}

func metricFormatter(metric DeviceMetric) domain.ValueFormatter {
	switch metric {
	case DeviceSpend, DeviceRevenue:
		return utils.FormatCurrency
	case DeviceCTR, DeviceConversionRate:
		return utils.FormatPercent
	default:
		return utils.FormatInteger
	}
}

var deviceMetricTitles = map[DeviceMetric]string{
	DeviceClicks:         "Cliques por dispositivo",
	DeviceImpressions:    "Impressões por dispositivo",
	DeviceConversions:    "Conversões por dispositivo",
	DeviceSpend:          "Investimento por dispositivo",
	DeviceRevenue:        "Receita por dispositivo",
	DeviceCTR:            "CTR por dispositivo",
	DeviceConversionRate: "Taxa de conversão por dispositivo",
}

// DeviceChart gera um gráfico de barras com uma barra por dispositivo
func (s *Service) DeviceChart(metric DeviceMetric, width, height float64) (*domain.ChartGeometry, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	series := domain.ChartSeries{Name: string(metric), Data: make([]domain.DataPoint, 0, len(snapshot.Devices))}
	for _, d := range snapshot.Devices {
		series.Data = append(series.Data, domain.DataPoint{Label: d.Device, Value: deviceValue(d, metric)})
	}

	width, height = s.size(width, height)
	geometry := s.charter.Bar(domain.ChartInput{
		Title:  deviceMetricTitles[metric],
		Series: []domain.ChartSeries{series},
		Width:  width,
		Height: height,
	}, metricFormatter(metric))

	return &geometry, nil
}

// DemographicChart compara cliques de homens e mulheres por faixa etária
func (s *Service) DemographicChart(width, height float64) (*domain.ChartGeometry, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	rows := snapshot.Demographics.AgeGroups
	male := domain.ChartSeries{Name: "Homens", Data: make([]domain.DataPoint, 0, len(rows))}
	female := domain.ChartSeries{Name: "Mulheres", Data: make([]domain.DataPoint, 0, len(rows))}
	for _, row := range rows {
		male.Data = append(male.Data, domain.DataPoint{Label: row.AgeGroup, Value: float64(row.Male.Clicks)})
		female.Data = append(female.Data, domain.DataPoint{Label: row.AgeGroup, Value: float64(row.Female.Clicks)})
	}

	width, height = s.size(width, height)
	geometry := s.charter.Bar(domain.ChartInput{
		Title:  "Cliques por faixa etária e gênero",
		Series: []domain.ChartSeries{male, female},
		Width:  width,
		Height: height,
	}, utils.FormatInteger)

	return &geometry, nil
}

// RegionHeatMap converte as regiões em marcadores, usando a coordenada já
// resolvida no snapshot
func (s *Service) RegionHeatMap(metric RegionMetric) (*domain.HeatGeometry, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	title := "Receita por região"
	if metric == RegionSpend {
		title = "Investimento por região"
	}

	points := make([]domain.HeatPoint, 0, len(snapshot.Regions))
	for _, r := range snapshot.Regions {
		value := r.Revenue
		if metric == RegionSpend {
			value = r.Spend
		}
		points = append(points, domain.HeatPoint{
			Region:  r.Region,
			Country: r.Country,
			Value:   value,
			Lat:     r.Coordinate.Lat,
			Lng:     r.Coordinate.Lng,
		})
	}

	geometry := s.heatmapper.Build(domain.HeatInput{Title: title, Points: points}, utils.FormatCurrency)
	return &geometry, nil
}
