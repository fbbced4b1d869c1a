package dashboarding

import (
	"context"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

// DatasetSource é a origem do MarketingData (http, arquivo ou postgres)
type DatasetSource interface {
	Name() string
	Fetch(ctx context.Context) (*domain.MarketingData, error)
}

// Dashboard expõe o snapshot atual e as views derivadas dele
type Dashboard interface {
	// Refresh busca o dataset uma única vez e troca o snapshot em caso de sucesso
	Refresh(ctx context.Context) error
	// Close cancela qualquer busca em andamento
	Close()
	Status() domain.DatasetStatus

	Snapshot() (*domain.Aggregates, error)
	Overview() (*domain.Overview, error)
	Demographics() (*domain.DemographicRollup, error)
	Devices() ([]domain.DeviceSummary, error)
	Regions() ([]domain.RegionPoint, error)
	Weekly() ([]domain.WeeklyPoint, error)

	WeeklyChart(kind domain.ChartKind, width, height float64) (*domain.ChartGeometry, error)
	DeviceChart(metric DeviceMetric, width, height float64) (*domain.ChartGeometry, error)
	DemographicChart(width, height float64) (*domain.ChartGeometry, error)
	RegionHeatMap(metric RegionMetric) (*domain.HeatGeometry, error)
}
