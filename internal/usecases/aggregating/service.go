package aggregating

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// Aggregator recalcula o snapshot completo a partir do dataset
type Aggregator interface {
	// Recompute retorna nil apenas quando o dataset é nil
	Recompute(data *domain.MarketingData) *domain.Aggregates
}

type Service struct {
	now func() time.Time
}

func NewService() Aggregator {
	return &Service{now: time.Now}
}

// Recompute executa todos os agregadores sobre o dataset inteiro. Nada é
// reaproveitado de snapshots anteriores.
func (s *Service) Recompute(data *domain.MarketingData) *domain.Aggregates {
	if data == nil {
		return nil
	}

	campaigns := data.Campaigns
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("agregados: falha ao gerar id do snapshot")
	}

	devices := AggregateDevices(campaigns)

	snapshot := &domain.Aggregates{
		ID:           id,
		GeneratedAt:  s.now(),
		Overview:     BuildOverview(campaigns, devices),
		Demographics: AggregateDemographics(campaigns),
		Devices:      devices,
		Regions:      AggregateRegions(campaigns),
		Weekly:       AggregateWeekly(campaigns),
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"campaigns":   len(campaigns),
		"age_groups":  len(snapshot.Demographics.AgeGroups),
		"devices":     len(snapshot.Devices),
		"regions":     len(snapshot.Regions),
		"weeks":       len(snapshot.Weekly),
	}).Debug("agregados: snapshot recalculado")

	return snapshot
}

// BuildOverview monta os cards de métricas. Os contadores vêm das quebras por
// dispositivo, que são as únicas com impressões, cliques e conversões junto do
// investimento.
func BuildOverview(campaigns []domain.Campaign, devices []domain.DeviceSummary) domain.Overview {
	overview := domain.Overview{Campaigns: len(campaigns)}

	for _, c := range campaigns {
		overview.TotalSpend += c.Spend
		overview.TotalRevenue += c.Revenue
	}

	for _, d := range devices {
		overview.Impressions += d.Impressions
		overview.Clicks += d.Clicks
		overview.Conversions += d.Conversions
	}

	overview.ROAS = domain.ROAS(overview.TotalRevenue, overview.TotalSpend)
	overview.CTR = domain.CTR(overview.Clicks, overview.Impressions)
	overview.ConversionRate = domain.ConversionRate(overview.Conversions, overview.Clicks)

	return overview
}
