package aggregating

import "github.com/vfg2006/campaign-insights-api/internal/domain"

// Allocation distribui os totais do dataset entre grupos que não possuem
// investimento próprio, usando a participação de cada grupo no total de
// cliques. A divisão é feita sobre o dataset inteiro, não por campanha.
type Allocation struct {
	TotalSpend   float64
	TotalRevenue float64
	TotalClicks  int64
}

// NewAllocation soma o investimento e a receita no nível de campanha e os
// cliques de todas as quebras demográficas
func NewAllocation(campaigns []domain.Campaign) Allocation {
	var a Allocation
	for _, c := range campaigns {
		a.TotalSpend += c.Spend
		a.TotalRevenue += c.Revenue
		for _, d := range c.DemographicBreakdown {
			a.TotalClicks += d.Performance.Clicks
		}
	}
	return a
}

// Allocate retorna investimento, receita e participação atribuídos a um grupo
func (a Allocation) Allocate(groupClicks int64) (spend, revenue, share float64) {
	if a.TotalClicks == 0 {
		return 0, 0, 0
	}

	share = float64(groupClicks) / float64(a.TotalClicks)
	return a.TotalSpend * share, a.TotalRevenue * share, share
}
