package aggregating

import "github.com/vfg2006/campaign-insights-api/internal/domain"

// AggregateRegions soma investimento e receita por região mantendo a ordem em
// que cada região apareceu pela primeira vez
func AggregateRegions(campaigns []domain.Campaign) []domain.RegionPoint {
	index := make(map[string]int)
	regions := make([]domain.RegionPoint, 0)

	for _, campaign := range campaigns {
		for _, perf := range campaign.RegionalPerformance {
			i, exists := index[perf.Region]
			if !exists {
				coordinate, resolved := domain.LookupCoordinate(perf.Region)
				if !resolved {
					coordinate = domain.DefaultCoordinate
				}

				i = len(regions)
				index[perf.Region] = i
				regions = append(regions, domain.RegionPoint{
					Region:     perf.Region,
					Country:    perf.Country,
					Coordinate: coordinate,
					Resolved:   resolved,
				})
			}

			regions[i].Spend += perf.Spend
			regions[i].Revenue += perf.Revenue
		}
	}

	for i := range regions {
		regions[i].ROAS = domain.ROAS(regions[i].Revenue, regions[i].Spend)
	}

	return regions
}
