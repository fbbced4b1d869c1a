package aggregating

import (
	"sort"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

type ageGroupAccumulator struct {
	ageGroup    string
	male        domain.PerformanceCounters
	female      domain.PerformanceCounters
	totalClicks int64
}

// AggregateDemographics consolida as quebras demográficas por faixa etária e
// gênero. Gêneros fora de male/female não entram nos contadores por gênero,
// mas contam no total de cliques da faixa.
func AggregateDemographics(campaigns []domain.Campaign) domain.DemographicRollup {
	allocation := NewAllocation(campaigns)

	accumulators := make(map[string]*ageGroupAccumulator)
	order := make([]string, 0)

	for _, campaign := range campaigns {
		for _, breakdown := range campaign.DemographicBreakdown {
			acc, exists := accumulators[breakdown.AgeGroup]
			if !exists {
				acc = &ageGroupAccumulator{ageGroup: breakdown.AgeGroup}
				accumulators[breakdown.AgeGroup] = acc
				order = append(order, breakdown.AgeGroup)
			}

			switch domain.ParseGender(breakdown.Gender) {
			case domain.GenderMale:
				acc.male.Add(breakdown.Performance)
			case domain.GenderFemale:
				acc.female.Add(breakdown.Performance)
			}
			acc.totalClicks += breakdown.Performance.Clicks
		}
	}

	rows := make([]domain.AgeGroupRow, 0, len(order))
	var male, female domain.PerformanceCounters

	for _, ageGroup := range order {
		acc := accumulators[ageGroup]
		spend, revenue, share := allocation.Allocate(acc.totalClicks)

		rows = append(rows, domain.AgeGroupRow{
			AgeGroup:         acc.ageGroup,
			Male:             genderCounters(acc.male),
			Female:           genderCounters(acc.female),
			TotalClicks:      acc.totalClicks,
			ClickShare:       share,
			AllocatedSpend:   spend,
			AllocatedRevenue: revenue,
		})

		male.Add(acc.male)
		female.Add(acc.female)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalClicks > rows[j].TotalClicks
	})

	return domain.DemographicRollup{
		AgeGroups: rows,
		Genders: []domain.GenderSummary{
			genderSummary(domain.GenderMale, male, allocation),
			genderSummary(domain.GenderFemale, female, allocation),
		},
		TotalClicks: allocation.TotalClicks,
	}
}

func genderCounters(c domain.PerformanceCounters) domain.GenderCounters {
	return domain.GenderCounters{
		PerformanceCounters: c,
		CTR:                 domain.CTR(c.Clicks, c.Impressions),
		ConversionRate:      domain.ConversionRate(c.Conversions, c.Clicks),
	}
}

func genderSummary(gender domain.Gender, c domain.PerformanceCounters, allocation Allocation) domain.GenderSummary {
	spend, revenue, share := allocation.Allocate(c.Clicks)

	return domain.GenderSummary{
		Gender:              gender,
		PerformanceCounters: c,
		CTR:                 domain.CTR(c.Clicks, c.Impressions),
		ConversionRate:      domain.ConversionRate(c.Conversions, c.Clicks),
		ClickShare:          share,
		AllocatedSpend:      spend,
		AllocatedRevenue:    revenue,
	}
}
