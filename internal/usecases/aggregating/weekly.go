package aggregating

import (
	"sort"

	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/pkg/utils"
)

// WeekKey monta a chave composta de uma semana
func WeekKey(weekStart, weekEnd string) string {
	return weekStart + "/" + weekEnd
}

// AggregateWeekly soma investimento e receita por semana e ordena a série pela
// data de início. Semanas com data inválida ficam no final, na ordem em que
// apareceram.
func AggregateWeekly(campaigns []domain.Campaign) []domain.WeeklyPoint {
	index := make(map[string]int)
	weeks := make([]domain.WeeklyPoint, 0)

	for _, campaign := range campaigns {
		for _, perf := range campaign.WeeklyPerformance {
			key := WeekKey(perf.WeekStart, perf.WeekEnd)

			i, exists := index[key]
			if !exists {
				point := domain.WeeklyPoint{
					Key:       key,
					WeekStart: perf.WeekStart,
					WeekEnd:   perf.WeekEnd,
				}
				if start, ok := utils.ParseDate(perf.WeekStart); ok {
					point.StartDate = &start
				}

				i = len(weeks)
				index[key] = i
				weeks = append(weeks, point)
			}

			weeks[i].Spend += perf.Spend
			weeks[i].Revenue += perf.Revenue
		}
	}

	for i := range weeks {
		weeks[i].ROAS = domain.ROAS(weeks[i].Revenue, weeks[i].Spend)
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		a, b := weeks[i].StartDate, weeks[j].StartDate
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.Before(*b)
	})

	return weeks
}
