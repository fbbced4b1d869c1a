package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func weekStarts(points []domain.WeeklyPoint) []string {
	starts := make([]string, 0, len(points))
	for _, p := range points {
		starts = append(starts, p.WeekStart)
	}
	return starts
}

func TestAggregateWeekly_SortsChronologically(t *testing.T) {
	campaigns := []domain.Campaign{
		{WeeklyPerformance: []domain.WeeklyPerformance{
			{WeekStart: "2024-01-08", WeekEnd: "2024-01-14", Spend: 1},
			{WeekStart: "2024-01-01", WeekEnd: "2024-01-07", Spend: 1},
			{WeekStart: "2024-01-15", WeekEnd: "2024-01-21", Spend: 1},
		}},
	}

	weeks := AggregateWeekly(campaigns)

	assert.Equal(t, []string{"2024-01-01", "2024-01-08", "2024-01-15"}, weekStarts(weeks))
}

func TestAggregateWeekly_SumsAcrossCampaigns(t *testing.T) {
	weeks := AggregateWeekly(sampleCampaigns())

	require.Len(t, weeks, 3)
	assert.Equal(t, "2024-01-08/2024-01-14", weeks[1].Key)
	assert.Equal(t, 700.0, weeks[1].Spend)
	assert.Equal(t, 2400.0, weeks[1].Revenue)
	assert.InDelta(t, 2400.0/700.0, weeks[1].ROAS, 1e-9)
	require.NotNil(t, weeks[0].StartDate)
}

func TestAggregateWeekly_InvalidDatesGoLast(t *testing.T) {
	campaigns := []domain.Campaign{
		{WeeklyPerformance: []domain.WeeklyPerformance{
			{WeekStart: "semana 2", WeekEnd: ""},
			{WeekStart: "2024-02-05", WeekEnd: "2024-02-11"},
			{WeekStart: "", WeekEnd: ""},
			{WeekStart: "2024-01-29", WeekEnd: "2024-02-04"},
		}},
	}

	weeks := AggregateWeekly(campaigns)

	assert.Equal(t, []string{"2024-01-29", "2024-02-05", "semana 2", ""}, weekStarts(weeks))
	assert.Nil(t, weeks[2].StartDate)
}

func TestAggregateWeekly_SameStartDifferentEnd(t *testing.T) {
	campaigns := []domain.Campaign{
		{WeeklyPerformance: []domain.WeeklyPerformance{
			{WeekStart: "2024-01-01", WeekEnd: "2024-01-07", Spend: 1},
			{WeekStart: "2024-01-01", WeekEnd: "2024-01-06", Spend: 2},
		}},
	}

	assert.Len(t, AggregateWeekly(campaigns), 2)
}
