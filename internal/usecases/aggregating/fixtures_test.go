package aggregating

import "github.com/vfg2006/campaign-insights-api/internal/domain"

func counters(impressions, clicks, conversions int64) domain.PerformanceCounters {
	return domain.PerformanceCounters{Impressions: impressions, Clicks: clicks, Conversions: conversions}
}

func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{
		{
			ID:      "c1",
			Name:    "Ramadan Sale",
			Spend:   1000,
			Revenue: 4000,
			DemographicBreakdown: []domain.DemographicBreakdown{
				{Gender: "male", AgeGroup: "18-24", Performance: counters(1000, 100, 10)},
				{Gender: "Female", AgeGroup: "18-24", Performance: counters(800, 60, 6)},
				{Gender: "male", AgeGroup: "25-34", Performance: counters(1500, 200, 30)},
			},
			DevicePerformance: []domain.DevicePerformance{
				{Device: "Mobile", PerformanceCounters: counters(100, 10, 1), Spend: 300, Revenue: 900, PercentageOfTraffic: 70},
				{Device: "Desktop", PerformanceCounters: counters(50, 2, 1), Spend: 100, Revenue: 200, PercentageOfTraffic: 30},
			},
			RegionalPerformance: []domain.RegionalPerformance{
				{Region: "Dubai", Country: "UAE", Spend: 600, Revenue: 2500},
				{Region: "Sharjah", Country: "UAE", Spend: 400, Revenue: 1500},
			},
			WeeklyPerformance: []domain.WeeklyPerformance{
				{WeekStart: "2024-01-08", WeekEnd: "2024-01-14", Spend: 500, Revenue: 2000},
				{WeekStart: "2024-01-01", WeekEnd: "2024-01-07", Spend: 500, Revenue: 2000},
			},
		},
		{
			ID:      "c2",
			Name:    "Back to School",
			Spend:   500,
			Revenue: 1000,
			DemographicBreakdown: []domain.DemographicBreakdown{
				{Gender: "other", AgeGroup: "18-24", Performance: counters(300, 40, 2)},
				{Gender: "FEMALE", AgeGroup: "35-44", Performance: counters(900, 100, 12)},
			},
			DevicePerformance: []domain.DevicePerformance{
				{Device: "mobile", PerformanceCounters: counters(200, 20, 3), Spend: 150, Revenue: 400, PercentageOfTraffic: 55},
			},
			RegionalPerformance: []domain.RegionalPerformance{
				{Region: "Atlantis", Country: "Nowhere", Spend: 100, Revenue: 50},
				{Region: "Dubai", Country: "United Arab Emirates", Spend: 400, Revenue: 950},
			},
			WeeklyPerformance: []domain.WeeklyPerformance{
				{WeekStart: "2024-01-15", WeekEnd: "2024-01-21", Spend: 300, Revenue: 600},
				{WeekStart: "2024-01-08", WeekEnd: "2024-01-14", Spend: 200, Revenue: 400},
			},
		},
	}
}
