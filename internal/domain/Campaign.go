package domain

// MarketingData é o dataset completo recebido da fonte externa
type MarketingData struct {
	Campaigns []Campaign `json:"campaigns"`
}

// Campaign representa uma campanha com seus totais e quebras de performance.
// Spend e Revenue são informados apenas no nível da campanha e nunca são
// recalculados a partir das quebras.
type Campaign struct {
	ID                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Spend                float64                `json:"spend"`
	Revenue              float64                `json:"revenue"`
	DemographicBreakdown []DemographicBreakdown `json:"demographic_breakdown"`
	DevicePerformance    []DevicePerformance    `json:"device_performance"`
	RegionalPerformance  []RegionalPerformance  `json:"regional_performance"`
	WeeklyPerformance    []WeeklyPerformance    `json:"weekly_performance"`
}

// PerformanceCounters são os contadores comuns a todas as quebras
type PerformanceCounters struct {
	Impressions int64 `json:"impressions"`
	Clicks      int64 `json:"clicks"`
	Conversions int64 `json:"conversions"`
}

// Add soma os contadores de other no receptor
func (p *PerformanceCounters) Add(other PerformanceCounters) {
	p.Impressions += other.Impressions
	p.Clicks += other.Clicks
	p.Conversions += other.Conversions
}

type DemographicBreakdown struct {
	Gender      string              `json:"gender"`
	AgeGroup    string              `json:"age_group"`
	Performance PerformanceCounters `json:"performance"`
}

type DevicePerformance struct {
	Device string `json:"device"`
	PerformanceCounters
	Spend               float64 `json:"spend"`
	Revenue             float64 `json:"revenue"`
	PercentageOfTraffic float64 `json:"percentage_of_traffic"`
}

type RegionalPerformance struct {
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Spend   float64 `json:"spend"`
	Revenue float64 `json:"revenue"`
}

type WeeklyPerformance struct {
	WeekStart string  `json:"week_start"`
	WeekEnd   string  `json:"week_end"`
	Spend     float64 `json:"spend"`
	Revenue   float64 `json:"revenue"`
}
