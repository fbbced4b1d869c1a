package domain

import "time"

// Aggregates é o snapshot imutável recalculado a cada troca de dataset
type Aggregates struct {
	ID           string            `json:"id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	Overview     Overview          `json:"overview"`
	Demographics DemographicRollup `json:"demographics"`
	Devices      []DeviceSummary   `json:"devices"`
	Regions      []RegionPoint     `json:"regions"`
	Weekly       []WeeklyPoint     `json:"weekly"`
}

// Overview alimenta os cards de métricas do dashboard
type Overview struct {
	Campaigns      int     `json:"campaigns"`
	TotalSpend     float64 `json:"total_spend"`
	TotalRevenue   float64 `json:"total_revenue"`
	ROAS           float64 `json:"roas"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// GenderCounters são os contadores de um gênero dentro de uma faixa etária
type GenderCounters struct {
	PerformanceCounters
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversion_rate"`
}

// AgeGroupRow é uma linha da tabela faixa etária x gênero
type AgeGroupRow struct {
	AgeGroup         string         `json:"age_group"`
	Male             GenderCounters `json:"male"`
	Female           GenderCounters `json:"female"`
	TotalClicks      int64          `json:"total_clicks"`
	ClickShare       float64        `json:"click_share"`
	AllocatedSpend   float64        `json:"allocated_spend"`
	AllocatedRevenue float64        `json:"allocated_revenue"`
}

// GenderSummary consolida um gênero em todas as faixas etárias
type GenderSummary struct {
	Gender Gender `json:"gender"`
	PerformanceCounters
	CTR              float64 `json:"ctr"`
	ConversionRate   float64 `json:"conversion_rate"`
	ClickShare       float64 `json:"click_share"`
	AllocatedSpend   float64 `json:"allocated_spend"`
	AllocatedRevenue float64 `json:"allocated_revenue"`
}

type DemographicRollup struct {
	AgeGroups   []AgeGroupRow   `json:"age_groups"`
	Genders     []GenderSummary `json:"genders"`
	TotalClicks int64           `json:"total_clicks"`
}

type DeviceSummary struct {
	Key    string      `json:"key"`
	Device string      `json:"device"`
	Class  DeviceClass `json:"class"`
	PerformanceCounters
	Spend               float64 `json:"spend"`
	Revenue             float64 `json:"revenue"`
	PercentageOfTraffic float64 `json:"percentage_of_traffic"`
	CTR                 float64 `json:"ctr"`
	ConversionRate      float64 `json:"conversion_rate"`
	ROAS                float64 `json:"roas"`
}

type RegionPoint struct {
	Region     string     `json:"region"`
	Country    string     `json:"country"`
	Spend      float64    `json:"spend"`
	Revenue    float64    `json:"revenue"`
	ROAS       float64    `json:"roas"`
	Coordinate Coordinate `json:"coordinate"`
	Resolved   bool       `json:"resolved"`
}

type WeeklyPoint struct {
	Key       string     `json:"key"`
	WeekStart string     `json:"week_start"`
	WeekEnd   string     `json:"week_end"`
	StartDate *time.Time `json:"start_date,omitempty"`
	Spend     float64    `json:"spend"`
	Revenue   float64    `json:"revenue"`
	ROAS      float64    `json:"roas"`
}
