package heatmapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/charting"
)

func TestBuild_NormalizesRadius(t *testing.T) {
	geometry := NewService().Build(domain.HeatInput{
		Title: "Receita por região",
		Points: []domain.HeatPoint{
			{Region: "Sharjah", Country: "UAE", Value: 10},
			{Region: "Dubai", Country: "UAE", Value: 100},
			{Region: "Riyadh", Country: "Saudi Arabia", Value: 50, Color: "#123456"},
		},
	}, nil)

	require.False(t, geometry.Empty)
	require.Len(t, geometry.Markers, 3)
	assert.Equal(t, 10.0, geometry.MinValue)
	assert.Equal(t, 100.0, geometry.MaxValue)

	assert.InDelta(t, 10000.0, geometry.Markers[0].Radius, 1e-6)
	assert.InDelta(t, 160000.0, geometry.Markers[1].Radius, 1e-6)
	assert.InDelta(t, 10000+40.0/90.0*150000, geometry.Markers[2].Radius, 1e-6)

	assert.Equal(t, charting.ColorAt(0), geometry.Markers[0].Color)
	assert.Equal(t, "#123456", geometry.Markers[2].Color)

	assert.Equal(t, "Dubai, UAE: 100", geometry.Markers[1].PopupText)
	assert.Equal(t, "Dubai: 100", geometry.Markers[1].TooltipText)
	assert.Equal(t, "100", geometry.Markers[1].FormattedValue)
}

func TestBuild_TableSortedDescending(t *testing.T) {
	geometry := NewService().Build(domain.HeatInput{
		Points: []domain.HeatPoint{
			{Region: "a", Value: 10},
			{Region: "b", Value: 100},
			{Region: "c", Value: 50},
			{Region: "d", Value: 50},
		},
	}, func(v float64) string { return "-" })

	regions := make([]string, 0, len(geometry.Table))
	for _, m := range geometry.Table {
		regions = append(regions, m.Region)
	}
	assert.Equal(t, []string{"b", "c", "d", "a"}, regions)

	// os marcadores mantêm a ordem de entrada
	assert.Equal(t, "a", geometry.Markers[0].Region)
	assert.Equal(t, "-", geometry.Markers[0].FormattedValue)
}

func TestBuild_EqualValuesUseMiddleRadius(t *testing.T) {
	geometry := NewService().Build(domain.HeatInput{
		Points: []domain.HeatPoint{
			{Region: "a", Value: 42},
			{Region: "b", Value: 42},
		},
	}, nil)

	for _, m := range geometry.Markers {
		assert.InDelta(t, 85000.0, m.Radius, 1e-6)
	}
}

func TestBuild_Empty(t *testing.T) {
	geometry := NewService().Build(domain.HeatInput{Title: "Gasto"}, nil)

	assert.True(t, geometry.Empty)
	assert.Equal(t, "Gasto", geometry.Title)
	assert.NotNil(t, geometry.Markers)
	assert.Empty(t, geometry.Markers)
	assert.NotNil(t, geometry.Table)
	assert.Empty(t, geometry.Table)
}

func TestRadius(t *testing.T) {
	assert.Equal(t, BaseRadius, Radius(0, 0, 10))
	assert.Equal(t, BaseRadius+RadiusSpan, Radius(10, 0, 10))
	assert.Equal(t, BaseRadius+RadiusSpan/2, Radius(3, 3, 3))
}
