package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func TestAggregateDevices_SumsAcrossCampaigns(t *testing.T) {
	campaigns := []domain.Campaign{
		{DevicePerformance: []domain.DevicePerformance{{Device: "Mobile", PerformanceCounters: counters(100, 10, 1)}}},
		{DevicePerformance: []domain.DevicePerformance{{Device: "Mobile", PerformanceCounters: counters(200, 20, 2)}}},
	}

	devices := AggregateDevices(campaigns)

	require.Len(t, devices, 1)
	assert.Equal(t, int64(300), devices[0].Impressions)
	assert.Equal(t, int64(30), devices[0].Clicks)
	assert.InDelta(t, 10.0, devices[0].CTR, 1e-9)
	assert.Equal(t, domain.DeviceMobile, devices[0].Class)
}

func TestAggregateDevices(t *testing.T) {
	devices := AggregateDevices(sampleCampaigns())

	require.Len(t, devices, 2)

	mobile := devices[0]
	assert.Equal(t, "mobile", mobile.Key)
	assert.Equal(t, "Mobile", mobile.Device)
	assert.Equal(t, int64(30), mobile.Clicks)
	assert.Equal(t, 450.0, mobile.Spend)
	assert.Equal(t, 1300.0, mobile.Revenue)
	// última campanha prevalece, sem média ponderada
	assert.Equal(t, 55.0, mobile.PercentageOfTraffic)
	assert.InDelta(t, 1300.0/450.0, mobile.ROAS, 1e-9)

	desktop := devices[1]
	assert.Equal(t, domain.DeviceDesktop, desktop.Class)
	assert.Equal(t, 30.0, desktop.PercentageOfTraffic)
	assert.InDelta(t, 50.0, desktop.ConversionRate, 1e-9)
}

func TestAggregateDevices_UnknownClassKeepsOwnGroup(t *testing.T) {
	campaigns := []domain.Campaign{
		{DevicePerformance: []domain.DevicePerformance{
			{Device: "Tablet", PerformanceCounters: counters(10, 1, 0)},
			{Device: "Smart TV", PerformanceCounters: counters(10, 2, 0)},
		}},
	}

	devices := AggregateDevices(campaigns)

	require.Len(t, devices, 2)
	assert.Equal(t, "smart tv", devices[0].Key)
	assert.Equal(t, domain.DeviceUnknown, devices[0].Class)
	assert.Equal(t, "tablet", devices[1].Key)
}

func TestAggregateDevices_Empty(t *testing.T) {
	devices := AggregateDevices([]domain.Campaign{})
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}
