package aggregating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
)

func TestService_Recompute(t *testing.T) {
	fixed := time.Date(2024, 1, 22, 10, 0, 0, 0, time.UTC)
	service := &Service{now: func() time.Time { return fixed }}

	snapshot := service.Recompute(&domain.MarketingData{Campaigns: sampleCampaigns()})

	require.NotNil(t, snapshot)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, fixed, snapshot.GeneratedAt)

	overview := snapshot.Overview
	assert.Equal(t, 2, overview.Campaigns)
	assert.Equal(t, 1500.0, overview.TotalSpend)
	assert.Equal(t, 5000.0, overview.TotalRevenue)
	assert.InDelta(t, 5000.0/1500.0, overview.ROAS, 1e-9)
	assert.Equal(t, int64(350), overview.Impressions)
	assert.Equal(t, int64(32), overview.Clicks)
	assert.Equal(t, int64(5), overview.Conversions)

	assert.Len(t, snapshot.Devices, 2)
	assert.Len(t, snapshot.Regions, 3)
	assert.Len(t, snapshot.Weekly, 3)
	assert.Len(t, snapshot.Demographics.AgeGroups, 3)
}

func TestService_Recompute_NilDataset(t *testing.T) {
	assert.Nil(t, NewService().Recompute(nil))
}

func TestService_Recompute_EmptyDataset(t *testing.T) {
	snapshot := NewService().Recompute(&domain.MarketingData{})

	require.NotNil(t, snapshot)
	assert.Equal(t, 0, snapshot.Overview.Campaigns)
	assert.Equal(t, 0.0, snapshot.Overview.CTR)
	assert.NotNil(t, snapshot.Devices)
	assert.NotNil(t, snapshot.Regions)
	assert.NotNil(t, snapshot.Weekly)
	assert.NotNil(t, snapshot.Demographics.AgeGroups)
}

func TestService_Recompute_FreshSnapshots(t *testing.T) {
	service := NewService()
	data := &domain.MarketingData{Campaigns: sampleCampaigns()}

	first := service.Recompute(data)
	second := service.Recompute(data)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.Overview, second.Overview)
}
