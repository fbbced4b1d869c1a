package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-insights-api/internal/config"
)

type fakeRefresher struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (f *fakeRefresher) Refresh(ctx context.Context) error {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{DatasetRefresh: config.DatasetRefresh{CronSchedule: "*/30 * * * *", Enabled: enabled}}
}

func TestDatasetRefreshService_RefreshDataset(t *testing.T) {
	refresher := &fakeRefresher{err: errors.New("connection reset by peer")}
	service := NewDatasetRefreshService(refresher, newTestConfig(false))

	err := service.RefreshDataset(context.Background())

	assert.EqualError(t, err, "connection reset by peer")
	assert.Equal(t, int32(1), refresher.calls.Load())

	status := service.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "connection reset by peer", status["last_sync_error"])
	assert.False(t, status["last_sync_completed_at"].(time.Time).IsZero())
}

func TestDatasetRefreshService_SingleFlight(t *testing.T) {
	refresher := &fakeRefresher{release: make(chan struct{})}
	service := NewDatasetRefreshService(refresher, newTestConfig(false))

	require.True(t, service.TriggerManualRefresh(context.Background()))
	require.Eventually(t, service.IsRunning, time.Second, 5*time.Millisecond)

	// Chamadas durante a execução são ignoradas
	assert.False(t, service.TriggerManualRefresh(context.Background()))
	assert.ErrorIs(t, service.RefreshDataset(context.Background()), ErrRefreshRunning)

	close(refresher.release)
	require.Eventually(t, func() bool { return !service.IsRunning() }, time.Second, 5*time.Millisecond)

	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestDatasetRefreshService_StartDisabled(t *testing.T) {
	refresher := &fakeRefresher{}
	service := NewDatasetRefreshService(refresher, newTestConfig(false))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, int32(0), refresher.calls.Load())
}

func TestDatasetRefreshService_StartInvalidCron(t *testing.T) {
	cfg := newTestConfig(true)
	cfg.DatasetRefresh.CronSchedule = "not a cron"

	service := NewDatasetRefreshService(&fakeRefresher{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
