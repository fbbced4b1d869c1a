package dashboarding

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/config"
	"github.com/vfg2006/campaign-insights-api/internal/domain"
	"github.com/vfg2006/campaign-insights-api/internal/metrics"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/aggregating"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/charting"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/heatmapping"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
)

type Service struct {
	source     DatasetSource
	aggregator aggregating.Aggregator
	charter    charting.Charter
	heatmapper heatmapping.HeatMapper
	metrics    *metrics.Metrics
	chart      config.Chart
	now        func() time.Time

	// mu protege o snapshot e o estado da última busca
	mu            sync.RWMutex
	snapshot      *domain.Aggregates
	campaigns     int
	lastFetchAt   *time.Time
	lastSuccessAt *time.Time
	lastError     string

	// refreshMu protege o cancelamento da busca em andamento
	refreshMu  sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool
	inFlight   atomic.Int32
}

func NewService(
	source DatasetSource,
	aggregator aggregating.Aggregator,
	charter charting.Charter,
	heatmapper heatmapping.HeatMapper,
	m *metrics.Metrics,
	cfg *config.Config,
) Dashboard {
	return &Service{
		source:     source,
		aggregator: aggregator,
		charter:    charter,
		heatmapper: heatmapper,
		metrics:    m,
		chart:      cfg.Chart,
		now:        time.Now,
	}
}

// begin registra uma nova busca, cancelando a anterior se ainda estiver ativa
func (s *Service) begin(ctx context.Context) (context.Context, uint64, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	if s.closed {
		return nil, 0, ErrClosed
	}

	if s.cancel != nil {
		s.cancel()
	}

	fetchCtx, cancel := context.WithCancel(ctx)
	s.generation++
	s.cancel = cancel

	return fetchCtx, s.generation, nil
}

// finish libera o cancelamento e informa se esta busca ainda é a mais recente
func (s *Service) finish(generation uint64) bool {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	current := s.generation == generation
	if current && s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	return current
}

func (s *Service) Refresh(ctx context.Context) error {
	fetchCtx, generation, err := s.begin(ctx)
	if err != nil {
		return err
	}

	s.inFlight.Add(1)
	defer s.inFlight.Add(-1)

	logger := logrus.WithField("source", s.source.Name())
	logger.Info("dataset: buscando dados")

	startedAt := s.now()
	data, fetchErr := s.source.Fetch(fetchCtx)
	elapsed := s.now().Sub(startedAt)

	if !s.finish(generation) {
		s.metrics.RecordFetch(s.source.Name(), metrics.ResultCancelled, elapsed)
		logger.Info("dataset: busca substituída por uma atualização mais recente, descartando resultado")
		return NewDashboardError(ErrRefreshSuperseded, apiErrors.ErrRefreshCancelled, "")
	}

	if fetchErr == nil && data == nil {
		fetchErr = ErrEmptyDataset
	}

	if fetchErr != nil {
		result := metrics.ResultFailure
		if errors.Is(fetchErr, context.Canceled) {
			result = metrics.ResultCancelled
		}
		s.metrics.RecordFetch(s.source.Name(), result, elapsed)
		s.recordFailure(startedAt, fetchErr)

		logger.WithError(fetchErr).Error("dataset: falha na busca, mantendo o snapshot anterior")
		return NewDashboardError(fetchErr, apiErrors.ErrDatasetFetch, "")
	}

	s.metrics.RecordFetch(s.source.Name(), metrics.ResultSuccess, elapsed)

	recomputeStart := s.now()
	snapshot := s.aggregator.Recompute(data)
	recomputeElapsed := s.now().Sub(recomputeStart)

	s.swap(startedAt, snapshot, len(data.Campaigns))
	s.metrics.RecordSnapshot(len(data.Campaigns), len(snapshot.Regions), recomputeElapsed, s.now())

	logger.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"campaigns":   len(data.Campaigns),
		"duration_ms": elapsed.Milliseconds(),
	}).Info("dataset: snapshot substituído")

	return nil
}

func (s *Service) recordFailure(at time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastFetchAt = &at
	s.lastError = err.Error()
}

func (s *Service) swap(at time.Time, snapshot *domain.Aggregates, campaigns int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = snapshot
	s.campaigns = campaigns
	s.lastFetchAt = &at
	s.lastSuccessAt = &at
	s.lastError = ""
}

func (s *Service) Close() {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Service) Status() domain.DatasetStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	status := domain.DatasetStatus{
		Loaded:          s.snapshot != nil,
		Campaigns:       s.campaigns,
		LastFetchAt:     s.lastFetchAt,
		LastSuccessAt:   s.lastSuccessAt,
		LastError:       s.lastError,
		RefreshInFlight: s.inFlight.Load() > 0,
		Source:          s.source.Name(),
	}
	if s.snapshot != nil {
		status.SnapshotID = s.snapshot.ID
	}
	return status
}

// Snapshot retorna o snapshot atual. Ele nunca é alterado depois de criado,
// então pode ser lido sem lock.
func (s *Service) Snapshot() (*domain.Aggregates, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return nil, NewDashboardError(ErrNoDataset, apiErrors.ErrDatasetUnavailable, s.lastError)
	}
	return s.snapshot, nil
}
