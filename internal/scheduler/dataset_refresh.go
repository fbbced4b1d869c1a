// Package scheduler contém o agendamento da atualização periódica do dataset
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-insights-api/internal/config"
)

// ErrRefreshRunning indica que já existe uma atualização em andamento
var ErrRefreshRunning = errors.New("atualização do dataset já em andamento")

// Refresher é implementado pelo serviço do dashboard
type Refresher interface {
	Refresh(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetRefreshService agenda buscas do dataset e impede execuções sobrepostas
type DatasetRefreshService struct {
	scheduler           *gocron.Scheduler
	refresher           Refresher
	config              DatasetRefreshConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

func NewDatasetRefreshService(refresher Refresher, cfg *config.Config) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.DatasetRefresh.CronSchedule,
		Enabled:      cfg.DatasetRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dataset carregada")

	return &DatasetRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		refresher: refresher,
		config:    refreshConfig,
	}
}

// Start agenda a atualização e para o agendador quando ctx for cancelado
func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de atualização do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RefreshDataset(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("Erro na atualização agendada do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de atualização do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RefreshDataset executa uma atualização. Se outra já estiver em andamento a
// chamada não faz nada e retorna ErrRefreshRunning.
func (s *DatasetRefreshService) RefreshDataset(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Atualização do dataset já está em execução")
		return ErrRefreshRunning
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	err := s.refresher.Refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
	s.lastSyncError = ""
	if err != nil {
		s.lastSyncError = err.Error()
	}
	s.syncMutex.Unlock()

	return err
}

// TriggerManualRefresh dispara uma atualização em background. Retorna false
// quando já existe uma em andamento.
func (s *DatasetRefreshService) TriggerManualRefresh(ctx context.Context) bool {
	if s.IsRunning() {
		logrus.Info("Atualização do dataset já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando atualização manual do dataset")
	go func() {
		if err := s.RefreshDataset(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("Erro na atualização manual do dataset")
		}
	}()
	return true
}

func (s *DatasetRefreshService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
