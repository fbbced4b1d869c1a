package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/scheduler"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

// DatasetRefresher é implementado pelo agendador de atualização do dataset
type DatasetRefresher interface {
	RefreshDataset(ctx context.Context) error
	TriggerManualRefresh(ctx context.Context) bool
	GetStatus() map[string]any
}

// GetDatasetStatus retorna o estado do snapshot e do agendador
func GetDatasetStatus(service dashboarding.Dashboard, refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]any{
			"dataset":   service.Status(),
			"scheduler": refresher.GetStatus(),
		})
	})
}

// RefreshDataset dispara uma nova busca do dataset. Com ?wait=true a resposta
// só volta depois da troca do snapshot (ou da falha).
func RefreshDataset(service dashboarding.Dashboard, refresher DatasetRefresher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if r.URL.Query().Get("wait") == "true" {
			logger.Info("dataset: atualização síncrona solicitada")

			if err := refresher.RefreshDataset(r.Context()); err != nil {
				if errors.Is(err, scheduler.ErrRefreshRunning) {
					writeRefreshRunning(w, r)
					return
				}
				writeServiceError(w, r, err, "dataset: falha na atualização")
				return
			}

			writeJSON(w, r, http.StatusOK, service.Status())
			return
		}

		// a busca continua depois que a resposta é enviada
		if !refresher.TriggerManualRefresh(context.WithoutCancel(r.Context())) {
			writeRefreshRunning(w, r)
			return
		}

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Atualização do dataset iniciada",
		})
	})
}

func writeRefreshRunning(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusConflict, map[string]any{
		"message": "Atualização do dataset já em andamento",
	})
}
