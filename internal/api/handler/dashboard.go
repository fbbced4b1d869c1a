package handler

import (
	"fmt"
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/exporting"
	"github.com/vfg2006/campaign-insights-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-insights-api/pkg/log"
)

// viewHandler serve qualquer view sem parâmetros do dashboard
func viewHandler[T any](view func() (T, error), name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result, err := view()
		if err != nil {
			writeServiceError(w, r, err, fmt.Sprintf("dashboard: falha ao montar %s", name))
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}

func GetOverview(service dashboarding.Dashboard) http.Handler {
	return viewHandler(service.Overview, "overview")
}

func GetDemographics(service dashboarding.Dashboard) http.Handler {
	return viewHandler(service.Demographics, "demographics")
}

func GetDevices(service dashboarding.Dashboard) http.Handler {
	return viewHandler(service.Devices, "devices")
}

func GetRegions(service dashboarding.Dashboard) http.Handler {
	return viewHandler(service.Regions, "regions")
}

func GetWeekly(service dashboarding.Dashboard) http.Handler {
	return viewHandler(service.Weekly, "weekly")
}

func GetWeeklyChart(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind, err := dashboarding.ParseChartKind(r.URL.Query().Get("kind"))
		if err != nil {
			writeServiceError(w, r, err, "charts: parâmetro kind inválido")
			return
		}

		width, height, ok := chartSize(w, r)
		if !ok {
			return
		}

		geometry, err := service.WeeklyChart(kind, width, height)
		if err != nil {
			writeServiceError(w, r, err, "charts: falha ao montar gráfico semanal")
			return
		}

		writeJSON(w, r, http.StatusOK, geometry)
	})
}

func GetDeviceChart(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metric, err := dashboarding.ParseDeviceMetric(r.URL.Query().Get("metric"))
		if err != nil {
			writeServiceError(w, r, err, "charts: parâmetro metric inválido")
			return
		}

		width, height, ok := chartSize(w, r)
		if !ok {
			return
		}

		geometry, err := service.DeviceChart(metric, width, height)
		if err != nil {
			writeServiceError(w, r, err, "charts: falha ao montar gráfico de dispositivos")
			return
		}

		writeJSON(w, r, http.StatusOK, geometry)
	})
}

func GetDemographicChart(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		width, height, ok := chartSize(w, r)
		if !ok {
			return
		}

		geometry, err := service.DemographicChart(width, height)
		if err != nil {
			writeServiceError(w, r, err, "charts: falha ao montar gráfico demográfico")
			return
		}

		writeJSON(w, r, http.StatusOK, geometry)
	})
}

func GetRegionHeatMap(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		metric, err := dashboarding.ParseRegionMetric(r.URL.Query().Get("metric"))
		if err != nil {
			writeServiceError(w, r, err, "heatmap: parâmetro metric inválido")
			return
		}

		geometry, err := service.RegionHeatMap(metric)
		if err != nil {
			writeServiceError(w, r, err, "heatmap: falha ao montar mapa de calor")
			return
		}

		writeJSON(w, r, http.StatusOK, geometry)
	})
}

// ExportWorkbook devolve o snapshot atual como planilha xlsx
func ExportWorkbook(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Snapshot()
		if err != nil {
			writeServiceError(w, r, err, "export: nenhum snapshot disponível")
			return
		}

		workbook, err := exporting.BuildWorkbook(snapshot)
		if err != nil {
			logger.WithError(err).Error("export: falha ao gerar planilha")
			apiErrors.WriteError(w, apiErrors.ErrExport, "Erro ao gerar planilha", nil)
			return
		}
		defer func() {
			if err := workbook.Close(); err != nil {
				logger.WithError(err).Warn("export: falha ao fechar planilha")
			}
		}()

		w.Header().Set("Content-Type", exporting.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="dashboard-%s.xlsx"`, snapshot.ID))

		if err := workbook.Write(w); err != nil {
			logger.WithError(err).Error("export: falha ao escrever planilha")
			return
		}

		logger.WithField("snapshot_id", snapshot.ID).Info("export: planilha enviada")
	})
}
