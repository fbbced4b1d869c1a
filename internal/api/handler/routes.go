package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-insights-api/internal/api/handler/router"
	"github.com/vfg2006/campaign-insights-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-insights-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}

func Dashboard(service dashboarding.Dashboard) []router.Route {
	allRoles := []func(http.Handler) http.Handler{middleware.AllRoles()}

	return []router.Route{
		{
			Path:        "/v1/dashboard/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/demographics",
			Method:      http.MethodGet,
			Handler:     GetDemographics(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/devices",
			Method:      http.MethodGet,
			Handler:     GetDevices(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/regions",
			Method:      http.MethodGet,
			Handler:     GetRegions(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeekly(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/charts/weekly",
			Method:      http.MethodGet,
			Handler:     GetWeeklyChart(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/charts/devices",
			Method:      http.MethodGet,
			Handler:     GetDeviceChart(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/charts/demographics",
			Method:      http.MethodGet,
			Handler:     GetDemographicChart(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/heatmap",
			Method:      http.MethodGet,
			Handler:     GetRegionHeatMap(service),
			Middlewares: allRoles,
		},
		{
			Path:        "/v1/dashboard/export.xlsx",
			Method:      http.MethodGet,
			Handler:     ExportWorkbook(service),
			Middlewares: allRoles,
		},
	}
}

func Dataset(service dashboarding.Dashboard, refresher DatasetRefresher) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dataset/status",
			Method:      http.MethodGet,
			Handler:     GetDatasetStatus(service, refresher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dataset/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDataset(service, refresher),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
