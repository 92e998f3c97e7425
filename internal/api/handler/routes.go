package handler

import (
	"net/http"

	"github.com/vfg2006/revenue-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/revenue-dashboard-api/internal/usecases/refreshing"
	"github.com/vfg2006/revenue-dashboard-api/pkg/middleware"
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

func Metrics(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: GetMetrics(service),
		},
		{
			Path:        "/metrics/update",
			Method:      http.MethodPost,
			Handler:     UpdateMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyAuth(service)},
		},
	}
}

func UpstreamProxy(service refreshing.Refresher) []router.Route {
	return []router.Route{
		{
			Path:    "/proxy",
			Method:  http.MethodPost,
			Handler: Proxy(service),
		},
	}
}

func CronJobs(service RefreshScheduler, authorizer middleware.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/refresh/run",
			Method:      http.MethodPost,
			Handler:     RunRefresh(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyAuth(authorizer)},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetRefreshStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.APIKeyAuth(authorizer)},
		},
	}
}
