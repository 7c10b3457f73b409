package handler

import (
	"net/http"

	"github.com/vfg2006/expert-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/expert-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/expert-metrics-api/pkg/middleware"
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

func Dashboard(service insighting.Dashboarder, authorizer *middleware.Authorizer, now Clock) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AllRoles()},
		},
		{
			Path:        "/v1/clients/:slug/dashboard",
			Method:      http.MethodGet,
			Handler:     GetClientDashboard(service, now),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AllRoles()},
		},
		{
			Path:        "/v1/clients/:slug/status-history",
			Method:      http.MethodGet,
			Handler:     GetStatusHistory(service),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AllRoles()},
		},
		{
			Path:        "/v1/clients-status",
			Method:      http.MethodGet,
			Handler:     GetClientsStatus(service, now),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AllRoles()},
		},
		{
			Path:        "/v1/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service, now),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AllRoles()},
		},
		{
			Path:        "/v1/clients/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshClients(service),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices, authorizer *middleware.Authorizer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{authorizer.AdminOnly()},
		},
	}
}
