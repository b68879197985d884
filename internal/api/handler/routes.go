package handler

import (
	"net/http"

	"github.com/vfg2006/ppc-insights-api/internal/api/handler/router"
	"github.com/vfg2006/ppc-insights-api/internal/usecases/authenticating"
	"github.com/vfg2006/ppc-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/ppc-insights-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Workspaces(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspaces",
			Method:      http.MethodGet,
			Handler:     WorkspaceList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAnalyst()},
		},
	}
}

func Insights(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspaces/:id/insights",
			Method:      http.MethodGet,
			Handler:     GetWorkspaceInsights(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
