package handler

import (
	"net/http"

	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/internal/api/handler/router"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/internal/usecases/business"
	"github.com/vfg2006/business-advisor-api/pkg/metrics"
	"github.com/vfg2006/business-advisor-api/pkg/middleware"
)

func Healthcheck(conn *postgres.Connection) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

// Metrics expõe os contadores da aplicação no formato Prometheus
func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Reports(service advising.CombinedAdvisor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reports/analyze",
			Method:      http.MethodPost,
			Handler:     AnalyzeRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:businessID/reports/daily",
			Method:      http.MethodGet,
			Handler:     GetDailyReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:businessID/reports",
			Method:      http.MethodGet,
			Handler:     ListBusinessReports(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Businesses(service business.BusinessService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses",
			Method:      http.MethodPost,
			Handler:     CreateBusiness(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/businesses",
			Method:      http.MethodGet,
			Handler:     ListBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/businesses/:businessID",
			Method:      http.MethodGet,
			Handler:     GetBusiness(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:businessID",
			Method:      http.MethodPatch,
			Handler:     UpdateBusiness(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// DailyRecords retorna as rotas de envio e consulta dos registros diários
func DailyRecords(service business.BusinessService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses/:businessID/records",
			Method:      http.MethodPut,
			Handler:     UpsertDailyRecord(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:businessID/records",
			Method:      http.MethodGet,
			Handler:     ListDailyRecords(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserBusinesses retorna as rotas para gerenciamento de empresas vinculadas a usuários
func UserBusinesses(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/businesses",
			Method:      http.MethodGet,
			Handler:     GetUserBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/businesses/link",
			Method:      http.MethodPost,
			Handler:     LinkUserBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/businesses/:business_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserBusiness(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
