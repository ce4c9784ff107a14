package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-insights-api/internal/api/handler/router"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/pkg/metrics"
	"github.com/vfg2006/marketing-insights-api/pkg/middleware"
)

func Healthcheck(dataset HealthReporter, llmProvider string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(dataset, llmProvider),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dataset(datasets advising.DatasetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dataset",
			Method:  http.MethodGet,
			Handler: GetDataset(datasets),
		},
		{
			Path:    "/v1/dataset/summary",
			Method:  http.MethodGet,
			Handler: GetDatasetSummary(datasets),
		},
		{
			Path:    "/v1/dataset/export",
			Method:  http.MethodGet,
			Handler: ExportDataset(datasets),
		},
		{
			Path:    "/v1/glossary",
			Method:  http.MethodGet,
			Handler: GetGlossary(),
		},
	}
}

func Saturation(datasets advising.DatasetProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/saturation/curve",
			Method:  http.MethodGet,
			Handler: GetSaturationCurve(datasets),
		},
		{
			Path:        "/v1/saturation/curve",
			Method:      http.MethodPost,
			Handler:     PostSaturationCurve(),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:    "/v1/saturation/point",
			Method:  http.MethodGet,
			Handler: GetSaturationPoint(datasets),
		},
	}
}

func Charts(datasets advising.DatasetProvider, renderer ChartRenderer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/intents",
			Method:  http.MethodGet,
			Handler: ListIntents(),
		},
		{
			Path:    "/v1/charts/:intent",
			Method:  http.MethodGet,
			Handler: GetChart(datasets),
		},
		{
			Path:    "/v1/charts/:intent/image",
			Method:  http.MethodGet,
			Handler: GetChartImage(datasets, renderer),
		},
	}
}

func Conversations(advisor advising.Advisor, analysesLimit int) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/conversations",
			Method:  http.MethodPost,
			Handler: CreateConversation(advisor),
		},
		{
			Path:    "/v1/conversations/:id",
			Method:  http.MethodGet,
			Handler: GetConversation(advisor),
		},
		{
			Path:    "/v1/conversations/:id",
			Method:  http.MethodDelete,
			Handler: DeleteConversation(advisor),
		},
		{
			Path:        "/v1/conversations/:id/questions",
			Method:      http.MethodPost,
			Handler:     AskQuestion(advisor),
			Middlewares: []func(http.Handler) http.Handler{middleware.RequireJSON()},
		},
		{
			Path:    "/v1/analyses",
			Method:  http.MethodGet,
			Handler: ListAnalyses(advisor, analysesLimit),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
