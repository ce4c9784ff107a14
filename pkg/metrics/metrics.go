package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "marketing_insights"

// Resultados possíveis de uma chamada ao modelo
const (
	OutcomeSuccess       = "success"
	OutcomeMissingAPIKey = "missing_api_key"
	OutcomeRateLimited   = "rate_limited"
	OutcomeMalformed     = "malformed_response"
	OutcomeFailed        = "failed"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP por método e status.",
	}, []string{"method", "status_code"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})

	LLMRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "llm_requests_total",
		Help:      "Chamadas de chat completion por resultado.",
	}, []string{"outcome"})

	ChartsBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "charts_built_total",
		Help:      "Gráficos montados por intenção e formato.",
	}, []string{"intent", "format"})

	DatasetRefreshes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dataset_refreshes_total",
		Help:      "Quantidade de vezes que o dataset sintético foi regenerado.",
	})
)

// Registry agrupa os coletores da aplicação
var Registry = newRegistry()

func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		HTTPRequests,
		HTTPDuration,
		LLMRequests,
		ChartsBuilt,
		DatasetRefreshes,
	)
	return registry
}

// Handler expõe o registry no formato de texto do Prometheus
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveRequest registra uma requisição HTTP concluída
func ObserveRequest(method string, statusCode int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	HTTPDuration.WithLabelValues(method).Observe(duration.Seconds())
}
