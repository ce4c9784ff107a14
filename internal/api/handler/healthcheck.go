package handler

import (
	"net/http"
	"time"
)

// HealthReporter expõe o que o healthcheck precisa saber da aplicação
type HealthReporter interface {
	Refreshes() int
}

func HealthcheckHandler(dataset HealthReporter, llmProvider string) http.Handler {
	startedAt := time.Now()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":            "ok",
			"time":              time.Now().UTC(),
			"uptime_seconds":    int64(time.Since(startedAt).Seconds()),
			"dataset_refreshes": dataset.Refreshes(),
			"llm_provider":      llmProvider,
			"llm_configured":    llmProvider != "none" && llmProvider != "",
		})
	})
}
