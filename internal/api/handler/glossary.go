package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

func GetGlossary() http.HandlerFunc {
	glossary := domain.DefaultGlossary()

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, glossary)
	}
}
