package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/charting"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-insights-api/pkg/metrics"
)

// ChartRenderer desenha uma especificação de gráfico em PNG
type ChartRenderer interface {
	RenderPNG(spec *domain.ChartSpec) ([]byte, error)
}

// ListIntents lista as intenções de análise suportadas
func ListIntents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"intents": charting.AllIntents(),
			"default": domain.IntentOverview,
		})
	}
}

// GetChart devolve a especificação do gráfico da intenção
func GetChart(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, ok := buildChart(w, r, datasets)
		if !ok {
			return
		}

		metrics.ChartsBuilt.WithLabelValues(string(spec.Intent), "spec").Inc()
		writeJSON(w, http.StatusOK, spec)
	}
}

// GetChartImage devolve o gráfico da intenção em PNG
func GetChartImage(datasets advising.DatasetProvider, renderer ChartRenderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec, ok := buildChart(w, r, datasets)
		if !ok {
			return
		}

		image, err := renderer.RenderPNG(spec)
		if err != nil {
			logrus.WithError(err).WithField("intent", spec.Intent).Error("Erro ao desenhar gráfico")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao desenhar gráfico", nil)
			return
		}

		metrics.ChartsBuilt.WithLabelValues(string(spec.Intent), "png").Inc()
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(image)
	}
}

func buildChart(w http.ResponseWriter, r *http.Request, datasets advising.DatasetProvider) (*domain.ChartSpec, bool) {
	intent, err := charting.ParseIntent(httprouter.ParamsFromContext(r.Context()).ByName("intent"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrUnknownIntent, err.Error(), map[string]any{
			"accepted": charting.AllIntents(),
		})
		return nil, false
	}

	spec, err := charting.Build(intent, datasets.Get())
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar gráfico", nil)
		return nil, false
	}

	return spec, true
}
