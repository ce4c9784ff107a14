package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

// CustomCurveRequest é o corpo de POST /v1/saturation/curve
type CustomCurveRequest struct {
	BaseROAS        float64 `json:"base_roas"`
	SaturationPoint float64 `json:"saturation_point"`
	DecayFactor     float64 `json:"decay_factor"`
	MaxSpend        float64 `json:"max_spend"`
	Steps           int     `json:"steps"`
}

// GetSaturationCurve amostra a curva modelada de um publisher
func GetSaturationCurve(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		publisher := strings.TrimSpace(query.Get("publisher"))
		if publisher == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro publisher é obrigatório", nil)
			return
		}

		maxSpend, err := utils.ParseFloatOrDefault(query.Get("max_spend"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "max_spend deve ser numérico", nil)
			return
		}

		steps, err := utils.ParseIntOrDefault(query.Get("steps"), 0)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "steps deve ser inteiro", nil)
			return
		}

		analysis, err := simulating.PublisherCurve(datasets.Get(), publisher, maxSpend, steps)
		if err != nil {
			writeCurveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}

// PostSaturationCurve amostra uma curva com parâmetros informados
func PostSaturationCurve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request CustomCurveRequest
		if err := decodeBody(w, r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		params := domain.SaturationParams{
			BaseROAS:        request.BaseROAS,
			SaturationPoint: request.SaturationPoint,
			DecayFactor:     request.DecayFactor,
		}

		analysis, err := simulating.CustomCurve(params, request.MaxSpend, request.Steps)
		if err != nil {
			writeCurveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, analysis)
	}
}

// GetSaturationPoint detecta o ponto de saturação (?source=model|dataset)
func GetSaturationPoint(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		publisher := strings.TrimSpace(query.Get("publisher"))
		if publisher == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro publisher é obrigatório", nil)
			return
		}

		source := simulating.Source(strings.ToLower(query.Get("source")))
		analysis, err := simulating.DetectForPublisher(datasets.Get(), publisher, source)
		if err != nil {
			writeCurveError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"publisher":        analysis.Publisher,
			"source":           analysis.Source,
			"found":            analysis.SaturationPoint != nil,
			"saturation_point": analysis.SaturationPoint,
			"points":           len(analysis.Points),
		})
	}
}

func writeCurveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, simulating.ErrUnknownPublisher):
		apiErrors.WriteError(w, apiErrors.ErrPublisherNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrInvalidSaturationParams), errors.Is(err, simulating.ErrInvalidCurve):
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameters, err.Error(), nil)
	case errors.Is(err, simulating.ErrUnknownSource):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Origem inválida. Valores aceitos: model, dataset", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular curva", nil)
	}
}
