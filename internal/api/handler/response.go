package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, target any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(target)
}

// writeAdvisorError usa o código carregado pelo AdvisorError; sem ele, erro interno
func writeAdvisorError(w http.ResponseWriter, err error) {
	var advisorErr *advising.AdvisorError
	if errors.As(err, &advisorErr) {
		apiErrors.WriteError(w, advisorErr.Code, advisorErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro não mapeado no assistente")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar a pergunta", nil)
}
