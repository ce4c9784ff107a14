package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
)

// Tipos de job que podem ser executados manualmente
const (
	CronJobTypeDataset = "dataset"
	CronJobTypeReset   = "reset"
)

// ManualSyncer é um job agendado que também pode ser disparado pela API
type ManualSyncer interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// StateResetter reinicia o estado em memória da aplicação
type StateResetter interface {
	Reset()
}

// CronJobServices contém os serviços que podem ser executados manualmente
type CronJobServices struct {
	DatasetRefreshService ManualSyncer
	State                 StateResetter
}

// RunCronJob executa manualmente um job
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		logrus.WithField("type", cronType).Info("INIT - RunCronJob")

		switch cronType {
		case CronJobTypeDataset:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dataset não disponível", nil)
				return
			}
			if !services.DatasetRefreshService.TriggerManualSync() {
				apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Atualização do dataset já em andamento", nil)
				return
			}

		case CronJobTypeReset:
			if services.State == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Estado da aplicação não disponível", nil)
				return
			}
			services.State.Reset()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de job inválido. Valores aceitos: dataset, reset", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Job iniciado com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status dos jobs agendados
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDataset] = services.DatasetRefreshService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
