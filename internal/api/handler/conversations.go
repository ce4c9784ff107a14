package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

// QuestionRequest é o corpo de POST /v1/conversations/:id/questions
type QuestionRequest struct {
	Question string `json:"question"`
}

func CreateConversation(advisor advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conversation, err := advisor.CreateConversation(r.Context())
		if err != nil {
			writeAdvisorError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, conversation)
	}
}

func GetConversation(advisor advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		conversation, err := advisor.GetConversation(r.Context(), id)
		if err != nil {
			writeAdvisorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, conversation)
	}
}

// DeleteConversation reinicia a conversa, descartando o histórico
func DeleteConversation(advisor advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := advisor.ResetConversation(r.Context(), id); err != nil {
			writeAdvisorError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// AskQuestion envia a pergunta ao assistente dentro da conversa
func AskQuestion(advisor advising.Advisor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request QuestionRequest
		if err := decodeBody(w, r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		response, err := advisor.Ask(r.Context(), id, request.Question)
		if err != nil {
			writeAdvisorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// ListAnalyses lista as análises mais recentes (?limit=)
func ListAnalyses(advisor advising.Advisor, defaultLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := utils.ParseIntOrDefault(r.URL.Query().Get("limit"), defaultLimit)
		if err != nil || limit <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
			return
		}

		entries, err := advisor.ListAnalyses(r.Context(), limit)
		if err != nil {
			writeAdvisorError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"analyses": entries,
			"count":    len(entries),
		})
	}
}
