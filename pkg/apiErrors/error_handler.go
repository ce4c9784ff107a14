package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidParameters   = "VAL_004" // Parâmetros de curva inválidos

	// Recursos
	ErrNotFound             = "RES_001" // Recurso não encontrado
	ErrConversationNotFound = "RES_002" // Conversa não encontrada
	ErrPublisherNotFound    = "RES_003" // Publisher não encontrado
	ErrUnknownIntent        = "RES_004" // Intenção de análise desconhecida

	// Erros do modelo de linguagem
	ErrMissingAPIKey     = "LLM_001" // Nenhuma chave de API configurada
	ErrRateLimited       = "LLM_002" // Limite de requisições do provedor
	ErrMalformedResponse = "LLM_003" // Resposta fora do contrato de seções
	ErrCompletionFailed  = "LLM_004" // Falha genérica na chamada ao modelo

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
	ErrSyncInProgress    = "SRV_005" // Atualização já em execução
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrInvalidParameters:    http.StatusBadRequest,
	ErrNotFound:             http.StatusNotFound,
	ErrConversationNotFound: http.StatusNotFound,
	ErrPublisherNotFound:    http.StatusNotFound,
	ErrUnknownIntent:        http.StatusNotFound,
	ErrMissingAPIKey:        http.StatusServiceUnavailable,
	ErrRateLimited:          http.StatusTooManyRequests,
	ErrMalformedResponse:    http.StatusBadGateway,
	ErrCompletionFailed:     http.StatusBadGateway,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrDatabaseOperation:    http.StatusInternalServerError,
	ErrExternalService:      http.StatusBadGateway,
	ErrCommunication:        http.StatusServiceUnavailable,
	ErrSyncInProgress:       http.StatusConflict,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
