package llmdomain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse representa o corpo de erro das APIs compatíveis com OpenAI
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"`
}

// APIError é o erro devolvido quando o provedor responde com status != 200
type APIError struct {
	StatusCode int
	Detail     ErrorDetail
	Body       string
}

func (e *APIError) Error() string {
	message := e.Detail.Message
	if message == "" {
		message = e.Body
	}
	return fmt.Sprintf("chat completion falhou com status %d: %s", e.StatusCode, message)
}

// IsRateLimit verifica se o erro é de limite de requisições
func (e *APIError) IsRateLimit() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}

	code := strings.ToLower(fmt.Sprint(e.Detail.Code))
	return e.Detail.Type == "rate_limit_exceeded" ||
		code == "rate_limit_exceeded" ||
		strings.Contains(strings.ToLower(e.Detail.Message), "rate limit")
}

// IsAuthentication verifica se a chave de API foi recusada
func (e *APIError) IsAuthentication() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
