package advising

import (
	"errors"
	"fmt"
)

var (
	// Erros de validação
	ErrEmptyQuestion = errors.New("pergunta vazia")

	// Erros de conversa
	ErrConversationNotFound = errors.New("conversa não encontrada")

	// Erros de resposta do modelo
	ErrMalformedResponse = errors.New("resposta do modelo fora do contrato JSON")
	ErrUnlabeledContent  = errors.New("resposta do modelo com texto antes da primeira seção")
	ErrNoSections        = errors.New("resposta do modelo sem nenhuma seção reconhecida")
)

// AdvisorError é um erro com o código de API correspondente
type AdvisorError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *AdvisorError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AdvisorError) Unwrap() error {
	return e.Err
}

// IsResponseError verifica se a falha veio do conteúdo devolvido pelo modelo
func IsResponseError(err error) bool {
	return errors.Is(err, ErrMalformedResponse) ||
		errors.Is(err, ErrUnlabeledContent) ||
		errors.Is(err, ErrNoSections)
}

func NewAdvisorError(baseErr error, code string, details string) *AdvisorError {
	return &AdvisorError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
