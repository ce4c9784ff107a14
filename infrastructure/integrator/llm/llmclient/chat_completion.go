package llmclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	llmdomain "github.com/vfg2006/marketing-insights-api/infrastructure/integrator/llm/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyCompletion é devolvido quando o provedor não retorna nenhuma escolha
var ErrEmptyCompletion = errors.New("chat completion sem resposta")

// CreateChatCompletion faz uma única chamada síncrona; não há retentativas
func (c *LLMClient) CreateChatCompletion(ctx context.Context, request *llmdomain.ChatCompletionRequest) (*llmdomain.ChatCompletionResponse, error) {
	url := c.Cfg.LLM.BaseURL + "/chat/completions"

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar requisição de chat completion")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, errors.Wrap(err, "erro ao criar requisição de chat completion")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.LLM.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, errors.Wrap(err, "erro ao chamar chat completion")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta de chat completion")
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &llmdomain.APIError{StatusCode: resp.StatusCode, Body: string(body)}

		var errorResponse llmdomain.ErrorResponse
		if err := json.Unmarshal(body, &errorResponse); err == nil {
			apiErr.Detail = errorResponse.Error
		}

		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"model":       request.Model,
		}).Warn("Chat completion respondeu com erro")

		return nil, apiErr
	}

	var response llmdomain.ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, errors.Wrap(err, "erro ao decodificar resposta de chat completion")
	}

	if response.Error != nil {
		return nil, &llmdomain.APIError{StatusCode: resp.StatusCode, Detail: *response.Error, Body: string(body)}
	}

	if len(response.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	return &response, nil
}
