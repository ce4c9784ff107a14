package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (*logger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buffer)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	base.SetLevel(logrus.DebugLevel)
	return &logger{Entry: logrus.NewEntry(base)}, buffer
}

func TestLogger_DevelopmentFiltersFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	l, buffer := newBufferedLogger()

	l.WithFields(Fields{
		"conversation_id":   "abc123",
		"llm_prompt_tokens": 42,
		"remote_addr":       "10.0.0.1",
	}).Info("pergunta respondida")

	output := buffer.String()
	assert.Contains(t, output, "conversation_id=abc123")
	assert.Contains(t, output, "llm_prompt_tokens=42")
	assert.NotContains(t, output, "remote_addr")
}

func TestLogger_ProductionKeepsFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	l, buffer := newBufferedLogger()

	l.WithField("remote_addr", "10.0.0.1").Info("requisição")
	assert.Contains(t, buffer.String(), "remote_addr=10.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	ctx, correlationID := WithCorrelationID(context.Background())

	assert.NotEmpty(t, correlationID)
	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}
