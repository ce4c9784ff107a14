package appstate

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/infrastructure/repository"
	"github.com/vfg2006/marketing-insights-api/internal/config"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

// State concentra o estado mutável da aplicação: o dataset em cache e as conversas
type State struct {
	Dataset       *simulating.DatasetCache
	Conversations repository.ConversationRepository
}

// New cria o estado a partir da configuração; o dataset é gerado na primeira leitura
func New(cfg *config.Config) (*State, error) {
	startMonth, err := utils.ParseMonth(cfg.Dataset.StartMonth)
	if err != nil {
		return nil, fmt.Errorf("DATASET_START_MONTH inválido: %w", err)
	}

	months := cfg.Dataset.Months
	if months <= 0 {
		return nil, fmt.Errorf("DATASET_MONTHS deve ser positivo, recebido %d", months)
	}

	generator := simulating.NewGenerator(simulating.DefaultProfiles(), startMonth, months)

	return &State{
		Dataset:       simulating.NewDatasetCache(generator, cfg.Dataset.Seed),
		Conversations: repository.NewConversationRepository(),
	}, nil
}

// Reset descarta o dataset e todas as conversas
func (s *State) Reset() {
	conversations := s.Conversations.Count()

	s.Dataset.Reset()
	s.Conversations.Reset()

	logrus.WithFields(logrus.Fields{
		"conversations": conversations,
		"reset_at":      time.Now().UTC().Format(time.RFC3339),
	}).Info("Estado da aplicação reiniciado")
}
