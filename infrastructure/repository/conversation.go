package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/pkg/utils"
)

//go:generate mockgen -source=conversation.go -destination=mocks/mock_conversation.go -package=mocks

var ErrConversationNotFound = errors.New("conversa não encontrada")

type ConversationRepository interface {
	Create() (*domain.Conversation, error)
	Get(id string) (*domain.Conversation, error)
	AppendTurn(id string, turn *domain.Turn) (*domain.Conversation, error)
	Delete(id string) error
	Reset()
	Count() int
}

type conversationRepository struct {
	mu            sync.Mutex
	conversations map[string]*domain.Conversation
	now           func() time.Time
}

// NewConversationRepository cria o armazenamento de conversas em memória
func NewConversationRepository() ConversationRepository {
	return &conversationRepository{
		conversations: make(map[string]*domain.Conversation),
		now:           time.Now,
	}
}

func (r *conversationRepository) Create() (*domain.Conversation, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da conversa: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	conversation := &domain.Conversation{
		ID:        id,
		Turns:     make([]*domain.Turn, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.conversations[conversation.ID] = conversation

	return snapshot(conversation), nil
}

// Get devolve uma cópia; alterações no retorno não afetam o armazenamento
func (r *conversationRepository) Get(id string) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}

	return snapshot(conversation), nil
}

func (r *conversationRepository) AppendTurn(id string, turn *domain.Turn) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}

	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = r.now().UTC()
	}
	conversation.Turns = append(conversation.Turns, turn)
	conversation.UpdatedAt = turn.CreatedAt

	return snapshot(conversation), nil
}

func (r *conversationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.conversations[id]; !ok {
		return ErrConversationNotFound
	}
	delete(r.conversations, id)

	return nil
}

func (r *conversationRepository) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.conversations = make(map[string]*domain.Conversation)
}

func (r *conversationRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.conversations)
}

func snapshot(conversation *domain.Conversation) *domain.Conversation {
	clone := *conversation
	clone.Turns = append(make([]*domain.Turn, 0, len(conversation.Turns)), conversation.Turns...)
	return &clone
}
