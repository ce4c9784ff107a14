package domain

import "time"

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage é uma mensagem no formato de chat completion
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Turn é uma pergunta respondida dentro de uma conversa
type Turn struct {
	Question  string            `json:"question"`
	Intent    Intent            `json:"intent"`
	Reply     string            `json:"reply"`
	Sections  *AnalysisSections `json:"sections,omitempty"`
	Chart     *ChartSpec        `json:"chart,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// Conversation guarda o histórico de perguntas de um usuário do dashboard
type Conversation struct {
	ID        string    `json:"id"`
	Turns     []*Turn   `json:"turns"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// History converte os últimos maxTurns turnos em mensagens de chat
func (c *Conversation) History(maxTurns int) []ChatMessage {
	if c == nil || len(c.Turns) == 0 || maxTurns <= 0 {
		return nil
	}

	turns := c.Turns
	if len(turns) > maxTurns {
		turns = turns[len(turns)-maxTurns:]
	}

	messages := make([]ChatMessage, 0, len(turns)*2)
	for _, turn := range turns {
		messages = append(messages,
			ChatMessage{Role: RoleUser, Content: turn.Question},
			ChatMessage{Role: RoleAssistant, Content: turn.Reply},
		)
	}

	return messages
}
