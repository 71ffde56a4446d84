package entities

import (
	"time"

	"jan-server/services/messaging-api/internal/domain/conversation"
)

// Conversation references its two participants through plain foreign keys
// rather than a join table.
type Conversation struct {
	ID             uint      `gorm:"primaryKey"`
	ParticipantAID uint      `gorm:"not null;index"`
	ParticipantBID uint      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// NewSchemaConversation converts a domain conversation into its schema form.
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:             c.ID,
		ParticipantAID: c.ParticipantAID,
		ParticipantBID: c.ParticipantBID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

// EtoD converts the schema conversation into the domain model.
func (e *Conversation) EtoD() *conversation.Conversation {
	return &conversation.Conversation{
		ID:             e.ID,
		ParticipantAID: e.ParticipantAID,
		ParticipantBID: e.ParticipantBID,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// Message belongs to exactly one conversation.
type Message struct {
	ID             uint      `gorm:"primaryKey"`
	ConversationID uint      `gorm:"not null;index:idx_messages_conversation_order,priority:1"`
	SenderID       uint      `gorm:"not null;index"`
	Body           string    `gorm:"type:text;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index:idx_messages_conversation_order,priority:2"`
}

func (Message) TableName() string {
	return "messages"
}

// NewSchemaMessage converts a domain message into its schema form.
func NewSchemaMessage(m *conversation.Message) *Message {
	return &Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		CreatedAt:      m.CreatedAt,
	}
}

// EtoD converts the schema message into the domain model.
func (e *Message) EtoD() *conversation.Message {
	return &conversation.Message{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		SenderID:       e.SenderID,
		Body:           e.Body,
		CreatedAt:      e.CreatedAt,
	}
}
