package conversation

import "context"

// Repository exposes data access for conversations.
type Repository interface {
	Create(ctx context.Context, conv *Conversation) error
	Update(ctx context.Context, conv *Conversation) error
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	// ListByParticipant returns conversations where userID is participant a or b.
	ListByParticipant(ctx context.Context, userID uint) ([]*Conversation, error)
	HasMessages(ctx context.Context, id uint) (bool, error)
	// Delete removes the conversation together with all of its messages.
	Delete(ctx context.Context, id uint) error
}

// MessageRepository exposes data access for messages. Every lookup is scoped
// to a conversation.
type MessageRepository interface {
	Create(ctx context.Context, msg *Message) error
	FindByID(ctx context.Context, conversationID, id uint) (*Message, error)
	// ListByConversation returns messages ordered by creation time, then id.
	ListByConversation(ctx context.Context, conversationID uint) ([]*Message, error)
	// ListAfter returns messages ordered strictly after checkpoint.
	ListAfter(ctx context.Context, conversationID uint, checkpoint *Message) ([]*Message, error)
	Delete(ctx context.Context, conversationID, id uint) error
}
