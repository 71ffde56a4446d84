package conversation

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// MessageConfig bounds what PostMessage accepts.
type MessageConfig struct {
	MaxLength int
}

// MessageService reads and writes messages inside a conversation.
type MessageService interface {
	ListAllMessages(ctx context.Context, conversationID, viewer uint) ([]*Message, error)
	// FetchNewMessages is the polling primitive: it returns the messages stored
	// after the lastSeen checkpoint. A nil checkpoint yields no messages.
	FetchNewMessages(ctx context.Context, conversationID, viewer uint, lastSeen *uint) ([]*Message, error)
	PostMessage(ctx context.Context, conversationID, sender uint, body string) (*Message, error)
	DeleteMessage(ctx context.Context, conversationID, messageID, requester uint) error
}

type messageService struct {
	conversations Service
	messages      MessageRepository
	cfg           MessageConfig
	log           zerolog.Logger
}

// NewMessageService wires the message service. Conversation access checks are
// delegated to conversations.
func NewMessageService(conversations Service, messages MessageRepository, cfg MessageConfig, log zerolog.Logger) MessageService {
	return &messageService{
		conversations: conversations,
		messages:      messages,
		cfg:           cfg,
		log:           log.With().Str("component", "message-service").Logger(),
	}
}

func (s *messageService) ListAllMessages(ctx context.Context, conversationID, viewer uint) ([]*Message, error) {
	if _, err := s.conversations.GetConversation(ctx, conversationID, viewer); err != nil {
		return nil, err
	}
	return s.messages.ListByConversation(ctx, conversationID)
}

func (s *messageService) FetchNewMessages(ctx context.Context, conversationID, viewer uint, lastSeen *uint) ([]*Message, error) {
	if _, err := s.conversations.GetConversation(ctx, conversationID, viewer); err != nil {
		return nil, err
	}
	if lastSeen == nil {
		return []*Message{}, nil
	}

	checkpoint, err := s.messages.FindByID(ctx, conversationID, *lastSeen)
	if err != nil {
		return nil, err
	}
	return s.messages.ListAfter(ctx, conversationID, checkpoint)
}

func (s *messageService) PostMessage(ctx context.Context, conversationID, sender uint, body string) (*Message, error) {
	if _, err := s.conversations.GetConversation(ctx, conversationID, sender); err != nil {
		return nil, err
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"message body is empty", ErrInvalidInput, "message-empty-body")
	}
	if s.cfg.MaxLength > 0 && utf8.RuneCountInString(body) > s.cfg.MaxLength {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			fmt.Sprintf("message body exceeds %d characters", s.cfg.MaxLength), ErrInvalidInput, "message-body-too-long")
	}

	msg := &Message{
		ConversationID: conversationID,
		SenderID:       sender,
		Body:           body,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Debug().Uint("conversation_id", conversationID).Uint("message_id", msg.ID).Msg("message posted")
	return msg, nil
}

// DeleteMessage lets the sender remove one of their own messages.
func (s *messageService) DeleteMessage(ctx context.Context, conversationID, messageID, requester uint) error {
	if _, err := s.conversations.GetConversation(ctx, conversationID, requester); err != nil {
		return err
	}

	msg, err := s.messages.FindByID(ctx, conversationID, messageID)
	if err != nil {
		return err
	}
	if msg.SenderID != requester {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeForbidden,
			"only the sender can delete a message", ErrNotSender, "message-not-sender")
	}
	return s.messages.Delete(ctx, conversationID, messageID)
}
