package handlers

import (
	"context"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/infrastructure/metrics"
)

// MessageHandler invokes message use cases on behalf of a viewer.
type MessageHandler struct {
	service conversation.MessageService
}

// NewMessageHandler wires dependencies for message routes.
func NewMessageHandler(service conversation.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// List returns every message of the conversation in order.
func (h *MessageHandler) List(ctx context.Context, conversationID, viewer uint) ([]*conversation.Message, error) {
	return h.service.ListAllMessages(ctx, conversationID, viewer)
}

// Refresh returns messages newer than lastSeen.
func (h *MessageHandler) Refresh(ctx context.Context, conversationID, viewer uint, lastSeen *uint) ([]*conversation.Message, error) {
	msgs, err := h.service.FetchNewMessages(ctx, conversationID, viewer, lastSeen)
	if err != nil {
		return nil, err
	}
	metrics.RecordRefresh(lastSeen != nil, len(msgs))
	return msgs, nil
}

// Post stores a new message from sender.
func (h *MessageHandler) Post(ctx context.Context, conversationID, sender uint, body string) (*conversation.Message, error) {
	msg, err := h.service.PostMessage(ctx, conversationID, sender, body)
	if err != nil {
		return nil, err
	}
	metrics.MessagesPostedTotal.Inc()
	return msg, nil
}

// Delete removes one of the requester's messages.
func (h *MessageHandler) Delete(ctx context.Context, conversationID, messageID, requester uint) error {
	return h.service.DeleteMessage(ctx, conversationID, messageID, requester)
}
