package handlers

import (
	"context"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/infrastructure/metrics"
)

// ConversationView pairs a conversation with the participant the viewer talks to.
type ConversationView struct {
	Conversation *conversation.Conversation
	Recipient    *user.User
}

// ConversationHandler invokes conversation use cases on behalf of a viewer.
type ConversationHandler struct {
	service conversation.Service
	users   user.Service
}

// NewConversationHandler wires dependencies for conversation routes.
func NewConversationHandler(service conversation.Service, users user.Service) *ConversationHandler {
	return &ConversationHandler{service: service, users: users}
}

// List returns the viewer's conversations with their recipients resolved.
func (h *ConversationHandler) List(ctx context.Context, viewer uint) ([]ConversationView, error) {
	convs, err := h.service.ListConversations(ctx, viewer)
	if err != nil {
		return nil, err
	}

	cache := make(map[uint]*user.User)
	views := make([]ConversationView, 0, len(convs))
	for _, conv := range convs {
		view, err := h.view(ctx, conv, viewer, cache)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Get returns one conversation as seen by viewer.
func (h *ConversationHandler) Get(ctx context.Context, id, viewer uint) (ConversationView, error) {
	conv, err := h.service.GetConversation(ctx, id, viewer)
	if err != nil {
		return ConversationView{}, err
	}
	return h.view(ctx, conv, viewer, nil)
}

// Create starts a conversation between viewer and recipient.
func (h *ConversationHandler) Create(ctx context.Context, viewer, recipient uint) (ConversationView, error) {
	conv, err := h.service.CreateConversation(ctx, viewer, recipient)
	if err != nil {
		return ConversationView{}, err
	}
	metrics.ConversationsCreatedTotal.Inc()
	return h.view(ctx, conv, viewer, nil)
}

// Update points the conversation at a different recipient.
func (h *ConversationHandler) Update(ctx context.Context, id, viewer, recipient uint) (ConversationView, error) {
	conv, err := h.service.UpdateConversation(ctx, id, viewer, recipient)
	if err != nil {
		return ConversationView{}, err
	}
	return h.view(ctx, conv, viewer, nil)
}

// Delete removes the conversation and its messages.
func (h *ConversationHandler) Delete(ctx context.Context, id, viewer uint) error {
	if err := h.service.DeleteConversation(ctx, id, viewer); err != nil {
		return err
	}
	metrics.ConversationsDeletedTotal.Inc()
	return nil
}

func (h *ConversationHandler) view(ctx context.Context, conv *conversation.Conversation, viewer uint, cache map[uint]*user.User) (ConversationView, error) {
	recipientID, err := h.service.RecipientOf(ctx, conv, viewer)
	if err != nil {
		return ConversationView{}, err
	}

	recipient, cached := cache[recipientID]
	if !cached {
		recipient, err = h.users.GetUser(ctx, recipientID)
		if err != nil {
			return ConversationView{}, err
		}
		if cache != nil {
			cache[recipientID] = recipient
		}
	}

	return ConversationView{Conversation: conv, Recipient: recipient}, nil
}
