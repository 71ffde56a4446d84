package handlers

import (
	"github.com/google/wire"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/domain/user"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	User         *UserHandler
	Conversation *ConversationHandler
	Message      *MessageHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(userService user.Service, conversationService conversation.Service, messageService conversation.MessageService) *Provider {
	return &Provider{
		User:         NewUserHandler(userService),
		Conversation: NewConversationHandler(conversationService, userService),
		Message:      NewMessageHandler(messageService),
	}
}

// HandlerProvider provides all handlers for wire.
var HandlerProvider = wire.NewSet(NewProvider)
