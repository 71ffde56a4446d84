package conversation

import (
	"context"

	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// UserFinder resolves users referenced by conversations.
type UserFinder interface {
	GetUser(ctx context.Context, id uint) (*user.User, error)
}

// Service describes conversation lifecycle operations. Every call names the
// acting user explicitly.
type Service interface {
	CreateConversation(ctx context.Context, initiator, other uint) (*Conversation, error)
	ListConversations(ctx context.Context, userID uint) ([]*Conversation, error)
	GetConversation(ctx context.Context, id, viewer uint) (*Conversation, error)
	RecipientOf(ctx context.Context, conv *Conversation, viewer uint) (uint, error)
	UpdateConversation(ctx context.Context, id, requester, other uint) (*Conversation, error)
	DeleteConversation(ctx context.Context, id, requester uint) error
}

type service struct {
	repo  Repository
	users UserFinder
	log   zerolog.Logger
}

// NewService wires the conversation service with its dependencies.
func NewService(repo Repository, users UserFinder, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		log:   log.With().Str("component", "conversation-service").Logger(),
	}
}

// CreateConversation does not look for an existing conversation between the
// same pair; duplicates are allowed.
func (s *service) CreateConversation(ctx context.Context, initiator, other uint) (*Conversation, error) {
	if err := s.validatePair(ctx, initiator, other); err != nil {
		return nil, err
	}

	conv := &Conversation{
		ParticipantAID: initiator,
		ParticipantBID: other,
	}
	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, err
	}

	s.log.Info().
		Uint("conversation_id", conv.ID).
		Uint("initiator_id", initiator).
		Uint("recipient_id", other).
		Msg("conversation created")
	return conv, nil
}

func (s *service) ListConversations(ctx context.Context, userID uint) ([]*Conversation, error) {
	return s.repo.ListByParticipant(ctx, userID)
}

func (s *service) GetConversation(ctx context.Context, id, viewer uint) (*Conversation, error) {
	conv, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(viewer) {
		return nil, notParticipant(ctx, id, viewer)
	}
	return conv, nil
}

func (s *service) RecipientOf(ctx context.Context, conv *Conversation, viewer uint) (uint, error) {
	recipient, ok := conv.Recipient(viewer)
	if !ok {
		return 0, notParticipant(ctx, conv.ID, viewer)
	}
	return recipient, nil
}

// UpdateConversation swaps the requester's counterpart for other. Only empty
// conversations can change participants: every sender must stay a participant.
func (s *service) UpdateConversation(ctx context.Context, id, requester, other uint) (*Conversation, error) {
	conv, err := s.GetConversation(ctx, id, requester)
	if err != nil {
		return nil, err
	}
	if err := s.validatePair(ctx, requester, other); err != nil {
		return nil, err
	}

	hasMessages, err := s.repo.HasMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	if hasMessages {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeConflict,
			"participants cannot change once the conversation has messages", ErrHasMessages, "conversation-has-messages")
	}

	if conv.ParticipantAID == requester {
		conv.ParticipantBID = other
	} else {
		conv.ParticipantAID = other
	}
	if err := s.repo.Update(ctx, conv); err != nil {
		return nil, err
	}

	s.log.Info().Uint("conversation_id", id).Uint("recipient_id", other).Msg("conversation updated")
	return conv, nil
}

func (s *service) DeleteConversation(ctx context.Context, id, requester uint) error {
	if _, err := s.GetConversation(ctx, id, requester); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Uint("conversation_id", id).Uint("requester_id", requester).Msg("conversation deleted")
	return nil
}

func (s *service) validatePair(ctx context.Context, initiator, other uint) error {
	if other == 0 {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"recipient is required", ErrInvalidParticipant, "conversation-recipient-required")
	}
	if other == initiator {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"cannot start a conversation with yourself", ErrInvalidParticipant, "conversation-self-recipient")
	}
	if _, err := s.users.GetUser(ctx, other); err != nil {
		return err
	}
	return nil
}

func notParticipant(ctx context.Context, conversationID, userID uint) error {
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeForbidden,
		"user is not a participant of this conversation", ErrNotParticipant, "conversation-not-participant",
		map[string]any{"conversation_id": conversationID, "user_id": userID})
}
