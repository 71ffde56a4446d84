package responses

import (
	"time"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/handlers"
)

// ListResponse wraps collections in the list envelope used across jan services.
type ListResponse[T any] struct {
	Object string `json:"object" example:"list"`
	Data   []T    `json:"data"`
}

// NewList builds a list envelope; data is never null in JSON.
func NewList[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Object: "list", Data: data}
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID          uint      `json:"id" example:"1"`
	DisplayName string    `json:"display_name" example:"Ada"`
	Email       string    `json:"email,omitempty" example:"ada@example.com"`
	CreatedAt   time.Time `json:"created_at"`
}

// ConversationResponse is a conversation as seen by one participant.
type ConversationResponse struct {
	ID             uint         `json:"id" example:"1"`
	ParticipantAID uint         `json:"participant_a_id" example:"1"`
	ParticipantBID uint         `json:"participant_b_id" example:"2"`
	Recipient      UserResponse `json:"recipient"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// ConversationDetailResponse adds the full message history.
type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

// MessageResponse is a stored message.
type MessageResponse struct {
	ID             uint      `json:"id" example:"10"`
	ConversationID uint      `json:"conversation_id" example:"1"`
	SenderID       uint      `json:"sender_id" example:"1"`
	Body           string    `json:"body" example:"hello there"`
	CreatedAt      time.Time `json:"created_at"`
}

// RefreshMessagesResponse answers a refresh_messages poll. LastMessageID is the
// checkpoint to send on the next poll and is omitted while nothing has been seen.
type RefreshMessagesResponse struct {
	ListResponse[MessageResponse]
	LastMessageID *uint `json:"last_message_id,omitempty" example:"12"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
}

func NewUserList(users []*user.User) ListResponse[UserResponse] {
	data := make([]UserResponse, 0, len(users))
	for _, u := range users {
		data = append(data, NewUserResponse(u))
	}
	return NewList(data)
}

func NewConversationResponse(view handlers.ConversationView) ConversationResponse {
	conv := view.Conversation
	return ConversationResponse{
		ID:             conv.ID,
		ParticipantAID: conv.ParticipantAID,
		ParticipantBID: conv.ParticipantBID,
		Recipient:      NewUserResponse(view.Recipient),
		CreatedAt:      conv.CreatedAt,
		UpdatedAt:      conv.UpdatedAt,
	}
}

func NewConversationList(views []handlers.ConversationView) ListResponse[ConversationResponse] {
	data := make([]ConversationResponse, 0, len(views))
	for _, view := range views {
		data = append(data, NewConversationResponse(view))
	}
	return NewList(data)
}

func NewConversationDetail(view handlers.ConversationView, msgs []*conversation.Message) ConversationDetailResponse {
	return ConversationDetailResponse{
		ConversationResponse: NewConversationResponse(view),
		Messages:             newMessages(msgs),
	}
}

func NewMessageResponse(msg *conversation.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		SenderID:       msg.SenderID,
		Body:           msg.Body,
		CreatedAt:      msg.CreatedAt,
	}
}

func NewMessageList(msgs []*conversation.Message) ListResponse[MessageResponse] {
	return NewList(newMessages(msgs))
}

// NewRefreshMessagesResponse advances the checkpoint to the newest returned
// message, or keeps the caller's checkpoint when nothing new arrived.
func NewRefreshMessagesResponse(msgs []*conversation.Message, lastSeen *uint) RefreshMessagesResponse {
	checkpoint := lastSeen
	if n := len(msgs); n > 0 {
		id := msgs[n-1].ID
		checkpoint = &id
	}
	return RefreshMessagesResponse{
		ListResponse:  NewMessageList(msgs),
		LastMessageID: checkpoint,
	}
}

func newMessages(msgs []*conversation.Message) []MessageResponse {
	data := make([]MessageResponse, 0, len(msgs))
	for _, msg := range msgs {
		data = append(data, NewMessageResponse(msg))
	}
	return data
}
