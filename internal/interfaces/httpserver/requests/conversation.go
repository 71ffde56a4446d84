package requests

// CreateConversationRequest starts a conversation with another user.
type CreateConversationRequest struct {
	RecipientID uint `json:"recipient_id" validate:"required,gt=0" example:"2"`
}

// UpdateConversationRequest changes the conversation's recipient.
type UpdateConversationRequest struct {
	RecipientID uint `json:"recipient_id" validate:"required,gt=0" example:"3"`
}

// PostMessageRequest carries a new message body.
type PostMessageRequest struct {
	Body string `json:"body" validate:"required" example:"hello there"`
}
