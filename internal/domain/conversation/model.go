package conversation

import "time"

// Conversation is a private thread between exactly two users.
// Participant order only matters for field naming; the relation is symmetric.
type Conversation struct {
	ID             uint      `json:"id"`
	ParticipantAID uint      `json:"participant_a_id"`
	ParticipantBID uint      `json:"participant_b_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasParticipant reports whether userID is one of the two participants.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.ParticipantAID == userID || c.ParticipantBID == userID
}

// Recipient returns the participant that is not viewer.
// ok is false when viewer does not take part in the conversation.
func (c *Conversation) Recipient(viewer uint) (recipient uint, ok bool) {
	switch viewer {
	case c.ParticipantAID:
		return c.ParticipantBID, true
	case c.ParticipantBID:
		return c.ParticipantAID, true
	default:
		return 0, false
	}
}

// Message is immutable once stored. ID grows monotonically and breaks ties
// between messages created within the same timestamp.
type Message struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	SenderID       uint      `json:"sender_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// After reports whether m is ordered after other within a conversation.
func (m *Message) After(other *Message) bool {
	if !m.CreatedAt.Equal(other.CreatedAt) {
		return m.CreatedAt.After(other.CreatedAt)
	}
	return m.ID > other.ID
}
