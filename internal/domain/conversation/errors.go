package conversation

import "errors"

var (
	// ErrNotFound is wrapped when a conversation or message does not exist
	// (or, for messages, does not belong to the given conversation).
	ErrNotFound = errors.New("not found")
	// ErrInvalidParticipant is wrapped when a user tries to talk to themselves.
	ErrInvalidParticipant = errors.New("invalid participant")
	// ErrInvalidInput is wrapped when a message body is rejected.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotParticipant is wrapped when the caller is not part of the conversation.
	ErrNotParticipant = errors.New("not a conversation participant")
	// ErrNotSender is wrapped when someone other than the sender deletes a message.
	ErrNotSender = errors.New("not the message sender")
	// ErrHasMessages is wrapped when a participant change is attempted on a
	// conversation that already holds messages.
	ErrHasMessages = errors.New("conversation has messages")
)
