package user

import (
	"errors"
	"time"
)

// ErrNotFound is wrapped by lookups that find no user.
var ErrNotFound = errors.New("user not found")

// User is a messaging participant. Credentials belong to the identity provider;
// the service only keeps the provider subject.
type User struct {
	ID          uint      `json:"id"`
	Subject     string    `json:"-"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Identity is the verified caller identity handed over by the auth layer.
type Identity struct {
	Subject     string
	DisplayName string
	Email       string
}
