package entities

import (
	"time"

	"jan-server/services/messaging-api/internal/domain/user"
)

// User is the persisted representation of a messaging user.
type User struct {
	ID          uint      `gorm:"primaryKey"`
	Subject     string    `gorm:"size:255;not null;uniqueIndex"`
	DisplayName string    `gorm:"size:255;not null"`
	Email       string    `gorm:"size:255;not null;default:''"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

// NewSchemaUser converts a domain user into its schema form.
func NewSchemaUser(u *user.User) *User {
	return &User{
		ID:          u.ID,
		Subject:     u.Subject,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		CreatedAt:   u.CreatedAt,
	}
}

// EtoD converts the schema user into the domain model.
func (e *User) EtoD() *user.User {
	return &user.User{
		ID:          e.ID,
		Subject:     e.Subject,
		DisplayName: e.DisplayName,
		Email:       e.Email,
		CreatedAt:   e.CreatedAt,
	}
}
