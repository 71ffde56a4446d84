package user

import "context"

// Repository exposes data access for User entities.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindBySubject(ctx context.Context, subject string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
