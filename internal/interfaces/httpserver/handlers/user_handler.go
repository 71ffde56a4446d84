package handlers

import (
	"context"

	"jan-server/services/messaging-api/internal/domain/user"
)

// UserHandler invokes user use cases.
type UserHandler struct {
	service user.Service
}

// NewUserHandler wires dependencies for user routes.
func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// EnsureUser resolves the caller identity to a registered user.
func (h *UserHandler) EnsureUser(ctx context.Context, identity user.Identity) (*user.User, error) {
	return h.service.EnsureUser(ctx, identity)
}

// ListUsers returns the users a conversation can be started with.
func (h *UserHandler) ListUsers(ctx context.Context) ([]*user.User, error) {
	return h.service.ListUsers(ctx)
}

// UpdateProfile stores the caller's explicit profile values.
func (h *UserHandler) UpdateProfile(ctx context.Context, identity user.Identity, displayName, email string) (*user.User, error) {
	return h.service.UpdateProfile(ctx, identity, displayName, email)
}
