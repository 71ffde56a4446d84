package user

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// Service describes the user operations the messaging surface needs.
type Service interface {
	// EnsureUser returns the user registered for the identity, creating it on first sight.
	EnsureUser(ctx context.Context, identity Identity) (*User, error)
	// UpdateProfile stores explicit profile values; later logins do not overwrite them.
	UpdateProfile(ctx context.Context, identity Identity, displayName, email string) (*User, error)
	GetUser(ctx context.Context, id uint) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService wires the user service with its repository.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "user-service").Logger(),
	}
}

func (s *service) EnsureUser(ctx context.Context, identity Identity) (*User, error) {
	subject := strings.TrimSpace(identity.Subject)
	if subject == "" {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeUnauthorized,
			"identity has no subject", nil, "user-missing-subject")
	}

	existing, err := s.repo.FindBySubject(ctx, subject)
	switch {
	case err == nil:
		return s.refreshProfile(ctx, existing, identity)
	case !errors.Is(err, ErrNotFound):
		return nil, err
	}

	u := &User{
		Subject:     subject,
		DisplayName: displayNameFor(identity),
		Email:       strings.TrimSpace(identity.Email),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		// A concurrent first request for the same subject may have won the insert.
		if winner, findErr := s.repo.FindBySubject(ctx, subject); findErr == nil {
			return winner, nil
		}
		return nil, err
	}

	s.log.Info().Uint("user_id", u.ID).Str("subject", subject).Msg("registered user")
	return u, nil
}

// refreshProfile only fills fields the user has not set yet: an empty email,
// or a display name still equal to the subject placeholder.
func (s *service) refreshProfile(ctx context.Context, u *User, identity Identity) (*User, error) {
	changed := false
	if name := strings.TrimSpace(identity.DisplayName); name != "" && (u.DisplayName == "" || u.DisplayName == u.Subject) {
		u.DisplayName = name
		changed = true
	}
	if email := strings.TrimSpace(identity.Email); email != "" && u.Email == "" {
		u.Email = email
		changed = true
	}
	if !changed {
		return u, nil
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, identity Identity, displayName, email string) (*User, error) {
	u, err := s.EnsureUser(ctx, identity)
	if err != nil {
		return nil, err
	}

	changed := false
	if name := strings.TrimSpace(displayName); name != "" && name != u.DisplayName {
		u.DisplayName = name
		changed = true
	}
	if email = strings.TrimSpace(email); email != "" && email != u.Email {
		u.Email = email
		changed = true
	}
	if !changed {
		return u, nil
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", u.ID).Msg("profile updated")
	return u, nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

func displayNameFor(identity Identity) string {
	if name := strings.TrimSpace(identity.DisplayName); name != "" {
		return name
	}
	if email := strings.TrimSpace(identity.Email); email != "" {
		if at := strings.Index(email, "@"); at > 0 {
			return email[:at]
		}
		return email
	}
	return strings.TrimSpace(identity.Subject)
}
