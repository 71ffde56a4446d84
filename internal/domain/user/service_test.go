package user_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/messaging-api/internal/domain/user"
	userrepo "jan-server/services/messaging-api/internal/infrastructure/repository/user"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

func TestEnsureUser_RegistersOnce(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())

	first, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "ada", first.DisplayName)

	again, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	all, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnsureUser_RefreshesProfile(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())

	created, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1"})
	require.NoError(t, err)
	assert.Equal(t, "sub-1", created.DisplayName)

	updated, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1", DisplayName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	stored, err := svc.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.DisplayName)
	assert.Equal(t, "ada@example.com", stored.Email)
}

func TestUpdateProfile_SurvivesLaterLogins(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())
	token := user.Identity{Subject: "sub-1", DisplayName: "jwt-name", Email: "jwt@example.com"}

	updated, err := svc.UpdateProfile(ctx, token, "Custom Name", "custom@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Custom Name", updated.DisplayName)
	assert.Equal(t, "custom@example.com", updated.Email)

	again, err := svc.EnsureUser(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, updated.ID, again.ID)
	assert.Equal(t, "Custom Name", again.DisplayName)
	assert.Equal(t, "custom@example.com", again.Email)

	stored, err := svc.GetUser(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Custom Name", stored.DisplayName)
}

func TestEnsureUser_KeepsStoredProfile(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())

	created, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1", DisplayName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	again, err := svc.EnsureUser(ctx, user.Identity{Subject: "sub-1", DisplayName: "Someone Else", Email: "else@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "Ada", again.DisplayName)
	assert.Equal(t, "ada@example.com", again.Email)
}

func TestEnsureUser_RejectsBlankSubject(t *testing.T) {
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())

	_, err := svc.EnsureUser(context.Background(), user.Identity{Subject: "   "})
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeUnauthorized))
}

func TestGetUser_NotFound(t *testing.T) {
	svc := user.NewService(userrepo.NewInMemoryRepository(), zerolog.Nop())

	_, err := svc.GetUser(context.Background(), 7)
	assert.ErrorIs(t, err, user.ErrNotFound)
}
