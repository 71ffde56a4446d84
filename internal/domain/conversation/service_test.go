package conversation_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/domain/user"
	convrepo "jan-server/services/messaging-api/internal/infrastructure/repository/conversation"
	userrepo "jan-server/services/messaging-api/internal/infrastructure/repository/user"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

type fixture struct {
	users         user.Service
	conversations conversation.Service
	messages      conversation.MessageService
	clock         *stepClock
}

// stepClock advances by one millisecond per call so messages get distinct timestamps.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zerolog.Nop()
	clock := &stepClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	store := convrepo.NewInMemoryStore(clock.Now)

	users := user.NewService(userrepo.NewInMemoryRepository(), log)
	conversations := conversation.NewService(store.Conversations(), users, log)
	messages := conversation.NewMessageService(conversations, store.Messages(), conversation.MessageConfig{MaxLength: 20}, log)

	return &fixture{users: users, conversations: conversations, messages: messages, clock: clock}
}

func (f *fixture) register(t *testing.T, subject string) uint {
	t.Helper()
	u, err := f.users.EnsureUser(context.Background(), user.Identity{Subject: subject})
	require.NoError(t, err)
	return u.ID
}

func TestCreateConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	assert.Equal(t, alice, conv.ParticipantAID)
	assert.Equal(t, bob, conv.ParticipantBID)

	duplicate, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err, "pairs are not deduplicated")
	assert.NotEqual(t, conv.ID, duplicate.ID)
}

func TestCreateConversation_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")

	_, err := f.conversations.CreateConversation(ctx, alice, alice)
	assert.ErrorIs(t, err, conversation.ErrInvalidParticipant)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))

	_, err = f.conversations.CreateConversation(ctx, alice, 0)
	assert.ErrorIs(t, err, conversation.ErrInvalidParticipant)

	_, err = f.conversations.CreateConversation(ctx, alice, 404)
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}

func TestListConversations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")

	ab, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	cb, err := f.conversations.CreateConversation(ctx, carol, bob)
	require.NoError(t, err)

	forBob, err := f.conversations.ListConversations(ctx, bob)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{ab.ID, cb.ID}, conversationIDs(forBob))

	forAlice, err := f.conversations.ListConversations(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []uint{ab.ID}, conversationIDs(forAlice))
}

func TestRecipientOf(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	mallory := f.register(t, "mallory")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	recipient, err := f.conversations.RecipientOf(ctx, conv, alice)
	require.NoError(t, err)
	assert.Equal(t, bob, recipient)

	recipient, err = f.conversations.RecipientOf(ctx, conv, bob)
	require.NoError(t, err)
	assert.Equal(t, alice, recipient)

	_, err = f.conversations.RecipientOf(ctx, conv, mallory)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden))
}

func TestGetConversation_RequiresParticipant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	mallory := f.register(t, "mallory")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	_, err = f.conversations.GetConversation(ctx, conv.ID, mallory)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)

	_, err = f.conversations.GetConversation(ctx, conv.ID+100, alice)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestUpdateConversation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	updated, err := f.conversations.UpdateConversation(ctx, conv.ID, bob, carol)
	require.NoError(t, err)
	assert.Equal(t, carol, updated.ParticipantAID)
	assert.Equal(t, bob, updated.ParticipantBID)

	_, err = f.conversations.UpdateConversation(ctx, conv.ID, bob, bob)
	assert.ErrorIs(t, err, conversation.ErrInvalidParticipant)

	_, err = f.conversations.UpdateConversation(ctx, conv.ID, alice, bob)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)
}

func TestUpdateConversation_RejectedOnceMessagesExist(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	_, err = f.messages.PostMessage(ctx, conv.ID, alice, "private to bob")
	require.NoError(t, err)

	_, err = f.conversations.UpdateConversation(ctx, conv.ID, bob, carol)
	assert.ErrorIs(t, err, conversation.ErrHasMessages)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict))

	// Both original participants keep their history; carol never gains access.
	_, err = f.messages.ListAllMessages(ctx, conv.ID, carol)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)
	msgs, err := f.messages.ListAllMessages(ctx, conv.ID, alice)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, alice, msgs[0].SenderID)
}

func TestDeleteConversation_RequiresParticipant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	mallory := f.register(t, "mallory")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	err = f.conversations.DeleteConversation(ctx, conv.ID, mallory)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)

	require.NoError(t, f.conversations.DeleteConversation(ctx, conv.ID, bob))
	_, err = f.conversations.GetConversation(ctx, conv.ID, alice)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func conversationIDs(convs []*conversation.Conversation) []uint {
	ids := make([]uint, len(convs))
	for i, c := range convs {
		ids[i] = c.ID
	}
	return ids
}
