package conversation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/messaging-api/internal/domain/conversation"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

func TestTwoUserScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")

	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{alice, bob}, []uint{conv.ParticipantAID, conv.ParticipantBID})

	msg1, err := f.messages.PostMessage(ctx, conv.ID, alice, "hi")
	require.NoError(t, err)
	msg2, err := f.messages.PostMessage(ctx, conv.ID, bob, "hello")
	require.NoError(t, err)

	none, err := f.messages.FetchNewMessages(ctx, conv.ID, bob, nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	fresh, err := f.messages.FetchNewMessages(ctx, conv.ID, alice, &msg1.ID)
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, msg2.ID, fresh[0].ID)

	require.NoError(t, f.conversations.DeleteConversation(ctx, conv.ID, alice))

	_, err = f.messages.ListAllMessages(ctx, conv.ID, alice)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestListAllMessages_CreationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	var posted []uint
	for i, body := range []string{"one", "two", "three", "four", "five"} {
		sender := alice
		if i%2 == 1 {
			sender = bob
		}
		msg, err := f.messages.PostMessage(ctx, conv.ID, sender, body)
		require.NoError(t, err)
		posted = append(posted, msg.ID)
	}

	all, err := f.messages.ListAllMessages(ctx, conv.ID, bob)
	require.NoError(t, err)
	assert.Equal(t, posted, messageIDs(all))
}

func TestFetchNewMessages_EveryCheckpoint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	var posted []*conversation.Message
	for _, body := range []string{"a", "b", "c", "d"} {
		msg, err := f.messages.PostMessage(ctx, conv.ID, alice, body)
		require.NoError(t, err)
		posted = append(posted, msg)
	}

	for k, checkpoint := range posted {
		got, err := f.messages.FetchNewMessages(ctx, conv.ID, bob, &checkpoint.ID)
		require.NoError(t, err)

		var want []uint
		for _, m := range posted[k+1:] {
			want = append(want, m.ID)
		}
		assert.Equal(t, want, nilIfEmpty(messageIDs(got)), "checkpoint %d", checkpoint.ID)
		for _, m := range got {
			assert.True(t, m.CreatedAt.After(checkpoint.CreatedAt))
		}
	}
}

func TestFetchNewMessages_ForeignCheckpoint(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	carol := f.register(t, "carol")

	ab, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)
	ac, err := f.conversations.CreateConversation(ctx, alice, carol)
	require.NoError(t, err)

	other, err := f.messages.PostMessage(ctx, ac.ID, carol, "elsewhere")
	require.NoError(t, err)

	_, err = f.messages.FetchNewMessages(ctx, ab.ID, alice, &other.ID)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))

	missing := uint(9999)
	_, err = f.messages.FetchNewMessages(ctx, ab.ID, alice, &missing)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func TestFetchNewMessages_RequiresParticipant(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	mallory := f.register(t, "mallory")
	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	_, err = f.messages.FetchNewMessages(ctx, conv.ID, mallory, nil)
	assert.ErrorIs(t, err, conversation.ErrNotParticipant)
}

func TestPostMessage_Validation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	mallory := f.register(t, "mallory")
	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	tests := []struct {
		name    string
		sender  uint
		body    string
		wantErr error
	}{
		{"empty body", alice, "", conversation.ErrInvalidInput},
		{"whitespace body", alice, "  \n\t ", conversation.ErrInvalidInput},
		{"too long", alice, strings.Repeat("x", 21), conversation.ErrInvalidInput},
		{"non participant", mallory, "let me in", conversation.ErrNotParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.messages.PostMessage(ctx, conv.ID, tt.sender, tt.body)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	msg, err := f.messages.PostMessage(ctx, conv.ID, bob, "  trimmed  ")
	require.NoError(t, err)
	assert.Equal(t, "trimmed", msg.Body)
	assert.Equal(t, bob, msg.SenderID)
	assert.NotZero(t, msg.ID)
	assert.False(t, msg.CreatedAt.IsZero())
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	conv, err := f.conversations.CreateConversation(ctx, alice, bob)
	require.NoError(t, err)

	msg, err := f.messages.PostMessage(ctx, conv.ID, alice, "oops")
	require.NoError(t, err)

	err = f.messages.DeleteMessage(ctx, conv.ID, msg.ID, bob)
	assert.ErrorIs(t, err, conversation.ErrNotSender)

	require.NoError(t, f.messages.DeleteMessage(ctx, conv.ID, msg.ID, alice))

	all, err := f.messages.ListAllMessages(ctx, conv.ID, alice)
	require.NoError(t, err)
	assert.Empty(t, all)

	err = f.messages.DeleteMessage(ctx, conv.ID, msg.ID, alice)
	assert.ErrorIs(t, err, conversation.ErrNotFound)
}

func messageIDs(msgs []*conversation.Message) []uint {
	ids := make([]uint, len(msgs))
	for i, m := range msgs {
		ids[i] = m.ID
	}
	return ids
}

func nilIfEmpty(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	return ids
}
