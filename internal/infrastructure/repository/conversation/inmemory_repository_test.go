package conversation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "jan-server/services/messaging-api/internal/domain/conversation"
	repo "jan-server/services/messaging-api/internal/infrastructure/repository/conversation"
)

func TestInMemoryStore_MatchesOrderingContract(t *testing.T) {
	ctx := context.Background()
	frozen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store := repo.NewInMemoryStore(func() time.Time { return frozen })
	conversations := store.Conversations()
	messages := store.Messages()

	conv := &domain.Conversation{ParticipantAID: 1, ParticipantBID: 2}
	require.NoError(t, conversations.Create(ctx, conv))

	// Every message shares the frozen timestamp, so ids decide the order.
	var created []*domain.Message
	for _, body := range []string{"a", "b", "c"} {
		m := &domain.Message{ConversationID: conv.ID, SenderID: 1, Body: body}
		require.NoError(t, messages.Create(ctx, m))
		created = append(created, m)
	}

	all, err := messages.ListByConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, bodies(all))

	after, err := messages.ListAfter(ctx, conv.ID, created[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, bodies(after))
}

func TestInMemoryStore_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := repo.NewInMemoryStore(nil)
	conversations := store.Conversations()
	messages := store.Messages()

	conv := &domain.Conversation{ParticipantAID: 1, ParticipantBID: 2}
	require.NoError(t, conversations.Create(ctx, conv))
	msg := &domain.Message{ConversationID: conv.ID, SenderID: 2, Body: "hello"}
	require.NoError(t, messages.Create(ctx, msg))

	require.NoError(t, conversations.Delete(ctx, conv.ID))

	_, err := conversations.FindByID(ctx, conv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = messages.FindByID(ctx, conv.ID, msg.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = messages.Create(ctx, &domain.Message{ConversationID: conv.ID, SenderID: 1, Body: "late"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
