package conversation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConversation_Recipient(t *testing.T) {
	conv := &Conversation{ID: 1, ParticipantAID: 10, ParticipantBID: 20}

	tests := []struct {
		name   string
		viewer uint
		want   uint
		ok     bool
	}{
		{"participant a sees b", 10, 20, true},
		{"participant b sees a", 20, 10, true},
		{"outsider", 30, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := conv.Recipient(tt.viewer)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ok, conv.HasParticipant(tt.viewer))
		})
	}
}

func TestMessage_After(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	earlier := &Message{ID: 5, CreatedAt: t0}
	later := &Message{ID: 3, CreatedAt: t0.Add(time.Second)}
	tie := &Message{ID: 6, CreatedAt: t0}

	assert.True(t, later.After(earlier), "timestamp wins over id")
	assert.False(t, earlier.After(later))
	assert.True(t, tie.After(earlier), "id breaks timestamp ties")
	assert.False(t, earlier.After(tie))
	assert.False(t, earlier.After(earlier))
}
