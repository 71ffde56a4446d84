package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr string
	}{
		{"valid create", CreateConversationRequest{RecipientID: 2}, ""},
		{"missing recipient", CreateConversationRequest{}, "recipient_id is required"},
		{"valid message", PostMessageRequest{Body: "hi"}, ""},
		{"empty message", PostMessageRequest{}, "body is required"},
		{"empty profile", UpdateProfileRequest{}, ""},
		{"bad email", UpdateProfileRequest{Email: "nope"}, "email must be a valid email address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
