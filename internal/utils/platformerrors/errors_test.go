package platformerrors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSentinel = errors.New("sentinel")

func TestNewError_CarriesRequestIDAndUnwraps(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	err := NewError(ctx, LayerDomain, ErrorTypeNotFound, "conversation not found", errSentinel, "conversation-not-found")

	assert.Equal(t, "req-123", err.RequestID)
	assert.ErrorIs(t, err, errSentinel)
	assert.Contains(t, err.Error(), "[domain][NOT_FOUND][conversation-not-found]")
}

func TestAsError_PreservesInnerType(t *testing.T) {
	inner := NewError(context.Background(), LayerRepository, ErrorTypeNotFound, "missing", errSentinel, "code-1")
	wrapped := AsError(context.Background(), LayerDomain, fmt.Errorf("lookup: %w", inner), "get conversation")

	assert.Equal(t, ErrorTypeNotFound, wrapped.Type)
	assert.Equal(t, "code-1", wrapped.Code)
	assert.ErrorIs(t, wrapped, errSentinel)

	plain := AsError(context.Background(), LayerDomain, errors.New("boom"), "do thing")
	assert.Equal(t, ErrorTypeInternal, plain.Type)
	assert.Nil(t, AsError(context.Background(), LayerDomain, nil, "nothing"))
}

func TestIsErrorType(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewError(context.Background(), LayerDomain, ErrorTypeForbidden, "no", nil, ""))

	assert.True(t, IsErrorType(err, ErrorTypeForbidden))
	assert.False(t, IsErrorType(err, ErrorTypeNotFound))
	assert.False(t, IsErrorType(errors.New("plain"), ErrorTypeForbidden))
	assert.False(t, IsErrorType(nil, ErrorTypeForbidden))
}

func TestErrorTypeToHTTPStatus(t *testing.T) {
	tests := []struct {
		errorType ErrorType
		expected  int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeConflict, http.StatusConflict},
		{ErrorTypeUnauthorized, http.StatusUnauthorized},
		{ErrorTypeForbidden, http.StatusForbidden},
		{ErrorTypeDatabaseError, http.StatusInternalServerError},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.errorType), func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorTypeToHTTPStatus(tt.errorType))
		})
	}
}

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{
			name:       "platform not found",
			err:        NewError(context.Background(), LayerDomain, ErrorTypeNotFound, "conversation not found", nil, "c-404"),
			wantStatus: http.StatusNotFound,
			wantType:   "not_found_error",
		},
		{
			name:       "platform validation",
			err:        NewError(context.Background(), LayerDomain, ErrorTypeValidation, "body is empty", nil, "m-400"),
			wantStatus: http.StatusBadRequest,
			wantType:   "validation_error",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantType:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/v1/conversations/1", nil)

			WriteError(c, tt.err, zerolog.Nop())

			assert.Equal(t, tt.wantStatus, w.Code)
			var body HTTPErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantType, body.Error.Type)
		})
	}
}
