package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/middlewares"
	"jan-server/services/messaging-api/internal/interfaces/httpserver/requests"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
	log      zerolog.Logger
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider, log zerolog.Logger) *Routes {
	return &Routes{
		handlers: handlerProvider,
		log:      log.With().Str("component", "http-v1").Logger(),
	}
}

// Register attaches all v1 routes under the /v1 prefix. The middleware chain
// must authenticate the caller and load the current user.
func (r *Routes) Register(engine *gin.Engine, middleware ...gin.HandlerFunc) {
	group := engine.Group("/v1", middleware...)
	registerUserRoutes(group, r.handlers.User, r.log)
	registerConversationRoutes(group, r.handlers.Conversation, r.handlers.Message, r.log)
	registerMessageRoutes(group, r.handlers.Message, r.log)
}

func currentUser(c *gin.Context) (*user.User, bool) {
	current, ok := middlewares.CurrentUserFrom(c)
	if !ok {
		platformerrors.WriteUnauthorized(c, "unauthenticated request")
	}
	return current, ok
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		platformerrors.WriteValidationError(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// optionalQueryID parses an optional positive id query parameter.
// A missing or empty parameter yields nil.
func optionalQueryID(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		platformerrors.WriteValidationError(c, "invalid "+name)
		return nil, false
	}
	value := uint(id)
	return &value, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		platformerrors.WriteValidationError(c, "invalid request body: "+err.Error())
		return false
	}
	if err := requests.Validate(req); err != nil {
		platformerrors.WriteValidationError(c, err.Error())
		return false
	}
	return true
}
