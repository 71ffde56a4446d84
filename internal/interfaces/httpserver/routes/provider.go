package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/interfaces/httpserver/handlers"
	v1 "jan-server/services/messaging-api/internal/interfaces/httpserver/routes/v1"
)

// Provider aggregates versioned routes.
type Provider struct {
	V1 *v1.Routes
}

// NewProvider composes route registrars for each API version.
func NewProvider(handlerProvider *handlers.Provider, log zerolog.Logger) *Provider {
	return &Provider{
		V1: v1.NewRoutes(handlerProvider, log),
	}
}

// Register attaches every API version to the engine behind the given middleware.
func (p *Provider) Register(engine *gin.Engine, middleware ...gin.HandlerFunc) {
	p.V1.Register(engine, middleware...)
}

// RouteProvider provides route registrars for wire.
var RouteProvider = wire.NewSet(NewProvider)
