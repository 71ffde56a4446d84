package auth

import (
	"context"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"jan-server/services/messaging-api/internal/config"
	"jan-server/services/messaging-api/internal/domain/user"
	"jan-server/services/messaging-api/internal/utils/platformerrors"
)

const (
	// IdentityKey is the gin context key holding the verified user.Identity.
	IdentityKey = "auth_identity"
	// DevUserHeader carries the caller subject when auth is disabled.
	DevUserHeader = "X-User-ID"
)

// Validator validates JWTs using JWKS. When auth is disabled it trusts the
// DevUserHeader instead, which is only suitable for local development.
type Validator struct {
	cfg     *config.Config
	log     zerolog.Logger
	keyFunc jwt.Keyfunc
}

// NewValidator initializes JWKS fetching when auth is enabled.
func NewValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Validator, error) {
	log = log.With().Str("component", "auth").Logger()
	if !cfg.AuthEnabled {
		log.Warn().Str("header", DevUserHeader).Msg("auth disabled, trusting identity header")
		return &Validator{cfg: cfg, log: log}, nil
	}

	options := keyfunc.Options{
		Ctx:               ctx,
		RefreshInterval:   time.Hour,
		RefreshUnknownKID: true,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Msg("jwks refresh error")
		},
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, options)
	if err != nil {
		return nil, err
	}

	return &Validator{
		cfg:     cfg,
		log:     log,
		keyFunc: jwks.Keyfunc,
	}, nil
}

// Middleware resolves the caller identity and aborts with 401 when there is none.
func (v *Validator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := v.identify(c)
		if !ok {
			return
		}
		c.Set(IdentityKey, identity)
		c.Next()
	}
}

func (v *Validator) identify(c *gin.Context) (user.Identity, bool) {
	if !v.cfg.AuthEnabled {
		subject := strings.TrimSpace(c.GetHeader(DevUserHeader))
		if subject == "" {
			platformerrors.WriteUnauthorized(c, "missing "+DevUserHeader+" header")
			return user.Identity{}, false
		}
		return user.Identity{Subject: subject}, true
	}

	tokenString := bearerToken(c.GetHeader("Authorization"))
	if tokenString == "" {
		platformerrors.WriteUnauthorized(c, "missing bearer token")
		return user.Identity{}, false
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, v.keyFunc,
		jwt.WithAudience(v.cfg.AuthAudience),
		jwt.WithIssuer(v.cfg.AuthIssuer),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	)
	if err != nil || !token.Valid {
		v.log.Debug().Err(err).Msg("jwt validation failed")
		platformerrors.WriteUnauthorized(c, "invalid token")
		return user.Identity{}, false
	}

	subject, _ := claims.GetSubject()
	if strings.TrimSpace(subject) == "" {
		platformerrors.WriteUnauthorized(c, "token has no subject")
		return user.Identity{}, false
	}

	return user.Identity{
		Subject:     subject,
		DisplayName: firstClaim(claims, "name", "preferred_username"),
		Email:       firstClaim(claims, "email"),
	}, true
}

// IdentityFrom returns the identity stored by Middleware.
func IdentityFrom(c *gin.Context) (user.Identity, bool) {
	value, exists := c.Get(IdentityKey)
	if !exists {
		return user.Identity{}, false
	}
	identity, ok := value.(user.Identity)
	return identity, ok
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, key := range keys {
		if value, ok := claims[key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
