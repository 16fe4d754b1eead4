package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/shop-api/internal/api/metrics"
	"github.com/99minutos/shop-api/internal/core/ports"
	"github.com/99minutos/shop-api/internal/security"
	"github.com/99minutos/shop-api/pkg/logger"
)

// Keys under which Session stores the caller's identity on the echo context.
const (
	ContextKeyUserID  = "user_id"
	ContextKeyRole    = "role"
	ContextKeyTokenID = "token_id"
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "token"

// Session validates the session cookie and injects the caller's identity into context.
// revocations may be nil, in which case logged-out tokens stay valid until they expire.
func Session(verifier ports.TokenVerifier, revocations ports.RevocationStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c.Request().Context())

			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return reject(c, log, "missing", nil)
			}

			claims, err := verifier.Verify(cookie.Value)
			if err != nil {
				reason := "invalid"
				if errors.Is(err, security.ErrTokenExpired) {
					reason = "expired"
				}
				return reject(c, log, reason, err)
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(c.Request().Context(), claims.TokenID)
				if err != nil {
					log.Error().Err(err).Str("token_id", claims.TokenID).Msg("revocation lookup failed")
					return echo.NewHTTPError(http.StatusServiceUnavailable, "session store unavailable")
				}
				if revoked {
					return reject(c, log, "revoked", nil)
				}
			}

			c.Set(ContextKeyUserID, claims.UserID)
			c.Set(ContextKeyRole, claims.Role)
			c.Set(ContextKeyTokenID, claims.TokenID)

			return next(c)
		}
	}
}

// reject answers 401 without telling the client which check failed.
func reject(c echo.Context, log zerolog.Logger, reason string, cause error) error {
	metrics.SessionRejectionsTotal.WithLabelValues(reason).Inc()
	log.Debug().
		Err(cause).
		Str("reason", reason).
		Str("path", c.Path()).
		Msg("session rejected")
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}
