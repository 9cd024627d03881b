package auth

import (
	"alumni-chat/errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Request locals set by FiberMiddleware. They stay readable from a
// websocket.Conn after the upgrade.
const (
	LocalsParticipantID = "participant_id"
	LocalsClaims        = "claims"
)

// FiberMiddleware rejects requests without a valid bearer token and stores
// the caller identity in the request locals. Browsers cannot set headers on
// a WebSocket upgrade, so the token may also come from the access_token query
// parameter.
func FiberMiddleware(issuer *TokenIssuer, log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			raw = c.Query("access_token")
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization token is missing")
		}

		claims, err := issuer.ValidateToken(raw)
		if err != nil {
			log.Debug("Rejected token", "path", c.Path(), "error", err)
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(LocalsParticipantID, claims.UserID)
		c.Locals(LocalsClaims, claims)
		return c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// ParticipantID returns the authenticated participant of the request.
func ParticipantID(c *fiber.Ctx) (string, error) {
	id, ok := c.Locals(LocalsParticipantID).(string)
	if !ok || id == "" {
		return "", errors.ErrInvalidToken
	}
	return id, nil
}

// Claims returns the full token claims of the request.
func Claims(c *fiber.Ctx) (*CustomClaims, error) {
	claims, ok := c.Locals(LocalsClaims).(*CustomClaims)
	if !ok {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}
