package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/siaga-go-api/internal/repository"
	"github.com/noah-isme/siaga-go-api/internal/utils"
)

// Locals keys populated by JWTProtected for downstream handlers.
const (
	LocalUserID   = "user_id"
	LocalUserRole = "user_role"
	LocalUser     = "current_user"
)

// JWTProtected validates bearer tokens and resolves the subject username to a
// live account. Tokens whose subject no longer exists are rejected, so
// deleting an account revokes its outstanding tokens.
func JWTProtected(secret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authorization := c.Get("Authorization")
		if authorization == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "authorization header missing")
		}

		const bearer = "Bearer "
		if !strings.HasPrefix(strings.ToLower(authorization), strings.ToLower(bearer)) {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid authorization header")
		}

		tokenString := strings.TrimSpace(authorization[len(bearer):])
		if tokenString == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token")
		}

		username, err := token.Claims.GetSubject()
		if err != nil || strings.TrimSpace(username) == "" {
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid token claims")
		}

		user, err := users.GetByUsername(c.UserContext(), username)
		if err != nil {
			return utils.SendError(c, fiber.StatusUnauthorized, "could not validate credentials")
		}

		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUserRole, user.Role)
		c.Locals(LocalUser, user)

		return c.Next()
	}
}
