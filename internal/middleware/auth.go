package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/config"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/models"
	"github.com/ahmetcoskunkizilkaya/stresscast/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenLocal = "user"
	userLocal  = "current_user"
)

const unauthorizedDetail = "Could not validate credentials"

// UserLookup resolves the user named by a token's sub claim.
type UserLookup interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Detail: unauthorizedDetail,
	})
}

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		ContextKey: tokenLocal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}

// CurrentUser runs after JWTProtected. A valid token whose user no longer
// exists is rejected with 401. Lookup failures are internal errors.
func CurrentUser(users UserLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := userIDFromToken(c)
		if err != nil {
			return unauthorized(c)
		}

		user, err := users.UserByID(c.UserContext(), id)
		if errors.Is(err, services.ErrUserNotFound) {
			return unauthorized(c)
		}
		if err != nil {
			slog.ErrorContext(c.UserContext(), "failed to load current user",
				"action", "authenticate", "user_id", strconv.FormatUint(uint64(id), 10), "error", err)
			return fiber.ErrInternalServerError
		}

		c.Locals(userLocal, user)
		return c.Next()
	}
}

// GetUser returns the user stored by CurrentUser.
func GetUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(userLocal).(*models.User)
	return user, ok && user != nil
}

func userIDFromToken(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals(tokenLocal).(*jwt.Token)
	if !ok {
		return 0, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, errors.New("missing sub claim")
	}

	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, errors.New("invalid sub claim")
	}
	return uint(id), nil
}
