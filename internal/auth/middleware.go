package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const userKey = "brawler_id"

// Middleware checks the Bearer token and stores the brawler id in the
// request locals.
func Middleware(issuer *TokenIssuer) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		h := ctx.Get(fiber.HeaderAuthorization)

		if !strings.HasPrefix(h, "Bearer ") {
			return ctx.SendStatus(fiber.StatusUnauthorized)
		}

		id, err := issuer.Verify(strings.TrimPrefix(h, "Bearer "))

		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}

		ctx.Locals(userKey, id)

		return ctx.Next()
	}
}

// UserID returns the authenticated brawler id, zero if the request was
// not authenticated.
func UserID(ctx *fiber.Ctx) uint {
	if id, ok := ctx.Locals(userKey).(uint); ok {
		return id
	}

	return 0
}
