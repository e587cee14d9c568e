package middleware

import (
	config "github.com/anjiri1684/tutor_crm/configs"
	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.Config("JWT_SECRET")),
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"error": "Missing or malformed JWT"})
	}
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or expired JWT"})
}

// CallerID returns the authenticated user's stable identifier from the
// provider-issued token. Only valid behind Protected().
func CallerID(c *fiber.Ctx) string {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	return sub
}

// AdminRequired resolves the caller's role from the users table instead of
// trusting the role claim in the token, so a stale or forged claim never
// grants admin access.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := database.DB.Where("id = ?", CallerID(c)).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unknown user",
			})
		}

		if user.Role != models.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Forbidden: Admin access required",
			})
		}
		return c.Next()
	}
}
