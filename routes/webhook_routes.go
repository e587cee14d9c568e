package routes

import (
	"github.com/anjiri1684/tutor_crm/handlers"
	"github.com/gofiber/fiber/v2"
)

// WebhookRoutes are called by the identity provider, not by signed-in users,
// so they stay outside the JWT middleware.
func WebhookRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	webhooks := api.Group("/webhooks")
	webhooks.Post("/identity", handlers.IdentityWebhook)
}
