package handlers

import (
	"log"

	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/gofiber/fiber/v2"
)

// identityEventPayload is the shape the identity provider posts on sign-up.
type identityEventPayload struct {
	Data struct {
		ID             string `json:"id"`
		EmailAddresses []struct {
			EmailAddress string `json:"email_address"`
		} `json:"email_addresses"`
	} `json:"data"`
}

// IdentityWebhook provisions a user row for every new provider account.
// Accounts start out as teachers; the admin role is assigned out of band.
func IdentityWebhook(c *fiber.Ctx) error {
	var payload identityEventPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}
	if payload.Data.ID == "" || len(payload.Data.EmailAddresses) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request payload"})
	}

	user := models.User{
		ID:    payload.Data.ID,
		Email: payload.Data.EmailAddresses[0].EmailAddress,
		Role:  models.RoleTeacher,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("🔥 Failed to provision user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to provision user"})
	}

	log.Printf("✅ User provisioned: %s", user.Email)
	return c.JSON(fiber.Map{"success": true})
}
