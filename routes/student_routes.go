package routes

import (
	"github.com/anjiri1684/tutor_crm/handlers"
	"github.com/anjiri1684/tutor_crm/middleware"
	"github.com/gofiber/fiber/v2"
)

func StudentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	students := api.Group("/students", middleware.Protected())
	students.Get("", handlers.GetMyStudents)
	students.Post("", handlers.CreateStudent)
	students.Put("", handlers.UpdateStudent)
	students.Delete("", handlers.DeleteStudent)
}
