package routes

import (
	"github.com/anjiri1684/tutor_crm/handlers"
	"github.com/anjiri1684/tutor_crm/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())

	admin.Get("/students", handlers.AdminGetStudents)
	admin.Get("/teachers", handlers.AdminGetTeachers)
	admin.Get("/lessons", handlers.AdminGetLessons)
	admin.Put("/lessons", handlers.AdminUpdateLesson)
}
