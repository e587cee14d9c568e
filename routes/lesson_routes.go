package routes

import (
	"github.com/anjiri1684/tutor_crm/handlers"
	"github.com/anjiri1684/tutor_crm/middleware"
	"github.com/gofiber/fiber/v2"
)

func LessonRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	lessons := api.Group("/lessons", middleware.Protected())
	lessons.Get("", handlers.GetMyLessons)
	lessons.Post("", handlers.CreateLesson)
	lessons.Put("", handlers.UpdateLesson)
	lessons.Delete("", handlers.DeleteLesson)
}
