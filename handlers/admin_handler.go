package handlers

import (
	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/anjiri1684/tutor_crm/services"
	"github.com/gofiber/fiber/v2"
)

type TeacherResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type AdminUpdateLessonRequest struct {
	UpdateLessonRequest
	TeacherID *string `json:"teacher_id"`
}

// AdminGetStudents returns every teacher's students. The role check happens
// in the AdminRequired middleware, so no owner filter is applied here.
func AdminGetStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.DB.Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(students)
}

func AdminGetTeachers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Where("role = ?", models.RoleTeacher).Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch teachers"})
	}

	teachers := make([]TeacherResponse, 0, len(users))
	for _, u := range users {
		teachers = append(teachers, TeacherResponse{ID: u.ID, FullName: u.FullName, Email: u.Email})
	}
	return c.JSON(teachers)
}

func AdminGetLessons(c *fiber.Ctx) error {
	var lessons []models.Lesson
	if err := database.DB.Preload("Student").Preload("Teacher").
		Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	services.SortLessonsByTimeSlot(lessons)

	filtered := services.FilterLessons(lessons, services.LessonFilters{
		Search:          c.Query("search"),
		TeacherID:       c.Query("teacher_id"),
		StudentID:       c.Query("student_id"),
		Types:           services.ParseSet(c.Query("type")),
		Statuses:        services.ParseSet(c.Query("status")),
		PaymentStatuses: services.ParseSet(c.Query("payment_status")),
	})

	if page := c.QueryInt("page"); page > 0 {
		perPage := c.QueryInt("per_page", services.LessonsPerPage)
		filtered = services.Paginate(filtered, page, perPage)
	}

	return c.JSON(filtered)
}

// AdminUpdateLesson updates a lesson scoped by id alone, so an admin can move
// a lesson between teachers or point it at any student. No ownership check
// runs on this path.
func AdminUpdateLesson(c *fiber.Ctx) error {
	var req AdminUpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	updates := lessonUpdates(req.UpdateLessonRequest)
	if req.TeacherID != nil && *req.TeacherID != "" {
		updates["teacher_id"] = *req.TeacherID
	}

	result := database.DB.Model(&models.Lesson{}).
		Where("id = ?", req.ID).
		Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var lesson models.Lesson
	if err := database.DB.Preload("Student").Preload("Teacher").
		First(&lesson, "id = ?", req.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch updated lesson"})
	}
	return c.JSON(lesson)
}
