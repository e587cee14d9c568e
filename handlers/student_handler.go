package handlers

import (
	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/middleware"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/anjiri1684/tutor_crm/services"
	"github.com/gofiber/fiber/v2"
)

type CreateStudentRequest struct {
	FullName    string  `json:"full_name" validate:"required"`
	Username    string  `json:"username" validate:"required"`
	Level       string  `json:"level" validate:"required"`
	Description *string `json:"description"`
	IsRegular   bool    `json:"isregular"`
}

type UpdateStudentRequest struct {
	ID          string  `json:"id" validate:"required,uuid"`
	FullName    string  `json:"full_name" validate:"required"`
	Username    string  `json:"username"`
	Level       string  `json:"level" validate:"required"`
	Description *string `json:"description"`
	IsRegular   bool    `json:"isregular"`
}

type DeleteRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

func GetMyStudents(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var students []models.Student
	if err := database.DB.Where("teacher_id = ?", teacherID).Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	filtered := services.FilterStudents(students, services.StudentFilters{
		Search:  c.Query("search"),
		Regular: c.Query("regular"),
	})

	if page := c.QueryInt("page"); page > 0 {
		perPage := c.QueryInt("per_page", services.StudentsPerPage)
		filtered = services.Paginate(filtered, page, perPage)
	}

	return c.JSON(filtered)
}

func CreateStudent(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var req CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	// teacher_id always comes from the verified token, never from the body.
	student := models.Student{
		TeacherID:   teacherID,
		FullName:    req.FullName,
		Username:    req.Username,
		Level:       req.Level,
		Description: req.Description,
		IsRegular:   req.IsRegular,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(fiber.StatusCreated).JSON(student)
}

func UpdateStudent(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	updates := map[string]interface{}{
		"full_name":   req.FullName,
		"username":    req.Username,
		"level":       req.Level,
		"description": req.Description,
		"isregular":   req.IsRegular,
	}

	// Scoping by owner means a row belonging to another teacher looks exactly
	// like a missing row.
	result := database.DB.Model(&models.Student{}).
		Where("id = ? AND teacher_id = ?", req.ID, teacherID).
		Updates(updates)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update student"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Student not found"})
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", req.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch updated student"})
	}
	return c.JSON(student)
}

// DeleteStudent is idempotent: deleting an id that does not exist, or that
// belongs to another teacher, still reports success.
func DeleteStudent(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var req DeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	if err := database.DB.
		Where("id = ? AND teacher_id = ?", req.ID, teacherID).
		Delete(&models.Student{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Student deleted successfully"})
}
