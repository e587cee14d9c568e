package handlers

import (
	"errors"
	"time"

	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/middleware"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/anjiri1684/tutor_crm/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateLessonRequest keeps the camelCase timeSlot/paymentStatus keys the
// scheduling UI has always sent on create; updates use snake_case.
type CreateLessonRequest struct {
	StudentID     string     `json:"student_id" validate:"required,uuid"`
	Type          *string    `json:"type"`
	LessonLink    *string    `json:"lessonlink"`
	Duration      *int       `json:"duration"`
	TimeSlot      *time.Time `json:"timeSlot"`
	Status        *string    `json:"status" validate:"omitempty,oneof=Upcoming Cancelled Completed"`
	PaymentStatus *string    `json:"paymentStatus" validate:"omitempty,oneof='Paid' 'Not Paid'"`
}

type UpdateLessonRequest struct {
	ID                    string     `json:"id" validate:"required,uuid"`
	StudentID             *string    `json:"student_id" validate:"omitempty,uuid"`
	Type                  *string    `json:"type"`
	LessonLink            *string    `json:"lessonlink"`
	Duration              *int       `json:"duration"`
	TimeSlot              *time.Time `json:"time_slot"`
	Status                *string    `json:"status" validate:"omitempty,oneof=Upcoming Cancelled Completed"`
	PaymentStatus         *string    `json:"payment_status" validate:"omitempty,oneof='Paid' 'Not Paid'"`
	ReasonForCancellation *string    `json:"reasonforcancellation"`
}

func GetMyLessons(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var lessons []models.Lesson
	if err := database.DB.Preload("Student").
		Where("teacher_id = ?", teacherID).
		Find(&lessons).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch lessons"})
	}

	services.SortLessonsByTimeSlot(lessons)

	filtered := services.FilterLessons(lessons, services.LessonFilters{
		Search:          c.Query("search"),
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

func CreateLesson(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}
	studentID, _ := uuid.Parse(req.StudentID)

	// A lesson can only reference one of the caller's own students.
	var student models.Student
	if err := database.DB.
		Where("id = ? AND teacher_id = ?", studentID, teacherID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_id does not reference one of your students"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify student"})
	}

	lesson := models.Lesson{
		TeacherID:     teacherID,
		StudentID:     &studentID,
		Type:          emptyToNil(req.Type),
		LessonLink:    emptyToNil(req.LessonLink),
		Duration:      zeroToNil(req.Duration),
		TimeSlot:      req.TimeSlot,
		Status:        emptyToNil(req.Status),
		PaymentStatus: emptyToNil(req.PaymentStatus),
	}
	if err := database.DB.Create(&lesson).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create lesson"})
	}

	lesson.Student = &student
	return c.Status(fiber.StatusCreated).JSON(lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	teacherID := middleware.CallerID(c)

	var req UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationMessage(err)})
	}

	if req.StudentID != nil && *req.StudentID != "" {
		var student models.Student
		if err := database.DB.
			Where("id = ? AND teacher_id = ?", *req.StudentID, teacherID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "student_id does not reference one of your students"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify student"})
		}
	}

	result := database.DB.Model(&models.Lesson{}).
		Where("id = ? AND teacher_id = ?", req.ID, teacherID).
		Updates(lessonUpdates(req))
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update lesson"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
	}

	var lesson models.Lesson
	if err := database.DB.Preload("Student").First(&lesson, "id = ?", req.ID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch updated lesson"})
	}
	return c.JSON(lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
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
		Delete(&models.Lesson{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete lesson"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// lessonUpdates builds the full-replace column set for a lesson update: a
// field the client left out or sent empty is written as NULL, not skipped.
// The cancellation reason survives only when the lesson stays Cancelled.
func lessonUpdates(req UpdateLessonRequest) map[string]interface{} {
	updates := map[string]interface{}{
		"student_id":            nil,
		"type":                  nil,
		"lessonlink":            nil,
		"duration":              nil,
		"time_slot":             nil,
		"status":                nil,
		"payment_status":        nil,
		"reasonforcancellation": nil,
	}

	if req.StudentID != nil && *req.StudentID != "" {
		sid, _ := uuid.Parse(*req.StudentID)
		updates["student_id"] = sid
	}
	if v := emptyToNil(req.Type); v != nil {
		updates["type"] = *v
	}
	if v := emptyToNil(req.LessonLink); v != nil {
		updates["lessonlink"] = *v
	}
	if v := zeroToNil(req.Duration); v != nil {
		updates["duration"] = *v
	}
	if req.TimeSlot != nil {
		updates["time_slot"] = *req.TimeSlot
	}
	if v := emptyToNil(req.Status); v != nil {
		updates["status"] = *v
	}
	if v := emptyToNil(req.PaymentStatus); v != nil {
		updates["payment_status"] = *v
	}
	if req.Status != nil && *req.Status == models.LessonStatusCancelled {
		if v := emptyToNil(req.ReasonForCancellation); v != nil {
			updates["reasonforcancellation"] = *v
		}
	}

	return updates
}

func emptyToNil(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	return p
}

func zeroToNil(p *int) *int {
	if p == nil || *p == 0 {
		return nil
	}
	return p
}
