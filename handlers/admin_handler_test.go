package handlers_test

import (
	"net/http"
	"testing"

	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminRoutesEnforceRoleFromStore(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "teacher_a", models.RoleTeacher)

	// A teacher is refused even on a valid token.
	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/students", tokenFor(t, "teacher_a", "teacher"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A forged admin claim does not help: the role comes from the users
	// table, not the token.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/students", tokenFor(t, "teacher_a", "admin"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Unknown caller id is rejected outright.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/students", tokenFor(t, "ghost", "admin"), nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGetStudentsSpansAllTeachers(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "boss", models.RoleAdmin)
	seedStudent(t, "teacher_a", "Ana", "ana1", "B1")
	seedStudent(t, "teacher_b", "Carla", "car", "C1")

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/students", tokenFor(t, "boss", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	students := decodeBody[[]models.Student](t, resp)
	assert.Len(t, students, 2)
}

func TestAdminGetTeachers(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "boss", models.RoleAdmin)
	seedUser(t, "teacher_a", models.RoleTeacher)
	seedUser(t, "teacher_b", models.RoleTeacher)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/admin/teachers", tokenFor(t, "boss", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	teachers := decodeBody[[]map[string]string](t, resp)
	require.Len(t, teachers, 2)
	for _, tr := range teachers {
		assert.NotEmpty(t, tr["id"])
		assert.NotEmpty(t, tr["full_name"])
		assert.NotEqual(t, "boss", tr["id"])
	}
}

func TestAdminGetLessonsIncludesTeacherAndStudent(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "boss", models.RoleAdmin)
	seedUser(t, "teacher_a", models.RoleTeacher)
	student := seedStudent(t, "teacher_a", "Ana", "ana1", "B1")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons", tokenFor(t, "teacher_a", "teacher"), map[string]interface{}{
		"student_id": student.ID.String(),
		"status":     "Upcoming",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/lessons", tokenFor(t, "boss", "admin"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lessons := decodeBody[[]models.Lesson](t, resp)
	require.Len(t, lessons, 1)

	require.NotNil(t, lessons[0].Student)
	assert.Equal(t, "Ana", lessons[0].Student.FullName)
	require.NotNil(t, lessons[0].Teacher)
	assert.Equal(t, "User teacher_a", lessons[0].Teacher.FullName)
}

func TestAdminGetLessonsFiltersByTeacherAndStudent(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "boss", models.RoleAdmin)
	seedUser(t, "teacher_a", models.RoleTeacher)
	seedUser(t, "teacher_b", models.RoleTeacher)
	studentA := seedStudent(t, "teacher_a", "Ana", "ana1", "B1")
	studentB := seedStudent(t, "teacher_b", "Carla", "car", "C1")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons", tokenFor(t, "teacher_a", "teacher"), map[string]interface{}{
		"student_id": studentA.ID.String(),
		"status":     "Upcoming",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/api/v1/lessons", tokenFor(t, "teacher_b", "teacher"), map[string]interface{}{
		"student_id": studentB.ID.String(),
		"status":     "Cancelled",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	adminToken := tokenFor(t, "boss", "admin")

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/lessons?teacher_id=teacher_a", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lessons := decodeBody[[]models.Lesson](t, resp)
	require.Len(t, lessons, 1)
	assert.Equal(t, "teacher_a", lessons[0].TeacherID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/lessons?student_id="+studentB.ID.String(), adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lessons = decodeBody[[]models.Lesson](t, resp)
	require.Len(t, lessons, 1)
	require.NotNil(t, lessons[0].StudentID)
	assert.Equal(t, studentB.ID, *lessons[0].StudentID)

	// Equality and set filters compose with AND.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/lessons?teacher_id=teacher_b&status=Upcoming", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decodeBody[[]models.Lesson](t, resp))

	// Without query parameters the full collection comes back.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/admin/lessons", adminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decodeBody[[]models.Lesson](t, resp), 2)
}

func TestAdminUpdateLessonReassignsAcrossTeachers(t *testing.T) {
	app := setupApp(t)
	seedUser(t, "boss", models.RoleAdmin)
	seedUser(t, "teacher_a", models.RoleTeacher)
	seedUser(t, "teacher_b", models.RoleTeacher)
	studentA := seedStudent(t, "teacher_a", "Ana", "ana1", "B1")
	studentB := seedStudent(t, "teacher_b", "Carla", "car", "C1")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons", tokenFor(t, "teacher_a", "teacher"), map[string]interface{}{
		"student_id": studentA.ID.String(),
		"status":     "Upcoming",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	lesson := decodeBody[models.Lesson](t, resp)

	// The admin path is scoped by id only, so the lesson can move to another
	// teacher and another teacher's student in one update.
	resp = doJSON(t, app, http.MethodPut, "/api/v1/admin/lessons", tokenFor(t, "boss", "admin"), map[string]interface{}{
		"id":         lesson.ID.String(),
		"teacher_id": "teacher_b",
		"student_id": studentB.ID.String(),
		"status":     "Upcoming",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	moved := decodeBody[models.Lesson](t, resp)
	assert.Equal(t, "teacher_b", moved.TeacherID)
	require.NotNil(t, moved.StudentID)
	assert.Equal(t, studentB.ID, *moved.StudentID)

	var stored models.Lesson
	require.NoError(t, database.DB.First(&stored, "id = ?", lesson.ID).Error)
	assert.Equal(t, "teacher_b", stored.TeacherID)
}
