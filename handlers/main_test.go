package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anjiri1684/tutor_crm/database"
	"github.com/anjiri1684/tutor_crm/models"
	"github.com/anjiri1684/tutor_crm/routes"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

var dbSeq int64

// setupApp wires the real routes against a fresh in-memory database, so every
// test exercises the same middleware chain the server runs in production.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Student{}, &models.Lesson{}))
	database.DB = db

	app := fiber.New(fiber.Config{CaseSensitive: true, StrictRouting: true})
	routes.StudentRoutes(app)
	routes.LessonRoutes(app)
	routes.AdminRoutes(app)
	routes.WebhookRoutes(app)
	return app
}

func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func seedUser(t *testing.T, id, role string) models.User {
	t.Helper()
	user := models.User{ID: id, Email: id + "@example.com", FullName: "User " + id, Role: role}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedStudent(t *testing.T, teacherID, fullName, username, level string) models.Student {
	t.Helper()
	student := models.Student{
		TeacherID: teacherID,
		FullName:  fullName,
		Username:  username,
		Level:     level,
	}
	require.NoError(t, database.DB.Create(&student).Error)
	return student
}
