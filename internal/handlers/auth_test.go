package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/pickles/internal/models"
	"github.com/example/pickles/internal/store"
)

func newAuthApp(t *testing.T) (*fiber.App, *stubNotifier, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	notifier := &stubNotifier{result: true}
	handler := NewAuthHandler(store.NewUsers(db), testConfig(), notifier)

	app := fiber.New()
	app.Post("/api/auth/signup", handler.Signup)
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/admin/test-user", handler.CreateTestUser)
	return app, notifier, db
}

func postAuth(t *testing.T, app *fiber.App, path string, payload any) (int, string) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(respBody)
}

func TestSignupSendsWelcomeMessage(t *testing.T) {
	app, notifier, db := newAuthApp(t)

	code, _ := postAuth(t, app, "/api/auth/signup", fiber.Map{
		"name":     "A",
		"email":    "a@x.com",
		"password": "secret",
	})

	require.Equal(t, fiber.StatusCreated, code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)
	assert.Equal(t, models.UserStatusActive, user.Status)

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "a@x.com", notifier.calls[0].recipient)
	assert.Equal(t, "Welcome to Homemade Pickles & Snacks!", notifier.calls[0].subject)
}

func TestSignupDuplicateEmail(t *testing.T) {
	app, notifier, db := newAuthApp(t)

	code, _ := postAuth(t, app, "/api/auth/signup", fiber.Map{
		"name": "A", "email": "a@x.com", "password": "secret",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := postAuth(t, app, "/api/auth/signup", fiber.Map{
		"name": "B", "email": "a@x.com", "password": "other",
	})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Contains(t, body, "user already exists")

	// Original record untouched, no second welcome message.
	var user models.User
	require.NoError(t, db.Where("email = ?", "a@x.com").First(&user).Error)
	assert.Equal(t, "A", user.Name)
	assert.Len(t, notifier.calls, 1)
}

func TestSignupMissingFields(t *testing.T) {
	app, notifier, _ := newAuthApp(t)

	code, _ := postAuth(t, app, "/api/auth/signup", fiber.Map{"email": "a@x.com"})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Empty(t, notifier.calls)
}

func TestLoginOutcomesCollapseToGenericMessage(t *testing.T) {
	app, _, _ := newAuthApp(t)

	code, _ := postAuth(t, app, "/api/auth/signup", fiber.Map{
		"name": "T", "email": "test@test.com", "password": "test123",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := postAuth(t, app, "/api/auth/login", fiber.Map{
		"email": "test@test.com", "password": "test123",
	})
	require.Equal(t, fiber.StatusOK, code)
	assert.Contains(t, body, "token")

	mismatchCode, mismatchBody := postAuth(t, app, "/api/auth/login", fiber.Map{
		"email": "test@test.com", "password": "wrong",
	})
	notFoundCode, notFoundBody := postAuth(t, app, "/api/auth/login", fiber.Map{
		"email": "nouser@x", "password": "anything",
	})

	assert.Equal(t, fiber.StatusUnauthorized, mismatchCode)
	assert.Equal(t, fiber.StatusUnauthorized, notFoundCode)
	// Wrong password and unknown user must be indistinguishable.
	assert.Equal(t, mismatchBody, notFoundBody)
	assert.Contains(t, mismatchBody, "invalid email or password")
}

func TestCreateTestUserIsIdempotent(t *testing.T) {
	app, _, db := newAuthApp(t)

	code, _ := postAuth(t, app, "/api/admin/test-user", nil)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = postAuth(t, app, "/api/admin/test-user", nil)
	require.Equal(t, fiber.StatusOK, code)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "test@test.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
