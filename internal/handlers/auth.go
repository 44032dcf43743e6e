package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pickles/internal/config"
	"github.com/example/pickles/internal/services"
	"github.com/example/pickles/internal/store"
	"github.com/example/pickles/internal/utils"
)

// AuthHandler bundles dependencies for authentication endpoints.
type AuthHandler struct {
	users      store.Users
	cfg        *config.Config
	dispatcher services.Notifier
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(users store.Users, cfg *config.Config, dispatcher services.Notifier) *AuthHandler {
	return &AuthHandler{users: users, cfg: cfg, dispatcher: dispatcher}
}

type signupRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Signup creates a new user account and sends a welcome message.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req signupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "password is required")
	}

	user, err := h.users.Create(c.UserContext(), req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateUser) {
			return fiber.NewError(fiber.StatusConflict, "user already exists")
		}
		return fiber.NewError(fiber.StatusServiceUnavailable, "signup failed, please try again")
	}

	msg := services.WelcomeMessage(user.Name)
	h.dispatcher.Dispatch(c.UserContext(), user.Email, msg.Subject, msg.Body)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user": fiber.Map{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Login authenticates an existing user. An unknown email and a wrong
// password produce the same response.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := h.users.VerifyCredentials(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) || errors.Is(err, store.ErrCredentialMismatch) {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid email or password")
		}
		return fiber.NewError(fiber.StatusServiceUnavailable, "login failed, please try again")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, user.ID, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to generate token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user": fiber.Map{
			"email": user.Email,
			"name":  user.Name,
		},
	})
}

// CreateTestUser seeds the fixed test account.
func (h *AuthHandler) CreateTestUser(c *fiber.Ctx) error {
	_, err := h.users.Create(c.UserContext(), "test@test.com", "testuser", "test123")
	if err != nil && !errors.Is(err, store.ErrDuplicateUser) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "failed to create test user")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"email":   "test@test.com",
	})
}
