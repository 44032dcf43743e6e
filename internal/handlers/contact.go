package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pickles/internal/config"
	"github.com/example/pickles/internal/models"
	"github.com/example/pickles/internal/services"
	"github.com/example/pickles/internal/store"
)

// ContactHandler manages contact inquiry intake.
type ContactHandler struct {
	records    store.Records
	dispatcher services.Notifier
	cfg        *config.Config
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(records store.Records, dispatcher services.Notifier, cfg *config.Config) *ContactHandler {
	return &ContactHandler{records: records, dispatcher: dispatcher, cfg: cfg}
}

type contactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

// Submit accepts a contact inquiry and alerts both the operator and the
// sender.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}

	contact := &models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		Timestamp: time.Now().UTC(),
		Status:    models.ContactStatusNew,
	}

	id, err := h.records.InsertContact(c.UserContext(), contact)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "message could not be saved, please try again")
	}

	operator := services.ContactOperatorMessage(contact)
	customer := services.ContactCustomerMessage(contact)
	h.dispatcher.Dispatch(c.UserContext(), h.cfg.OperatorEmail, operator.Subject, operator.Body)
	h.dispatcher.Dispatch(c.UserContext(), contact.Email, customer.Subject, customer.Body)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"contact_id": id,
	})
}
