package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pickles/internal/config"
	"github.com/example/pickles/internal/store"
)

type systemNotifier interface {
	Dispatch(ctx context.Context, recipient, subject, body string) bool
	PublishAlert(ctx context.Context, subject, body string) bool
	BroadcastConfigured() bool
}

// SystemHandler exposes health and diagnostic endpoints.
type SystemHandler struct {
	records    store.Records
	dispatcher systemNotifier
	cfg        *config.Config
}

// NewSystemHandler constructs a SystemHandler.
func NewSystemHandler(records store.Records, dispatcher systemNotifier, cfg *config.Config) *SystemHandler {
	return &SystemHandler{records: records, dispatcher: dispatcher, cfg: cfg}
}

// Health reports Record Store connectivity for load balancers.
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	if err := h.records.Health(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":    "unhealthy",
			"error":     err.Error(),
			"timestamp": time.Now().UTC(),
		})
	}

	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// Info is a read-only diagnostic view of dispatcher configuration and
// store connectivity.
func (h *SystemHandler) Info(c *fiber.Ctx) error {
	storeStatus := "connected"
	if err := h.records.Health(c.UserContext()); err != nil {
		storeStatus = "error"
	}

	broadcastStatus := "not_configured"
	if h.dispatcher.BroadcastConfigured() {
		broadcastStatus = "configured"
	}

	return c.JSON(fiber.Map{
		"store_status":     storeStatus,
		"broadcast_status": broadcastStatus,
		"operator_email":   h.cfg.OperatorEmail,
		"tables":           []string{"users", "orders", "contacts"},
	})
}

// TestMessage dispatches a probe message to the operator address and
// reports the outcome.
func (h *SystemHandler) TestMessage(c *fiber.Ctx) error {
	now := time.Now().UTC()
	body := fmt.Sprintf("Test message sent at %s", now.Format(time.RFC3339))
	sent := h.dispatcher.Dispatch(c.UserContext(), h.cfg.OperatorEmail, "Test Message", body)

	return c.JSON(fiber.Map{
		"message_sent": sent,
		"timestamp":    now,
	})
}

// Notify publishes a sample alert on the broadcast channel alone.
func (h *SystemHandler) Notify(c *fiber.Ctx) error {
	published := h.dispatcher.PublishAlert(c.UserContext(),
		"New Pickle Order Alert",
		"A new order was received on Homemade Pickles & Snacks!")

	return c.JSON(fiber.Map{
		"published": published,
	})
}
