package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/pickles/internal/config"
	"github.com/example/pickles/internal/models"
	"github.com/example/pickles/internal/services"
	"github.com/example/pickles/internal/store"
)

// OrderHandler manages order and checkout intake.
type OrderHandler struct {
	records    store.Records
	dispatcher services.Notifier
	cfg        *config.Config
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(records store.Records, dispatcher services.Notifier, cfg *config.Config) *OrderHandler {
	return &OrderHandler{records: records, dispatcher: dispatcher, cfg: cfg}
}

type orderRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
	City     string `json:"city" form:"city"`
	Pincode  string `json:"pincode" form:"pincode"`
	Item     string `json:"item" form:"item"`
	Quantity int    `json:"quantity" form:"quantity"`
	Notes    string `json:"notes" form:"notes"`
}

// CreateOrder accepts an order-form submission. The record write decides
// the outcome; notification delivery does not.
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req orderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone is required")
	}
	if req.Address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "address is required")
	}
	if req.Item == "" {
		return fiber.NewError(fiber.StatusBadRequest, "item is required")
	}
	if req.Quantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be a positive integer")
	}

	order := &models.Order{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Pincode:     req.Pincode,
		Item:        req.Item,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
		Timestamp:   time.Now().UTC(),
		Status:      models.OrderStatusPending,
		TotalAmount: req.Quantity * h.cfg.UnitPrice,
		Source:      models.SourceOrderForm,
	}

	id, err := h.records.InsertOrder(c.UserContext(), order)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "order could not be saved, please try again")
	}

	customer := services.OrderCustomerMessage(order)
	operator := services.OrderOperatorMessage(order)
	h.dispatcher.Dispatch(c.UserContext(), order.Email, customer.Subject, customer.Body)
	h.dispatcher.Dispatch(c.UserContext(), h.cfg.OperatorEmail, operator.Subject, operator.Body)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"order_id":     id,
		"status":       order.Status,
		"total_amount": order.TotalAmount,
	})
}

type checkoutRequest struct {
	FullName string `json:"fullName" form:"fullName"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Address  string `json:"address" form:"address"`
	Notes    string `json:"notes" form:"notes"`
}

// Checkout accepts a checkout confirmation. Only the customer is notified.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.FullName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "fullName is required")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}
	if req.Phone == "" {
		return fiber.NewError(fiber.StatusBadRequest, "phone is required")
	}
	if req.Address == "" {
		return fiber.NewError(fiber.StatusBadRequest, "address is required")
	}

	order := &models.Order{
		Name:      req.FullName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		Notes:     req.Notes,
		Timestamp: time.Now().UTC(),
		Status:    models.CheckoutStatusCompleted,
		Source:    models.SourceCheckout,
	}

	id, err := h.records.InsertOrder(c.UserContext(), order)
	if err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "checkout could not be saved, please try again")
	}

	customer := services.CheckoutCustomerMessage(order)
	h.dispatcher.Dispatch(c.UserContext(), order.Email, customer.Subject, customer.Body)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"order_id": id,
		"status":   order.Status,
	})
}
