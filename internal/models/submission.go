package models

import (
	"time"
)

// Submission sources.
const (
	SourceOrderForm = "order_form"
	SourceCheckout  = "checkout"
)

// Initial statuses. Records are written once with their variant's initial
// status; later transitions belong to the back-office, not this service.
const (
	OrderStatusPending      = "pending"
	CheckoutStatusCompleted = "checkout_completed"
	ContactStatusNew        = "new"
)

// Order stores accepted order-form submissions and checkout confirmations
// in one table, discriminated by Source. Checkout rows carry no item,
// quantity or amount.
type Order struct {
	BaseModel
	Name        string    `json:"name"`
	Email       string    `gorm:"index" json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Pincode     string    `json:"pincode"`
	Item        string    `json:"item"`
	Quantity    int       `json:"quantity"`
	Notes       string    `json:"notes"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	TotalAmount int       `json:"total_amount"`
	Source      string    `json:"source"`
}

// Contact stores accepted contact inquiries.
type Contact struct {
	BaseModel
	Name      string    `json:"name"`
	Email     string    `gorm:"index" json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}
