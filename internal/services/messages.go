package services

import (
	"fmt"

	"github.com/example/pickles/internal/models"
)

// Message is a composed notification ready for dispatch.
type Message struct {
	Subject string
	Body    string
}

// OrderCustomerMessage confirms a placed order to the customer.
func OrderCustomerMessage(order *models.Order) Message {
	return Message{
		Subject: "Order Confirmation - Homemade Pickles & Snacks",
		Body: fmt.Sprintf("Dear %s,\n\nYour order has been placed successfully!\n\nOrder ID: %s\nItem: %s\nQuantity: %d\n\nWe'll contact you soon for delivery details.\n\nThank you for choosing Homemade Pickles & Snacks!",
			order.Name, order.ID, order.Item, order.Quantity),
	}
}

// OrderOperatorMessage alerts the operator with the full order detail.
func OrderOperatorMessage(order *models.Order) Message {
	return Message{
		Subject: fmt.Sprintf("New Order - %s", order.ID),
		Body: fmt.Sprintf("New Order Received!\n\nOrder ID: %s\nCustomer: %s\nEmail: %s\nPhone: %s\nItem: %s\nQuantity: %d\nAddress: %s, %s - %s\nNotes: %s",
			order.ID, order.Name, order.Email, order.Phone, order.Item, order.Quantity, order.Address, order.City, order.Pincode, order.Notes),
	}
}

// CheckoutCustomerMessage confirms a completed checkout to the customer.
func CheckoutCustomerMessage(order *models.Order) Message {
	return Message{
		Subject: "Checkout Confirmation",
		Body: fmt.Sprintf("Dear %s,\n\nYour checkout is complete!\n\nOrder ID: %s\nWe'll process your order and contact you soon.\n\nThank you!",
			order.Name, order.ID),
	}
}

// ContactCustomerMessage acknowledges a contact inquiry to its sender.
func ContactCustomerMessage(contact *models.Contact) Message {
	return Message{
		Subject: "Thank you for contacting us",
		Body: fmt.Sprintf("Dear %s,\n\nThank you for contacting us! We have received your message and will get back to you soon.\n\nYour Message: %s\n\nBest regards,\nHomemade Pickles & Snacks Team",
			contact.Name, contact.Message),
	}
}

// ContactOperatorMessage alerts the operator about a new inquiry.
func ContactOperatorMessage(contact *models.Contact) Message {
	return Message{
		Subject: "New Contact Inquiry",
		Body: fmt.Sprintf("New Contact Inquiry\n\nFrom: %s\nEmail: %s\nMessage: %s",
			contact.Name, contact.Email, contact.Message),
	}
}

// WelcomeMessage greets a freshly created account.
func WelcomeMessage(name string) Message {
	return Message{
		Subject: "Welcome to Homemade Pickles & Snacks!",
		Body: fmt.Sprintf("Dear %s,\n\nWelcome to Homemade Pickles & Snacks!\n\nYour account has been created successfully. You can now login and start ordering our delicious homemade pickles and snacks.\n\nThank you for joining us!\n\nBest regards,\nHomemade Pickles & Snacks Team",
			name),
	}
}
