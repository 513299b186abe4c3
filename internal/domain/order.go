package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order is created when a lead converts. It snapshots the lead's details at
// conversion time and keeps a back-reference to it; it does not own the lead.
type Order struct {
	ID              uuid.UUID `json:"_id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	City            string    `json:"city"`
	Phone           string    `json:"phone"`
	ServiceSelected string    `json:"serviceSelected"`
	Message         string    `json:"message"`
	ContactID       uuid.UUID `json:"contactId"`
	PackageID       string    `json:"packageId"`
	UserID          string    `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewOrderFromContact snapshots c into a new order.
func NewOrderFromContact(c *Contact, packageID, userID string) *Order {
	return &Order{
		ID:              uuid.New(),
		CustomerName:    c.Name,
		CustomerEmail:   c.Email,
		City:            c.City,
		Phone:           c.Phone,
		ServiceSelected: c.ServiceSelected,
		Message:         c.Message,
		ContactID:       c.ID,
		PackageID:       packageID,
		UserID:          userID,
		CreatedAt:       time.Now().UTC(),
	}
}
