package request

import (
	"strings"

	"nailbook/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	// Clients send the denormalized product name and price alongside the
	// booking. Both are accepted but the stored catalog values are
	// authoritative, so a stale or tampered price never reaches a booking.
	ProductName string `json:"product_name,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Note        string `json:"note,omitempty"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

func (r CreateBookingRequest) ToSlot() (booking.Slot, error) {
	return booking.NewSlot(r.Date, r.Time)
}

func (r CreateBookingRequest) ToCustomer() (booking.Customer, error) {
	return booking.NewCustomer(r.Name, r.Email, r.Phone, r.Address)
}

func (r CreateBookingRequest) TrimmedNote() string {
	return strings.TrimSpace(r.Note)
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
