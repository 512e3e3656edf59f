package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Price       int64     `json:"price"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address,omitempty"`
	Note        string    `json:"note,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	OrderID     string    `json:"order_id"`
	SnapToken   string    `json:"snap_token,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	Price         int64     `json:"price"`
	OriginalPrice *int64    `json:"original_price,omitempty"`
	Images        []string  `json:"images"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AccountView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// BookingFilters narrows the admin booking list. Zero values mean "no
// filter"; Search matches the customer name case-insensitively.
type BookingFilters struct {
	Date      string
	ProductID *uuid.UUID
	Status    string
	Search    string
}

// ProductFilters narrows the public catalog list.
type ProductFilters struct {
	Category string
	Tag      string
}
