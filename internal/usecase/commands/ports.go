package commands

import (
	"context"

	"nailbook/internal/domain/account"
	"nailbook/internal/domain/booking"
	"nailbook/internal/domain/payment"
	"nailbook/internal/domain/product"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ProductSnapshot struct {
	ID     uuid.UUID
	Name   string
	Price  int64
	Status string
}

type BookingSnapshot struct {
	ID      uuid.UUID
	OrderID string
	Status  booking.Status
	Price   int64
}

// ProductPatch carries a partial admin update; nil fields are left untouched.
type ProductPatch struct {
	Name          *string
	Category      *string
	Description   *string
	Status        *product.Status
	Price         *int64
	OriginalPrice *int64
	Images        []string
	Tags          []product.Tag
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	SetSnapToken(ctx context.Context, id uuid.UUID, token string) error
	FindByOrderID(ctx context.Context, orderID string) (*BookingSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	SlotTaken(ctx context.Context, productID uuid.UUID, slot booking.Slot) (bool, error)
}

type PaymentRepository interface {
	Upsert(ctx context.Context, p *payment.Payment) error
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	Create(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
}

// SnapSessionInput is what the payment provider needs to open a checkout
// session for a booking.
type SnapSessionInput struct {
	OrderID       string
	GrossAmount   int64
	ItemID        string
	ItemName      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

type SnapSession struct {
	Token       string
	RedirectURL string
}

type PaymentGateway interface {
	CreateSnapSession(ctx context.Context, in SnapSessionInput) (*SnapSession, error)
}

// NotificationVerifier authenticates a webhook notification before any state
// is touched.
type NotificationVerifier interface {
	Verify(ctx context.Context, n Notification) error
}
