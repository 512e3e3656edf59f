package booking

import (
	"time"

	"github.com/google/uuid"
)

// ProductSpec is the write-side snapshot of the booked product. Name and
// price are denormalized onto the booking at creation time; later product
// edits never touch existing bookings.
type ProductSpec struct {
	ID    uuid.UUID
	Name  string
	Price int64
}

type Booking struct {
	id          uuid.UUID
	productID   uuid.UUID
	productName string
	price       int64
	customer    Customer
	note        string
	slot        Slot
	orderID     OrderID
	snapToken   string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewBooking creates a pending booking for the given slot. The order id and
// timestamps derive from now, so the caller supplies its clock reading.
func NewBooking(product ProductSpec, customer Customer, slot Slot, note string, now time.Time) *Booking {
	return &Booking{
		id:          uuid.New(),
		productID:   product.ID,
		productName: product.Name,
		price:       product.Price,
		customer:    customer,
		note:        note,
		slot:        slot,
		orderID:     NewOrderID(now),
		status:      StatusPending,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructBooking(
	id, productID uuid.UUID,
	productName string,
	price int64,
	customer Customer,
	note string,
	slot Slot,
	orderID OrderID,
	snapToken string,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:          id,
		productID:   productID,
		productName: productName,
		price:       price,
		customer:    customer,
		note:        note,
		slot:        slot,
		orderID:     orderID,
		snapToken:   snapToken,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) ProductID() uuid.UUID { return b.productID }
func (b *Booking) ProductName() string  { return b.productName }
func (b *Booking) Price() int64         { return b.price }
func (b *Booking) Customer() Customer   { return b.customer }
func (b *Booking) Note() string         { return b.note }
func (b *Booking) Slot() Slot           { return b.slot }
func (b *Booking) OrderID() OrderID     { return b.orderID }
func (b *Booking) SnapToken() string    { return b.snapToken }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

func (b *Booking) IsPending() bool { return b.status == StatusPending }
func (b *Booking) IsPaid() bool    { return b.status == StatusPaid }

func (b *Booking) AttachSnapToken(token string) {
	b.snapToken = token
}
