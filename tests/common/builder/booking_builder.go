//go:build unit || e2e

package builder

import (
	"time"

	"nailbook/internal/domain/booking"
	reqdto "nailbook/internal/handler/dto/request"
	"nailbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ProductID   uuid.UUID
	ProductName string
	Price       int64
	Name        string
	Email       string
	Phone       string
	Address     string
	Note        string
	Date        string
	Time        string
	Status      string
	Now         time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ProductID:   uuid.New(),
		ProductName: "Gel Polish",
		Price:       150000,
		Name:        "Sari Dewi",
		Email:       "sari@example.com",
		Phone:       "081234567890",
		Address:     "Jl. Melati No. 5",
		Note:        "",
		Date:        "2026-09-15",
		Time:        "10:00",
		Status:      "pending",
		Now:         time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	slot, err := booking.NewSlot(b.Date, b.Time)
	if err != nil {
		return nil, err
	}

	customer, err := booking.NewCustomer(b.Name, b.Email, b.Phone, b.Address)
	if err != nil {
		return nil, err
	}

	spec := booking.ProductSpec{ID: b.ProductID, Name: b.ProductName, Price: b.Price}
	return booking.NewBooking(spec, customer, slot, b.Note, b.Now), nil
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ProductID: b.ProductID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Address:   b.Address,
		Note:      b.Note,
		Date:      b.Date,
		Time:      b.Time,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:          uuid.New(),
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		Price:       b.Price,
		Name:        b.Name,
		Email:       b.Email,
		Phone:       b.Phone,
		Address:     b.Address,
		Note:        b.Note,
		Date:        b.Date,
		Time:        b.Time,
		OrderID:     "BOOK-1756713600000-abc123",
		Status:      b.Status,
		CreatedAt:   b.Now,
		UpdatedAt:   b.Now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithProduct(id uuid.UUID, name string, price int64) *BookingBuilder {
	b.ProductID = id
	b.ProductName = name
	b.Price = price
	return b
}

func (b *BookingBuilder) WithSlot(date, timeLabel string) *BookingBuilder {
	b.Date = date
	b.Time = timeLabel
	return b
}

func (b *BookingBuilder) WithCustomer(name, email, phone string) *BookingBuilder {
	b.Name = name
	b.Email = email
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}
