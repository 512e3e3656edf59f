package payment

import (
	"errors"
	"time"

	"nailbook/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrMissingTransactionID = errors.New("transaction id is required")

// Payment is the provider-side record of a booking transaction. There is at
// most one document per provider transaction id; repeated notifications for
// the same transaction only move the status.
type Payment struct {
	id              uuid.UUID
	bookingID       uuid.UUID
	transactionID   string
	status          booking.Status
	grossAmount     int64
	paymentType     string
	transactionTime string
	createdAt       time.Time
}

func NewPayment(
	bookingID uuid.UUID,
	transactionID string,
	status booking.Status,
	grossAmount int64,
	paymentType, transactionTime string,
) (*Payment, error) {
	if transactionID == "" {
		return nil, ErrMissingTransactionID
	}
	return &Payment{
		id:              uuid.New(),
		bookingID:       bookingID,
		transactionID:   transactionID,
		status:          status,
		grossAmount:     grossAmount,
		paymentType:     paymentType,
		transactionTime: transactionTime,
	}, nil
}

func ReconstructPayment(
	id, bookingID uuid.UUID,
	transactionID string,
	status booking.Status,
	grossAmount int64,
	paymentType, transactionTime string,
	createdAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		bookingID:       bookingID,
		transactionID:   transactionID,
		status:          status,
		grossAmount:     grossAmount,
		paymentType:     paymentType,
		transactionTime: transactionTime,
		createdAt:       createdAt,
	}
}

func (p *Payment) ID() uuid.UUID           { return p.id }
func (p *Payment) BookingID() uuid.UUID    { return p.bookingID }
func (p *Payment) TransactionID() string   { return p.transactionID }
func (p *Payment) Status() booking.Status  { return p.status }
func (p *Payment) GrossAmount() int64      { return p.grossAmount }
func (p *Payment) PaymentType() string     { return p.paymentType }
func (p *Payment) TransactionTime() string { return p.transactionTime }
func (p *Payment) CreatedAt() time.Time    { return p.createdAt }
