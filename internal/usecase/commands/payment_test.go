//go:build unit

package commands

import (
	"context"
	"testing"

	"nailbook/internal/domain/booking"
	"nailbook/internal/domain/payment"
	"nailbook/internal/infra"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Upsert(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockNotificationVerifier struct {
	mock.Mock
}

func (m *MockNotificationVerifier) Verify(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func settlementPayload(orderID string) []byte {
	return []byte(`{
		"order_id": "` + orderID + `",
		"transaction_id": "txn-001",
		"transaction_status": "settlement",
		"status_code": "200",
		"gross_amount": "150000.00",
		"signature_key": "deadbeef",
		"payment_type": "qris",
		"transaction_time": "2026-09-15 10:05:00"
	}`)
}

func TestHandleNotification_Settlement(t *testing.T) {
	bookingID := uuid.New()
	orderID := "BOOK-1756713600000-abc1"

	bookingRepo := new(MockBookingRepository)
	paymentRepo := new(MockPaymentRepository)
	verifier := new(MockNotificationVerifier)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)
	bookingRepo.On("FindByOrderID", mock.Anything, orderID).
		Return(&BookingSnapshot{ID: bookingID, OrderID: orderID, Status: booking.StatusPending, Price: 150000}, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, booking.StatusPaid).Return(nil)
	paymentRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *payment.Payment) bool {
		return p.TransactionID() == "txn-001" &&
			p.GrossAmount() == 150000 &&
			p.Status() == booking.StatusPaid
	})).Return(nil)

	cmds := NewPaymentCommands(bookingRepo, paymentRepo, verifier)
	result, err := cmds.HandleNotification(context.Background(), settlementPayload(orderID))

	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.Equal(t, booking.StatusPaid, result.Status)

	bookingRepo.AssertExpectations(t)
	paymentRepo.AssertExpectations(t)
}

// Replayed deliveries re-apply the same status and upsert, never erroring.
func TestHandleNotification_DuplicateDelivery(t *testing.T) {
	bookingID := uuid.New()
	orderID := "BOOK-1756713600000-abc2"

	bookingRepo := new(MockBookingRepository)
	paymentRepo := new(MockPaymentRepository)
	verifier := new(MockNotificationVerifier)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)
	bookingRepo.On("FindByOrderID", mock.Anything, orderID).
		Return(&BookingSnapshot{ID: bookingID, OrderID: orderID, Status: booking.StatusPaid, Price: 150000}, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, booking.StatusPaid).Return(nil)
	paymentRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	cmds := NewPaymentCommands(bookingRepo, paymentRepo, verifier)

	for i := 0; i < 2; i++ {
		result, err := cmds.HandleNotification(context.Background(), settlementPayload(orderID))
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPaid, result.Status)
	}

	bookingRepo.AssertNumberOfCalls(t, "UpdateStatus", 2)
	paymentRepo.AssertNumberOfCalls(t, "Upsert", 2)
}

// A failed verification must not touch any state.
func TestHandleNotification_InvalidSignature(t *testing.T) {
	bookingRepo := new(MockBookingRepository)
	paymentRepo := new(MockPaymentRepository)
	verifier := new(MockNotificationVerifier)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(assert.AnError)

	cmds := NewPaymentCommands(bookingRepo, paymentRepo, verifier)
	result, err := cmds.HandleNotification(context.Background(), settlementPayload("BOOK-1-x"))

	require.Nil(t, result)
	require.ErrorIs(t, err, ErrInvalidSignature)
	bookingRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
	bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	paymentRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestHandleNotification_UnknownOrder(t *testing.T) {
	orderID := "BOOK-1756713600000-none"

	bookingRepo := new(MockBookingRepository)
	paymentRepo := new(MockPaymentRepository)
	verifier := new(MockNotificationVerifier)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)
	bookingRepo.On("FindByOrderID", mock.Anything, orderID).
		Return(nil, infra.WrapRepoErr("booking not found", assert.AnError, infra.KindNotFound))

	cmds := NewPaymentCommands(bookingRepo, paymentRepo, verifier)
	result, err := cmds.HandleNotification(context.Background(), settlementPayload(orderID))

	require.Nil(t, result)
	require.ErrorIs(t, err, ErrUnknownBooking)
	paymentRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestHandleNotification_MalformedPayload(t *testing.T) {
	newCmds := func() (PaymentCommands, *MockBookingRepository) {
		bookingRepo := new(MockBookingRepository)
		verifier := new(MockNotificationVerifier)
		verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)
		return NewPaymentCommands(bookingRepo, new(MockPaymentRepository), verifier), bookingRepo
	}

	t.Run("not JSON", func(t *testing.T) {
		cmds, _ := newCmds()
		result, err := cmds.HandleNotification(context.Background(), []byte("not-json"))
		require.Nil(t, result)
		require.ErrorIs(t, err, ErrMalformedNotification)
	})

	t.Run("missing order id", func(t *testing.T) {
		cmds, _ := newCmds()
		result, err := cmds.HandleNotification(context.Background(),
			[]byte(`{"transaction_status":"settlement","transaction_id":"t1"}`))
		require.Nil(t, result)
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("missing transaction id", func(t *testing.T) {
		cmds, _ := newCmds()
		result, err := cmds.HandleNotification(context.Background(),
			[]byte(`{"order_id":"BOOK-1-x","transaction_status":"settlement"}`))
		require.Nil(t, result)
		require.ErrorIs(t, err, ErrMissingField)
	})

	t.Run("non-numeric gross amount mutates nothing", func(t *testing.T) {
		cmds, bookingRepo := newCmds()
		result, err := cmds.HandleNotification(context.Background(),
			[]byte(`{"order_id":"BOOK-1-x","transaction_id":"t1","transaction_status":"settlement","gross_amount":"abc"}`))
		require.Nil(t, result)
		require.ErrorIs(t, err, ErrMalformedNotification)
		bookingRepo.AssertNotCalled(t, "FindByOrderID", mock.Anything, mock.Anything)
		bookingRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleNotification_ExpireMapsToFailed(t *testing.T) {
	bookingID := uuid.New()
	orderID := "BOOK-1756713600000-exp"

	bookingRepo := new(MockBookingRepository)
	paymentRepo := new(MockPaymentRepository)
	verifier := new(MockNotificationVerifier)

	verifier.On("Verify", mock.Anything, mock.Anything).Return(nil)
	bookingRepo.On("FindByOrderID", mock.Anything, orderID).
		Return(&BookingSnapshot{ID: bookingID, OrderID: orderID, Status: booking.StatusPending, Price: 150000}, nil)
	bookingRepo.On("UpdateStatus", mock.Anything, bookingID, booking.StatusFailed).Return(nil)
	paymentRepo.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	payload := []byte(`{"order_id":"` + orderID + `","transaction_id":"txn-9","transaction_status":"expire","status_code":"407","gross_amount":"150000.00"}`)

	cmds := NewPaymentCommands(bookingRepo, paymentRepo, verifier)
	result, err := cmds.HandleNotification(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, booking.StatusFailed, result.Status)
	bookingRepo.AssertExpectations(t)
}

func TestParseGrossAmount(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"150000.00", 150000, false},
		{"150000", 150000, false},
		{"99.50", 100, false},
		{"", 0, false},
		{"abc", 0, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := parseGrossAmount(c.in)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
