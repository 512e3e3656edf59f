//go:build unit

package payment_test

import (
	"testing"

	"nailbook/internal/domain/booking"
	"nailbook/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapProviderStatus(t *testing.T) {
	cases := []struct {
		provider payment.ProviderStatus
		expected booking.Status
	}{
		{payment.ProviderCapture, booking.StatusPaid},
		{payment.ProviderSettlement, booking.StatusPaid},
		{payment.ProviderDeny, booking.StatusFailed},
		{payment.ProviderCancel, booking.StatusFailed},
		{payment.ProviderExpire, booking.StatusFailed},
		{payment.ProviderPending, booking.StatusPending},
	}

	for _, c := range cases {
		t.Run(string(c.provider), func(t *testing.T) {
			assert.Equal(t, c.expected, payment.MapProviderStatus(c.provider))
		})
	}

	t.Run("未知ステータスはpendingに倒す", func(t *testing.T) {
		assert.Equal(t, booking.StatusPending, payment.MapProviderStatus("authorize"))
		assert.Equal(t, booking.StatusPending, payment.MapProviderStatus(""))
	})
}

func TestNewPayment(t *testing.T) {
	bookingID := uuid.New()

	t.Run("基本成功ケース", func(t *testing.T) {
		p, err := payment.NewPayment(bookingID, "txn-001", booking.StatusPaid, 150000, "qris", "2026-09-15 10:05:00")
		require.NoError(t, err)
		assert.Equal(t, bookingID, p.BookingID())
		assert.Equal(t, "txn-001", p.TransactionID())
		assert.Equal(t, int64(150000), p.GrossAmount())
	})

	t.Run("取引ID無しNG", func(t *testing.T) {
		_, err := payment.NewPayment(bookingID, "", booking.StatusPaid, 150000, "qris", "")
		require.ErrorIs(t, err, payment.ErrMissingTransactionID)
	})
}
