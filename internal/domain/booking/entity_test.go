//go:build unit

package booking_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"nailbook/internal/domain/booking"
	"nailbook/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.False(t, actual.IsPaid())
		assert.Equal(t, "Gel Polish", actual.ProductName())
		assert.Equal(t, int64(150000), actual.Price())
		assert.Empty(t, actual.SnapToken())
	})

	t.Run("タイムスタンプは渡した時刻で初期化される", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, now, actual.CreatedAt())
		assert.Equal(t, now, actual.UpdatedAt())
	})

	t.Run("スロット検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "有効な日付と時刻OK",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("2026-09-15", "09:00") },
			},
			{
				name:   "最終スロットOK",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("2026-09-15", "17:00") },
			},
			{
				name:   "無効な日付形式NG",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("15-09-2026", "10:00") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "空の日付NG",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("", "10:00") },
				errIs:  booking.ErrInvalidDate,
			},
			{
				name:   "提供外の時刻NG",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("2026-09-15", "08:00") },
				errIs:  booking.ErrInvalidTimeLabel,
			},
			{
				name:   "分単位の時刻NG",
				mutate: func(b *builder.BookingBuilder) { b.WithSlot("2026-09-15", "10:30") },
				errIs:  booking.ErrInvalidTimeLabel,
			},
		})
	})

	t.Run("顧客検証", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "メール無しOK",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Sari", "", "0812345") },
			},
			{
				name:   "名前無しNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("", "a@b.com", "0812345") },
				errIs:  booking.ErrInvalidCustomer,
			},
			{
				name:   "電話番号無しNG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("Sari", "a@b.com", "") },
				errIs:  booking.ErrInvalidCustomer,
			},
			{
				name:   "空白のみの名前NG",
				mutate: func(b *builder.BookingBuilder) { b.WithCustomer("   ", "a@b.com", "0812345") },
				errIs:  booking.ErrInvalidCustomer,
			},
		})
	})

	t.Run("注文ID生成", func(t *testing.T) {
		now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		id := booking.NewOrderID(now)

		parts := strings.SplitN(id.Value(), "-", 3)
		require.Len(t, parts, 3)
		assert.Equal(t, "BOOK", parts[0])
		assert.Equal(t, strconv.FormatInt(now.UnixMilli(), 10), parts[1])
		assert.NotEmpty(t, parts[2])

		other := booking.NewOrderID(now)
		assert.NotEqual(t, id.Value(), other.Value())
	})

	t.Run("Snapトークン付与", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		b.AttachSnapToken("snap-token-123")
		assert.Equal(t, "snap-token-123", b.SnapToken())
	})
}

func TestStatusBlocksSlot(t *testing.T) {
	cases := []struct {
		status booking.Status
		blocks bool
	}{
		{booking.StatusPending, true},
		{booking.StatusPaid, true},
		{booking.StatusFailed, false},
	}
	for _, c := range cases {
		t.Run(string(c.status), func(t *testing.T) {
			assert.Equal(t, c.blocks, c.status.BlocksSlot())
		})
	}
}

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "failed"} {
		s, err := booking.NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	_, err := booking.NewStatus("cancelled")
	require.ErrorIs(t, err, booking.ErrInvalidStatus)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBookingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
