package payment

import "nailbook/internal/domain/booking"

// ProviderStatus is the transaction status vocabulary Midtrans sends in
// webhook notifications.
type ProviderStatus string

const (
	ProviderCapture    ProviderStatus = "capture"
	ProviderSettlement ProviderStatus = "settlement"
	ProviderPending    ProviderStatus = "pending"
	ProviderDeny       ProviderStatus = "deny"
	ProviderCancel     ProviderStatus = "cancel"
	ProviderExpire     ProviderStatus = "expire"
	ProviderRefund     ProviderStatus = "refund"
)

// MapProviderStatus maps a provider transaction status onto the booking
// status vocabulary. Total over all inputs: unrecognized statuses stay
// pending rather than guessing an outcome.
func MapProviderStatus(s ProviderStatus) booking.Status {
	switch s {
	case ProviderCapture, ProviderSettlement:
		return booking.StatusPaid
	case ProviderDeny, ProviderCancel, ProviderExpire:
		return booking.StatusFailed
	case ProviderPending:
		return booking.StatusPending
	default:
		return booking.StatusPending
	}
}
