package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"

	"nailbook/internal/domain/booking"
	"nailbook/internal/domain/payment"
	"nailbook/internal/infra"
	"nailbook/internal/pkg/errs"
)

var (
	ErrMalformedNotification = errs.New("malformed notification payload")
	ErrMissingField          = errs.New("notification missing required field")
	ErrInvalidSignature      = errs.New("invalid notification signature")
	ErrUnknownBooking        = errs.New("unknown booking order")
)

// Notification is the provider webhook payload. GrossAmount arrives as a
// decimal string ("150000.00").
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	FraudStatus       string `json:"fraud_status"`
}

type ReconcileResult struct {
	OrderID string
	Status  booking.Status
}

type PaymentCommands interface {
	HandleNotification(ctx context.Context, raw []byte) (*ReconcileResult, error)
}

type paymentCommandsImpl struct {
	bookingRepo BookingRepository
	paymentRepo PaymentRepository
	verifier    NotificationVerifier
}

func NewPaymentCommands(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	verifier NotificationVerifier,
) PaymentCommands {
	return &paymentCommandsImpl{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		verifier:    verifier,
	}
}

// HandleNotification reconciles a webhook delivery against stored state.
// Verification and field extraction both complete before the first write,
// so a forged or malformed payload cannot mutate anything. Deliveries are
// idempotent: replays re-apply the same status and the payment upsert keys
// on transaction id.
func (p *paymentCommandsImpl) HandleNotification(ctx context.Context, raw []byte) (*ReconcileResult, error) {
	var n Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, errs.Mark(err, ErrMalformedNotification)
	}

	if err := p.verifier.Verify(ctx, n); err != nil {
		slog.Warn("notification failed verification, possible tampering",
			"order_id", n.OrderID, "error", err.Error())
		return nil, errs.Mark(err, ErrInvalidSignature)
	}

	if n.OrderID == "" || n.TransactionStatus == "" || n.TransactionID == "" {
		return nil, ErrMissingField
	}

	gross, err := parseGrossAmount(n.GrossAmount)
	if err != nil {
		return nil, errs.Mark(err, ErrMalformedNotification)
	}

	status := payment.MapProviderStatus(payment.ProviderStatus(n.TransactionStatus))

	snap, err := p.bookingRepo.FindByOrderID(ctx, n.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUnknownBooking
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := p.bookingRepo.UpdateStatus(ctx, snap.ID, status); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	record, err := payment.NewPayment(snap.ID, n.TransactionID, status, gross, n.PaymentType, n.TransactionTime)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingField)
	}

	if err := p.paymentRepo.Upsert(ctx, record); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &ReconcileResult{OrderID: n.OrderID, Status: status}, nil
}

func parseGrossAmount(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f)), nil
}
