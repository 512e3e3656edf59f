package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"nailbook/internal/pkg/config"
	"nailbook/internal/pkg/errs"
	"nailbook/internal/usecase/commands"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
)

var (
	ErrSignatureMismatch = errs.New("notification signature mismatch")
	ErrStatusMismatch    = errs.New("notification status does not match provider record")
)

// NewNotificationVerifier picks the verification strategy from config.
// Local recomputes the sha512 signature; remote asks Midtrans directly.
func NewNotificationVerifier(cfg config.MidtransConfig) commands.NotificationVerifier {
	if cfg.VerifyMode == "remote" {
		return newRemoteVerifier(cfg)
	}
	return &localVerifier{serverKey: cfg.ServerKey}
}

type localVerifier struct {
	serverKey string
}

// Verify recomputes sha512(order_id + status_code + gross_amount + server_key)
// and compares it to the signature the notification carries.
func (v *localVerifier) Verify(_ context.Context, n commands.Notification) error {
	payload := n.OrderID + n.StatusCode + n.GrossAmount + v.serverKey
	sum := sha512.Sum512([]byte(payload))
	expected := hex.EncodeToString(sum[:])

	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.SignatureKey)) != 1 {
		return ErrSignatureMismatch
	}
	return nil
}

type remoteVerifier struct {
	client coreapi.Client
}

func newRemoteVerifier(cfg config.MidtransConfig) *remoteVerifier {
	var client coreapi.Client
	client.New(cfg.ServerKey, environmentOf(cfg))
	client.HttpClient = &midtrans.HttpClientImplementation{
		HttpClient: &http.Client{Timeout: cfg.Timeout},
	}
	return &remoteVerifier{client: client}
}

// Verify fetches the transaction from Midtrans and checks that the status
// in the notification matches the provider's own record.
func (v *remoteVerifier) Verify(_ context.Context, n commands.Notification) error {
	resp, midErr := v.client.CheckTransaction(n.OrderID)
	if midErr != nil {
		return midErr
	}
	if resp.TransactionStatus != n.TransactionStatus {
		return ErrStatusMismatch
	}
	return nil
}
