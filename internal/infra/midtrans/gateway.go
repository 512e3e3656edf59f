package midtrans

import (
	"context"
	"net/http"

	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

func environmentOf(cfg config.MidtransConfig) midtrans.EnvironmentType {
	if cfg.Environment == "production" {
		return midtrans.Production
	}
	return midtrans.Sandbox
}

// Gateway creates Snap checkout sessions against the Midtrans API.
type Gateway struct {
	client snap.Client
}

func NewGateway(cfg config.MidtransConfig) *Gateway {
	var client snap.Client
	client.New(cfg.ServerKey, environmentOf(cfg))
	client.HttpClient = &midtrans.HttpClientImplementation{
		HttpClient: &http.Client{Timeout: cfg.Timeout},
	}
	return &Gateway{client: client}
}

func (g *Gateway) CreateSnapSession(ctx context.Context, in commands.SnapSessionInput) (*commands.SnapSession, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: in.GrossAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: in.CustomerName,
			Email: in.CustomerEmail,
			Phone: in.CustomerPhone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    in.ItemID,
				Name:  in.ItemName,
				Price: in.GrossAmount,
				Qty:   1,
			},
		},
	}

	resp, midErr := g.client.CreateTransaction(req)
	if midErr != nil {
		// *midtrans.Error must be nil-checked before crossing into error,
		// a nil typed pointer would otherwise become a non-nil interface.
		return nil, midErr
	}

	return &commands.SnapSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
