package bootstrap

import (
	"nailbook/internal/infra/midtrans"
	"nailbook/internal/pkg/config"
	"nailbook/internal/usecase/commands"

	"go.uber.org/fx"
)

var MidtransModule = fx.Module("midtrans",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		NewNotificationVerifier,
	),
)

func NewPaymentGateway(cfg config.Config) *midtrans.Gateway {
	return midtrans.NewGateway(cfg.Midtrans)
}

func NewNotificationVerifier(cfg config.Config) commands.NotificationVerifier {
	return midtrans.NewNotificationVerifier(cfg.Midtrans)
}
