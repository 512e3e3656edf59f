package bootstrap

import (
	"nailbook/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	MongoModule,
	JWTModule,
	MidtransModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
