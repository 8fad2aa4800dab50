package bootstrap

import (
	"hotel-reservation-core/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
