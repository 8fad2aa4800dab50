package components

import (
	"hotel-reservation-core/internal/infra/memstore"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewRegistry,
	),
)
