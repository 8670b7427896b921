package bootstrap

import (
	"salon-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the whole application graph minus the config source, which
// tests replace with a fixed config.
var Module = fx.Options(
	ConfigModule,
	AppModule,
)

var AppModule = fx.Options(
	LoggerModule,
	JWTModule,
	ScheduleModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
