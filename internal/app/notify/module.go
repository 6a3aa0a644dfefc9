package notify

import (
	"go.uber.org/fx"
)

// Module provides the notification center
var Module = fx.Options(
	fx.Provide(
		NewCenter,
		func(c *Center) Notifier { return c },
	),
)
