package toggle

import (
	"go.uber.org/fx"

	"opsdeck/internal/app/api"
)

// Module provides the toggler and its guard
var Module = fx.Options(
	fx.Provide(
		NewGuard,
		NewToggler,
		func(c *api.Client) Backend { return c },
	),
)
