package query

import (
	"go.uber.org/fx"
)

// Module provides the shared query cache
var Module = fx.Options(
	fx.Provide(NewCache),
)
