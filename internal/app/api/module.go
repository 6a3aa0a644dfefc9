package api

import (
	"go.uber.org/fx"
)

// Module provides the API client
var Module = fx.Options(
	fx.Provide(NewClient),
)
