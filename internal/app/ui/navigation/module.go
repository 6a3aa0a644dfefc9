package navigation

import "go.uber.org/fx"

// Module provides the navigator
var Module = fx.Options(
	fx.Provide(NewNavigator),
)
