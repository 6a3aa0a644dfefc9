package watcher

import (
	"go.uber.org/fx"
)

// Module provides the config file watcher
var Module = fx.Options(
	fx.Provide(NewWatcher),
)
