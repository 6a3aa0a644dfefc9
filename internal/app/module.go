package app

import (
	"go.uber.org/fx"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/cli"
	"opsdeck/internal/app/forms"
	"opsdeck/internal/app/notify"
	"opsdeck/internal/app/procstats"
	"opsdeck/internal/app/query"
	"opsdeck/internal/app/toggle"
	"opsdeck/internal/app/ui"
	"opsdeck/internal/app/watcher"
	"opsdeck/internal/config/logger"
)

// Module aggregates every application module
var Module = fx.Options(
	logger.Module,
	api.Module,
	query.Module,
	notify.Module,
	toggle.Module,
	forms.Module,
	procstats.Module,
	watcher.Module,
	ui.Module,
	cli.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)
