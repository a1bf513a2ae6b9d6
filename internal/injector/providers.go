package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/internal/life"
	"github.com/zeusync/geometry/internal/observability/log"
)

// ProviderSet wires a life.Runner from a loaded config.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	wire.Bind(new(log.Log), new(*log.Logger)),
	life.NewRunner,
)

// ProvideLogger builds the process logger from the config's log section.
// The cleanup flushes buffered entries.
func ProvideLogger(cfg *config.Config) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := log.New(level, log.Options{Encoding: cfg.Log.Encoding})
	return logger, func() { _ = logger.Sync() }, nil
}
