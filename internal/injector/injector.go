//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/geometry/internal/config"
	"github.com/zeusync/geometry/internal/life"
)

func InitializeRunner(cfg *config.Config) (*life.Runner, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}
