package mediator

import (
	"fmt"

	"github.com/Design-Arena-Gens/agentic-bd57676b/config"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/dependencies"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/generation"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/services"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
)

type App struct {
	api *services.Api
	rpc *dependencies.Rpc
	// settings
	Config config.Config
}

func NewApp(config config.Config) (*App, error) {
	config.ApplyDefaults()

	app := &App{Config: config}

	generator, err := app.newGenerator()
	if err != nil {
		return nil, fmt.Errorf("error creating newapp: %w", err)
	}

	app.api = services.NewApi(generator, config.Api)
	return app, nil
}

func (a *App) newGenerator() (generation.Generator, error) {
	logger := log.With("component", "mediator")

	switch a.Config.Generation.Backend {
	case config.BackendPlaceholder:
		logger.Warn("using placeholder generator: uploads are ignored and a fixed video url is returned",
			"latency", a.Config.Generation.SimulatedLatency().String())
		return generation.NewPlaceholder(a.Config.Generation, clockwork.NewRealClock()), nil
	case config.BackendRpc:
		target := fmt.Sprint(a.Config.Rpc.Peer, ":", a.Config.Rpc.Port)
		rpc, err := dependencies.NewRpc(target, a.Config.Rpc.Timeout())
		if err != nil {
			return nil, err
		}
		a.rpc = rpc
		logger.Info("using rpc generator", "target", target)
		return rpc, nil
	default:
		return nil, fmt.Errorf("unknown generation backend %q", a.Config.Generation.Backend)
	}
}

func (a *App) Start() error {
	return a.api.Start()
}

func (a *App) Shutdown() {
	if err := a.api.Shutdown(); err != nil {
		log.With("component", "mediator").Error("api shutdown", "err", err)
	}
	if a.rpc != nil {
		a.rpc.Close()
	}
}
