package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Design-Arena-Gens/agentic-bd57676b/config"
	"github.com/Design-Arena-Gens/agentic-bd57676b/internal/mediator"

	"github.com/TypeTerrors/gonfig"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

func main() {

	cfg, err := gonfig.Load[config.Config](
		gonfig.WithConfigFile("config/config.yaml"),
		gonfig.WithDotenv(".env"), // ignored if missing
		gonfig.WithStrict(),       // fail if ${VAR} has no value/default
	)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	cfg.ApplyDefaults()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetReportTimestamp(true)

	app, err := mediator.NewApp(cfg)
	if err != nil {
		log.Fatal("failed to create app", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.Start)
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		app.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal("server stopped", "err", err)
	}
}
