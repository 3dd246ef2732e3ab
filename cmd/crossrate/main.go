package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/mfinch/crossrate/internal/application/service"
	"github.com/mfinch/crossrate/internal/infrastructure/api"
	"github.com/mfinch/crossrate/internal/infrastructure/cache"
	"github.com/mfinch/crossrate/internal/infrastructure/config"
	"github.com/mfinch/crossrate/internal/infrastructure/credential"
	"github.com/mfinch/crossrate/internal/infrastructure/logger"
	"github.com/mfinch/crossrate/internal/infrastructure/presenter"
	"github.com/mfinch/crossrate/internal/infrastructure/runctx"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "crossrate: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runID := runctx.NewRunID()
	ctx = runctx.WithRunID(ctx, runID)
	log := logger.GetDefaultLogger().WithField("run_id", runID)

	// The credential is validated before anything touches the network.
	cred, err := credential.Load(cfg.Credential.Path)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: cfg.API.Timeout}
	client := api.NewOpenExchangeClient(cfg.API.BaseURL, cred, httpClient, log)
	store := cache.NewFileSnapshotStore(cfg.Cache.Path, log)

	required := []string{cfg.Pair.Base, cfg.Pair.Quote}
	rates := service.NewRateService(store, client, cfg.Cache.TTL, required, log)
	crossRates := service.NewCrossRateService(log)

	snapshot, source, err := rates.GetLatest(ctx)
	if err != nil {
		return err
	}

	cross, err := crossRates.Derive(snapshot, cfg.Pair.Base, cfg.Pair.Quote)
	if err != nil {
		return err
	}

	log.Info("Presenting rate summary", map[string]interface{}{
		"source":  string(source),
		"base":    cross.Base,
		"quote":   cross.Quote,
		"rate":    cross.Rate,
		"inverse": cross.Inverse,
	})

	out := presenter.NewTerminalPresenter(os.Stdout, cfg.Display.HighlightCross, cfg.Display.HighlightInverse, cfg.Display.NoColor)

	return out.Present(snapshot, cross)
}
