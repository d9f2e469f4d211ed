package main

import (
	"context"
	"flag"
	"time"

	"dispatch-board-service/internal/infrastructure/config"
	"dispatch-board-service/internal/infrastructure/persistence"
	seedRepo "dispatch-board-service/internal/interface/repository"
	"dispatch-board-service/pkg/logger"
)

// Writes the builtin synthetic shipments into a seed target so the service can
// later start with SEED_SOURCE pointing at it.
func main() {
	target := flag.String("target", persistence.SeedJSON, "seed target: json, sqlite, postgres or mongo")
	path := flag.String("path", "", "output file for the json target (defaults to SEED_PATH)")
	timeout := flag.Duration("timeout", 30*time.Second, "overall export timeout")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger("info").Fatal("Failed to load config", "error", err)
	}
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()

	if *path != "" {
		cfg.SeedPath = *path
	}
	if *target == persistence.SeedJSON && cfg.SeedPath == "" {
		cfg.SeedPath = "shipments.json"
	}
	if *target == persistence.SeedBuiltin || *target == "" {
		log.Fatal("Builtin seed source cannot be written to", "target", *target)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repo, closeRepo, err := persistence.OpenSeedRepository(ctx, *target, cfg)
	if err != nil {
		log.Fatal("Failed to open seed target", "target", *target, "error", err)
	}
	defer func() {
		if err := closeRepo(context.Background()); err != nil {
			log.Warn("Failed to close seed target", "error", err)
		}
	}()

	shipments := seedRepo.SyntheticShipments()
	if err := repo.Save(ctx, shipments); err != nil {
		log.Error("Failed to export seed shipments", "target", *target, "error", err)
		return
	}
	log.Info("Exported seed shipments", "target", *target, "count", len(shipments))
}
