package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/3498972895/idle-node-offloading/internal/database"
	"github.com/3498972895/idle-node-offloading/pkg/scenario"
	"github.com/3498972895/idle-node-offloading/pkg/sweep"
)

func main() {
	var (
		configPath = flag.String("config", "scenario.json", "Path to sweep configuration JSON")
		dbPath     = flag.String("db", "offload-model.db", "Path to SQLite database file")
	)
	flag.Parse()

	cfg, err := scenario.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Running sweep %q: %d x %d grid points",
		cfg.Name, cfg.Sweep.OffloadRatio.Steps, cfg.Sweep.RelayRatio.Steps)
	result := sweep.Run(cfg)

	// Ensure database directory exists
	dbDir := filepath.Dir(*dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		log.Fatalf("Failed to create database directory: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := database.NewRepository(db)

	run, samples, err := database.CollectRun(cfg, result)
	if err != nil {
		log.Fatalf("Failed to collect sweep result: %v", err)
	}
	if err := repo.SaveRun(run, samples); err != nil {
		log.Fatalf("Failed to persist sweep run: %v", err)
	}

	s := result.Summary
	log.Printf("Sweep %s completed in %s: %d samples", result.RunID, result.Duration, s.SampleCount)
	log.Printf("Full local execution: time=%.6gs energy=%.6g", s.FullLocalTime, s.FullLocalEnergy)
	log.Printf("Min total time %.6gs at x=%.3f omega=%.3f", s.MinTotalTime, s.BestTimeOffload, s.BestTimeRelay)
	log.Printf("Min total energy %.6g at x=%.3f omega=%.3f", s.MinTotalEnergy, s.BestEnergyOffload, s.BestEnergyRelay)
}
