package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/hammerlot/auctiondex/internal/config"
	dbRedis "github.com/hammerlot/auctiondex/internal/db/redis"
	logpkg "github.com/hammerlot/auctiondex/internal/logger"
	auctionrepo "github.com/hammerlot/auctiondex/internal/repository/auction"
	seeduc "github.com/hammerlot/auctiondex/internal/usecase/seed"
	"github.com/hammerlot/auctiondex/internal/version"
)

// defaultListings is the built-in sample dataset used when no -file is given.
var defaultListings = []seeduc.Listing{
	{Title: "Gaming Laptop", Description: "High-end RTX 4080 gaming laptop", StartPrice: 1000, ReservePrice: 1200},
	{Title: "Mountain Bike", Description: "Trail-ready mountain bike with front suspension", StartPrice: 500, ReservePrice: 600},
	{Title: "Vintage Guitar", Description: "1960s vintage acoustic guitar", StartPrice: 300, ReservePrice: 450},
	{Title: "Gaming Console", Description: "Latest generation gaming console", StartPrice: 400, ReservePrice: 480},
	{Title: "Office Desk", Description: "Standing office desk, adjustable height", StartPrice: 200, ReservePrice: 250},
}

func main() {
	var (
		envFlag   = flag.String("env", "", "config environment (defaults to ENV or local)")
		fileFlag  = flag.String("file", "", "JSON file with listings to seed (default: built-in sample set)")
		forceFlag = flag.Bool("force", false, "delete existing auctions and reseed")
		listFlag  = flag.Bool("list", false, "print stored auctions and exit")
		resetFlag = flag.Bool("reset-only", false, "delete all auctions and exit")
	)
	flag.Parse()

	env := *envFlag
	if env == "" {
		env = config.GetEnv()
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting auctiondex seeder",
		zap.String("version", version.Version),
		zap.String("env", env),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	repo := auctionrepo.New(store, cfg.Storage.KeyPrefix)
	svc := seeduc.New(repo)

	switch {
	case *listFlag:
		listStored(ctx, svc, cfg.Search.SimilarScanCap, logger)
	case *resetFlag:
		n, err := svc.Reset(ctx)
		if err != nil {
			logger.Fatal("Reset failed", zap.Error(err))
		}
		logger.Info("Store reset", zap.Int("deleted", n))
	default:
		listings, err := loadListings(*fileFlag)
		if err != nil {
			logger.Fatal("Failed to load listings", zap.Error(err))
		}
		n, err := svc.Load(ctx, listings, *forceFlag)
		if err != nil {
			if errors.Is(err, seeduc.ErrAlreadySeeded) {
				logger.Fatal("Store already seeded, pass -force to reseed", zap.Error(err))
			}
			logger.Fatal("Seeding failed", zap.Error(err))
		}
		logger.Info("Seeding complete", zap.Int("stored", n))
	}
}

// loadListings reads a JSON array of listings from path, or returns the
// built-in sample set when path is empty.
func loadListings(path string) ([]seeduc.Listing, error) {
	if path == "" {
		return defaultListings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var listings []seeduc.Listing
	if err := json.Unmarshal(data, &listings); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("%s contains no listings", path)
	}
	return listings, nil
}

func listStored(ctx context.Context, svc *seeduc.Service, scanCap int, logger *zap.Logger) {
	auctions, err := svc.Stored(ctx, scanCap)
	if err != nil {
		logger.Fatal("Failed to list stored auctions", zap.Error(err))
	}
	if len(auctions) == 0 {
		fmt.Println("store is empty")
		return
	}
	for _, a := range auctions {
		fmt.Printf("%s  %-20s  start=%.2f  reserve=%.2f  created=%s\n",
			a.ID(), a.Title(), a.StartPrice(), a.ReservePrice(),
			a.CreatedAt().UTC().Format(time.RFC3339))
	}
}
