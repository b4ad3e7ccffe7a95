package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"racepool/internal/config"
	"racepool/internal/engine"
	"racepool/internal/journal"
	"racepool/internal/ledger"
	"racepool/internal/model"
	"racepool/internal/storage"
	"racepool/internal/storage/postgres"
)

func runEngine(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Authority != "" && cfg.BurnWallet == "" {
		return fmt.Errorf("burn wallet is required when authority is set")
	}
	if cfg.Ops == "" {
		return fmt.Errorf("ops journal path is required")
	}

	tiers, err := config.ParseAmounts(cfg.EntryTiers)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mem := ledger.NewMemory()
	eng := engine.New(engine.Config{
		MinEntryAmount: cfg.MinEntry,
		EntryTiers:     tiers,
		MaxCapacity:    cfg.MaxCapacity,
	}, mem, mem, logger)

	// With no configured authority the journal's initialize op creates the
	// admin config instead.
	if cfg.Authority != "" {
		if _, err := eng.Initialize(
			model.Identity(cfg.Authority),
			model.Identity(cfg.BurnWallet),
			model.Identity(cfg.MintAuthority),
		); err != nil {
			return fmt.Errorf("initialize admin config: %w", err)
		}
	}

	sinks := storage.Multi{storage.NewJsonlStorage(cfg.Out, cfg.PoolsOut, cfg.Rejects)}

	var store *postgres.Store
	if cfg.PGDSN != "" {
		store, err = postgres.NewStore(ctx, cfg.PGDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer store.Close()
		sinks = append(sinks, store)
	}

	var stateStore journal.StateStore
	switch {
	case cfg.StateFile != "":
		stateStore = &journal.FileStateStore{Path: cfg.StateFile}
	case store != nil:
		stateStore = &journal.DBStateStore{Store: store, Name: "journal"}
	}

	runner := journal.NewRunner(journal.RunConfig{
		BatchSize:  cfg.BatchSize,
		StateStore: stateStore,
	}, eng, mem, sinks, logger)

	logger.Info("engine start",
		zap.String("authority", cfg.Authority),
		zap.String("burn_wallet", cfg.BurnWallet),
		zap.Uint64("min_entry", cfg.MinEntry),
		zap.Int("max_capacity", cfg.MaxCapacity),
		zap.String("ops", cfg.Ops),
		zap.String("out", cfg.Out),
		zap.String("pg_dsn", redactDSN(cfg.PGDSN)),
	)

	return runner.Run(ctx, cfg.Ops)
}

func redactDSN(dsn string) string {
	if dsn == "" {
		return dsn
	}
	return "***"
}
