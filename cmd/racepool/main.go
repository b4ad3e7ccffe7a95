package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "racepool",
		Short:        "Pooled-entry race wagering engine",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Replay an operation journal against the engine",
		RunE:  runEngine,
	}

	runCmd.Flags().String("authority", "", "operator authority identity (empty expects an initialize op in the journal)")
	runCmd.Flags().String("burn-wallet", "", "burn allocation recipient identity")
	runCmd.Flags().String("mint-authority", "", "reward-token mint authority identity")
	runCmd.Flags().Uint64("min-entry", 50_000_000, "minimum entry amount")
	runCmd.Flags().StringSlice("entry-tiers", nil, "entry amount allow-list (comma-separated)")
	runCmd.Flags().Int("max-capacity", 10, "largest allowed pool capacity")
	runCmd.Flags().String("ops", "", "operation journal JSONL path")
	runCmd.Flags().String("out", "./data/settlements.jsonl", "settlements output JSONL path")
	runCmd.Flags().String("pools-out", "./data/pools.jsonl", "pool snapshots output JSONL path")
	runCmd.Flags().String("rejects", "./data/rejected_ops.jsonl", "rejected ops output JSONL path")
	runCmd.Flags().String("state-file", "./data/state.json", "local state file (empty uses Postgres when pg-dsn is set)")
	runCmd.Flags().Int("batch-size", 100, "records per storage batch")
	runCmd.Flags().String("pg-dsn", "", "Postgres DSN")
	runCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(runCmd)

	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Verify settlement records conserve pool value exactly",
		RunE:  runAudit,
	}

	auditCmd.Flags().String("in", "./data/settlements.jsonl", "settlements JSONL path")
	auditCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(auditCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
