package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"racepool/internal/config"
	"racepool/internal/model"
)

func runAudit(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadAudit(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}

	inputFile, err := os.Open(cfg.In)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer inputFile.Close()

	logger.Info("audit start", zap.String("in", cfg.In))

	scanner := bufio.NewScanner(inputFile)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, ok, violations int
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var settlement model.Settlement
		if err := json.Unmarshal(line, &settlement); err != nil {
			violations++
			logger.Error("unreadable settlement record", zap.Int("line", total), zap.Error(err))
			continue
		}

		if err := checkSettlement(settlement); err != nil {
			violations++
			logger.Error("settlement violation",
				zap.Uint64("seq", settlement.Seq),
				zap.String("creator", string(settlement.Creator)),
				zap.Error(err),
			)
			continue
		}
		ok++
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan input: %w", err)
	}

	logger.Info("audit complete",
		zap.Int("total", total),
		zap.Int("ok", ok),
		zap.Int("violations", violations),
	)

	if violations > 0 {
		return fmt.Errorf("%d settlement records violate conservation", violations)
	}
	return nil
}

// checkSettlement verifies a settled record pays out exactly the escrowed
// value with the expected payout shape.
func checkSettlement(s model.Settlement) error {
	if s.Participants == 0 {
		if len(s.Payouts) != 1 || s.Payouts[0].Kind != model.PayoutKindRefund {
			return fmt.Errorf("refund record must carry exactly one refund payout")
		}
		if s.Payouts[0].Amount != s.EntryAmount {
			return fmt.Errorf("refund %d differs from entry amount %d", s.Payouts[0].Amount, s.EntryAmount)
		}
		return nil
	}

	expected := s.EntryAmount * uint64(s.Participants)
	if s.TotalValue != expected {
		return fmt.Errorf("total value %d differs from entry*participants %d", s.TotalValue, expected)
	}
	if paid := s.PaidOut(); paid != s.TotalValue {
		return fmt.Errorf("payouts %d do not conserve total value %d", paid, s.TotalValue)
	}

	burns := 0
	for _, payout := range s.Payouts {
		if payout.Kind == model.PayoutKindBurn {
			burns++
		}
	}
	if burns != 1 {
		return fmt.Errorf("expected exactly one burn payout, found %d", burns)
	}
	return nil
}
