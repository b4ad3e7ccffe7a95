package journal

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"racepool/internal/engine"
	"racepool/internal/ledger"
	"racepool/internal/model"
	"racepool/internal/storage"
)

// RunConfig holds runtime settings for the journal runner.
type RunConfig struct {
	BatchSize  int
	StateStore StateStore
}

// Runner replays an operation journal against the engine and writes the
// outcomes to storage. Operations are applied strictly in sequence order;
// engine rejections become reject records, storage failures halt the run.
type Runner struct {
	cfg     RunConfig
	engine  *engine.Engine
	funder  ledger.Funder
	storage storage.Storage
	logger  *zap.Logger

	settlements []model.Settlement
	pools       []model.Pool
	rejects     []model.RejectedOp
}

// NewRunner builds a Runner with its dependencies. funder may be nil when the
// journal carries no fund operations.
func NewRunner(cfg RunConfig, eng *engine.Engine, funder ledger.Funder, storageSink storage.Storage, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	return &Runner{
		cfg:     cfg,
		engine:  eng,
		funder:  funder,
		storage: storageSink,
		logger:  logger,
	}
}

// Run replays the journal at opsPath.
func (r *Runner) Run(ctx context.Context, opsPath string) error {
	if r.engine == nil {
		return fmt.Errorf("engine is nil")
	}
	if r.storage == nil {
		return fmt.Errorf("storage is nil")
	}

	var resumeAfter uint64
	if r.cfg.StateStore != nil {
		seq, ok, err := r.cfg.StateStore.Load(ctx)
		if err != nil {
			return err
		}
		if ok {
			resumeAfter = seq
			r.logger.Info("resume from state", zap.Uint64("last_applied_seq", resumeAfter))
		}
	}

	file, err := os.Open(opsPath)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var total, applied, skipped, rejected int
	lastSeq := resumeAfter
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		total++

		var op model.Op
		if err := json.Unmarshal(line, &op); err != nil {
			rejected++
			r.reject(model.RejectedOp{Error: fmt.Sprintf("parse op: %v", err)})
			continue
		}
		if op.Seq <= resumeAfter {
			skipped++
			continue
		}
		if op.Seq <= lastSeq {
			rejected++
			r.reject(rejectedFromOp(op, fmt.Errorf("seq %d is not increasing (last %d)", op.Seq, lastSeq)))
			continue
		}

		if err := r.apply(ctx, op); err != nil {
			if halt := r.haltingError(err); halt != nil {
				return halt
			}
			rejected++
			r.reject(rejectedFromOp(op, err))
			r.logger.Warn("op rejected",
				zap.Uint64("seq", op.Seq),
				zap.String("op", op.Op),
				zap.Error(err),
			)
		} else {
			applied++
		}

		lastSeq = op.Seq
		if err := r.maybeFlush(ctx, lastSeq); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scan journal: %w", err)
	}

	if err := r.flush(ctx, lastSeq); err != nil {
		return err
	}

	r.logger.Info("journal replay complete",
		zap.Int("total", total),
		zap.Int("applied", applied),
		zap.Int("skipped", skipped),
		zap.Int("rejected", rejected),
	)
	return nil
}

func (r *Runner) apply(ctx context.Context, op model.Op) error {
	switch op.Op {
	case model.OpInitialize:
		_, err := r.engine.Initialize(op.Authority, op.BurnWallet, op.MintAuthority)
		return err

	case model.OpCreatePool:
		pool, err := r.engine.CreatePool(op.Caller, op.Creator, op.MaxParticipants, op.EntryAmount)
		if err != nil {
			return err
		}
		r.pools = append(r.pools, pool)
		return nil

	case model.OpJoinRace:
		if err := r.engine.JoinRace(ctx, op.Creator, op.Player); err != nil {
			return err
		}
		if pool, ok := r.engine.Pool(op.Creator); ok {
			r.pools = append(r.pools, pool)
		}
		return nil

	case model.OpEndRace:
		settlement, err := r.engine.EndRace(ctx, op.Caller, op.Creator, op.Winners)
		if err != nil {
			return err
		}
		settlement.Seq = op.Seq
		r.settlements = append(r.settlements, settlement)
		if pool, ok := r.engine.Pool(op.Creator); ok {
			r.pools = append(r.pools, pool)
		}
		return nil

	case model.OpFund:
		if r.funder == nil {
			return fmt.Errorf("funding is not supported by this ledger")
		}
		r.funder.Fund(op.Account, op.Amount)
		return nil

	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}

// haltingError separates infrastructure failures, which stop the run, from
// engine rejections, which are recorded and skipped.
func (r *Runner) haltingError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func (r *Runner) reject(record model.RejectedOp) {
	r.rejects = append(r.rejects, record)
}

func (r *Runner) maybeFlush(ctx context.Context, lastSeq uint64) error {
	if len(r.settlements)+len(r.pools)+len(r.rejects) < r.cfg.BatchSize {
		return nil
	}
	return r.flush(ctx, lastSeq)
}

func (r *Runner) flush(ctx context.Context, lastSeq uint64) error {
	if err := r.storage.PutSettlementBatch(ctx, r.settlements); err != nil {
		return fmt.Errorf("store settlements: %w", err)
	}
	if err := r.storage.PutPoolBatch(ctx, r.pools); err != nil {
		return fmt.Errorf("store pools: %w", err)
	}
	if err := r.storage.PutRejectBatch(ctx, r.rejects); err != nil {
		return fmt.Errorf("store rejects: %w", err)
	}
	r.settlements = r.settlements[:0]
	r.pools = r.pools[:0]
	r.rejects = r.rejects[:0]

	if r.cfg.StateStore != nil && lastSeq > 0 {
		if err := r.cfg.StateStore.Save(ctx, lastSeq); err != nil {
			return fmt.Errorf("save state: %w", err)
		}
	}
	return nil
}

func rejectedFromOp(op model.Op, err error) model.RejectedOp {
	return model.RejectedOp{
		Seq:     op.Seq,
		Op:      op.Op,
		Creator: op.Creator,
		Error:   err.Error(),
	}
}
