package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"racepool/internal/model"
)

// Store provides Postgres persistence for engine outcomes.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutSettlementBatch inserts settlement records with their payout rows.
func (s *Store) PutSettlementBatch(ctx context.Context, settlements []model.Settlement) error {
	if len(settlements) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, settlement := range settlements {
		batch.Queue(`
			INSERT INTO settlements (
				seq, creator, entry_amount, participants, total_value, settled_at, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (seq) DO NOTHING
		`,
			int64(settlement.Seq),
			string(settlement.Creator),
			int64(settlement.EntryAmount),
			settlement.Participants,
			int64(settlement.TotalValue),
			settlement.SettledAt,
		)
		for _, payout := range settlement.Payouts {
			batch.Queue(`
				INSERT INTO settlement_payouts (
					settlement_seq, target, amount, kind, rank, created_at
				) VALUES ($1, $2, $3, $4, $5, now())
				ON CONFLICT (settlement_seq, target, kind, rank) DO NOTHING
			`,
				int64(settlement.Seq),
				string(payout.To),
				int64(payout.Amount),
				payout.Kind,
				payout.Rank,
			)
		}
	}
	return s.sendBatch(ctx, batch)
}

// PutPoolBatch upserts pool snapshots keyed by creator.
func (s *Store) PutPoolBatch(ctx context.Context, pools []model.Pool) error {
	if len(pools) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, pool := range pools {
		participants := make([]string, len(pool.Participants))
		for i, player := range pool.Participants {
			participants[i] = string(player)
		}
		batch.Queue(`
			INSERT INTO pools (
				creator, escrow, entry_amount, max_participants, participants, is_active, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, now(), now())
			ON CONFLICT (creator)
			DO UPDATE SET
				escrow = EXCLUDED.escrow,
				entry_amount = EXCLUDED.entry_amount,
				max_participants = EXCLUDED.max_participants,
				participants = EXCLUDED.participants,
				is_active = EXCLUDED.is_active,
				updated_at = now()
		`,
			string(pool.Creator),
			string(pool.Escrow),
			int64(pool.EntryAmount),
			pool.MaxParticipants,
			participants,
			pool.IsActive,
		)
	}
	return s.sendBatch(ctx, batch)
}

// PutRejectBatch inserts rejected operation records.
func (s *Store) PutRejectBatch(ctx context.Context, rejects []model.RejectedOp) error {
	if len(rejects) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, reject := range rejects {
		batch.Queue(`
			INSERT INTO rejected_ops (seq, op, creator, error, created_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (seq) DO NOTHING
		`,
			int64(reject.Seq),
			reject.Op,
			string(reject.Creator),
			reject.Error,
		)
	}
	return s.sendBatch(ctx, batch)
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadState returns the last applied journal sequence for a name.
func (s *Store) LoadState(ctx context.Context, name string) (uint64, bool, error) {
	if name == "" {
		return 0, false, fmt.Errorf("state name required")
	}
	var seq int64
	err := s.pool.QueryRow(ctx,
		`SELECT last_applied_seq FROM engine_state WHERE name = $1`, name,
	).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return uint64(seq), true, nil
}

// SaveState upserts the last applied journal sequence for a name.
func (s *Store) SaveState(ctx context.Context, name string, seq uint64) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO engine_state (name, last_applied_seq, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name)
		DO UPDATE SET last_applied_seq = EXCLUDED.last_applied_seq, updated_at = now()
	`, name, int64(seq))
	return err
}
