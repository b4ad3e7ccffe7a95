package storage

import (
	"context"

	"racepool/internal/model"
)

// Storage defines sinks for engine outcomes.
type Storage interface {
	PutSettlementBatch(ctx context.Context, settlements []model.Settlement) error
	PutPoolBatch(ctx context.Context, pools []model.Pool) error
	PutRejectBatch(ctx context.Context, rejects []model.RejectedOp) error
}

// Multi fans writes out to several sinks in order.
type Multi []Storage

func (m Multi) PutSettlementBatch(ctx context.Context, settlements []model.Settlement) error {
	for _, sink := range m {
		if err := sink.PutSettlementBatch(ctx, settlements); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PutPoolBatch(ctx context.Context, pools []model.Pool) error {
	for _, sink := range m {
		if err := sink.PutPoolBatch(ctx, pools); err != nil {
			return err
		}
	}
	return nil
}

func (m Multi) PutRejectBatch(ctx context.Context, rejects []model.RejectedOp) error {
	for _, sink := range m {
		if err := sink.PutRejectBatch(ctx, rejects); err != nil {
			return err
		}
	}
	return nil
}
