package engine

import "errors"

// Rejection kinds surfaced to callers. Every failed transition wraps exactly
// one of these and leaves no observable effect.
var (
	ErrAlreadyInitialized      = errors.New("admin config already initialized")
	ErrNotInitialized          = errors.New("admin config not initialized")
	ErrUnauthorized            = errors.New("caller is not the configured authority")
	ErrInvalidParticipantCount = errors.New("invalid participant count")
	ErrInvalidEntryAmount      = errors.New("invalid entry amount")
	ErrPoolExists              = errors.New("creator already has an active pool")
	ErrPoolNotFound            = errors.New("no pool for creator")
	ErrPoolInactive            = errors.New("pool is not active")
	ErrPoolFull                = errors.New("pool is full")
	ErrAlreadyJoined           = errors.New("player already joined this pool")
	ErrPayoutTargetMismatch    = errors.New("winner list does not match payout schedule")
)
