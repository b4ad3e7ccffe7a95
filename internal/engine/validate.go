package engine

import "racepool/internal/model"

// Validation predicates. All are pure functions over a record snapshot; the
// engine evaluates them before applying any effect of a transition.

// ValidEntryAmount reports whether amount is a legal entry fee under cfg: it
// must be positive, at least the configured minimum, and a member of the tier
// allow-list when one is configured.
func ValidEntryAmount(cfg Config, amount uint64) bool {
	if amount == 0 || amount < cfg.MinEntryAmount {
		return false
	}
	if len(cfg.EntryTiers) == 0 {
		return true
	}
	for _, tier := range cfg.EntryTiers {
		if amount == tier {
			return true
		}
	}
	return false
}

// ValidParticipantCount reports whether n is a legal pool capacity.
func ValidParticipantCount(cfg Config, n int) bool {
	return n >= 2 && n <= cfg.MaxCapacity
}

// IsAuthorized reports whether caller is the configured operator authority.
func IsAuthorized(caller model.Identity, admin model.AdminConfig) bool {
	return caller != "" && caller == admin.Authority
}

// CanJoin returns nil when player may join the pool, or the specific
// rejection otherwise.
func CanJoin(pool model.Pool, player model.Identity) error {
	if !pool.IsActive {
		return ErrPoolInactive
	}
	if pool.IsFull() {
		return ErrPoolFull
	}
	if pool.HasParticipant(player) {
		return ErrAlreadyJoined
	}
	return nil
}
