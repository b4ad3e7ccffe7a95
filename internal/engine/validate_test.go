package engine

import (
	"errors"
	"testing"

	"racepool/internal/model"
)

func TestValidEntryAmount(t *testing.T) {
	cfg := Config{}.withDefaults()

	for _, tier := range DefaultEntryTiers {
		if !ValidEntryAmount(cfg, tier) {
			t.Fatalf("tier %d should be valid", tier)
		}
	}
	for _, amount := range []uint64{0, 1, 49_999_999, 75_000_000, 999_999_999} {
		if ValidEntryAmount(cfg, amount) {
			t.Fatalf("amount %d should be invalid", amount)
		}
	}
}

func TestValidEntryAmountMinimumOnly(t *testing.T) {
	cfg := Config{MinEntryAmount: 100_000_000, EntryTiers: []uint64{}}.withDefaults()

	if ValidEntryAmount(cfg, 75_000_000) {
		t.Fatalf("amount below minimum should be invalid")
	}
	if !ValidEntryAmount(cfg, 100_000_000) {
		t.Fatalf("amount at minimum should be valid")
	}
	if !ValidEntryAmount(cfg, 123_000_000) {
		t.Fatalf("untiered amount above minimum should be valid")
	}
}

func TestValidParticipantCount(t *testing.T) {
	cfg := Config{}.withDefaults()

	for _, n := range []int{2, 3, 10} {
		if !ValidParticipantCount(cfg, n) {
			t.Fatalf("count %d should be valid", n)
		}
	}
	for _, n := range []int{-1, 0, 1, 11} {
		if ValidParticipantCount(cfg, n) {
			t.Fatalf("count %d should be invalid", n)
		}
	}
}

func TestIsAuthorized(t *testing.T) {
	admin := model.AdminConfig{Authority: "auth"}

	if !IsAuthorized("auth", admin) {
		t.Fatalf("configured authority should be authorized")
	}
	if IsAuthorized("other", admin) {
		t.Fatalf("unknown caller should not be authorized")
	}
	if IsAuthorized("", model.AdminConfig{}) {
		t.Fatalf("empty caller should never be authorized")
	}
}

func TestCanJoin(t *testing.T) {
	pool := model.Pool{
		Creator:         "auth",
		EntryAmount:     100_000_000,
		MaxParticipants: 2,
		Participants:    []model.Identity{"p1"},
		IsActive:        true,
	}

	if err := CanJoin(pool, "p2"); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
	if err := CanJoin(pool, "p1"); !errors.Is(err, ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}

	pool.Participants = []model.Identity{"p1", "p2"}
	if err := CanJoin(pool, "p3"); !errors.Is(err, ErrPoolFull) {
		t.Fatalf("expected ErrPoolFull, got %v", err)
	}

	pool.IsActive = false
	if err := CanJoin(pool, "p3"); !errors.Is(err, ErrPoolInactive) {
		t.Fatalf("expected ErrPoolInactive, got %v", err)
	}
}
