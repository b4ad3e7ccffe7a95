package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPoolHelpers(t *testing.T) {
	pool := Pool{
		Creator:         "auth",
		Escrow:          EscrowFor("auth"),
		EntryAmount:     100_000_000,
		MaxParticipants: 2,
		Participants:    []Identity{"p1"},
		IsActive:        true,
	}

	if !pool.HasParticipant("p1") {
		t.Fatalf("p1 should be present")
	}
	if pool.HasParticipant("p2") {
		t.Fatalf("p2 should be absent")
	}
	if pool.IsFull() {
		t.Fatalf("pool with one of two slots is not full")
	}
	if got := pool.EscrowedValue(); got != 100_000_000 {
		t.Fatalf("escrowed value mismatch: %d", got)
	}

	pool.Participants = append(pool.Participants, "p2")
	if !pool.IsFull() {
		t.Fatalf("pool at capacity should be full")
	}
}

func TestPoolClone(t *testing.T) {
	pool := Pool{
		Creator:      "auth",
		Participants: []Identity{"p1"},
		IsActive:     true,
	}

	cloned := pool.Clone()
	cloned.Participants[0] = "px"
	if pool.Participants[0] != "p1" {
		t.Fatalf("clone must not share participant storage")
	}
}

func TestPoolCloneKeepsEmptyNonNil(t *testing.T) {
	pool := Pool{
		Creator:      "auth",
		Participants: []Identity{},
		IsActive:     true,
	}

	cloned := pool.Clone()
	if cloned.Participants == nil {
		t.Fatalf("clone of empty participants must stay non-nil")
	}

	b, err := json.Marshal(cloned)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(b), `"participants":[]`) {
		t.Fatalf("empty participants must serialize as []: %s", b)
	}
}
