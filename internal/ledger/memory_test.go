package ledger

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryTransfer(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	mem.Fund("a", 300)
	if err := mem.Transfer(ctx, "a", "b", 100); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if got := mem.Balance("a"); got != 200 {
		t.Fatalf("source balance mismatch: %d", got)
	}
	if got := mem.Balance("b"); got != 100 {
		t.Fatalf("target balance mismatch: %d", got)
	}
}

func TestMemoryTransferInsufficient(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	mem.Fund("a", 50)
	if err := mem.Transfer(ctx, "a", "b", 100); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if got := mem.Balance("a"); got != 50 {
		t.Fatalf("failed transfer must not move funds: %d", got)
	}
	if got := mem.Balance("b"); got != 0 {
		t.Fatalf("failed transfer must not credit target: %d", got)
	}
}

func TestMemoryMint(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	if err := mem.Mint(ctx, "p1", 100); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if err := mem.Mint(ctx, "p1", 25); err != nil {
		t.Fatalf("mint: %v", err)
	}
	if got := mem.Credits("p1"); got != 125 {
		t.Fatalf("credits mismatch: %d", got)
	}
	if got := mem.Balance("p1"); got != 0 {
		t.Fatalf("minting must not touch native balance: %d", got)
	}
}
