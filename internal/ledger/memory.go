package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"racepool/internal/model"
)

// ErrInsufficientFunds rejects a transfer that would overdraw the source.
var ErrInsufficientFunds = errors.New("insufficient funds")

// Memory is an in-process ledger and token issuer. It enforces strict balance
// accounting so engine tests can observe exact fund conservation.
type Memory struct {
	mu       sync.Mutex
	balances map[model.Identity]uint64
	credits  map[model.Identity]uint64
}

func NewMemory() *Memory {
	return &Memory{
		balances: make(map[model.Identity]uint64),
		credits:  make(map[model.Identity]uint64),
	}
}

// Fund seeds an account balance.
func (m *Memory) Fund(account model.Identity, amount uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[account] += amount
}

// Transfer moves amount from one account to another, all-or-nothing.
func (m *Memory) Transfer(_ context.Context, from, to model.Identity, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.balances[from] < amount {
		return fmt.Errorf("transfer %d from %s: %w", amount, from, ErrInsufficientFunds)
	}
	m.balances[from] -= amount
	m.balances[to] += amount
	return nil
}

// Mint credits reward tokens to an account.
func (m *Memory) Mint(_ context.Context, to model.Identity, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.credits[to] += amount
	return nil
}

// Balance returns the native-currency balance of an account.
func (m *Memory) Balance(account model.Identity) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.balances[account]
}

// Credits returns the reward-token balance of an account.
func (m *Memory) Credits(account model.Identity) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.credits[account]
}
