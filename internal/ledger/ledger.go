package ledger

import (
	"context"

	"racepool/internal/model"
)

// Ledger executes native-currency movements on behalf of the engine. The real
// implementation lives in the host chain; the engine only decides which
// movements are legal.
type Ledger interface {
	Transfer(ctx context.Context, from, to model.Identity, amount uint64) error
}

// TokenIssuer mints reward-token participation receipts.
type TokenIssuer interface {
	Mint(ctx context.Context, to model.Identity, amount uint64) error
}

// Funder seeds an account with native currency outside the engine, the way a
// devnet airdrop would. Only simulated ledgers implement it.
type Funder interface {
	Fund(account model.Identity, amount uint64)
}
