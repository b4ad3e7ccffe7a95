package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"racepool/internal/ledger"
	"racepool/internal/model"
)

// Engine is the pool lifecycle and settlement state machine. Fund movement
// and receipt issuance are delegated to the injected capabilities; the engine
// decides which transitions are legal and what the resulting state must be.
//
// All methods are serialized by an internal mutex, which gives every pool the
// total per-record ordering the host storage layer would otherwise provide.
type Engine struct {
	mu     sync.Mutex
	cfg    Config
	admin  *model.AdminConfig
	pools  map[model.Identity]*model.Pool
	funds  ledger.Ledger
	issuer ledger.TokenIssuer
	logger *zap.Logger
}

// New builds an Engine with its dependencies.
func New(cfg Config, funds ledger.Ledger, issuer ledger.TokenIssuer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:    cfg.withDefaults(),
		pools:  make(map[model.Identity]*model.Pool),
		funds:  funds,
		issuer: issuer,
		logger: logger,
	}
}

// Initialize creates the singleton admin config. A second call is a caller
// error.
func (e *Engine) Initialize(authority, burnWallet, mintAuthority model.Identity) (model.AdminConfig, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.admin != nil {
		return model.AdminConfig{}, ErrAlreadyInitialized
	}
	if authority == "" {
		return model.AdminConfig{}, fmt.Errorf("authority is required")
	}
	if burnWallet == "" {
		return model.AdminConfig{}, fmt.Errorf("burn wallet is required")
	}

	e.admin = &model.AdminConfig{
		Authority:     authority,
		BurnWallet:    burnWallet,
		MintAuthority: mintAuthority,
	}

	e.logger.Info("admin config initialized",
		zap.String("authority", string(authority)),
		zap.String("burn_wallet", string(burnWallet)),
	)
	return *e.admin, nil
}

// Admin returns the admin config, if initialized.
func (e *Engine) Admin() (model.AdminConfig, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.admin == nil {
		return model.AdminConfig{}, false
	}
	return *e.admin, true
}

// Pool returns a snapshot of the creator's pool record.
func (e *Engine) Pool(creator model.Identity) (model.Pool, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	pool, ok := e.pools[creator]
	if !ok {
		return model.Pool{}, false
	}
	return pool.Clone(), true
}

// CreatePool opens a new wager round owned by creator. Only the configured
// authority may create pools. No funds move.
func (e *Engine) CreatePool(caller, creator model.Identity, maxParticipants int, entryAmount uint64) (model.Pool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.admin == nil {
		return model.Pool{}, ErrNotInitialized
	}
	if !IsAuthorized(caller, *e.admin) {
		return model.Pool{}, ErrUnauthorized
	}
	if !ValidParticipantCount(e.cfg, maxParticipants) {
		return model.Pool{}, fmt.Errorf("max participants %d: %w", maxParticipants, ErrInvalidParticipantCount)
	}
	if !ValidEntryAmount(e.cfg, entryAmount) {
		return model.Pool{}, fmt.Errorf("entry amount %d: %w", entryAmount, ErrInvalidEntryAmount)
	}
	if creator == "" {
		return model.Pool{}, fmt.Errorf("creator is required")
	}
	if existing, ok := e.pools[creator]; ok && existing.IsActive {
		return model.Pool{}, fmt.Errorf("creator %s: %w", creator, ErrPoolExists)
	}

	pool := &model.Pool{
		Creator:         creator,
		Escrow:          model.EscrowFor(creator),
		EntryAmount:     entryAmount,
		MaxParticipants: maxParticipants,
		Participants:    []model.Identity{},
		IsActive:        true,
	}
	e.pools[creator] = pool

	e.logger.Info("pool created",
		zap.String("creator", string(creator)),
		zap.Uint64("entry_amount", entryAmount),
		zap.Int("max_participants", maxParticipants),
	)
	return pool.Clone(), nil
}

// JoinRace appends player to the creator's pool, collecting the entry deposit
// into escrow and issuing an equal reward-token receipt. Validation happens
// before any effect; a rejected join moves no funds and appends nothing.
func (e *Engine) JoinRace(ctx context.Context, creator, player model.Identity) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.admin == nil {
		return ErrNotInitialized
	}
	pool, ok := e.pools[creator]
	if !ok {
		return fmt.Errorf("creator %s: %w", creator, ErrPoolNotFound)
	}
	if err := CanJoin(*pool, player); err != nil {
		return err
	}
	if player == "" {
		return fmt.Errorf("player is required")
	}

	if err := e.funds.Transfer(ctx, player, pool.Escrow, pool.EntryAmount); err != nil {
		return fmt.Errorf("collect deposit: %w", err)
	}
	if err := e.issuer.Mint(ctx, player, pool.EntryAmount); err != nil {
		// Return the deposit so the rejected join leaves no effect.
		if refundErr := e.funds.Transfer(ctx, pool.Escrow, player, pool.EntryAmount); refundErr != nil {
			return fmt.Errorf("issue receipt: %v; return deposit: %w", err, refundErr)
		}
		return fmt.Errorf("issue receipt: %w", err)
	}

	pool.Participants = append(pool.Participants, player)

	e.logger.Info("player joined",
		zap.String("creator", string(creator)),
		zap.String("player", string(player)),
		zap.Int("participants", len(pool.Participants)),
		zap.Uint64("escrowed", pool.EscrowedValue()),
	)
	return nil
}

// EndRace settles the creator's pool. With zero participants the creator's
// pre-escrowed entry is refunded; otherwise the escrowed total is split over
// the ranked winners and the burn wallet per the fixed schedule. Either way
// the pool is cleared and deactivated in the same transition.
func (e *Engine) EndRace(ctx context.Context, caller, creator model.Identity, winners []model.Identity) (model.Settlement, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.admin == nil {
		return model.Settlement{}, ErrNotInitialized
	}
	if !IsAuthorized(caller, *e.admin) {
		return model.Settlement{}, ErrUnauthorized
	}
	pool, ok := e.pools[creator]
	if !ok {
		return model.Settlement{}, fmt.Errorf("creator %s: %w", creator, ErrPoolNotFound)
	}
	if !pool.IsActive {
		return model.Settlement{}, ErrPoolInactive
	}

	settled := len(pool.Participants)
	settlement := model.Settlement{
		Creator:      creator,
		EntryAmount:  pool.EntryAmount,
		Participants: settled,
		TotalValue:   pool.EscrowedValue(),
		SettledAt:    time.Now().UTC().Format(time.RFC3339Nano),
	}

	if settled == 0 {
		if len(winners) != 0 {
			return model.Settlement{}, fmt.Errorf("empty pool takes no winners: %w", ErrPayoutTargetMismatch)
		}
		settlement.Payouts = []model.Payout{{
			To:     pool.Creator,
			Amount: pool.EntryAmount,
			Kind:   model.PayoutKindRefund,
		}}
	} else {
		schedule := ScheduleFor(settled)
		if len(winners) != schedule.RankedSlots() {
			return model.Settlement{}, fmt.Errorf("%d winners for %d ranked slots: %w",
				len(winners), schedule.RankedSlots(), ErrPayoutTargetMismatch)
		}
		settlement.Payouts = buildPayouts(schedule, settlement.TotalValue, winners, e.admin.BurnWallet)
	}

	for _, payout := range settlement.Payouts {
		if err := e.funds.Transfer(ctx, pool.Escrow, payout.To, payout.Amount); err != nil {
			return model.Settlement{}, fmt.Errorf("settle %s payout to %s: %w", payout.Kind, payout.To, err)
		}
	}

	pool.Participants = []model.Identity{}
	pool.IsActive = false

	e.logger.Info("pool settled",
		zap.String("creator", string(creator)),
		zap.Int("participants", settled),
		zap.Uint64("total_value", settlement.TotalValue),
		zap.Int("payouts", len(settlement.Payouts)),
	)
	return settlement, nil
}
