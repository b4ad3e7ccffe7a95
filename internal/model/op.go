package model

// Operation names accepted in the journal.
const (
	OpInitialize = "initialize"
	OpCreatePool = "create_pool"
	OpJoinRace   = "join_race"
	OpEndRace    = "end_race"
	OpFund       = "fund"
)

// Op is one journaled operation request. Fields beyond Seq and Op are
// populated per operation kind.
type Op struct {
	Seq             uint64     `json:"seq"`
	Op              string     `json:"op"`
	Caller          Identity   `json:"caller,omitempty"`
	Authority       Identity   `json:"authority,omitempty"`
	BurnWallet      Identity   `json:"burn_wallet,omitempty"`
	MintAuthority   Identity   `json:"mint_authority,omitempty"`
	Creator         Identity   `json:"creator,omitempty"`
	Player          Identity   `json:"player,omitempty"`
	Account         Identity   `json:"account,omitempty"`
	MaxParticipants int        `json:"max_participants,omitempty"`
	EntryAmount     uint64     `json:"entry_amount,omitempty"`
	Amount          uint64     `json:"amount,omitempty"`
	Winners         []Identity `json:"winners,omitempty"`
}

// RejectedOp records a journal line the engine refused to apply.
type RejectedOp struct {
	Seq     uint64   `json:"seq"`
	Op      string   `json:"op,omitempty"`
	Creator Identity `json:"creator,omitempty"`
	Error   string   `json:"error"`
}
