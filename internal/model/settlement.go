package model

// Payout kinds.
const (
	PayoutKindRank   = "rank"
	PayoutKindBurn   = "burn"
	PayoutKindRefund = "refund"
)

// Payout is one fund movement out of a pool's escrow at settlement.
type Payout struct {
	To     Identity `json:"to"`
	Amount uint64   `json:"amount"`
	Kind   string   `json:"kind"`
	Rank   int      `json:"rank,omitempty"`
}

// Settlement records a terminating pool transition for storage.
type Settlement struct {
	Seq          uint64   `json:"seq,omitempty"`
	Creator      Identity `json:"creator"`
	EntryAmount  uint64   `json:"entry_amount"`
	Participants int      `json:"participants"`
	TotalValue   uint64   `json:"total_value"`
	Payouts      []Payout `json:"payouts"`
	SettledAt    string   `json:"settled_at"`
}

// PaidOut sums all payout amounts in the record.
func (s *Settlement) PaidOut() uint64 {
	var total uint64
	for _, payout := range s.Payouts {
		total += payout.Amount
	}
	return total
}
