package model

// Pool is one wager round: a fixed entry fee, a participant capacity, and an
// ordered list of joined players. Active from creation until settlement.
type Pool struct {
	Creator         Identity   `json:"creator"`
	Escrow          Identity   `json:"escrow"`
	EntryAmount     uint64     `json:"entry_amount"`
	MaxParticipants int        `json:"max_participants"`
	Participants    []Identity `json:"participants"`
	IsActive        bool       `json:"is_active"`
}

// HasParticipant reports whether player already joined the pool.
func (p *Pool) HasParticipant(player Identity) bool {
	for _, joined := range p.Participants {
		if joined == player {
			return true
		}
	}
	return false
}

// IsFull reports whether the pool reached its participant capacity.
func (p *Pool) IsFull() bool {
	return len(p.Participants) >= p.MaxParticipants
}

// EscrowedValue is the total native-currency value held against the pool.
func (p *Pool) EscrowedValue() uint64 {
	return p.EntryAmount * uint64(len(p.Participants))
}

// Clone returns a deep copy safe to hand to callers and sinks. An empty
// participant list stays non-nil so snapshots serialize as [].
func (p *Pool) Clone() Pool {
	cloned := *p
	if p.Participants != nil {
		cloned.Participants = make([]Identity, len(p.Participants))
		copy(cloned.Participants, p.Participants)
	}
	return cloned
}
