package engine

import "racepool/internal/model"

// Schedule is a fixed percentage split over ranked winners. Every schedule
// leaves 10% nominal for the burn wallet; the burn share absorbs whatever the
// ranked percentages leave, including any integer division remainder, so the
// escrowed total is conserved exactly.
type Schedule struct {
	RankPercents []uint64
}

// RankedSlots is the number of ranked winners the schedule pays.
func (s Schedule) RankedSlots() int {
	return len(s.RankPercents)
}

// ScheduleFor selects the payout split by settled participant count. Counts
// above three share the three-winner split.
func ScheduleFor(participants int) Schedule {
	switch participants {
	case 1:
		return Schedule{RankPercents: []uint64{90}}
	case 2:
		return Schedule{RankPercents: []uint64{60, 30}}
	default:
		return Schedule{RankPercents: []uint64{50, 25, 15}}
	}
}

// Distribute splits total across the schedule's ranked slots and returns the
// per-rank amounts plus the burn share. The burn share is computed by
// subtraction, never by its own percentage, so the amounts always sum to
// total.
func (s Schedule) Distribute(total uint64) (ranks []uint64, burn uint64) {
	ranks = make([]uint64, len(s.RankPercents))
	var paid uint64
	for i, pct := range s.RankPercents {
		ranks[i] = total * pct / 100
		paid += ranks[i]
	}
	return ranks, total - paid
}

// buildPayouts assembles the settlement fund movements for ranked winners and
// the burn wallet.
func buildPayouts(s Schedule, total uint64, winners []model.Identity, burnWallet model.Identity) []model.Payout {
	amounts, burn := s.Distribute(total)
	payouts := make([]model.Payout, 0, len(amounts)+1)
	for i, amount := range amounts {
		payouts = append(payouts, model.Payout{
			To:     winners[i],
			Amount: amount,
			Kind:   model.PayoutKindRank,
			Rank:   i + 1,
		})
	}
	payouts = append(payouts, model.Payout{
		To:     burnWallet,
		Amount: burn,
		Kind:   model.PayoutKindBurn,
	})
	return payouts
}
