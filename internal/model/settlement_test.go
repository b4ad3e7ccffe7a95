package model

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestSettlementJSONRoundTrip(t *testing.T) {
	original := Settlement{
		Seq:          8,
		Creator:      "auth",
		EntryAmount:  100_000_000,
		Participants: 2,
		TotalValue:   200_000_000,
		Payouts: []Payout{
			{To: "p1", Amount: 120_000_000, Kind: PayoutKindRank, Rank: 1},
			{To: "p2", Amount: 60_000_000, Kind: PayoutKindRank, Rank: 2},
			{To: "burn", Amount: 20_000_000, Kind: PayoutKindBurn},
		},
		SettledAt: "2024-01-01T00:00:00Z",
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded Settlement
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestSettlementPaidOut(t *testing.T) {
	settlement := Settlement{
		Payouts: []Payout{
			{To: "p1", Amount: 90},
			{To: "burn", Amount: 10},
		},
	}
	if got := settlement.PaidOut(); got != 100 {
		t.Fatalf("paid out mismatch: %d", got)
	}
}
