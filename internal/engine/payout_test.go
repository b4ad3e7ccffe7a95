package engine

import (
	"reflect"
	"testing"

	"racepool/internal/model"
)

func TestScheduleFor(t *testing.T) {
	cases := []struct {
		participants int
		want         []uint64
	}{
		{1, []uint64{90}},
		{2, []uint64{60, 30}},
		{3, []uint64{50, 25, 15}},
		{4, []uint64{50, 25, 15}},
		{10, []uint64{50, 25, 15}},
	}

	for _, tc := range cases {
		got := ScheduleFor(tc.participants)
		if !reflect.DeepEqual(got.RankPercents, tc.want) {
			t.Fatalf("schedule for %d: %v != %v", tc.participants, got.RankPercents, tc.want)
		}
	}
}

func TestDistributeExact(t *testing.T) {
	ranks, burn := ScheduleFor(2).Distribute(200_000_000)

	want := []uint64{120_000_000, 60_000_000}
	if !reflect.DeepEqual(ranks, want) {
		t.Fatalf("rank amounts mismatch: %v != %v", ranks, want)
	}
	if burn != 20_000_000 {
		t.Fatalf("burn share mismatch: %d != 20000000", burn)
	}
}

func TestDistributeRemainderGoesToBurn(t *testing.T) {
	// 99 total: 50% -> 49, 25% -> 24, 15% -> 14. The 12 left over lands on
	// the burn share instead of the nominal 9.
	ranks, burn := ScheduleFor(3).Distribute(99)

	want := []uint64{49, 24, 14}
	if !reflect.DeepEqual(ranks, want) {
		t.Fatalf("rank amounts mismatch: %v != %v", ranks, want)
	}
	if burn != 12 {
		t.Fatalf("burn share mismatch: %d != 12", burn)
	}
}

func TestDistributeConservation(t *testing.T) {
	totals := []uint64{0, 1, 7, 99, 100, 101, 100_000_000, 150_000_001, 999_999_999}
	for participants := 1; participants <= 10; participants++ {
		schedule := ScheduleFor(participants)
		for _, total := range totals {
			ranks, burn := schedule.Distribute(total)
			var sum uint64
			for _, amount := range ranks {
				sum += amount
			}
			if sum+burn != total {
				t.Fatalf("leakage at participants=%d total=%d: %d + %d != %d",
					participants, total, sum, burn, total)
			}
		}
	}
}

func TestBuildPayouts(t *testing.T) {
	schedule := ScheduleFor(2)
	winners := []model.Identity{"p1", "p2"}

	payouts := buildPayouts(schedule, 200_000_000, winners, "burn")

	want := []model.Payout{
		{To: "p1", Amount: 120_000_000, Kind: model.PayoutKindRank, Rank: 1},
		{To: "p2", Amount: 60_000_000, Kind: model.PayoutKindRank, Rank: 2},
		{To: "burn", Amount: 20_000_000, Kind: model.PayoutKindBurn},
	}
	if !reflect.DeepEqual(payouts, want) {
		t.Fatalf("payouts mismatch: %+v != %+v", payouts, want)
	}
}
