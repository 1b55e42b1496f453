package slots

import (
	"math/rand"
	"testing"
)

// Every one of the 125 equally likely combinations falls into exactly one
// outcome class: 5 triples, 60 doubles, 60 losses.
func TestClassifyPartitionsAllCombinations(t *testing.T) {
	counts := map[Outcome]int{}
	for _, a := range Symbols {
		for _, b := range Symbols {
			for _, c := range Symbols {
				counts[Classify([3]string{a, b, c})]++
			}
		}
	}

	if counts[Triple] != 5 {
		t.Errorf("Expected 5 triples, got %d", counts[Triple])
	}
	if counts[Double] != 60 {
		t.Errorf("Expected 60 doubles, got %d", counts[Double])
	}
	if counts[Loss] != 60 {
		t.Errorf("Expected 60 losses, got %d", counts[Loss])
	}
	if total := counts[Triple] + counts[Double] + counts[Loss]; total != 125 {
		t.Errorf("Partition has remainder: %d combinations classified", total)
	}
}

func TestDeltaPerOutcome(t *testing.T) {
	cases := []struct {
		outcome Outcome
		bet     int64
		want    int64
	}{
		{Triple, 100, 900}, // 10x multiplier, 9x profit
		{Double, 100, 100}, // 2x multiplier, 1x profit
		{Loss, 100, -100},
		{Triple, 1, 9},
		{Double, 7, 7},
		{Loss, 33, -33},
	}

	for _, tc := range cases {
		res := Result{Outcome: tc.outcome}
		if got := res.Delta(tc.bet); got != tc.want {
			t.Errorf("Delta(outcome=%d, bet=%d) = %d, want %d", tc.outcome, tc.bet, got, tc.want)
		}
	}
}

func TestSpinDrawsFromAlphabet(t *testing.T) {
	valid := make(map[string]bool, len(Symbols))
	for _, s := range Symbols {
		valid[s] = true
	}

	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 200; n++ {
		res := Spin(rng)
		for _, reel := range res.Reels {
			if !valid[reel] {
				t.Fatalf("Spin produced symbol %q outside the alphabet", reel)
			}
		}
		if res.Outcome != Classify(res.Reels) {
			t.Errorf("Spin outcome %d does not match classification of %v", res.Outcome, res.Reels)
		}
	}
}

func TestWonMatchesOutcome(t *testing.T) {
	if !(Result{Outcome: Triple}).Won() {
		t.Error("Triple should count as a win")
	}
	if !(Result{Outcome: Double}).Won() {
		t.Error("Double should count as a win")
	}
	if (Result{Outcome: Loss}).Won() {
		t.Error("Loss should not count as a win")
	}
}
