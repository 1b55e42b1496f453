package coinflip

import (
	"math/rand"
	"testing"
)

func TestParseChoice(t *testing.T) {
	cases := []struct {
		in      string
		want    Choice
		wantErr bool
	}{
		{"heads", Heads, false},
		{"TAILS", Tails, false},
		{" Heads ", Heads, false},
		{"edge", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := ParseChoice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseChoice(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseChoice(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseChoice(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFlipResolvesCall(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 0; n < 100; n++ {
		res := Flip(rng, Heads)
		if res.Landed != Heads && res.Landed != Tails {
			t.Fatalf("Landed on %q", res.Landed)
		}
		if res.Won != (res.Landed == Heads) {
			t.Errorf("Won=%v with landed=%s choice=heads", res.Won, res.Landed)
		}
	}
}

func TestFlipWinRateConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 10000

	wins := 0
	for n := 0; n < trials; n++ {
		if Flip(rng, Heads).Won {
			wins++
		}
	}

	rate := float64(wins) / trials
	if rate < 0.45 || rate > 0.55 {
		t.Errorf("Win rate %f did not converge to 0.5 over %d trials", rate, trials)
	}
}

func TestDelta(t *testing.T) {
	win := Result{Landed: Heads, Won: true}
	if got := win.Delta(100); got != 100 {
		t.Errorf("Win delta = %d, want 100", got)
	}

	loss := Result{Landed: Tails, Won: false}
	if got := loss.Delta(100); got != -100 {
		t.Errorf("Loss delta = %d, want -100", got)
	}
}
