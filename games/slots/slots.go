package slots

import (
	"math/rand"

	"kingcy-go/utils"
)

// Symbols is the 5-symbol reel alphabet. Each reel draws uniformly and
// independently, so the 125 combinations are equally likely.
var Symbols = []string{"🍒", "🔔", "💎", "💰", "👑"}

// Outcome classifies a spin.
type Outcome int

const (
	Loss Outcome = iota
	Double
	Triple
)

// Result is the outcome of one spin.
type Result struct {
	Reels   [3]string
	Outcome Outcome
}

// Spin draws three symbols and classifies the combination.
func Spin(rng *rand.Rand) Result {
	var reels [3]string
	for i := range reels {
		reels[i] = Symbols[rng.Intn(len(Symbols))]
	}
	return Result{Reels: reels, Outcome: Classify(reels)}
}

// Classify partitions a reel combination: all three equal is a triple,
// exactly two equal (any pairing) a double, all distinct a loss.
func Classify(reels [3]string) Outcome {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		return Triple
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		return Double
	default:
		return Loss
	}
}

// Delta returns the net balance change for a bet: a triple pays
// bet*(multiplier-1) profit, a double likewise, a miss costs the bet.
func (r Result) Delta(bet int64) int64 {
	switch r.Outcome {
	case Triple:
		return bet * (utils.SlotTripleMultiplier - 1)
	case Double:
		return bet * (utils.SlotDoubleMultiplier - 1)
	default:
		return -bet
	}
}

// Won reports whether the spin increments the win counter.
func (r Result) Won() bool {
	return r.Outcome != Loss
}
