package coinflip

import (
	"fmt"
	"math/rand"
	"strings"
)

// Choice is a coin-flip call.
type Choice string

const (
	Heads Choice = "heads"
	Tails Choice = "tails"
)

// ParseChoice validates a raw call token.
func ParseChoice(s string) (Choice, error) {
	switch Choice(strings.ToLower(strings.TrimSpace(s))) {
	case Heads:
		return Heads, nil
	case Tails:
		return Tails, nil
	}
	return "", fmt.Errorf("invalid choice %q, pick heads or tails", s)
}

// Result is the outcome of one flip. There is no push: every round has
// exactly one winner.
type Result struct {
	Landed Choice
	Won    bool
}

// Flip draws uniformly from {heads, tails} and resolves the call.
func Flip(rng *rand.Rand, choice Choice) Result {
	landed := Heads
	if rng.Intn(2) == 1 {
		landed = Tails
	}
	return Result{Landed: landed, Won: landed == choice}
}

// Delta returns the net balance change for a bet: +bet on a win, -bet on a
// loss. The bet itself is never moved separately.
func (r Result) Delta(bet int64) int64 {
	if r.Won {
		return bet
	}
	return -bet
}
