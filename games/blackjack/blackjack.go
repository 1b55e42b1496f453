package blackjack

import (
	"math/rand"

	"kingcy-go/utils"
)

// Outcome classifies a resolved round. A push increments neither counter.
type Outcome int

const (
	Loss Outcome = iota
	Win
	Push
)

// Result is one fully played round against the scripted dealer.
type Result struct {
	PlayerHand  utils.Hand
	DealerHand  utils.Hand
	PlayerScore int
	DealerScore int
	Outcome     Outcome
	Natural     bool
}

// Play deals two cards each from a freshly shuffled deck and resolves the
// round. The player makes no decisions: a natural 21 pays immediately,
// otherwise the dealer draws to DealerStandValue and the totals compare.
func Play(rng *rand.Rand) Result {
	deck := utils.NewDeck(rng)

	var player, dealer utils.Hand
	player.AddCard(deck.Deal())
	dealer.AddCard(deck.Deal())
	player.AddCard(deck.Deal())
	dealer.AddCard(deck.Deal())

	res := Result{PlayerHand: player, DealerHand: dealer}

	if player.IsBlackjack() {
		res.Natural = true
		if dealer.IsBlackjack() {
			res.Outcome = Push
		} else {
			res.Outcome = Win
		}
		res.PlayerScore = player.Value()
		res.DealerScore = dealer.Value()
		return res
	}

	for dealer.Value() < utils.DealerStandValue {
		dealer.AddCard(deck.Deal())
	}

	res.DealerHand = dealer
	res.PlayerScore = player.Value()
	res.DealerScore = dealer.Value()

	switch {
	case player.IsBusted():
		res.Outcome = Loss
	case dealer.IsBusted():
		res.Outcome = Win
	case res.PlayerScore > res.DealerScore:
		res.Outcome = Win
	case res.PlayerScore < res.DealerScore:
		res.Outcome = Loss
	default:
		res.Outcome = Push
	}
	return res
}

// Delta returns the net balance change for a bet: a natural pays 1.5x the
// bet in profit, a regular win 1x, a push zero, a loss costs the bet.
func (r Result) Delta(bet int64) int64 {
	switch r.Outcome {
	case Win:
		if r.Natural {
			return bet * 3 / 2
		}
		return bet
	case Push:
		return 0
	default:
		return -bet
	}
}
