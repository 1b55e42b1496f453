package utils

import "math/rand"

// Card represents a playing card
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

// String returns the string representation of a card
func (c Card) String() string {
	return c.Rank + c.Suit
}

// IsAce checks if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == "A"
}

// CardRanks defines the blackjack values for card ranks. Aces count as 11
// until the hand would bust.
var CardRanks = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 10, "Q": 10, "K": 10, "A": 11,
}

// CardSuits defines the available card suits
var CardSuits = []string{"♠️", "♥️", "♦️", "♣️"}

var cardRankOrder = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Deck represents a shuffled 52-card deck
type Deck struct {
	Cards []Card
	Dealt int
}

// NewDeck creates a freshly shuffled standard deck using the supplied
// randomness source.
func NewDeck(rng *rand.Rand) *Deck {
	deck := &Deck{Cards: make([]Card, 0, 52)}
	for _, suit := range CardSuits {
		for _, rank := range cardRankOrder {
			deck.Cards = append(deck.Cards, Card{Rank: rank, Suit: suit})
		}
	}
	rng.Shuffle(len(deck.Cards), func(i, j int) {
		deck.Cards[i], deck.Cards[j] = deck.Cards[j], deck.Cards[i]
	})
	return deck
}

// Deal deals one card from the deck
func (d *Deck) Deal() Card {
	card := d.Cards[d.Dealt]
	d.Dealt++
	return card
}

// Hand represents a blackjack hand
type Hand struct {
	Cards []Card
}

// AddCard adds a card to the hand
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
}

// Value calculates the best blackjack value of the hand, soft-reducing aces
// from 11 to 1 while the total exceeds 21.
func (h *Hand) Value() int {
	total := 0
	aces := 0
	for _, card := range h.Cards {
		total += CardRanks[card.Rank]
		if card.IsAce() {
			aces++
		}
	}
	for aces > 0 && total > 21 {
		total -= 10
		aces--
	}
	return total
}

// IsBlackjack checks if the hand is a natural (21 with two cards)
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Value() == 21
}

// IsBusted checks if the hand is over 21
func (h *Hand) IsBusted() bool {
	return h.Value() > 21
}

// String returns string representation of the hand
func (h *Hand) String() string {
	result := ""
	for i, card := range h.Cards {
		if i > 0 {
			result += " "
		}
		result += card.String()
	}
	return result
}
