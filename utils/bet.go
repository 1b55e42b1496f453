package utils

import "errors"

// Wager validation errors, surfaced to the user as corrective messages.
var (
	ErrInvalidBet        = errors.New("bet must be a positive amount")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// ValidateBet checks a proposed wager against the account's current balance.
// It must run inside the same store cycle that settles the bet so the
// balance it sees is the one the settlement mutates.
func ValidateBet(acct *Account, amount int64) error {
	if amount <= 0 {
		return ErrInvalidBet
	}
	if acct.Balance < amount {
		return ErrInsufficientFunds
	}
	return nil
}
