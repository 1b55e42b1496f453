package utils

import "errors"

// ErrSelfTransfer rejects gifting currency to yourself.
var ErrSelfTransfer = errors.New("cannot transfer to yourself")

// TransferResult carries the post-transfer balances for display.
type TransferResult struct {
	FromBalance int64
	ToBalance   int64
}

// Transfer moves amount from one account to another. Debit and credit happen
// in a single store cycle and save, so a half-applied transfer cannot be
// observed or persisted. Sender delta plus recipient delta is always zero.
func Transfer(l *Ledger, fromID, toID string, amount int64) (TransferResult, error) {
	var res TransferResult
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		if amount <= 0 {
			return false, ErrInvalidBet
		}
		if fromID == toID {
			return false, ErrSelfTransfer
		}

		from, _ := ensureAccount(accounts, fromID)
		if from.Balance < amount {
			return false, ErrInsufficientFunds
		}
		to, _ := ensureAccount(accounts, toID)

		from.Balance -= amount
		to.Balance += amount
		res = TransferResult{FromBalance: from.Balance, ToBalance: to.Balance}
		return true, nil
	})
	return res, err
}
