package utils

// StatDeltas names the counter increments a settlement applies alongside the
// balance delta. Exactly one win/loss counter per game family should be set
// for a resolved round; a push sets neither.
type StatDeltas struct {
	WinsFlip   int
	LossesFlip int
	WinsSlot   int
	LossesSlot int
	WinsBj     int
	LossesBj   int

	TotalGambled int64
}

func (s StatDeltas) apply(acct *Account) {
	acct.WinsFlip += s.WinsFlip
	acct.LossesFlip += s.LossesFlip
	acct.WinsSlot += s.WinsSlot
	acct.LossesSlot += s.LossesSlot
	acct.WinsBj += s.WinsBj
	acct.LossesBj += s.LossesBj
	acct.TotalGambled += s.TotalGambled
}

// Settle applies a net balance delta and stat increments to one account and
// persists, returning the updated record for display. This is the only path
// that mutates the balance or the win/loss/gambled counters.
func Settle(l *Ledger, userID string, delta int64, stats StatDeltas) (Account, error) {
	var snapshot Account
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		acct, _ := ensureAccount(accounts, userID)
		acct.Balance += delta
		stats.apply(acct)
		snapshot = *acct
		return true, nil
	})
	return snapshot, err
}

// SettleWager validates bet against the account's live balance and, only if
// valid, applies the game outcome in the same cycle. A rejected wager leaves
// the store untouched.
func SettleWager(l *Ledger, userID string, bet, delta int64, stats StatDeltas) (Account, error) {
	var snapshot Account
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		acct, _ := ensureAccount(accounts, userID)
		if err := ValidateBet(acct, bet); err != nil {
			return false, err
		}
		acct.Balance += delta
		stats.apply(acct)
		snapshot = *acct
		return true, nil
	})
	return snapshot, err
}
