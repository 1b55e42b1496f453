package utils

import "encoding/json"

// Account is one user's persisted economy record. Timestamps are RFC 3339
// UTC strings; the empty string means "never claimed".
type Account struct {
	Balance          int64  `json:"balance"`
	DailyLastClaimed string `json:"daily_last_claimed"`
	LastPrayDate     string `json:"last_pray_date"`
	PraysToday       int    `json:"prays_today"`
	PrayStreak       int    `json:"pray_streak"`
	WinsFlip         int    `json:"wins_flip"`
	LossesFlip       int    `json:"losses_flip"`
	WinsSlot         int    `json:"wins_slot"`
	LossesSlot       int    `json:"losses_slot"`
	WinsBj           int    `json:"wins_bj"`
	LossesBj         int    `json:"losses_bj"`
	TotalGambled     int64  `json:"total_gambled"`
}

// accountFields lists every persisted key, used to detect records written by
// an older schema so they can be upgraded on load.
var accountFields = []string{
	"balance",
	"daily_last_claimed",
	"last_pray_date",
	"prays_today",
	"pray_streak",
	"wins_flip",
	"losses_flip",
	"wins_slot",
	"losses_slot",
	"wins_bj",
	"losses_bj",
	"total_gambled",
}

// NewAccount returns an account with default fields for a first-time user.
func NewAccount() *Account {
	return &Account{Balance: InitialBalance}
}

// decodeAccount unmarshals a stored record, back-filling defaults for keys
// the record predates. It reports whether any key was missing, in which case
// the caller should persist the upgraded record.
func decodeAccount(raw json.RawMessage) (*Account, bool, error) {
	acct := NewAccount()
	if err := json.Unmarshal(raw, acct); err != nil {
		return nil, false, err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return nil, false, err
	}
	for _, field := range accountFields {
		if _, ok := keys[field]; !ok {
			return acct, true, nil
		}
	}
	return acct, false, nil
}
