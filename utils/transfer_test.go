package utils

import (
	"errors"
	"testing"
)

func TestTransferMovesBalanceZeroSum(t *testing.T) {
	l := testLedger(t)
	if _, err := l.Ensure("alice"); err != nil {
		t.Fatal(err)
	}
	if _, err := l.Ensure("bob"); err != nil {
		t.Fatal(err)
	}

	res, err := Transfer(l, "alice", "bob", 200)
	if err != nil {
		t.Fatalf("Transfer failed: %v", err)
	}
	if res.FromBalance != InitialBalance-200 {
		t.Errorf("Expected sender balance %d, got %d", InitialBalance-200, res.FromBalance)
	}
	if res.ToBalance != InitialBalance+200 {
		t.Errorf("Expected recipient balance %d, got %d", InitialBalance+200, res.ToBalance)
	}

	// Sender delta + recipient delta == 0
	total := res.FromBalance + res.ToBalance
	if total != 2*InitialBalance {
		t.Errorf("Transfer created or destroyed currency: total %d", total)
	}
}

func TestTransferCreatesRecipient(t *testing.T) {
	l := testLedger(t)
	if _, err := l.Ensure("alice"); err != nil {
		t.Fatal(err)
	}

	if _, err := Transfer(l, "alice", "newcomer", 100); err != nil {
		t.Fatalf("Transfer to fresh account failed: %v", err)
	}

	acct, _ := l.Ensure("newcomer")
	if acct.Balance != InitialBalance+100 {
		t.Errorf("Expected recipient created with %d, got %d", InitialBalance+100, acct.Balance)
	}
}

func TestTransferRejections(t *testing.T) {
	l := testLedger(t)
	if _, err := l.Ensure("alice"); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		from   string
		to     string
		amount int64
		want   error
	}{
		{"zero amount", "alice", "bob", 0, ErrInvalidBet},
		{"negative amount", "alice", "bob", -10, ErrInvalidBet},
		{"self transfer", "alice", "alice", 10, ErrSelfTransfer},
		{"insufficient", "alice", "bob", InitialBalance + 1, ErrInsufficientFunds},
	}

	for _, tc := range cases {
		if _, err := Transfer(l, tc.from, tc.to, tc.amount); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}

	// No rejection touched the sender
	acct, _ := l.Ensure("alice")
	if acct.Balance != InitialBalance {
		t.Errorf("Rejected transfer mutated balance: %d", acct.Balance)
	}
}
