package utils

import "testing"

func TestTopBalancesFiltersSortsTruncates(t *testing.T) {
	accounts := map[string]*Account{
		"broke":    {Balance: 0},
		"indebted": {Balance: -100},
		"low":      {Balance: 50},
		"mid":      {Balance: 500},
		"high":     {Balance: 5000},
		"admin":    {Balance: 99999},
	}

	entries := TopBalances(accounts, 10, func(userID string) bool { return userID == "admin" })

	wantOrder := []string{"high", "mid", "low"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("Expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("Rank %d: expected %s, got %s", i+1, want, entries[i].UserID)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("Expected rank %d, got %d", i+1, entries[i].Rank)
		}
	}

	// Descending balances
	for i := 1; i < len(entries); i++ {
		if entries[i].Balance > entries[i-1].Balance {
			t.Errorf("Entries not sorted descending at index %d", i)
		}
	}
}

func TestTopBalancesTruncatesToN(t *testing.T) {
	accounts := make(map[string]*Account)
	for i := 0; i < 25; i++ {
		accounts[string(rune('a'+i))] = &Account{Balance: int64(100 + i)}
	}

	entries := TopBalances(accounts, 10, nil)
	if len(entries) != 10 {
		t.Errorf("Expected 10 entries, got %d", len(entries))
	}
	if entries[0].Balance != 124 {
		t.Errorf("Expected highest balance 124 first, got %d", entries[0].Balance)
	}
}

func TestTopBalancesStableTies(t *testing.T) {
	accounts := map[string]*Account{
		"b": {Balance: 100},
		"a": {Balance: 100},
		"c": {Balance: 100},
	}

	entries := TopBalances(accounts, 10, nil)
	wantOrder := []string{"a", "b", "c"}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("Tie order position %d: expected %s, got %s", i, want, entries[i].UserID)
		}
	}
}

func TestTopBalancesBoundsPredicateCalls(t *testing.T) {
	accounts := make(map[string]*Account)
	for i := 0; i < 500; i++ {
		accounts[string(rune('a'+i%26))+string(rune('a'+i/26))] = &Account{Balance: int64(1 + i)}
	}

	calls := 0
	entries := TopBalances(accounts, 10, func(userID string) bool {
		calls++
		return false
	})

	if len(entries) != 10 {
		t.Fatalf("Expected 10 entries, got %d", len(entries))
	}
	if calls != 10 {
		t.Errorf("Predicate ran %d times for a board of 10", calls)
	}
}

func TestTopBalancesSkipsExcludedAndFillsBoard(t *testing.T) {
	accounts := map[string]*Account{
		"admin": {Balance: 9000},
		"high":  {Balance: 800},
		"mid":   {Balance: 500},
		"low":   {Balance: 100},
	}

	calls := 0
	entries := TopBalances(accounts, 3, func(userID string) bool {
		calls++
		return userID == "admin"
	})

	wantOrder := []string{"high", "mid", "low"}
	if len(entries) != len(wantOrder) {
		t.Fatalf("Expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].UserID != want {
			t.Errorf("Rank %d: expected %s, got %s", i+1, want, entries[i].UserID)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("Expected rank %d, got %d", i+1, entries[i].Rank)
		}
	}
	if calls != 4 {
		t.Errorf("Predicate ran %d times, expected 4 (board size plus the excluded candidate)", calls)
	}
}

func TestTopBalancesEmpty(t *testing.T) {
	if entries := TopBalances(map[string]*Account{}, 10, nil); len(entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(entries))
	}
}
