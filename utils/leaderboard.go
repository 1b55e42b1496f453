package utils

import "sort"

// LeaderboardEntry is one ranked row of the balance leaderboard.
type LeaderboardEntry struct {
	Rank    int
	UserID  string
	Balance int64
}

// TopBalances ranks accounts by balance descending and truncates to n.
// Accounts with a non-positive balance never appear, nor do accounts the
// exclude predicate matches (nil means exclude nobody). Ties order by user
// ID so the ranking is stable across runs. The predicate is consulted in
// rank order and only until the board fills, so a predicate backed by API
// lookups runs against a handful of candidates, not the whole account map.
func TopBalances(accounts map[string]*Account, n int, exclude func(userID string) bool) []LeaderboardEntry {
	candidates := make([]LeaderboardEntry, 0, len(accounts))
	for userID, acct := range accounts {
		if acct.Balance <= 0 {
			continue
		}
		candidates = append(candidates, LeaderboardEntry{UserID: userID, Balance: acct.Balance})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Balance != candidates[j].Balance {
			return candidates[i].Balance > candidates[j].Balance
		}
		return candidates[i].UserID < candidates[j].UserID
	})

	entries := make([]LeaderboardEntry, 0, n)
	for _, candidate := range candidates {
		if len(entries) == n {
			break
		}
		if exclude != nil && exclude(candidate.UserID) {
			continue
		}
		candidate.Rank = len(entries) + 1
		entries = append(entries, candidate)
	}
	return entries
}
