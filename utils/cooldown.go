package utils

import (
	"errors"
	"fmt"
	"time"
)

// CooldownError reports a timed reward that is not yet claimable.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active, %s remaining", FormatDuration(e.Remaining))
}

// ErrPrayLimit means all prayers for the current UTC day are used up. Not a
// failure, just terminal until the date rolls over.
var ErrPrayLimit = errors.New("pray limit reached for today")

// EvaluateCooldown reports whether a timed reward is claimable at now.
// An empty timestamp always reads as claimable. So does an unparsable one:
// the original bot swallowed parse errors and treated the reward as ready,
// and that fail-open behavior is kept on purpose rather than silently
// tightened (see DESIGN.md).
func EvaluateCooldown(lastClaimed string, cooldown time.Duration, now time.Time) (ready bool, remaining time.Duration) {
	if lastClaimed == "" {
		return true, 0
	}
	claimed, err := time.Parse(time.RFC3339, lastClaimed)
	if err != nil {
		return true, 0
	}
	next := claimed.Add(cooldown)
	if now.Before(next) {
		return false, next.Sub(now)
	}
	return true, 0
}

// DailyResult describes a successful daily claim.
type DailyResult struct {
	Reward     int64
	NewBalance int64
}

// ClaimDaily claims the 24h daily reward for userID, stamping the claim time
// and crediting the reward in one store cycle.
func ClaimDaily(l *Ledger, userID string, now time.Time) (DailyResult, error) {
	var res DailyResult
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		acct, _ := ensureAccount(accounts, userID)

		ready, remaining := EvaluateCooldown(acct.DailyLastClaimed, DailyCooldown, now)
		if !ready {
			return false, &CooldownError{Remaining: remaining}
		}

		acct.Balance += DailyReward
		acct.DailyLastClaimed = now.UTC().Format(time.RFC3339)
		res = DailyResult{Reward: DailyReward, NewBalance: acct.Balance}
		return true, nil
	})
	return res, err
}

// PrayState is the recomputed view of an account's prayer counters at a
// point in time. The stored counters lag behind until the next claim; this
// applies the day-rollover and missed-day rules without mutating anything.
type PrayState struct {
	PraysToday int
	Streak     int
}

// PrayStatus recomputes the prayer counters for now. A stored date other
// than today resets the per-day count; a stored date that is neither today
// nor yesterday (and not the never-claimed sentinel) breaks the streak.
func PrayStatus(acct *Account, now time.Time) PrayState {
	state := PrayState{PraysToday: acct.PraysToday, Streak: acct.PrayStreak}
	if acct.LastPrayDate == "" {
		return PrayState{}
	}

	last, err := time.Parse(time.RFC3339, acct.LastPrayDate)
	if err != nil {
		// Fail-open like the cooldown path: treat as never claimed.
		return PrayState{}
	}

	today := now.UTC().Format("2006-01-02")
	yesterday := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")
	lastDay := last.UTC().Format("2006-01-02")

	if lastDay != today {
		state.PraysToday = 0
	}
	if lastDay != today && lastDay != yesterday {
		state.Streak = 0
	}
	return state
}

// PrayResult describes a successful prayer claim.
type PrayResult struct {
	Reward     int64
	NewBalance int64
	PraysToday int
	Streak     int
}

// ClaimPray performs one prayer claim: up to MaxPraysPerDay per UTC day,
// reward scaling with the consecutive-day streak. The streak advances at
// most once per day, on the first claim of that day.
func ClaimPray(l *Ledger, userID string, now time.Time) (PrayResult, error) {
	var res PrayResult
	err := l.Update(func(accounts map[string]*Account) (bool, error) {
		acct, _ := ensureAccount(accounts, userID)

		state := PrayStatus(acct, now)
		if state.PraysToday >= MaxPraysPerDay {
			return false, ErrPrayLimit
		}

		reward := PrayBaseReward + int64(state.Streak)*PrayStreakBonus
		firstOfDay := state.PraysToday == 0

		acct.Balance += reward
		acct.PraysToday = state.PraysToday + 1
		acct.PrayStreak = state.Streak
		if firstOfDay {
			acct.PrayStreak++
		}
		acct.LastPrayDate = now.UTC().Format(time.RFC3339)

		res = PrayResult{
			Reward:     reward,
			NewBalance: acct.Balance,
			PraysToday: acct.PraysToday,
			Streak:     acct.PrayStreak,
		}
		return true, nil
	})
	return res, err
}
