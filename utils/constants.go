package utils

import "time"

// General Configuration
const (
	CurrencyName   = "Kingcy"
	CurrencySymbol = "👑"
	BotColor       = 0x4287f5
)

// Embed colors
const (
	ColorSuccess = 0x00ff00
	ColorFailure = 0xff0000
	ColorNeutral = 0x95a5a6
	ColorReward  = 0xffd700
)

// Economy
const (
	InitialBalance int64 = 500
	DailyReward    int64 = 200
	DailyCooldown        = 24 * time.Hour

	PrayBaseReward  int64 = 150
	PrayStreakBonus int64 = 25
	MaxPraysPerDay        = 3
)

// Slot machine payout multipliers. Settlement works in net deltas, so a
// triple pays bet*(SlotTripleMultiplier-1) profit and a miss costs the bet.
const (
	SlotTripleMultiplier int64 = 10
	SlotDoubleMultiplier int64 = 2
)

// Blackjack Game Constants
const (
	DealerStandValue = 17
)

// Display
const (
	LeaderboardSize = 10
)

// Reminders
const (
	MaxReminderDuration = 24 * time.Hour
)
