package cogs

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"kingcy-go/utils"

	"github.com/bwmarrin/discordgo"
)

// Economy handles the currency commands: balance, daily, pray, gift, claim,
// leaderboard and help. It owns no state beyond its ledger handle.
type Economy struct {
	Ledger *utils.Ledger
	Cfg    utils.Config
}

// Commands returns the slash commands this cog registers.
func (e *Economy) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Check your " + utils.CurrencyName + " balance and gambling stats",
		},
		{
			Name:        "daily",
			Description: "Claim your daily " + utils.CurrencyName + " reward",
		},
		{
			Name:        "pray",
			Description: "Pray for " + utils.CurrencyName + " (3 per day, streak bonus)",
		},
		{
			Name:        "gift",
			Description: "Gift " + utils.CurrencyName + " to another user",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionUser, Name: "user", Description: "Recipient", Required: true},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount to gift", Required: true},
			},
		},
		{
			Name:        "claim",
			Description: "Claim " + utils.CurrencyName + " (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Amount to claim", Required: true},
			},
		},
		{
			Name:        "leaderboard",
			Description: "Show the top " + utils.CurrencyName + " holders",
		},
		{
			Name:        "help",
			Description: "List all commands",
		},
	}
}

// HandleBalance handles /balance
func (e *Economy) HandleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	acct, err := e.Ledger.Ensure(user.ID)
	if err != nil {
		utils.SendErrorResponse(s, i, "Something went wrong accessing your account. Please try again.")
		return
	}

	embed := utils.CreateBrandedEmbed(
		fmt.Sprintf("%s's %s Balance", user.Username, utils.CurrencyName),
		fmt.Sprintf("You currently have **%s**.", utils.FormatCurrency(acct.Balance)),
		utils.ColorSuccess,
	)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "🪙 Coin Flip", Value: fmt.Sprintf("%d W / %d L", acct.WinsFlip, acct.LossesFlip), Inline: true},
		{Name: "🎰 Slots", Value: fmt.Sprintf("%d W / %d L", acct.WinsSlot, acct.LossesSlot), Inline: true},
		{Name: "🃏 Blackjack", Value: fmt.Sprintf("%d W / %d L", acct.WinsBj, acct.LossesBj), Inline: true},
		{Name: "📊 Total Gambled", Value: utils.FormatCurrency(acct.TotalGambled), Inline: false},
	}
	utils.SendEmbedResponse(s, i, embed)
}

// HandleDaily handles /daily
func (e *Economy) HandleDaily(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	res, err := utils.ClaimDaily(e.Ledger, user.ID, time.Now())
	if err != nil {
		var cd *utils.CooldownError
		if errors.As(err, &cd) {
			utils.SendErrorResponse(s, i, fmt.Sprintf("You already claimed your daily reward! You can claim again in **%s**.", utils.FormatDuration(cd.Remaining)))
			return
		}
		log.Printf("Daily claim failed for user %s: %v", user.ID, err)
		utils.SendErrorResponse(s, i, "Something went wrong claiming your reward. Please try again.")
		return
	}

	embed := utils.CreateBrandedEmbed(
		utils.CurrencySymbol+" Daily "+utils.CurrencyName+" Claimed!",
		fmt.Sprintf("You received **%s**!", utils.FormatCurrency(res.Reward)),
		utils.ColorReward,
	)
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(res.NewBalance)
	utils.SendEmbedResponse(s, i, embed)
}

// HandlePray handles /pray
func (e *Economy) HandlePray(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	res, err := utils.ClaimPray(e.Ledger, user.ID, time.Now())
	if err != nil {
		if errors.Is(err, utils.ErrPrayLimit) {
			utils.SendErrorResponse(s, i, fmt.Sprintf("You have already prayed %d times today. Come back tomorrow!", utils.MaxPraysPerDay))
			return
		}
		log.Printf("Pray claim failed for user %s: %v", user.ID, err)
		utils.SendErrorResponse(s, i, "Something went wrong. Please try again.")
		return
	}

	embed := utils.CreateBrandedEmbed(
		"🙏 Prayer Answered!",
		fmt.Sprintf("You received **%s**!", utils.FormatCurrency(res.Reward)),
		utils.ColorReward,
	)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Prayers Today", Value: fmt.Sprintf("%d/%d", res.PraysToday, utils.MaxPraysPerDay), Inline: true},
		{Name: "🔥 Streak", Value: fmt.Sprintf("%d days", res.Streak), Inline: true},
	}
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(res.NewBalance)
	utils.SendEmbedResponse(s, i, embed)
}

// HandleGift handles /gift
func (e *Economy) HandleGift(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	options := i.ApplicationCommandData().Options
	if len(options) < 2 {
		utils.SendErrorResponse(s, i, "Usage: /gift <user> <amount>")
		return
	}
	recipient := options[0].UserValue(s)
	amount := options[1].IntValue()
	if recipient == nil {
		utils.SendErrorResponse(s, i, "Could not resolve that user.")
		return
	}

	if _, err := e.Ledger.Ensure(user.ID); err != nil {
		utils.SendErrorResponse(s, i, "Something went wrong accessing your account. Please try again.")
		return
	}

	res, err := utils.Transfer(e.Ledger, user.ID, recipient.ID, amount)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidBet):
			utils.SendErrorResponse(s, i, "Please gift a positive amount.")
		case errors.Is(err, utils.ErrSelfTransfer):
			utils.SendErrorResponse(s, i, "You cannot gift "+utils.CurrencyName+" to yourself.")
		case errors.Is(err, utils.ErrInsufficientFunds):
			utils.SendErrorResponse(s, i, "You don't have enough "+utils.CurrencyName+" for that gift.")
		default:
			log.Printf("Gift from %s to %s failed: %v", user.ID, recipient.ID, err)
			utils.SendErrorResponse(s, i, "Something went wrong. Please try again.")
		}
		return
	}

	embed := utils.CreateBrandedEmbed(
		"🎁 Gift Sent!",
		fmt.Sprintf("%s gifted **%s** to %s!", user.Mention(), utils.FormatCurrency(amount), recipient.Mention()),
		utils.ColorSuccess,
	)
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(res.FromBalance)
	utils.SendEmbedResponse(s, i, embed)
}

// HandleClaim handles /claim, gated behind the configured admin role.
func (e *Economy) HandleClaim(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	if !e.hasAdminRole(i) {
		utils.SendErrorResponse(s, i, "You don't have permission to use this command.")
		return
	}

	options := i.ApplicationCommandData().Options
	if len(options) < 1 {
		utils.SendErrorResponse(s, i, "Usage: /claim <amount>")
		return
	}
	amount := options[0].IntValue()
	if amount <= 0 {
		utils.SendErrorResponse(s, i, "Please claim a positive amount.")
		return
	}

	acct, err := utils.Settle(e.Ledger, user.ID, amount, utils.StatDeltas{})
	if err != nil {
		log.Printf("Claim failed for user %s: %v", user.ID, err)
		utils.SendErrorResponse(s, i, "Something went wrong. Please try again.")
		return
	}

	embed := utils.CreateBrandedEmbed(
		utils.CurrencySymbol+" Claimed!",
		fmt.Sprintf("Added **%s** to your balance.", utils.FormatCurrency(amount)),
		utils.ColorReward,
	)
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(acct.Balance)
	utils.SendEmbedResponse(s, i, embed)
}

// HandleLeaderboard handles /leaderboard
func (e *Economy) HandleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// Rank outside the store cycle: the exclusion predicate hits the
	// Discord API and must not stall other users' commands.
	snapshot := make(map[string]*utils.Account)
	e.Ledger.View(func(accounts map[string]*utils.Account) {
		for userID, acct := range accounts {
			clone := *acct
			snapshot[userID] = &clone
		}
	})
	entries := utils.TopBalances(snapshot, utils.LeaderboardSize, e.excludePredicate(s, i.GuildID))

	if len(entries) == 0 {
		utils.SendEmbedResponse(s, i, utils.CreateBrandedEmbed(
			utils.CurrencySymbol+" Leaderboard",
			"The leaderboard is currently empty. Start earning "+utils.CurrencyName+"!",
			utils.BotColor,
		))
		return
	}

	var board strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&board, "**%d.** %s - **%s**\n",
			entry.Rank, e.displayName(s, entry.UserID), utils.FormatCurrency(entry.Balance))
	}

	embed := utils.CreateBrandedEmbed(
		fmt.Sprintf("%s Top %d %s Leaders", utils.CurrencySymbol, utils.LeaderboardSize, utils.CurrencyName),
		board.String(),
		utils.BotColor,
	)
	embed.Footer.Text = "Keep earning to reach the top!"
	utils.SendEmbedResponse(s, i, embed)
}

// HandleHelp handles /help
func (e *Economy) HandleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := utils.CreateBrandedEmbed(utils.CurrencyName+" Commands", "", utils.BotColor)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "/balance", Value: "Check your balance and stats"},
		{Name: "/daily", Value: "Claim your daily reward (every 24h)"},
		{Name: "/pray", Value: fmt.Sprintf("Pray for %s, %d times per day, consecutive days build a streak", utils.CurrencyName, utils.MaxPraysPerDay)},
		{Name: "/gift <user> <amount>", Value: "Gift " + utils.CurrencyName + " to another user"},
		{Name: "/flip <heads|tails> <amount>", Value: "Flip a coin, win your bet back double"},
		{Name: "/slot <amount>", Value: "Spin the slot machine"},
		{Name: "/blackjack <amount>", Value: "Play a hand of blackjack against the dealer"},
		{Name: "/leaderboard", Value: fmt.Sprintf("Show the top %d holders", utils.LeaderboardSize)},
		{Name: "/remind <duration> <unit> <message>", Value: "Set a reminder (up to 24h)"},
	}
	utils.SendEmbedResponse(s, i, embed)
}

// hasAdminRole reports whether the invoking member carries the configured
// admin role. DMs have no member and therefore no role.
func (e *Economy) hasAdminRole(i *discordgo.InteractionCreate) bool {
	if e.Cfg.AdminRoleID == "" || i.Member == nil {
		return false
	}
	for _, role := range i.Member.Roles {
		if role == e.Cfg.AdminRoleID {
			return true
		}
	}
	return false
}

// excludePredicate hides members holding the admin role from the
// leaderboard. Lookup failures exclude nobody.
func (e *Economy) excludePredicate(s *discordgo.Session, guildID string) func(string) bool {
	if e.Cfg.AdminRoleID == "" || guildID == "" {
		return nil
	}
	return func(userID string) bool {
		member, err := s.GuildMember(guildID, userID)
		if err != nil {
			return false
		}
		for _, role := range member.Roles {
			if role == e.Cfg.AdminRoleID {
				return true
			}
		}
		return false
	}
}

// displayName resolves a user ID to a display name, falling back to a
// truncated identifier when the lookup fails.
func (e *Economy) displayName(s *discordgo.Session, userID string) string {
	user, err := s.User(userID)
	if err != nil || user == nil {
		if len(userID) > 4 {
			return "User#" + userID[:4]
		}
		return "User#" + userID
	}
	return user.Username
}
