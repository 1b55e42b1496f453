package cogs

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"kingcy-go/games/blackjack"
	"kingcy-go/games/coinflip"
	"kingcy-go/games/slots"
	"kingcy-go/utils"

	"github.com/bwmarrin/discordgo"
)

// Games handles the gambling commands: flip, slot and blackjack.
type Games struct {
	Ledger *utils.Ledger
}

const (
	slotSpinFrames        = 3
	slotSpinFrameInterval = 600 * time.Millisecond
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Commands returns the slash commands this cog registers.
func (g *Games) Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "flip",
			Description: "Flip a coin for a 2x payout",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type: discordgo.ApplicationCommandOptionString, Name: "choice",
					Description: "Heads or tails", Required: true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Heads", Value: string(coinflip.Heads)},
						{Name: "Tails", Value: string(coinflip.Tails)},
					},
				},
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Bet amount", Required: true},
			},
		},
		{
			Name:        "slot",
			Description: "Spin the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Bet amount", Required: true},
			},
		},
		{
			Name:        "blackjack",
			Description: "Play a hand of blackjack against the dealer",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionInteger, Name: "amount", Description: "Bet amount", Required: true},
			},
		},
	}
}

// respondBetError maps wager rejections to user-facing messages.
func respondBetError(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidBet):
		utils.SendErrorResponse(s, i, "Please bet a positive amount.")
	case errors.Is(err, utils.ErrInsufficientFunds):
		utils.SendErrorResponse(s, i, "You don't have enough "+utils.CurrencyName+" for that bet.")
	default:
		log.Printf("Wager failed for user %s: %v", userID, err)
		utils.SendErrorResponse(s, i, "Something went wrong processing your bet. Please try again.")
	}
}

// HandleFlip handles /flip
func (g *Games) HandleFlip(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	options := i.ApplicationCommandData().Options
	if len(options) < 2 {
		utils.SendErrorResponse(s, i, "Usage: /flip <heads|tails> <amount>")
		return
	}
	choice, err := coinflip.ParseChoice(options[0].StringValue())
	if err != nil {
		utils.SendErrorResponse(s, i, "Invalid choice. Please choose heads or tails.")
		return
	}
	amount := options[1].IntValue()

	if _, err := g.Ledger.Ensure(user.ID); err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	res := coinflip.Flip(newRand(), choice)
	stats := utils.StatDeltas{TotalGambled: amount}
	if res.Won {
		stats.WinsFlip = 1
	} else {
		stats.LossesFlip = 1
	}

	acct, err := utils.SettleWager(g.Ledger, user.ID, amount, res.Delta(amount), stats)
	if err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	var message string
	color := utils.ColorFailure
	if res.Won {
		message = fmt.Sprintf("It's **%s**! 🎉 You won **%s**!", strings.ToUpper(string(res.Landed)), utils.FormatCurrency(amount))
		color = utils.ColorSuccess
	} else {
		message = fmt.Sprintf("It's **%s**! 💔 You lost **%s**.", strings.ToUpper(string(res.Landed)), utils.FormatCurrency(amount))
	}

	embed := utils.CreateBrandedEmbed("🪙 Coin Flip", message, color)
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(acct.Balance)
	utils.SendEmbedResponse(s, i, embed)
}

// HandleSlot handles /slot. The reveal animation runs on its own goroutine
// so the spin never holds up anyone else's commands.
func (g *Games) HandleSlot(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	options := i.ApplicationCommandData().Options
	if len(options) < 1 {
		utils.SendErrorResponse(s, i, "Usage: /slot <amount>")
		return
	}
	amount := options[0].IntValue()

	if _, err := g.Ledger.Ensure(user.ID); err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	res := slots.Spin(newRand())
	stats := utils.StatDeltas{TotalGambled: amount}
	if res.Won() {
		stats.WinsSlot = 1
	} else {
		stats.LossesSlot = 1
	}

	// Settle before showing anything so the displayed result is already
	// durable.
	acct, err := utils.SettleWager(g.Ledger, user.ID, amount, res.Delta(amount), stats)
	if err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	if err := utils.DeferResponse(s, i); err != nil {
		log.Printf("Slot defer failed for user %s: %v", user.ID, err)
		return
	}

	go func() {
		for frame := 0; frame < slotSpinFrames; frame++ {
			spinning := utils.CreateBrandedEmbed("🎰 Slot Machine", "**| 🎲 | 🎲 | 🎲 |**\n\nSpinning...", utils.BotColor)
			utils.EditResponse(s, i, spinning)
			time.Sleep(slotSpinFrameInterval)
		}

		reels := fmt.Sprintf("| %s | %s | %s |", res.Reels[0], res.Reels[1], res.Reels[2])
		var message string
		var color int
		switch res.Outcome {
		case slots.Triple:
			message = fmt.Sprintf("**%s**\n\n🎉 TRIPLE MATCH! You won **%s**!", reels, utils.FormatCurrency(res.Delta(amount)))
			color = utils.ColorReward
		case slots.Double:
			message = fmt.Sprintf("**%s**\n\n✨ DOUBLE MATCH! You won **%s**!", reels, utils.FormatCurrency(res.Delta(amount)))
			color = utils.ColorSuccess
		default:
			message = fmt.Sprintf("**%s**\n\n😭 No match. You lost **%s**.", reels, utils.FormatCurrency(amount))
			color = utils.ColorFailure
		}

		embed := utils.CreateBrandedEmbed("🎰 Slot Machine", message, color)
		embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(acct.Balance)
		if err := utils.EditResponse(s, i, embed); err != nil {
			log.Printf("Slot reveal failed for user %s: %v", user.ID, err)
		}
	}()
}

// HandleBlackjack handles /blackjack
func (g *Games) HandleBlackjack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	options := i.ApplicationCommandData().Options
	if len(options) < 1 {
		utils.SendErrorResponse(s, i, "Usage: /blackjack <amount>")
		return
	}
	amount := options[0].IntValue()

	if _, err := g.Ledger.Ensure(user.ID); err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	res := blackjack.Play(newRand())
	stats := utils.StatDeltas{TotalGambled: amount}
	switch res.Outcome {
	case blackjack.Win:
		stats.WinsBj = 1
	case blackjack.Loss:
		stats.LossesBj = 1
	}

	acct, err := utils.SettleWager(g.Ledger, user.ID, amount, res.Delta(amount), stats)
	if err != nil {
		respondBetError(s, i, user.ID, err)
		return
	}

	var outcome string
	var color int
	switch {
	case res.Outcome == blackjack.Win && res.Natural:
		outcome = "Blackjack! (Win 1.5x bet)"
		color = utils.ColorReward
	case res.Outcome == blackjack.Win && res.DealerScore > 21:
		outcome = "Dealer Busts! (Win 1x bet)"
		color = utils.ColorSuccess
	case res.Outcome == blackjack.Win:
		outcome = "You Win! (Win 1x bet)"
		color = utils.ColorSuccess
	case res.Outcome == blackjack.Push:
		outcome = "Push (Tie)"
		color = utils.ColorNeutral
	case res.PlayerScore > 21:
		outcome = "You Bust! (Dealer Wins)"
		color = utils.ColorFailure
	default:
		outcome = "Dealer Wins!"
		color = utils.ColorFailure
	}

	embed := utils.CreateBrandedEmbed("🃏 Blackjack", fmt.Sprintf("**Bet:** %s", utils.FormatCurrency(amount)), color)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Your Hand", Value: fmt.Sprintf("%s\nScore: %d", res.PlayerHand.String(), res.PlayerScore), Inline: false},
		{Name: "Dealer's Hand", Value: fmt.Sprintf("%s\nScore: %d", res.DealerHand.String(), res.DealerScore), Inline: false},
		{Name: "Outcome", Value: "**" + outcome + "**", Inline: true},
		{Name: "Net Change", Value: utils.FormatCurrency(res.Delta(amount)), Inline: true},
	}
	embed.Footer.Text = "Your new balance is " + utils.FormatCurrency(acct.Balance)
	utils.SendEmbedResponse(s, i, embed)
}
