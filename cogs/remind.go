package cogs

import (
	"errors"
	"fmt"
	"time"

	"kingcy-go/utils"

	"github.com/bwmarrin/discordgo"
)

var (
	errInvalidReminderUnit = errors.New("invalid reminder unit")
	errReminderTooLong     = errors.New("reminder duration exceeds the cap")
)

// reminderWait converts a positive amount in the given unit into a wait
// duration. The amount is bounded against MaxReminderDuration before the
// multiplication, so inputs large enough to overflow time.Duration are
// rejected rather than wrapping negative.
func reminderWait(amount int64, unit string) (time.Duration, error) {
	var scale time.Duration
	switch unit {
	case "h":
		scale = time.Hour
	case "m":
		scale = time.Minute
	case "s":
		scale = time.Second
	default:
		return 0, errInvalidReminderUnit
	}
	if amount > int64(utils.MaxReminderDuration/scale) {
		return 0, errReminderTooLong
	}
	return time.Duration(amount) * scale, nil
}

// Reminders handles the /remind command. Scheduling lives entirely in the
// scheduler; the ledger knows nothing about reminders.
type Reminders struct {
	Scheduler *utils.ReminderScheduler
}

// Command returns the remind slash command.
func (r *Reminders) Command() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "remind",
		Description: "Set a reminder (up to 24h)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionInteger, Name: "duration", Description: "How long to wait", Required: true},
			{
				Type: discordgo.ApplicationCommandOptionString, Name: "unit",
				Description: "Duration unit", Required: true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "hours", Value: "h"},
					{Name: "minutes", Value: "m"},
					{Name: "seconds", Value: "s"},
				},
			},
			{Type: discordgo.ApplicationCommandOptionString, Name: "message", Description: "What to remind you about", Required: true},
		},
	}
}

// HandleRemind handles /remind
func (r *Reminders) HandleRemind(s *discordgo.Session, i *discordgo.InteractionCreate) {
	user := utils.InvokingUser(i)
	options := i.ApplicationCommandData().Options
	if len(options) < 3 {
		utils.SendErrorResponse(s, i, "Usage: /remind <duration> <unit> <message>")
		return
	}

	amount := options[0].IntValue()
	unit := options[1].StringValue()
	message := options[2].StringValue()

	if amount <= 0 {
		utils.SendErrorResponse(s, i, "Please use a positive duration.")
		return
	}

	wait, err := reminderWait(amount, unit)
	switch {
	case errors.Is(err, errInvalidReminderUnit):
		utils.SendErrorResponse(s, i, "Invalid unit. Use h, m or s.")
		return
	case err != nil:
		utils.SendErrorResponse(s, i, fmt.Sprintf("Reminders are capped at %s.", utils.FormatDuration(utils.MaxReminderDuration)))
		return
	}

	r.Scheduler.Schedule(utils.Reminder{
		UserID:    user.ID,
		ChannelID: i.ChannelID,
		Message:   message,
		Deadline:  time.Now().Add(wait),
	})

	embed := utils.CreateBrandedEmbed(
		"⏰ Reminder Set",
		fmt.Sprintf("I'll remind you in **%s**: %s", utils.FormatDuration(wait), message),
		utils.BotColor,
	)
	utils.SendEmbedResponse(s, i, embed)
}
