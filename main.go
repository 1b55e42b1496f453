package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"kingcy-go/cogs"
	"kingcy-go/utils"

	"github.com/bwmarrin/discordgo"
)

var botStatus = "starting"

func main() {
	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	go startHealthServer(cfg.Port)

	ledger, err := utils.OpenLedger(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to open ledger %s: %v", cfg.DataFile, err)
	}
	defer ledger.Close()

	if cfg.BotToken == "" {
		log.Println("BOT_TOKEN not set - Discord bot will not connect")
		botStatus = "no_token"
		select {}
	}

	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	scheduler := utils.NewReminderScheduler(func(r utils.Reminder) {
		msg := fmt.Sprintf("⏰ <@%s> Reminder: %s", r.UserID, r.Message)
		if _, err := session.ChannelMessageSend(r.ChannelID, msg); err != nil {
			log.Printf("Failed to deliver reminder for user %s: %v", r.UserID, err)
		}
	})

	economy := &cogs.Economy{Ledger: ledger, Cfg: cfg}
	games := &cogs.Games{Ledger: ledger}
	reminders := &cogs.Reminders{Scheduler: scheduler}

	session.AddHandler(func(s *discordgo.Session, event *discordgo.Ready) {
		log.Printf("Logged in as %s (ID: %s)", event.User.Username, event.User.ID)
		botStatus = "online"
		if err := registerCommands(s, economy, games, reminders); err != nil {
			log.Printf("Failed to register slash commands: %v", err)
		}
	})

	session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		switch i.ApplicationCommandData().Name {
		case "balance":
			economy.HandleBalance(s, i)
		case "daily":
			economy.HandleDaily(s, i)
		case "pray":
			economy.HandlePray(s, i)
		case "gift":
			economy.HandleGift(s, i)
		case "claim":
			economy.HandleClaim(s, i)
		case "leaderboard":
			economy.HandleLeaderboard(s, i)
		case "help":
			economy.HandleHelp(s, i)
		case "flip":
			games.HandleFlip(s, i)
		case "slot":
			games.HandleSlot(s, i)
		case "blackjack":
			games.HandleBlackjack(s, i)
		case "remind":
			reminders.HandleRemind(s, i)
		}
	})

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to open Discord connection: %v", err)
	}
	defer session.Close()

	log.Println("Bot is now running. Press CTRL+C to exit.")
	botStatus = "running"

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-stop

	log.Println("Gracefully shutting down...")
	botStatus = "shutting_down"
}

func registerCommands(s *discordgo.Session, economy *cogs.Economy, games *cogs.Games, reminders *cogs.Reminders) error {
	var commands []*discordgo.ApplicationCommand
	commands = append(commands, economy.Commands()...)
	commands = append(commands, games.Commands()...)
	commands = append(commands, reminders.Command())

	for _, command := range commands {
		if _, err := s.ApplicationCommandCreate(s.State.User.ID, "", command); err != nil {
			return fmt.Errorf("failed to create command %s: %w", command.Name, err)
		}
	}
	log.Printf("Successfully registered %d slash commands", len(commands))
	return nil
}

func startHealthServer(port string) {
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "running: %s", botStatus)
	})

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status":"healthy","service":"kingcy-bot","bot_status":"%s"}`, botStatus)
	})

	log.Printf("Health server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Printf("Health server error: %v", err)
	}
}
