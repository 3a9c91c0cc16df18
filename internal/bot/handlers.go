package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/tonyprice/nhldata/catalog"
	"github.com/tonyprice/nhldata/internal/service"
)

type Handler struct {
	statsService *service.StatsService
}

func NewHandler(statsService *service.StatsService) *Handler {
	return &Handler{statsService: statsService}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to the NHL stats bot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/scores [YYYY-MM-DD] - Get scores for a date (today by default)\n/standings - Get league standings\n/roster <team> [season] - View a team's roster\n/leaders <skaters|goalies> <attr> - Get statistical leaders\n/schedule <team> - Get a team's upcoming games"
	case "scores":
		h.handleScores(&msg, args)
	case "standings":
		h.handleStandings(&msg)
	case "roster":
		h.handleRoster(&msg, args)
	case "leaders":
		h.handleLeaders(&msg, args)
	case "schedule":
		h.handleSchedule(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleScores(msg *tgbotapi.MessageConfig, args string) {
	scores, err := h.statsService.GetScores(strings.TrimSpace(args))
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching scores: %v", err)
	} else {
		msg.Text = scores
	}
}

func (h *Handler) handleStandings(msg *tgbotapi.MessageConfig) {
	standings, err := h.statsService.GetStandings()
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching standings: %v", err)
	} else {
		msg.Text = standings
	}
}

func (h *Handler) handleRoster(msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		msg.Text = "Please provide a team. Usage: /roster <team> [season]"
		return
	}
	// Team names are multi-word, so the last token is a season only when it
	// parses as one.
	season := ""
	if len(fields) > 1 {
		if _, err := catalog.NormalizeSeason(fields[len(fields)-1]); err == nil {
			season = fields[len(fields)-1]
			fields = fields[:len(fields)-1]
		}
	}
	roster, err := h.statsService.GetRoster(strings.Join(fields, " "), season)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching roster: %v", err)
	} else {
		msg.Text = roster
	}
}

func (h *Handler) handleLeaders(msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		msg.Text = "Usage: /leaders <skaters|goalies> <attr>, e.g. /leaders skaters points"
		return
	}
	leaders, err := h.statsService.GetLeaders(fields[0], fields[1])
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching leaders: %v", err)
	} else {
		msg.Text = leaders
	}
}

func (h *Handler) handleSchedule(msg *tgbotapi.MessageConfig, args string) {
	if strings.TrimSpace(args) == "" {
		msg.Text = "Please provide a team. Usage: /schedule <team>"
		return
	}
	schedule, err := h.statsService.GetSchedule(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching schedule: %v", err)
	} else {
		msg.Text = schedule
	}
}
