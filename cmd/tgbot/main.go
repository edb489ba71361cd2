package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/MatchPredictor/internal/analyzer"
	"github.com/Alias1177/MatchPredictor/internal/config"
	"github.com/Alias1177/MatchPredictor/internal/last5"
	"github.com/Alias1177/MatchPredictor/internal/storage"
	"github.com/Alias1177/MatchPredictor/internal/tiers"
	"github.com/Alias1177/MatchPredictor/models"
)

const helpText = `Football match analyzer.

/analyze {json} - full pre-match analysis, JSON body after the command
/last5 {json}   - last-5 state classification, body {"home": {...}, "away": {...}}
/help           - this message`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration failed")
	}

	setupLogging(cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN is required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("creating telegram bot failed")
	}
	bot.Debug = cfg.TelegramDebug
	log.Info().Str("account", bot.Self.UserName).Msg("telegram bot authorized")

	registry := tiers.DefaultRegistry()
	if cfg.DatabaseURL != "" {
		db, dbErr := storage.New(cfg.DatabaseURL)
		if dbErr != nil {
			log.Fatal().Err(dbErr).Msg("connecting to database failed")
		}
		defer db.Close()

		registry, err = db.LoadRegistry()
		if err != nil {
			log.Fatal().Err(err).Msg("loading tier registry failed")
		}
	}

	a := analyzer.New(registry, analyzer.WithMaxGoals(cfg.MaxGoalsPerSide))

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	logger := log.With().Str("component", "tgbot").Logger()
	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		handleCommand(bot, a, update.Message, &logger)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func handleCommand(bot *tgbotapi.BotAPI, a *analyzer.Analyzer, message *tgbotapi.Message, logger *zerolog.Logger) {
	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	var reply string
	switch message.Command() {
	case "start", "help":
		reply = helpText
	case "analyze":
		reply = runAnalysis(a, args)
	case "last5":
		reply = runLast5(args)
	default:
		reply = "Unknown command. Send /help for usage."
	}

	msg := tgbotapi.NewMessage(chatID, reply)
	if _, err := bot.Send(msg); err != nil {
		logger.Error().Err(err).Int64("chat_id", chatID).Msg("sending reply failed")
	}
}

func runAnalysis(a *analyzer.Analyzer, payload string) string {
	if payload == "" {
		return "Send the analysis request JSON after the command."
	}

	var req models.AnalysisRequest
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "Could not parse the request JSON: " + err.Error()
	}

	analysis, err := a.Analyze(req)
	if err != nil {
		return "Analysis rejected: " + err.Error()
	}
	return formatAnalysis(analysis)
}

func runLast5(payload string) string {
	if payload == "" {
		return "Send the last-5 JSON after the command."
	}

	var req struct {
		Home map[string]any `json:"home"`
		Away map[string]any `json:"away"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "Could not parse the request JSON: " + err.Error()
	}

	result := last5.ClassifyRaw(req.Home, req.Away)
	if result.ClassificationError {
		return fmt.Sprintf("Classification failed: %s\nmissing: %v\ntype errors: %v",
			result.ErrorMessage, result.MissingFields, result.TypeErrors)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "State: %s\n", result.DominantState)
	fmt.Fprintf(&b, "Durability: %d (%s)\n", result.Durability.Score, result.Durability.Class)
	fmt.Fprintf(&b, "Reliability: %d (%s)\n", result.Reliability.Score, result.Reliability.Label)
	if result.UnderSuggestion != "" {
		fmt.Fprintf(&b, "Suggestion: %s\n", result.UnderSuggestion)
	}
	return b.String()
}

func formatAnalysis(a *models.MatchAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) vs %s (%s)\n", a.HomeTeam, a.HomeTier, a.AwayTeam, a.AwayTier)
	fmt.Fprintf(&b, "xG: %.2f - %.2f (total %.2f)\n",
		a.ExpectedGoals.HomeExpected, a.ExpectedGoals.AwayExpected, a.ExpectedGoals.TotalExpected)
	fmt.Fprintf(&b, "1X2: %.1f%% / %.1f%% / %.1f%%\n",
		a.Probabilities.HomeWin, a.Probabilities.Draw, a.Probabilities.AwayWin)
	fmt.Fprintf(&b, "BTTS %.1f%%, Over 2.5 %.1f%%\n",
		a.Probabilities.BTTSProb, a.Probabilities.Over25Chance)
	fmt.Fprintf(&b, "Profile: %s / %s (%s)\n", a.Profile.Primary, a.Profile.SubProfile, a.Profile.Confidence)

	for _, opp := range a.Opportunities {
		fmt.Fprintf(&b, "Value: %s @ %.2f edge %+.1f %s\n",
			opp.Market, opp.Odds, opp.Edge, strings.Repeat("*", opp.Stars))
	}
	if len(a.Scorelines) > 0 {
		top := a.Scorelines[0]
		fmt.Fprintf(&b, "Most likely score: %d:%d (%.2f%%)\n", top.HomeGoals, top.AwayGoals, top.Probability)
	}
	return b.String()
}
