package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/MatchPredictor/internal/analyzer"
	"github.com/Alias1177/MatchPredictor/internal/config"
	"github.com/Alias1177/MatchPredictor/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading configuration failed")
	}

	setupLogging(cfg.LogLevel)

	req, err := readRequest(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("reading analysis request failed")
	}

	a := analyzer.New(nil, analyzer.WithMaxGoals(cfg.MaxGoalsPerSide))
	analysis, err := a.Analyze(req)
	if err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}

	printReport(analysis)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// readRequest takes the request JSON from the file named in the first
// argument, or from stdin when no argument is given.
func readRequest(args []string) (models.AnalysisRequest, error) {
	var req models.AnalysisRequest

	source := os.Stdin
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return req, err
		}
		defer f.Close()
		source = f
	}

	dec := json.NewDecoder(source)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

func printReport(a *models.MatchAnalysis) {
	fmt.Printf("\n===== MATCH ANALYSIS =====\n")
	fmt.Printf("%s (%s) vs %s (%s)\n", a.HomeTeam, a.HomeTier, a.AwayTeam, a.AwayTier)
	fmt.Printf("League: %s, Context: %s\n", a.League, a.Context)

	fmt.Printf("\n===== EXPECTED GOALS =====\n")
	fmt.Printf("Home: %.2f\n", a.ExpectedGoals.HomeExpected)
	fmt.Printf("Away: %.2f\n", a.ExpectedGoals.AwayExpected)
	fmt.Printf("Total: %.2f\n", a.ExpectedGoals.TotalExpected)

	fmt.Printf("\n===== PROBABILITIES =====\n")
	fmt.Printf("1X2: %.1f%% / %.1f%% / %.1f%%\n",
		a.Probabilities.HomeWin, a.Probabilities.Draw, a.Probabilities.AwayWin)
	fmt.Printf("BTTS: %.1f%%\n", a.Probabilities.BTTSProb)
	fmt.Printf("Over 2.5: %.1f%%, Under 2.5: %.1f%%\n",
		a.Probabilities.Over25Chance, a.Probabilities.Under25Chance)

	fmt.Printf("\n===== MATCH PROFILE =====\n")
	fmt.Printf("%s / %s (confidence: %s)\n", a.Profile.Primary, a.Profile.SubProfile, a.Profile.Confidence)

	if len(a.Opportunities) > 0 {
		fmt.Printf("\n===== VALUE OPPORTUNITIES =====\n")
		for _, opp := range a.Opportunities {
			fmt.Printf("- %s @ %.2f: our %.1f%% vs implied %.1f%% (edge %+.1f) %s\n",
				opp.Market, opp.Odds, opp.OurProb, opp.ImpliedProb, opp.Edge,
				strings.Repeat("*", opp.Stars))
		}
	}

	fmt.Printf("\n===== LIKELY SCORELINES =====\n")
	for _, line := range a.Scorelines {
		fmt.Printf("- %d:%d (%.2f%%) [%s]\n", line.HomeGoals, line.AwayGoals, line.Probability, line.Tag)
	}
}
