// Package analyzer wires the full pre-match pipeline: tier resolution,
// expected goals, market probabilities, profile classification, value
// detection and the correct-score grid.
package analyzer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/MatchPredictor/internal/engine"
	"github.com/Alias1177/MatchPredictor/internal/leagues"
	"github.com/Alias1177/MatchPredictor/internal/profile"
	"github.com/Alias1177/MatchPredictor/internal/scoreline"
	"github.com/Alias1177/MatchPredictor/internal/tiers"
	"github.com/Alias1177/MatchPredictor/internal/value"
	"github.com/Alias1177/MatchPredictor/models"
)

// Analyzer runs analyses against one tier registry. Safe for concurrent use;
// the registry carries its own lock.
type Analyzer struct {
	registry *tiers.Registry
	maxGoals int
	logger   zerolog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithMaxGoals overrides the score grid bound.
func WithMaxGoals(n int) Option {
	return func(a *Analyzer) { a.maxGoals = n }
}

// New builds an Analyzer on the given registry. A nil registry falls back to
// the built-in tier lists.
func New(registry *tiers.Registry, opts ...Option) *Analyzer {
	if registry == nil {
		registry = tiers.DefaultRegistry()
	}
	a := &Analyzer{
		registry: registry,
		maxGoals: scoreline.DefaultMaxGoals,
		logger:   log.With().Str("component", "analyzer").Logger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry exposes the tier registry for the management surfaces.
func (a *Analyzer) Registry() *tiers.Registry {
	return a.registry
}

// Analyze validates the request and runs the pipeline end to end. Odds are
// optional; without them the result simply carries no value opportunities.
func (a *Analyzer) Analyze(req models.AnalysisRequest) (*models.MatchAnalysis, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	league := leagues.Resolve(req.League)
	matchContext := req.Context
	if matchContext == "" {
		matchContext = models.ContextNormalLeague
	}

	homeTier := a.registry.Resolve(req.HomeTeam.Name)
	awayTier := a.registry.Resolve(req.AwayTeam.Name)

	xg := engine.CalculateExpectedGoals(req.HomeTeam, req.AwayTeam, league, matchContext, a.registry)
	probs := engine.CalculateProbabilities(req.HomeTeam, req.AwayTeam, xg, matchContext)
	matchProfile := profile.Classify(req.HomeTeam, req.AwayTeam, matchContext, xg, probs)

	analysis := &models.MatchAnalysis{
		HomeTeam:      req.HomeTeam.Name,
		AwayTeam:      req.AwayTeam.Name,
		HomeTier:      homeTier,
		AwayTier:      awayTier,
		Context:       matchContext,
		League:        league.Name,
		ExpectedGoals: xg,
		Probabilities: probs,
		Profile:       matchProfile,
		Scorelines:    scoreline.Generate(xg, a.maxGoals),
	}

	if req.Odds != nil {
		analysis.Opportunities = value.Detect(probs, *req.Odds)
	}

	a.logger.Info().
		Str("home", req.HomeTeam.Name).
		Str("away", req.AwayTeam.Name).
		Str("context", matchContext).
		Float64("total_xg", xg.TotalExpected).
		Str("profile", matchProfile.Primary).
		Int("opportunities", len(analysis.Opportunities)).
		Msg("analysis complete")

	return analysis, nil
}

func validate(req models.AnalysisRequest) error {
	var problems []string

	checkTeam := func(side string, team models.TeamInput) {
		if strings.TrimSpace(team.Name) == "" {
			problems = append(problems, side+" team name is required")
		}
		if team.AvgScored < 0 {
			problems = append(problems, side+" avg_scored must not be negative")
		}
		if team.AvgConceded < 0 {
			problems = append(problems, side+" avg_conceded must not be negative")
		}
		if team.Over25Pct < 0 || team.Over25Pct > 100 {
			problems = append(problems, side+" over25_pct must be within 0..100")
		}
		if team.BTTSPct < 0 || team.BTTSPct > 100 {
			problems = append(problems, side+" btts_pct must be within 0..100")
		}
	}
	checkTeam("home", req.HomeTeam)
	checkTeam("away", req.AwayTeam)

	if req.Odds != nil {
		for market, price := range map[string]float64{
			"home_win": req.Odds.HomeWin,
			"draw":     req.Odds.Draw,
			"away_win": req.Odds.AwayWin,
			"over25":   req.Odds.Over25,
			"under25":  req.Odds.Under25,
			"btts_yes": req.Odds.BTTSYes,
			"btts_no":  req.Odds.BTTSNo,
		} {
			if price <= 1.0 {
				problems = append(problems, fmt.Sprintf("odds for %s must be greater than 1.0", market))
			}
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return errors.New("invalid analysis request: " + strings.Join(problems, "; "))
	}
	return nil
}
