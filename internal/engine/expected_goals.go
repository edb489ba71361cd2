// Package engine derives expected goals and market probabilities from team
// inputs, league baselines and the context/motivation adjusters.
package engine

import (
	"math"

	"github.com/Alias1177/MatchPredictor/internal/adjusters"
	"github.com/Alias1177/MatchPredictor/internal/tiers"
	"github.com/Alias1177/MatchPredictor/models"
)

const (
	// leagueBaselineGoals normalizes a league's scoring level against the
	// reference average the tuning was done at.
	leagueBaselineGoals = 2.7

	// minAdjustedDefense floors the adjusted defense so that a side with a
	// zero conceding average cannot blow up the expectancy division.
	minAdjustedDefense = 0.05

	maxHomeExpected  = 4.0
	maxAwayExpected  = 3.0
	maxTotalExpected = 6.0
)

// CalculateExpectedGoals runs the full adjustment chain for one fixture:
// tier multipliers, motivation, context and absence adjustments on both
// sides, then the cross of each attack against the opposing defense scaled
// by the league baseline. Caps apply to the reported figures only; the total
// is computed from the uncapped sides before its own cap.
func CalculateExpectedGoals(home, away models.TeamInput, league models.LeagueStyle, matchContext string, registry *tiers.Registry) models.ExpectedGoals {
	homeTier := registry.Resolve(home.Name)
	awayTier := registry.Resolve(away.Name)
	mults := tiers.TierMultipliers(homeTier, awayTier)

	ctx := adjusters.ContextMults(matchContext)

	homeAttack := adjustedAttack(home, mults.HomeAttack, ctx.Attack, true)
	awayAttack := adjustedAttack(away, mults.AwayAttack, ctx.Attack, false)
	homeDefense := adjustedDefense(home, mults.HomeDefense, ctx.Defense, true)
	awayDefense := adjustedDefense(away, mults.AwayDefense, ctx.Defense, false)

	leagueFactor := league.AvgGoals / leagueBaselineGoals

	homeExpected := homeAttack * (1 / awayDefense) * leagueFactor
	awayExpected := awayAttack * (1 / homeDefense) * leagueFactor
	totalExpected := (homeExpected + awayExpected) * ctx.Goals

	return models.ExpectedGoals{
		HomeExpected:  round2(math.Min(homeExpected, maxHomeExpected)),
		AwayExpected:  round2(math.Min(awayExpected, maxAwayExpected)),
		TotalExpected: round2(math.Min(totalExpected, maxTotalExpected)),
		HomeAdjAttack: round2(homeAttack),
		AwayAdjAttack: round2(awayAttack),
	}
}

func adjustedAttack(team models.TeamInput, tierMult, contextMult float64, isHome bool) float64 {
	return team.AvgScored *
		tierMult *
		adjusters.MotivationGoalMult(team.Motivation) *
		contextMult *
		adjusters.AbsenceAttackMult(team.KeyAttackerOut, isHome)
}

func adjustedDefense(team models.TeamInput, tierMult, contextMult float64, isHome bool) float64 {
	defense := team.AvgConceded *
		tierMult *
		(1 / adjusters.MotivationGoalMult(team.Motivation)) *
		contextMult *
		adjusters.AbsenceDefenseMult(team.KeyDefenderOut, isHome)

	return math.Max(defense, minAdjustedDefense)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
