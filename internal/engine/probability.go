package engine

import (
	"math"

	"github.com/Alias1177/MatchPredictor/internal/adjusters"
	"github.com/Alias1177/MatchPredictor/models"
)

const (
	// homeAdvantage is the flat win-probability bonus for playing at home.
	homeAdvantage = 8.0

	bttsPoissonWeight  = 0.6
	bttsTendencyWeight = 0.4
	bttsDerbyMult      = 0.90
	bttsCupFinalMult   = 0.95
	bttsMin            = 10.0
	bttsMax            = 90.0

	winDerbyMult = 0.95
	homeWinMin   = 20.0
	homeWinMax   = 80.0
	drawBase     = 25.0
	drawMin      = 15.0
	drawMax      = 35.0
	awayWinFloor = 10.0

	overUnderBase = 60.0
	overUnderStep = 15.0
	overUnderMin  = 20.0
	overUnderMax  = 80.0
	totalGoalsLine = 2.5
)

// CalculateProbabilities derives the BTTS, 1X2 and over/under 2.5
// probabilities from the expected goals and the teams' own tendencies.
func CalculateProbabilities(home, away models.TeamInput, xg models.ExpectedGoals, matchContext string) models.Probabilities {
	btts := bttsProbability(home, away, xg, matchContext)
	homeWin, draw, awayWin := outcomeProbabilities(home, away, xg, matchContext)
	over, under := overUnderProbabilities(xg)

	return models.Probabilities{
		HomeWin:       homeWin,
		Draw:          draw,
		AwayWin:       awayWin,
		BTTSProb:      btts,
		Over25Chance:  over,
		Under25Chance: under,
	}
}

// bttsProbability blends the independent-Poisson both-score probability with
// the teams' historical BTTS tendency, then applies the context dampeners.
func bttsProbability(home, away models.TeamInput, xg models.ExpectedGoals, matchContext string) float64 {
	base := (1 - math.Exp(-xg.HomeExpected)) * (1 - math.Exp(-xg.AwayExpected)) * 100
	avgTendency := (home.BTTSPct + away.BTTSPct) / 2
	adjusted := base*bttsPoissonWeight + avgTendency*bttsTendencyWeight

	switch matchContext {
	case models.ContextLocalDerby:
		adjusted *= bttsDerbyMult
	case models.ContextCupFinal:
		adjusted *= bttsCupFinalMult
	}

	return round1(clamp(adjusted, bttsMin, bttsMax))
}

// outcomeProbabilities computes the 1X2 split. The three clamped components
// are normalized to sum to exactly 100 before the final 1-decimal rounding,
// so the reported values may sum to 100 +/- 0.1.
func outcomeProbabilities(home, away models.TeamInput, xg models.ExpectedGoals, matchContext string) (homeWin, draw, awayWin float64) {
	goalDiff := xg.HomeExpected - xg.AwayExpected

	homeWinAdj := (50 + goalDiff*15 + homeAdvantage) *
		adjusters.MotivationWinMult(home.Motivation) /
		adjusters.MotivationWinMult(away.Motivation)
	if matchContext == models.ContextLocalDerby {
		homeWinAdj *= winDerbyMult
	}

	draw = clamp(drawBase-math.Abs(goalDiff)*5, drawMin, drawMax)
	homeWin = clamp(homeWinAdj, homeWinMin, homeWinMax)
	awayWin = math.Max(awayWinFloor, 100-homeWin-draw)

	sum := homeWin + draw + awayWin
	homeWin = round1(homeWin / sum * 100)
	draw = round1(draw / sum * 100)
	awayWin = round1(awayWin / sum * 100)
	return homeWin, draw, awayWin
}

// overUnderProbabilities returns a complementary pair summing to exactly 100.
func overUnderProbabilities(xg models.ExpectedGoals) (over, under float64) {
	total := xg.TotalExpected
	if total > totalGoalsLine {
		over = round1(clamp(overUnderBase+(total-totalGoalsLine)*overUnderStep, overUnderMin, overUnderMax))
		under = 100 - over
	} else {
		under = round1(clamp(overUnderBase+(totalGoalsLine-total)*overUnderStep, overUnderMin, overUnderMax))
		over = 100 - under
	}
	return over, under
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
