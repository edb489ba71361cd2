// Package profile scores four mutually exclusive narrative archetypes for a
// fixture and picks the best one with a sub-profile and confidence tier.
package profile

import (
	"math"

	"github.com/Alias1177/MatchPredictor/internal/adjusters"
	"github.com/Alias1177/MatchPredictor/models"
)

const (
	// Dominance scoring
	dominanceGoalDiffWeight = 20.0
	dominanceWinDiffWeight  = 0.3
	dominanceBonus          = 20.0
	dominanceGoalDiffGate   = 1.0
	dominanceWinDiffGate    = 30.0

	// Tactical battle scoring
	tacticalLowScoringBonus = 25.0
	tacticalLowOver25Bonus  = 20.0
	tacticalContextBonus    = 15.0
	tacticalLowScoringLine  = 1.2
	tacticalLowOver25Line   = 40.0

	// Open exchange scoring
	openHighScoringBonus = 25.0
	openHighOver25Bonus  = 20.0
	openBTTSBonus        = 15.0
	openTotalBonus       = 20.0
	openHighScoringLine  = 1.6
	openHighOver25Line   = 60.0
	openBTTSLine         = 60.0
	openTotalLine        = 3.0

	// Context anomaly scoring
	anomalyContextBonus    = 30.0
	anomalyMotivationBonus = 20.0
	anomalyMotivationGap   = 3

	// Confidence tiers
	confidenceHighScore   = 50.0
	confidenceMediumScore = 30.0

	// Sub-profile thresholds
	completeDominationDiff   = 1.5
	controlledSuperiorityDiff = 0.8
	tacticalStalemateTotal   = 2.0
	goalFestivalTotal        = 3.5
	endToEndBTTS             = 65.0
)

// Sub-profile tags per archetype.
const (
	SubCompleteDomination    = "COMPLETE_DOMINATION"
	SubControlledSuperiority = "CONTROLLED_SUPERIORITY"
	SubModerateAdvantage     = "MODERATE_ADVANTAGE"

	SubDerbyTrenchWar    = "DERBY_TRENCH_WAR"
	SubCupFinalChess     = "CUP_FINAL_CHESS"
	SubTacticalStalemate = "TACTICAL_STALEMATE"
	SubMidfieldBattle    = "MIDFIELD_BATTLE"

	SubGoalFestival      = "GOAL_FESTIVAL"
	SubEndToEndExchange  = "END_TO_END_EXCHANGE"
	SubOpenGame          = "OPEN_GAME"

	SubDerbyChaos      = "DERBY_CHAOS"
	SubCupFinalNerves  = "CUP_FINAL_NERVES"
	SubRelegationScrap = "RELEGATION_SCRAP"
	SubTitlePressure   = "TITLE_PRESSURE"
	SubMotivationGap   = "MOTIVATION_GAP"
)

// archetypeOrder breaks score ties: the first declared archetype wins.
var archetypeOrder = []string{
	models.ProfileDominance,
	models.ProfileTacticalBattle,
	models.ProfileOpenExchange,
	models.ProfileContextAnomaly,
}

// Classify scores every archetype and returns the winning profile. The
// selection is fully deterministic: same inputs, same profile.
func Classify(home, away models.TeamInput, matchContext string, xg models.ExpectedGoals, probs models.Probabilities) models.MatchProfile {
	goalDiff := xg.HomeExpected - xg.AwayExpected
	winDiff := probs.HomeWin - probs.AwayWin

	scores := map[string]float64{
		models.ProfileDominance:      dominanceScore(goalDiff, winDiff),
		models.ProfileTacticalBattle: tacticalScore(home, away, matchContext),
		models.ProfileOpenExchange:   openScore(home, away, xg, probs),
		models.ProfileContextAnomaly: anomalyScore(home, away, matchContext),
	}

	primary := archetypeOrder[0]
	for _, archetype := range archetypeOrder[1:] {
		if scores[archetype] > scores[primary] {
			primary = archetype
		}
	}

	return models.MatchProfile{
		Primary:    primary,
		SubProfile: subProfile(primary, matchContext, goalDiff, xg, probs),
		Confidence: confidence(scores[primary]),
		Scores:     scores,
	}
}

func dominanceScore(goalDiff, winDiff float64) float64 {
	score := math.Abs(goalDiff)*dominanceGoalDiffWeight + math.Abs(winDiff)*dominanceWinDiffWeight
	if math.Abs(goalDiff) > dominanceGoalDiffGate || math.Abs(winDiff) > dominanceWinDiffGate {
		score += dominanceBonus
	}
	return score
}

func tacticalScore(home, away models.TeamInput, matchContext string) float64 {
	score := 0.0
	if home.AvgScored < tacticalLowScoringLine && away.AvgScored < tacticalLowScoringLine {
		score += tacticalLowScoringBonus
	}
	if home.Over25Pct < tacticalLowOver25Line && away.Over25Pct < tacticalLowOver25Line {
		score += tacticalLowOver25Bonus
	}
	if matchContext == models.ContextLocalDerby || matchContext == models.ContextCupFinal {
		score += tacticalContextBonus
	}
	return score
}

func openScore(home, away models.TeamInput, xg models.ExpectedGoals, probs models.Probabilities) float64 {
	score := 0.0
	if home.AvgScored > openHighScoringLine && away.AvgScored > openHighScoringLine {
		score += openHighScoringBonus
	}
	if home.Over25Pct > openHighOver25Line && away.Over25Pct > openHighOver25Line {
		score += openHighOver25Bonus
	}
	if probs.BTTSProb > openBTTSLine {
		score += openBTTSBonus
	}
	if xg.TotalExpected > openTotalLine {
		score += openTotalBonus
	}
	return score
}

func anomalyScore(home, away models.TeamInput, matchContext string) float64 {
	score := 0.0
	switch matchContext {
	case models.ContextLocalDerby, models.ContextCupFinal, models.ContextTitleDecider, models.ContextRelegationBattle:
		score += anomalyContextBonus
	}

	gap := adjusters.MotivationOrdinal(home.Motivation) - adjusters.MotivationOrdinal(away.Motivation)
	if gap < 0 {
		gap = -gap
	}
	if gap >= anomalyMotivationGap {
		score += anomalyMotivationBonus
	}
	return score
}

func confidence(best float64) string {
	switch {
	case best >= confidenceHighScore:
		return models.ConfidenceHigh
	case best >= confidenceMediumScore:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

func subProfile(primary, matchContext string, goalDiff float64, xg models.ExpectedGoals, probs models.Probabilities) string {
	switch primary {
	case models.ProfileDominance:
		switch {
		case math.Abs(goalDiff) > completeDominationDiff:
			return SubCompleteDomination
		case math.Abs(goalDiff) > controlledSuperiorityDiff:
			return SubControlledSuperiority
		default:
			return SubModerateAdvantage
		}
	case models.ProfileTacticalBattle:
		switch {
		case matchContext == models.ContextLocalDerby:
			return SubDerbyTrenchWar
		case matchContext == models.ContextCupFinal:
			return SubCupFinalChess
		case xg.TotalExpected < tacticalStalemateTotal:
			return SubTacticalStalemate
		default:
			return SubMidfieldBattle
		}
	case models.ProfileOpenExchange:
		switch {
		case xg.TotalExpected > goalFestivalTotal:
			return SubGoalFestival
		case probs.BTTSProb > endToEndBTTS:
			return SubEndToEndExchange
		default:
			return SubOpenGame
		}
	default: // context anomaly
		switch matchContext {
		case models.ContextLocalDerby:
			return SubDerbyChaos
		case models.ContextCupFinal:
			return SubCupFinalNerves
		case models.ContextRelegationBattle:
			return SubRelegationScrap
		case models.ContextTitleDecider:
			return SubTitlePressure
		default:
			return SubMotivationGap
		}
	}
}
