// Package adjusters holds the fixed multiplier tables for motivation, match
// context and key player absence. Unknown keys fall back to the neutral
// value instead of erroring.
package adjusters

import "github.com/Alias1177/MatchPredictor/models"

// motivationGoalTable scales goal expectancy. Defense uses the reciprocal of
// the same multiplier for that side.
var motivationGoalTable = map[string]float64{
	models.MotivationVeryHigh: 1.25,
	models.MotivationHigh:     1.15,
	models.MotivationMedium:   1.00,
	models.MotivationLow:      0.85,
	models.MotivationVeryLow:  0.75,
}

// motivationWinTable is a second, independent table used only for the
// win-probability adjustment.
var motivationWinTable = map[string]float64{
	models.MotivationVeryHigh: 1.15,
	models.MotivationHigh:     1.08,
	models.MotivationMedium:   1.00,
	models.MotivationLow:      0.92,
	models.MotivationVeryLow:  0.85,
}

// motivationOrdinals ranks levels 5..1 for gap comparisons.
var motivationOrdinals = map[string]int{
	models.MotivationVeryHigh: 5,
	models.MotivationHigh:     4,
	models.MotivationMedium:   3,
	models.MotivationLow:      2,
	models.MotivationVeryLow:  1,
}

// ContextMultipliers is the per-category tuple applied to attack, defense and
// total goals.
type ContextMultipliers struct {
	Attack  float64
	Defense float64
	Goals   float64
}

var contextTable = map[string]ContextMultipliers{
	models.ContextNormalLeague:     {Attack: 1.00, Defense: 1.00, Goals: 1.00},
	models.ContextLocalDerby:       {Attack: 0.90, Defense: 1.20, Goals: 0.80},
	models.ContextCupFinal:         {Attack: 0.95, Defense: 1.15, Goals: 0.85},
	models.ContextRelegationBattle: {Attack: 1.10, Defense: 0.95, Goals: 1.05},
	models.ContextTitleDecider:     {Attack: 1.05, Defense: 1.05, Goals: 1.00},
	models.ContextEuropean:         {Attack: 1.00, Defense: 1.00, Goals: 1.00},
}

// Absence multipliers. Both apply independently and multiplicatively when a
// side is missing both a key attacker and a key defender.
const (
	homeAttackerOutMult = 0.75
	awayAttackerOutMult = 0.80
	homeDefenderOutMult = 1.30
	awayDefenderOutMult = 1.25
)

// MotivationGoalMult returns the goal-expectancy multiplier for a motivation
// level, 1.0 for unknown levels.
func MotivationGoalMult(level string) float64 {
	if m, ok := motivationGoalTable[level]; ok {
		return m
	}
	return 1.0
}

// MotivationWinMult returns the win-probability multiplier for a motivation
// level, 1.0 for unknown levels.
func MotivationWinMult(level string) float64 {
	if m, ok := motivationWinTable[level]; ok {
		return m
	}
	return 1.0
}

// MotivationOrdinal maps a level to the 5..1 scale, defaulting to Medium.
func MotivationOrdinal(level string) int {
	if v, ok := motivationOrdinals[level]; ok {
		return v
	}
	return motivationOrdinals[models.MotivationMedium]
}

// ContextMults returns the multiplier tuple for a match context, falling back
// to the neutral Normal League tuple for unknown categories.
func ContextMults(matchContext string) ContextMultipliers {
	if m, ok := contextTable[matchContext]; ok {
		return m
	}
	return contextTable[models.ContextNormalLeague]
}

// AbsenceAttackMult returns the attack multiplier for a missing key attacker.
func AbsenceAttackMult(attackerOut, home bool) float64 {
	if !attackerOut {
		return 1.0
	}
	if home {
		return homeAttackerOutMult
	}
	return awayAttackerOutMult
}

// AbsenceDefenseMult returns the defense multiplier for a missing key
// defender. A bigger value means a leakier defense.
func AbsenceDefenseMult(defenderOut, home bool) float64 {
	if !defenderOut {
		return 1.0
	}
	if home {
		return homeDefenderOutMult
	}
	return awayDefenderOutMult
}
