// Package last5 classifies a fixture into a descriptive match state from the
// trailing 5-match scoring and conceding totals of both sides. It is fully
// independent of the expected-goals pipeline.
package last5

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"github.com/Alias1177/MatchPredictor/models"
)

// Input field names as supplied by the collaborator layer.
const (
	FieldGoalsScored   = "goals_scored_last_5"
	FieldGoalsConceded = "goals_conceded_last_5"
)

const (
	matchWindow = 5

	// State rule thresholds
	stagnationScoredMax  = 1.2
	stagnationConcededMax = 1.0
	suppressionConcededMax = 0.8
	suppressionScoredMax   = 1.0
	explosionMin           = 1.6
	delayedRangeMin        = 1.2
	delayedRangeMax        = 1.6

	// Durability scoring
	durabilityLowLine   = 1.0
	durabilityHighLine  = 1.6
	durabilityBonus     = 2
	durabilityPenalty   = 2
	durabilityMax       = 10
	durabilityStableMin = 6
	durabilityFragileMin = 3

	// Reliability scoring
	reliabilityRangeMax     = 5.0
	reliabilityMax          = 5
	reliabilityNeutralSpike = 3.0
)

// Under-market suggestions. The selection logic is the contract; the wording
// is presentation.
const (
	SuggestionStrongUnder       = "Strong under play: both sides are stuck in low-scoring form"
	SuggestionHomeDefenseUnder  = "Under lean: home defense is suffocating a blunt away attack"
	SuggestionAwayDefenseUnder  = "Under lean: away defense is suffocating a blunt home attack"
	SuggestionModerateUnder     = "Moderate under lean: neither attack is converting"
	SuggestionAwayTeamUnder15   = "Consider away team under 1.5 goals against this defense"
	SuggestionHomeTeamUnder15   = "Consider home team under 1.5 goals against this defense"
)

// reliabilityLabels maps the 0..5 score to its ordinal label.
var reliabilityLabels = map[int]string{
	5: models.ReliabilityExcellent,
	4: models.ReliabilityHigh,
	3: models.ReliabilityModerate,
	2: models.ReliabilityLow,
	1: models.ReliabilityVeryLow,
	0: models.ReliabilityUnreliable,
}

// SideStats holds one side's validated 5-match totals.
type SideStats struct {
	GoalsScored   float64
	GoalsConceded float64
}

// ClassifyRaw validates the loosely-typed side records and classifies the
// fixture. Missing fields or non-numeric values produce an error result with
// no partial output; validation happens once, here at the boundary.
func ClassifyRaw(home, away map[string]any) *models.Last5Classification {
	var missing, typeErrs []string

	homeStats := parseSide(home, "home", &missing, &typeErrs)
	awayStats := parseSide(away, "away", &missing, &typeErrs)

	if len(missing) > 0 || len(typeErrs) > 0 {
		sort.Strings(missing)
		sort.Strings(typeErrs)
		return &models.Last5Classification{
			ClassificationError: true,
			ErrorMessage:        "invalid last-5 input",
			MissingFields:       missing,
			TypeErrors:          typeErrs,
		}
	}

	return Classify(homeStats, awayStats)
}

// Classify runs the full state pipeline on validated inputs.
func Classify(home, away SideStats) *models.Last5Classification {
	averages := &models.Last5Averages{
		HomeScored:   average(home.GoalsScored),
		HomeConceded: average(home.GoalsConceded),
		AwayScored:   average(away.GoalsScored),
		AwayConceded: average(away.GoalsConceded),
	}

	state := dominantState(averages)

	return &models.Last5Classification{
		Averages:        averages,
		DominantState:   state,
		Durability:      durability(averages),
		UnderSuggestion: underSuggestion(state, averages),
		Reliability:     reliability(state, averages),
		Defensive: &models.DefensiveAnalysis{
			HomeStrongDefense: averages.HomeConceded <= durabilityLowLine,
			AwayStrongDefense: averages.AwayConceded <= durabilityLowLine,
		},
	}
}

func parseSide(raw map[string]any, side string, missing, typeErrs *[]string) SideStats {
	scored := extractNumeric(raw, FieldGoalsScored, side, missing, typeErrs)
	conceded := extractNumeric(raw, FieldGoalsConceded, side, missing, typeErrs)
	return SideStats{GoalsScored: scored, GoalsConceded: conceded}
}

func extractNumeric(raw map[string]any, field, side string, missing, typeErrs *[]string) float64 {
	qualified := side + "." + field

	v, ok := raw[field]
	if !ok || v == nil {
		*missing = append(*missing, qualified)
		return 0
	}

	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			*typeErrs = append(*typeErrs, fmt.Sprintf("%s: %v", qualified, err))
			return 0
		}
		return f
	default:
		*typeErrs = append(*typeErrs, fmt.Sprintf("%s: expected number, got %T", qualified, v))
		return 0
	}
}

func average(total float64) float64 {
	return math.Round(total/matchWindow*100) / 100
}

// dominantState applies the ordered rule set; the first matching rule wins.
func dominantState(a *models.Last5Averages) string {
	switch {
	// Strictly below the thresholds: a side sitting exactly on the
	// conceded line belongs to the suppression check, not stagnation.
	case a.HomeScored < stagnationScoredMax && a.HomeConceded < stagnationConcededMax &&
		a.AwayScored < stagnationScoredMax && a.AwayConceded < stagnationConcededMax:
		return models.StateStagnation

	case (a.HomeConceded <= suppressionConcededMax && a.AwayScored <= suppressionScoredMax) ||
		(a.AwayConceded <= suppressionConcededMax && a.HomeScored <= suppressionScoredMax):
		return models.StateSuppression

	case (a.HomeScored >= explosionMin || a.HomeConceded >= explosionMin) &&
		(a.AwayScored >= explosionMin || a.AwayConceded >= explosionMin):
		return models.StateExplosion

	case (inDelayedRange(a.HomeScored) || inDelayedRange(a.HomeConceded)) &&
		(inDelayedRange(a.AwayScored) || inDelayedRange(a.AwayConceded)):
		return models.StateDelayedExplosion

	default:
		return models.StateNeutral
	}
}

func inDelayedRange(v float64) bool {
	return v >= delayedRangeMin && v <= delayedRangeMax
}

// durability rewards each low quantity and penalizes each explosive one; a
// quantity can never trigger both.
func durability(a *models.Last5Averages) *models.Durability {
	score := 0
	for _, q := range [4]float64{a.HomeScored, a.HomeConceded, a.AwayScored, a.AwayConceded} {
		switch {
		case q <= durabilityLowLine:
			score += durabilityBonus
		case q >= durabilityHighLine:
			score -= durabilityPenalty
		}
	}

	if score < 0 {
		score = 0
	}
	if score > durabilityMax {
		score = durabilityMax
	}

	class := models.DurabilityNone
	switch {
	case score >= durabilityStableMin:
		class = models.DurabilityStable
	case score >= durabilityFragileMin:
		class = models.DurabilityFragile
	}

	return &models.Durability{Score: score, Class: class}
}

// underSuggestion picks the under-market message following the same rule
// precedence as the state determination.
func underSuggestion(state string, a *models.Last5Averages) string {
	switch {
	case state == models.StateStagnation:
		return SuggestionStrongUnder
	case state == models.StateSuppression:
		if a.HomeConceded <= suppressionConcededMax && a.AwayScored <= suppressionScoredMax {
			return SuggestionHomeDefenseUnder
		}
		return SuggestionAwayDefenseUnder
	case a.HomeScored <= stagnationScoredMax && a.AwayScored <= stagnationScoredMax:
		return SuggestionModerateUnder
	case a.HomeConceded <= durabilityLowLine:
		return SuggestionAwayTeamUnder15
	case a.AwayConceded <= durabilityLowLine:
		return SuggestionHomeTeamUnder15
	default:
		return ""
	}
}

// reliability scores input trustworthiness 0..5. Presence of all four fields
// is worth one point, each in-range average one more; the pattern-consistency
// adjustments are applied before the final cap, so a clean non-neutral
// pattern cannot push the score past the maximum.
func reliability(state string, a *models.Last5Averages) *models.Reliability {
	score := 1 // all fields present: validation rejected the input otherwise

	quantities := [4]float64{a.HomeScored, a.HomeConceded, a.AwayScored, a.AwayConceded}
	for _, q := range quantities {
		if q >= 0 && q <= reliabilityRangeMax {
			score++
		}
	}

	if state != models.StateNeutral {
		score += 2
	} else {
		for _, q := range quantities {
			if q >= reliabilityNeutralSpike {
				score -= 2
				break
			}
		}
	}

	if score > reliabilityMax {
		score = reliabilityMax
	}
	if score < 0 {
		score = 0
	}

	return &models.Reliability{Score: score, Label: reliabilityLabels[score]}
}
