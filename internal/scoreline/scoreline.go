// Package scoreline expands a pair of expected goals into the most likely
// correct scores under independent Poisson scoring.
package scoreline

import (
	"math"
	"sort"

	"github.com/Alias1177/MatchPredictor/models"
)

const (
	// DefaultMaxGoals bounds the score grid per side.
	DefaultMaxGoals = 4

	// minProbability filters out scorelines below 1% joint probability.
	minProbability = 1.0

	// maxScorelines caps the returned list.
	maxScorelines = 8
)

// PoissonProb calculates P(X = k) for X ~ Poisson(lambda), evaluated in log
// space for numerical stability.
func PoissonProb(lambda float64, k int) float64 {
	if k < 0 {
		return 0
	}
	if lambda <= 0 {
		if k == 0 {
			return 1.0
		}
		return 0
	}

	logProb := float64(k)*math.Log(lambda) - lambda - logFactorial(k)
	return math.Exp(logProb)
}

func logFactorial(n int) float64 {
	if n <= 1 {
		return 0
	}
	result := 0.0
	for i := 2; i <= n; i++ {
		result += math.Log(float64(i))
	}
	return result
}

// Generate builds the joint score grid up to maxGoals per side, keeps the
// combinations above 1% and returns the top entries sorted by probability
// descending. Ties are broken by lower home then away goals so the output
// is deterministic.
func Generate(xg models.ExpectedGoals, maxGoals int) []models.Scoreline {
	if maxGoals <= 0 {
		maxGoals = DefaultMaxGoals
	}

	var lines []models.Scoreline
	for homeGoals := 0; homeGoals <= maxGoals; homeGoals++ {
		for awayGoals := 0; awayGoals <= maxGoals; awayGoals++ {
			prob := PoissonProb(xg.HomeExpected, homeGoals) *
				PoissonProb(xg.AwayExpected, awayGoals) * 100
			if prob <= minProbability {
				continue
			}

			lines = append(lines, models.Scoreline{
				HomeGoals:   homeGoals,
				AwayGoals:   awayGoals,
				Probability: round2(prob),
				Tag:         tag(homeGoals, awayGoals),
			})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].Probability != lines[j].Probability {
			return lines[i].Probability > lines[j].Probability
		}
		if lines[i].HomeGoals != lines[j].HomeGoals {
			return lines[i].HomeGoals < lines[j].HomeGoals
		}
		return lines[i].AwayGoals < lines[j].AwayGoals
	})

	if len(lines) > maxScorelines {
		lines = lines[:maxScorelines]
	}
	return lines
}

// tag marks a scoreline BTTS only when both sides score; every scoreline
// with at least one zero is a clean sheet for someone.
func tag(homeGoals, awayGoals int) string {
	if homeGoals > 0 && awayGoals > 0 {
		return models.TagBTTS
	}
	return models.TagCleanSheet
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
