// Package value compares the engine's probabilities against quoted market
// odds and surfaces positive-edge opportunities.
package value

import (
	"math"
	"sort"

	"github.com/Alias1177/MatchPredictor/models"
)

const (
	// minEdge is the inclusion threshold in percentage points; an
	// opportunity qualifies only when its edge strictly exceeds it.
	minEdge = 2.0

	// Star rating boundaries, exclusive at the boundary itself.
	threeStarEdge = 5.0
	twoStarEdge   = 3.0
)

// Market labels
const (
	MarketHomeWin = "HOME_WIN"
	MarketDraw    = "DRAW"
	MarketAwayWin = "AWAY_WIN"
	MarketOver25  = "OVER_2.5"
	MarketUnder25 = "UNDER_2.5"
	MarketBTTSYes = "BTTS_YES"
	MarketBTTSNo  = "BTTS_NO"
)

// Detect computes the edge for every quoted market, sorts by absolute edge
// descending and keeps only the positive edges above the threshold. Large
// negative edges sort high but are filtered out: the detector only flags
// bets worth backing, not fading.
func Detect(probs models.Probabilities, odds models.OddsInput) []models.ValueOpportunity {
	candidates := []models.ValueOpportunity{
		build(MarketHomeWin, odds.HomeWin, probs.HomeWin),
		build(MarketDraw, odds.Draw, probs.Draw),
		build(MarketAwayWin, odds.AwayWin, probs.AwayWin),
		build(MarketOver25, odds.Over25, probs.Over25Chance),
		build(MarketUnder25, odds.Under25, 100-probs.Over25Chance),
		build(MarketBTTSYes, odds.BTTSYes, probs.BTTSProb),
		build(MarketBTTSNo, odds.BTTSNo, 100-probs.BTTSProb),
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return math.Abs(candidates[i].Edge) > math.Abs(candidates[j].Edge)
	})

	var opportunities []models.ValueOpportunity
	for _, c := range candidates {
		if c.Edge > minEdge {
			opportunities = append(opportunities, c)
		}
	}
	return opportunities
}

func build(market string, odds, ourProb float64) models.ValueOpportunity {
	implied := ImpliedProb(odds)
	edge := ourProb - implied

	return models.ValueOpportunity{
		Market:      market,
		Odds:        odds,
		OurProb:     ourProb,
		ImpliedProb: implied,
		Edge:        edge,
		Stars:       stars(edge),
	}
}

// ImpliedProb converts decimal odds to the probability the price quotes if
// treated as fair. Non-positive odds yield 0 rather than dividing by zero.
func ImpliedProb(odds float64) float64 {
	if odds <= 0 {
		return 0
	}
	return 100 / odds
}

func stars(edge float64) int {
	switch {
	case edge > threeStarEdge:
		return 3
	case edge > twoStarEdge:
		return 2
	default:
		return 1
	}
}
