// Package leagues holds the built-in league style reference data.
package leagues

import "github.com/Alias1177/MatchPredictor/models"

// defaultStyles is the immutable baseline table. One entry is selected per
// analysis; callers may also supply a fully custom LeagueStyle.
var defaultStyles = []models.LeagueStyle{
	{Name: "Premier League", AvgGoals: 2.85, BTTSPct: 54, Style: "fast and physical"},
	{Name: "La Liga", AvgGoals: 2.55, BTTSPct: 48, Style: "technical and patient"},
	{Name: "Bundesliga", AvgGoals: 3.10, BTTSPct: 58, Style: "open and attacking"},
	{Name: "Serie A", AvgGoals: 2.70, BTTSPct: 50, Style: "tactical and defensive"},
	{Name: "Ligue 1", AvgGoals: 2.60, BTTSPct: 47, Style: "counter-oriented"},
	{Name: "Eredivisie", AvgGoals: 3.20, BTTSPct: 60, Style: "youth-driven attacking"},
}

// Fallback is the baseline used when a league name is unknown and no custom
// averages were supplied.
var Fallback = models.LeagueStyle{Name: "Generic League", AvgGoals: 2.70, BTTSPct: 50}

// Styles returns a copy of the built-in table.
func Styles() []models.LeagueStyle {
	return append([]models.LeagueStyle(nil), defaultStyles...)
}

// Lookup finds a built-in style by exact name.
func Lookup(name string) (models.LeagueStyle, bool) {
	for _, style := range defaultStyles {
		if style.Name == name {
			return style, true
		}
	}
	return models.LeagueStyle{}, false
}

// Resolve fills in a usable style: a supplied positive goals baseline wins,
// then the built-in table by name, then the generic fallback.
func Resolve(league models.LeagueStyle) models.LeagueStyle {
	if league.AvgGoals > 0 {
		return league
	}
	if style, ok := Lookup(league.Name); ok {
		return style
	}
	return Fallback
}
