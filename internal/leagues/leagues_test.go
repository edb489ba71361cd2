package leagues

import (
	"testing"

	"github.com/Alias1177/MatchPredictor/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		league   models.LeagueStyle
		wantName string
		wantAvg  float64
	}{
		{"custom averages win", models.LeagueStyle{Name: "My League", AvgGoals: 3.3}, "My League", 3.3},
		{"known name fills averages", models.LeagueStyle{Name: "Premier League"}, "Premier League", 2.85},
		{"unknown name falls back", models.LeagueStyle{Name: "Mars League"}, "Generic League", 2.70},
		{"empty input falls back", models.LeagueStyle{}, "Generic League", 2.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.league)
			if got.Name != tt.wantName || got.AvgGoals != tt.wantAvg {
				t.Errorf("Resolve(%+v) = %s/%v, want %s/%v",
					tt.league, got.Name, got.AvgGoals, tt.wantName, tt.wantAvg)
			}
		})
	}
}

func TestStylesIsACopy(t *testing.T) {
	styles := Styles()
	styles[0].AvgGoals = 99

	if fresh := Styles(); fresh[0].AvgGoals == 99 {
		t.Error("mutating the returned slice must not affect the table")
	}
}
