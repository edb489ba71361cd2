package engine

import (
	"testing"

	"github.com/Alias1177/MatchPredictor/internal/tiers"
	"github.com/Alias1177/MatchPredictor/models"
)

func neutralTeam(name string, scored, conceded float64) models.TeamInput {
	return models.TeamInput{
		Name:        name,
		AvgScored:   scored,
		AvgConceded: conceded,
		Motivation:  models.MotivationMedium,
	}
}

func TestCalculateExpectedGoalsEliteAwaySide(t *testing.T) {
	// Average home side vs an Elite away side: tier diff -2 selects the
	// (0.70, 1.40, 1.30, 0.80) tuple.
	home := neutralTeam("Home FC", 1.30, 1.00)
	away := neutralTeam("Man City", 1.70, 1.00)
	league := models.LeagueStyle{Name: "Premier League", AvgGoals: 2.85}

	xg := CalculateExpectedGoals(home, away, league, models.ContextNormalLeague, tiers.DefaultRegistry())

	if xg.HomeExpected != 1.20 {
		t.Errorf("HomeExpected = %v, want 1.20", xg.HomeExpected)
	}
	if xg.AwayExpected != 1.67 {
		t.Errorf("AwayExpected = %v, want 1.67", xg.AwayExpected)
	}
	if xg.TotalExpected != 2.87 {
		t.Errorf("TotalExpected = %v, want 2.87", xg.TotalExpected)
	}
	if xg.HomeAdjAttack != 0.91 {
		t.Errorf("HomeAdjAttack = %v, want 0.91", xg.HomeAdjAttack)
	}
	if xg.AwayAdjAttack != 2.21 {
		t.Errorf("AwayAdjAttack = %v, want 2.21", xg.AwayAdjAttack)
	}
}

func TestCalculateExpectedGoalsCaps(t *testing.T) {
	home := neutralTeam("Home FC", 6.0, 0.2)
	away := neutralTeam("Away FC", 5.0, 0.2)
	league := models.LeagueStyle{Name: "Shootout League", AvgGoals: 3.4}

	xg := CalculateExpectedGoals(home, away, league, models.ContextNormalLeague, tiers.NewRegistry())

	if xg.HomeExpected > 4.0 {
		t.Errorf("HomeExpected = %v, exceeds 4.0 cap", xg.HomeExpected)
	}
	if xg.AwayExpected > 3.0 {
		t.Errorf("AwayExpected = %v, exceeds 3.0 cap", xg.AwayExpected)
	}
	if xg.TotalExpected > 6.0 {
		t.Errorf("TotalExpected = %v, exceeds 6.0 cap", xg.TotalExpected)
	}
}

func TestCalculateExpectedGoalsZeroConcededGuard(t *testing.T) {
	// A side that never concedes is a valid input; the adjusted defense is
	// floored instead of dividing by zero.
	home := neutralTeam("Home FC", 1.5, 0.0)
	away := neutralTeam("Away FC", 1.2, 0.0)
	league := models.LeagueStyle{Name: "Premier League", AvgGoals: 2.7}

	first := CalculateExpectedGoals(home, away, league, models.ContextNormalLeague, tiers.NewRegistry())
	second := CalculateExpectedGoals(home, away, league, models.ContextNormalLeague, tiers.NewRegistry())

	if first != second {
		t.Errorf("expected deterministic output, got %+v then %+v", first, second)
	}
	if first.HomeExpected > 4.0 || first.AwayExpected > 3.0 {
		t.Errorf("caps violated under zero-conceded input: %+v", first)
	}
	if first.HomeExpected <= 0 || first.AwayExpected <= 0 {
		t.Errorf("expected positive expectancies, got %+v", first)
	}
}

func TestCalculateExpectedGoalsAbsenceAdjustments(t *testing.T) {
	league := models.LeagueStyle{Name: "Premier League", AvgGoals: 2.7}
	baseHome := neutralTeam("Home FC", 1.5, 1.1)
	baseAway := neutralTeam("Away FC", 1.3, 1.2)

	full := CalculateExpectedGoals(baseHome, baseAway, league, models.ContextNormalLeague, tiers.NewRegistry())

	weakened := baseHome
	weakened.KeyAttackerOut = true
	without := CalculateExpectedGoals(weakened, baseAway, league, models.ContextNormalLeague, tiers.NewRegistry())

	if without.HomeExpected >= full.HomeExpected {
		t.Errorf("attacker absence should lower home expectancy: %v >= %v",
			without.HomeExpected, full.HomeExpected)
	}

	leaky := baseAway
	leaky.KeyDefenderOut = true
	boosted := CalculateExpectedGoals(baseHome, leaky, league, models.ContextNormalLeague, tiers.NewRegistry())

	if boosted.HomeExpected <= full.HomeExpected {
		t.Errorf("away defender absence should raise home expectancy: %v <= %v",
			boosted.HomeExpected, full.HomeExpected)
	}
}

func TestCalculateExpectedGoalsContextGoalsMultiplier(t *testing.T) {
	league := models.LeagueStyle{Name: "Premier League", AvgGoals: 2.7}
	home := neutralTeam("Home FC", 1.4, 1.1)
	away := neutralTeam("Away FC", 1.3, 1.2)

	normal := CalculateExpectedGoals(home, away, league, models.ContextNormalLeague, tiers.NewRegistry())
	derby := CalculateExpectedGoals(home, away, league, models.ContextLocalDerby, tiers.NewRegistry())

	if derby.TotalExpected >= normal.TotalExpected {
		t.Errorf("derby total %v should be below normal total %v", derby.TotalExpected, normal.TotalExpected)
	}
}
