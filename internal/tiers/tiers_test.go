package tiers

import (
	"testing"

	"github.com/Alias1177/MatchPredictor/models"
)

func TestResolve(t *testing.T) {
	reg := DefaultRegistry()

	tests := []struct {
		name     string
		team     string
		expected string
	}{
		{"elite team", "Man City", models.TierElite},
		{"strong team", "Napoli", models.TierStrong},
		{"weak team", "Luton", models.TierWeak},
		{"unknown team defaults to average", "FC Nowhere", models.TierAverage},
		{"match is case sensitive", "man city", models.TierAverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Resolve(tt.team); got != tt.expected {
				t.Errorf("Resolve(%q) = %v, want %v", tt.team, got, tt.expected)
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	reg := NewRegistry()
	if err := reg.AddTeam(models.TierWeak, "Duplicate FC"); err != nil {
		t.Fatal(err)
	}
	if err := reg.AddTeam(models.TierElite, "Duplicate FC"); err != nil {
		t.Fatal(err)
	}

	// Elite is checked before Weak regardless of insertion order.
	if got := reg.Resolve("Duplicate FC"); got != models.TierElite {
		t.Errorf("Resolve() = %v, want %v", got, models.TierElite)
	}
}

func TestAddTeam(t *testing.T) {
	reg := NewRegistry()

	if err := reg.AddTeam(models.TierStrong, "Feyenoord"); err != nil {
		t.Fatalf("AddTeam() error = %v", err)
	}
	if got := reg.Resolve("Feyenoord"); got != models.TierStrong {
		t.Errorf("Resolve() = %v, want %v", got, models.TierStrong)
	}

	if err := reg.AddTeam("GALACTIC", "Feyenoord"); err == nil {
		t.Error("AddTeam() with unknown tier expected error, got nil")
	}
	if err := reg.AddTeam(models.TierStrong, ""); err == nil {
		t.Error("AddTeam() with empty name expected error, got nil")
	}
}

func TestTierMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		home     string
		away     string
		expected Multipliers
	}{
		{
			name:     "home two tiers above",
			home:     models.TierElite,
			away:     models.TierAverage,
			expected: Multipliers{HomeAttack: 1.30, HomeDefense: 0.80, AwayAttack: 0.70, AwayDefense: 1.40},
		},
		{
			name:     "home one tier above",
			home:     models.TierStrong,
			away:     models.TierAverage,
			expected: Multipliers{HomeAttack: 1.15, HomeDefense: 0.90, AwayAttack: 0.85, AwayDefense: 1.15},
		},
		{
			name:     "equal tiers",
			home:     models.TierAverage,
			away:     models.TierAverage,
			expected: Multipliers{HomeAttack: 1.00, HomeDefense: 1.00, AwayAttack: 1.00, AwayDefense: 1.00},
		},
		{
			name:     "home one tier below",
			home:     models.TierAverage,
			away:     models.TierStrong,
			expected: Multipliers{HomeAttack: 0.85, HomeDefense: 1.15, AwayAttack: 1.15, AwayDefense: 0.90},
		},
		{
			name:     "home two tiers below",
			home:     models.TierAverage,
			away:     models.TierElite,
			expected: Multipliers{HomeAttack: 0.70, HomeDefense: 1.40, AwayAttack: 1.30, AwayDefense: 0.80},
		},
		{
			name:     "extreme gap uses outer tuple",
			home:     models.TierWeak,
			away:     models.TierElite,
			expected: Multipliers{HomeAttack: 0.70, HomeDefense: 1.40, AwayAttack: 1.30, AwayDefense: 0.80},
		},
		{
			name:     "unknown tier treated as average",
			home:     "MYSTERY",
			away:     models.TierAverage,
			expected: Multipliers{HomeAttack: 1.00, HomeDefense: 1.00, AwayAttack: 1.00, AwayDefense: 1.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TierMultipliers(tt.home, tt.away); got != tt.expected {
				t.Errorf("TierMultipliers(%v, %v) = %+v, want %+v", tt.home, tt.away, got, tt.expected)
			}
		})
	}
}
