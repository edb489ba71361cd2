package scoreline

import (
	"math"
	"testing"

	"github.com/Alias1177/MatchPredictor/models"
)

func TestPoissonProb(t *testing.T) {
	tests := []struct {
		name     string
		lambda   float64
		k        int
		expected float64
	}{
		{"zero goals at lambda 1", 1.0, 0, math.Exp(-1)},
		{"one goal at lambda 1", 1.0, 1, math.Exp(-1)},
		{"two goals at lambda 2", 2.0, 2, 2 * math.Exp(-2)},
		{"negative count", 1.5, -1, 0},
		{"zero lambda zero goals", 0, 0, 1.0},
		{"zero lambda one goal", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PoissonProb(tt.lambda, tt.k); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("PoissonProb(%v, %d) = %v, want %v", tt.lambda, tt.k, got, tt.expected)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	xg := models.ExpectedGoals{HomeExpected: 1.5, AwayExpected: 1.2}

	lines := Generate(xg, DefaultMaxGoals)

	if len(lines) == 0 || len(lines) > 8 {
		t.Fatalf("Generate() returned %d scorelines, want 1..8", len(lines))
	}

	sum := 0.0
	for i, line := range lines {
		sum += line.Probability
		// The filter runs on the unrounded probability, so a rounded
		// entry can sit exactly on 1.0 but never below it.
		if line.Probability < 1.0 {
			t.Errorf("scoreline %d:%d probability %v below 1%%", line.HomeGoals, line.AwayGoals, line.Probability)
		}
		if i > 0 && lines[i-1].Probability < line.Probability {
			t.Errorf("scorelines not sorted descending at index %d", i)
		}
		if line.HomeGoals > DefaultMaxGoals || line.AwayGoals > DefaultMaxGoals {
			t.Errorf("scoreline %d:%d outside grid bound", line.HomeGoals, line.AwayGoals)
		}
	}
	if sum > 100 {
		t.Errorf("probability sum %v exceeds 100", sum)
	}

	// 1-1 is the modal score for these expectancies.
	if lines[0].HomeGoals != 1 || lines[0].AwayGoals != 1 {
		t.Errorf("top scoreline = %d:%d, want 1:1", lines[0].HomeGoals, lines[0].AwayGoals)
	}
}

func TestGenerateTags(t *testing.T) {
	xg := models.ExpectedGoals{HomeExpected: 1.4, AwayExpected: 1.1}

	for _, line := range Generate(xg, DefaultMaxGoals) {
		bothScored := line.HomeGoals > 0 && line.AwayGoals > 0
		if bothScored && line.Tag != models.TagBTTS {
			t.Errorf("scoreline %d:%d tag = %v, want BTTS", line.HomeGoals, line.AwayGoals, line.Tag)
		}
		if !bothScored && line.Tag != models.TagCleanSheet {
			t.Errorf("scoreline %d:%d tag = %v, want CLEAN_SHEET", line.HomeGoals, line.AwayGoals, line.Tag)
		}
	}
}

func TestGenerateDefaultsBound(t *testing.T) {
	xg := models.ExpectedGoals{HomeExpected: 1.0, AwayExpected: 1.0}

	bounded := Generate(xg, 0)
	explicit := Generate(xg, DefaultMaxGoals)

	if len(bounded) != len(explicit) {
		t.Errorf("zero bound should fall back to default: %d vs %d entries", len(bounded), len(explicit))
	}
}
