package tiers

import (
	"fmt"
	"sync"

	"github.com/Alias1177/MatchPredictor/models"
)

// tierOrder is the fixed lookup order for name resolution.
var tierOrder = []string{models.TierElite, models.TierStrong, models.TierAverage, models.TierWeak}

// tierValues maps tiers to the ordinal scale used for multiplier selection.
var tierValues = map[string]int{
	models.TierElite:   4,
	models.TierStrong:  3,
	models.TierAverage: 2,
	models.TierWeak:    1,
}

// Registry holds the append-only tier membership lists. It is owned by the
// caller and passed into the resolver explicitly; reads are safe under a
// single concurrent writer.
type Registry struct {
	mu      sync.RWMutex
	members map[string][]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	members := make(map[string][]string, len(tierOrder))
	for _, tier := range tierOrder {
		members[tier] = nil
	}
	return &Registry{members: members}
}

// DefaultRegistry returns a registry seeded with the built-in membership
// lists, for use when no external tier store is configured.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.members[models.TierElite] = []string{
		"Man City", "Arsenal", "Liverpool", "Real Madrid", "Barcelona",
		"Bayern Munich", "PSG", "Inter Milan",
	}
	r.members[models.TierStrong] = []string{
		"Man United", "Chelsea", "Tottenham", "Newcastle", "Atletico Madrid",
		"Borussia Dortmund", "AC Milan", "Juventus", "Napoli",
	}
	r.members[models.TierAverage] = []string{
		"West Ham", "Brighton", "Aston Villa", "Sevilla", "Valencia",
		"Eintracht Frankfurt", "Roma", "Lazio",
	}
	r.members[models.TierWeak] = []string{
		"Luton", "Sheffield United", "Burnley", "Almeria", "Granada",
		"Darmstadt", "Salernitana",
	}
	return r
}

// Resolve maps a team name to its quality tier. The match is exact and
// case-sensitive; tiers are checked Elite->Strong->Average->Weak and the
// first hit wins. Unknown teams default to Average.
func (r *Registry) Resolve(teamName string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, tier := range tierOrder {
		for _, name := range r.members[tier] {
			if name == teamName {
				return tier
			}
		}
	}
	return models.TierAverage
}

// AddTeam appends a team to a tier's membership list. The lists are
// append-only: there is no removal and no reassignment across tiers.
func (r *Registry) AddTeam(tier, name string) error {
	if _, ok := tierValues[tier]; !ok {
		return fmt.Errorf("unknown tier %q", tier)
	}
	if name == "" {
		return fmt.Errorf("empty team name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[tier] = append(r.members[tier], name)
	return nil
}

// Members returns a copy of a tier's membership list.
func (r *Registry) Members(tier string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.members[tier]...)
}

// Multipliers is the attack/defense multiplier tuple keyed on tier difference.
type Multipliers struct {
	HomeAttack  float64
	HomeDefense float64
	AwayAttack  float64
	AwayDefense float64
}

// TierMultipliers selects the multiplier tuple for a pairing of tiers based
// on the ordinal difference homeValue-awayValue.
func TierMultipliers(homeTier, awayTier string) Multipliers {
	diff := tierValue(homeTier) - tierValue(awayTier)

	switch {
	case diff >= 2:
		return Multipliers{HomeAttack: 1.30, HomeDefense: 0.80, AwayAttack: 0.70, AwayDefense: 1.40}
	case diff == 1:
		return Multipliers{HomeAttack: 1.15, HomeDefense: 0.90, AwayAttack: 0.85, AwayDefense: 1.15}
	case diff == 0:
		return Multipliers{HomeAttack: 1.00, HomeDefense: 1.00, AwayAttack: 1.00, AwayDefense: 1.00}
	case diff == -1:
		return Multipliers{HomeAttack: 0.85, HomeDefense: 1.15, AwayAttack: 1.15, AwayDefense: 0.90}
	default:
		return Multipliers{HomeAttack: 0.70, HomeDefense: 1.40, AwayAttack: 1.30, AwayDefense: 0.80}
	}
}

func tierValue(tier string) int {
	if v, ok := tierValues[tier]; ok {
		return v
	}
	return tierValues[models.TierAverage]
}
