package models

// Motivation levels
const (
	MotivationVeryHigh = "VERY_HIGH"
	MotivationHigh     = "HIGH"
	MotivationMedium   = "MEDIUM"
	MotivationLow      = "LOW"
	MotivationVeryLow  = "VERY_LOW"
)

// Match context categories
const (
	ContextNormalLeague     = "NORMAL_LEAGUE"
	ContextLocalDerby       = "LOCAL_DERBY"
	ContextCupFinal         = "CUP_FINAL"
	ContextRelegationBattle = "RELEGATION_BATTLE"
	ContextTitleDecider     = "TITLE_DECIDER"
	ContextEuropean         = "EUROPEAN_COMPETITION"
)

// Quality tiers, strongest first
const (
	TierElite   = "ELITE"
	TierStrong  = "STRONG"
	TierAverage = "AVERAGE"
	TierWeak    = "WEAK"
)

// Match profile archetypes
const (
	ProfileDominance      = "QUALITY_DOMINANCE"
	ProfileTacticalBattle = "TACTICAL_BATTLE"
	ProfileOpenExchange   = "OPEN_EXCHANGE"
	ProfileContextAnomaly = "CONTEXT_ANOMALY"
)

// Confidence tiers shared by the profile classifier
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// Last-5 match states
const (
	StateStagnation       = "STAGNATION"
	StateSuppression      = "SUPPRESSION"
	StateDelayedExplosion = "DELAYED_EXPLOSION"
	StateExplosion        = "EXPLOSION"
	StateNeutral          = "NEUTRAL"
)

// Scoreline tags
const (
	TagBTTS       = "BTTS"
	TagCleanSheet = "CLEAN_SHEET"
)

// TeamInput holds the manually supplied statistics for one side of a fixture.
// Scoring and conceding averages are context specific (home form for the home
// team, away form for the away team).
type TeamInput struct {
	Name           string  `json:"name"`
	AvgScored      float64 `json:"avg_scored"`
	AvgConceded    float64 `json:"avg_conceded"`
	Over25Pct      float64 `json:"over25_pct"`
	BTTSPct        float64 `json:"btts_pct"`
	Motivation     string  `json:"motivation"`
	KeyAttackerOut bool    `json:"key_attacker_out"`
	KeyDefenderOut bool    `json:"key_defender_out"`
}

// LeagueStyle is immutable reference data describing a league's baseline.
type LeagueStyle struct {
	Name     string  `json:"name"`
	AvgGoals float64 `json:"avg_goals"`
	BTTSPct  float64 `json:"btts_pct"`
	Style    string  `json:"style,omitempty"`
}

// ExpectedGoals is the output of the expected goals engine. The adjusted
// attack values are kept for diagnostics.
type ExpectedGoals struct {
	HomeExpected  float64 `json:"home_expected"`
	AwayExpected  float64 `json:"away_expected"`
	TotalExpected float64 `json:"total_expected"`
	HomeAdjAttack float64 `json:"home_adj_attack"`
	AwayAdjAttack float64 `json:"away_adj_attack"`
}

// Probabilities bundles every market probability derived from expected goals.
// HomeWin+Draw+AwayWin is normalized to 100 before rounding; the over/under
// pair is complementary by construction.
type Probabilities struct {
	HomeWin       float64 `json:"home_win"`
	Draw          float64 `json:"draw"`
	AwayWin       float64 `json:"away_win"`
	BTTSProb      float64 `json:"btts_prob"`
	Over25Chance  float64 `json:"over25_chance"`
	Under25Chance float64 `json:"under25_chance"`
}

// MatchProfile describes the narrative archetype the classifier picked.
type MatchProfile struct {
	Primary    string             `json:"primary"`
	SubProfile string             `json:"sub_profile"`
	Confidence string             `json:"confidence"`
	Scores     map[string]float64 `json:"scores"`
}

// OddsInput carries the quoted decimal odds for the seven supported markets.
// Every price must be greater than 1.0.
type OddsInput struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`
	Over25  float64 `json:"over25"`
	Under25 float64 `json:"under25"`
	BTTSYes float64 `json:"btts_yes"`
	BTTSNo  float64 `json:"btts_no"`
}

// ValueOpportunity is a market where our probability beats the implied one.
type ValueOpportunity struct {
	Market      string  `json:"market"`
	Odds        float64 `json:"odds"`
	OurProb     float64 `json:"our_prob"`
	ImpliedProb float64 `json:"implied_prob"`
	Edge        float64 `json:"edge"`
	Stars       int     `json:"stars"`
}

// Scoreline is one cell of the independent Poisson score grid.
type Scoreline struct {
	HomeGoals   int     `json:"home_goals"`
	AwayGoals   int     `json:"away_goals"`
	Probability float64 `json:"probability"`
	Tag         string  `json:"tag"`
}

// AnalysisRequest is the full input for one pre-match analysis.
type AnalysisRequest struct {
	HomeTeam TeamInput   `json:"home_team"`
	AwayTeam TeamInput   `json:"away_team"`
	League   LeagueStyle `json:"league"`
	Context  string      `json:"context"`
	Odds     *OddsInput  `json:"odds,omitempty"`
}

// MatchAnalysis is everything the pipeline derives for one fixture.
type MatchAnalysis struct {
	HomeTeam      string             `json:"home_team"`
	AwayTeam      string             `json:"away_team"`
	HomeTier      string             `json:"home_tier"`
	AwayTier      string             `json:"away_tier"`
	Context       string             `json:"context"`
	League        string             `json:"league"`
	ExpectedGoals ExpectedGoals      `json:"expected_goals"`
	Probabilities Probabilities      `json:"probabilities"`
	Profile       MatchProfile       `json:"profile"`
	Opportunities []ValueOpportunity `json:"value_opportunities,omitempty"`
	Scorelines    []Scoreline        `json:"scorelines"`
}

// Last5Averages holds the four per-match averages (raw 5-match totals / 5,
// rounded to 2 decimals).
type Last5Averages struct {
	HomeScored   float64 `json:"home_scored"`
	HomeConceded float64 `json:"home_conceded"`
	AwayScored   float64 `json:"away_scored"`
	AwayConceded float64 `json:"away_conceded"`
}

// Durability classes
const (
	DurabilityStable  = "STABLE"
	DurabilityFragile = "FRAGILE"
	DurabilityNone    = "NONE"
)

// Durability scores how likely a low-scoring pattern is to persist.
type Durability struct {
	Score int    `json:"score"`
	Class string `json:"class"`
}

// Reliability labels, ordinal from best to worst
const (
	ReliabilityExcellent  = "EXCELLENT"
	ReliabilityHigh       = "HIGH"
	ReliabilityModerate   = "MODERATE"
	ReliabilityLow        = "LOW"
	ReliabilityVeryLow    = "VERY_LOW"
	ReliabilityUnreliable = "UNRELIABLE"
)

// Reliability scores how trustworthy the classification inputs are.
type Reliability struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// DefensiveAnalysis flags each side whose conceding average marks a strong
// defense, independent of the dominant state.
type DefensiveAnalysis struct {
	HomeStrongDefense bool `json:"home_strong_defense"`
	AwayStrongDefense bool `json:"away_strong_defense"`
}

// Last5Classification is the structured result of the last-5 state
// classifier. Either ClassificationError is set together with the error
// details, or every success field is populated; never both, never partially.
type Last5Classification struct {
	ClassificationError bool     `json:"classification_error"`
	ErrorMessage        string   `json:"error_message,omitempty"`
	MissingFields       []string `json:"missing_fields,omitempty"`
	TypeErrors          []string `json:"type_errors,omitempty"`

	Averages        *Last5Averages     `json:"averages,omitempty"`
	DominantState   string             `json:"dominant_state,omitempty"`
	Durability      *Durability        `json:"durability,omitempty"`
	UnderSuggestion string             `json:"under_suggestion,omitempty"`
	Reliability     *Reliability       `json:"reliability,omitempty"`
	Defensive       *DefensiveAnalysis `json:"defensive_analysis,omitempty"`
}
