package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Alias1177/MatchPredictor/internal/analyzer"
	"github.com/Alias1177/MatchPredictor/models"
)

type recordingStore struct {
	saved [][2]string
}

func (s *recordingStore) SaveTeam(tier, name string) error {
	s.saved = append(s.saved, [2]string{tier, name})
	return nil
}

func newTestServer(store TeamStore) *Server {
	return New(analyzer.New(nil), store, 0, 0)
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func validAnalysisRequest() models.AnalysisRequest {
	return models.AnalysisRequest{
		HomeTeam: models.TeamInput{Name: "Home FC", AvgScored: 1.4, AvgConceded: 1.1, Over25Pct: 50, BTTSPct: 50, Motivation: models.MotivationMedium},
		AwayTeam: models.TeamInput{Name: "Away FC", AvgScored: 1.2, AvgConceded: 1.3, Over25Pct: 50, BTTSPct: 50, Motivation: models.MotivationMedium},
		League:   models.LeagueStyle{Name: "Premier League"},
		Context:  models.ContextNormalLeague,
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(nil)
	rec := postJSON(t, srv, "/v1/analyze", validAnalysisRequest())

	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/analyze = %d, body %s", rec.Code, rec.Body)
	}

	var analysis models.MatchAnalysis
	if err := json.Unmarshal(rec.Body.Bytes(), &analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.ExpectedGoals.TotalExpected <= 0 {
		t.Errorf("TotalExpected = %v, want positive", analysis.ExpectedGoals.TotalExpected)
	}
	if len(analysis.Scorelines) == 0 {
		t.Error("expected scorelines in response")
	}
}

func TestAnalyzeEndpointRejectsInvalidInput(t *testing.T) {
	srv := newTestServer(nil)

	bad := validAnalysisRequest()
	bad.HomeTeam.Name = ""
	if rec := postJSON(t, srv, "/v1/analyze", bad); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid request = %d, want 422", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", rec.Code)
	}
}

func TestLast5Endpoint(t *testing.T) {
	srv := newTestServer(nil)
	body := map[string]any{
		"home": map[string]any{"goals_scored_last_5": 5, "goals_conceded_last_5": 4},
		"away": map[string]any{"goals_scored_last_5": 5, "goals_conceded_last_5": 5},
	}

	rec := postJSON(t, srv, "/v1/last5", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/last5 = %d, body %s", rec.Code, rec.Body)
	}

	var result models.Last5Classification
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.DominantState != models.StateSuppression {
		t.Errorf("DominantState = %v, want SUPPRESSION", result.DominantState)
	}
}

func TestLast5EndpointClassificationError(t *testing.T) {
	srv := newTestServer(nil)
	body := map[string]any{
		"home": map[string]any{"goals_scored_last_5": 5},
		"away": map[string]any{"goals_scored_last_5": 5, "goals_conceded_last_5": 5},
	}

	rec := postJSON(t, srv, "/v1/last5", body)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST /v1/last5 = %d, want 422", rec.Code)
	}

	var result models.Last5Classification
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !result.ClassificationError {
		t.Error("expected classification_error in response")
	}
}

func TestTierEndpoints(t *testing.T) {
	store := &recordingStore{}
	srv := newTestServer(store)

	rec := postJSON(t, srv, "/v1/tiers/ELITE", addTeamRequest{Name: "Bayer Leverkusen"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /v1/tiers/ELITE = %d, body %s", rec.Code, rec.Body)
	}
	if len(store.saved) != 1 || store.saved[0] != [2]string{"ELITE", "Bayer Leverkusen"} {
		t.Errorf("store.saved = %v, want the new team persisted", store.saved)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/v1/tiers", nil)
	listRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(listRec, listReq)
	if listRec.Code != http.StatusOK {
		t.Fatalf("GET /v1/tiers = %d", listRec.Code)
	}

	var tiersOut map[string][]string
	if err := json.Unmarshal(listRec.Body.Bytes(), &tiersOut); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	found := false
	for _, name := range tiersOut[models.TierElite] {
		if name == "Bayer Leverkusen" {
			found = true
		}
	}
	if !found {
		t.Errorf("ELITE members %v missing the added team", tiersOut[models.TierElite])
	}

	if rec := postJSON(t, srv, "/v1/tiers/GODLIKE", addTeamRequest{Name: "Nobody"}); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("unknown tier = %d, want 422", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	srv := New(analyzer.New(nil), nil, 1, 1)

	first := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	firstRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(firstRec, first)
	if firstRec.Code != http.StatusOK {
		t.Fatalf("first request = %d, want 200", firstRec.Code)
	}

	second := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	secondRec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(secondRec, second)
	if secondRec.Code != http.StatusTooManyRequests {
		t.Errorf("second request = %d, want 429", secondRec.Code)
	}
}
