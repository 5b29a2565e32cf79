package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/skillswap/backend/internal/models"
)

func matchRequest(handler *MatchHandler, userID uint, query string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/matches"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", userID)
	return rec, handler.GetMatches(c)
}

func TestGetMatchesRanksCandidates(t *testing.T) {
	requester := visibleProfile(1, []string{"React", "CSS"}, []string{"Python", "ML"})
	strong := visibleProfile(2, []string{"Python", "ML"}, []string{"React", "CSS"})
	weak := visibleProfile(3, []string{"Python"}, []string{"Knitting"})
	hidden := visibleProfile(4, []string{"Python", "ML"}, []string{"React", "CSS"})
	hidden.Visibility = false

	handler := NewMatchHandler(newFakeProfileRepo(requester, strong, weak, hidden))

	rec, err := matchRequest(handler, 1, "")
	if err != nil {
		t.Fatalf("matches: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var matches []models.MatchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(matches) == 0 {
		t.Fatal("expected at least one match")
	}
	if matches[0].Candidate.UserID != 2 {
		t.Fatalf("best match = %d, want 2", matches[0].Candidate.UserID)
	}
	for _, m := range matches {
		if m.Candidate.UserID == 1 {
			t.Fatal("requester returned as their own match")
		}
		if m.Candidate.UserID == 4 {
			t.Fatal("invisible profile returned as match")
		}
	}
}

func TestGetMatchesRequiresProfile(t *testing.T) {
	handler := NewMatchHandler(newFakeProfileRepo())

	_, err := matchRequest(handler, 1, "")
	if got := httpStatus(t, err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", got)
	}
}

func TestGetMatchesValidatesQueryParams(t *testing.T) {
	requester := visibleProfile(1, []string{"Go"}, []string{"Rust"})
	handler := NewMatchHandler(newFakeProfileRepo(requester))

	_, err := matchRequest(handler, 1, "?limit=0")
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("limit=0 status = %d, want 400", got)
	}

	_, err = matchRequest(handler, 1, "?min_score=-3")
	if got := httpStatus(t, err); got != http.StatusBadRequest {
		t.Fatalf("min_score=-3 status = %d, want 400", got)
	}
}

func TestGetMatchesHonorsLimit(t *testing.T) {
	profiles := []models.SkillProfile{visibleProfile(1, []string{"Go"}, []string{"Rust"})}
	for id := uint(2); id <= 10; id++ {
		p := visibleProfile(id, []string{"Rust"}, []string{"Go"})
		p.Rating = 4
		profiles = append(profiles, p)
	}
	handler := NewMatchHandler(newFakeProfileRepo(profiles...))

	rec, err := matchRequest(handler, 1, "?limit=3")
	if err != nil {
		t.Fatalf("matches: %v", err)
	}

	var matches []models.MatchResult
	if err := json.Unmarshal(rec.Body.Bytes(), &matches); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("len = %d, want 3", len(matches))
	}
}
