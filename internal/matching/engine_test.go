package matching

import (
	"testing"

	"github.com/skillswap/backend/internal/models"
)

func profile(userID uint, offered, wanted []string, availability models.Availability, rating float64, visible bool) models.SkillProfile {
	return models.SkillProfile{
		UserID:        userID,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		Availability:  availability,
		Rating:        rating,
		Visibility:    visible,
	}
}

func TestScoreCandidateWorkedExample(t *testing.T) {
	requester := profile(1, []string{"React", "CSS"}, []string{"Python", "ML"}, models.AvailabilityWeekends, 0, true)
	candidate := profile(2, []string{"Python"}, []string{"React"}, models.AvailabilityFlexible, 4.8, true)

	match := ScoreCandidate(&requester, &candidate)

	if got, want := match.SkillMatchScore, 50.0; got != want {
		t.Fatalf("skill match score = %v, want %v", got, want)
	}
	if got, want := match.AvailabilityMatch, 100.0; got != want {
		t.Fatalf("availability match = %v, want %v", got, want)
	}
	// round(50*0.6 + 100*0.3 + 4.8*10*0.1) = round(64.8) = 65
	if got, want := match.CompatibilityScore, 65; got != want {
		t.Fatalf("compatibility score = %v, want %v", got, want)
	}
	if got, want := match.Tier, models.TierGreat; got != want {
		t.Fatalf("tier = %v, want %v", got, want)
	}
	if len(match.SkillOverlapOffered) != 1 || match.SkillOverlapOffered[0] != "Python" {
		t.Fatalf("offered overlap = %v, want [Python]", match.SkillOverlapOffered)
	}
	if len(match.SkillOverlapWanted) != 1 || match.SkillOverlapWanted[0] != "React" {
		t.Fatalf("wanted overlap = %v, want [React]", match.SkillOverlapWanted)
	}
}

func TestScoreCandidateCaseInsensitiveOverlap(t *testing.T) {
	requester := profile(1, []string{"react"}, []string{"PYTHON"}, models.AvailabilityFlexible, 0, true)
	candidate := profile(2, []string{"Python"}, []string{"React"}, models.AvailabilityFlexible, 0, true)

	match := ScoreCandidate(&requester, &candidate)

	// Overlap labels keep the casing of the side that listed them.
	if len(match.SkillOverlapOffered) != 1 || match.SkillOverlapOffered[0] != "Python" {
		t.Fatalf("offered overlap = %v, want [Python]", match.SkillOverlapOffered)
	}
	if match.SkillMatchScore != 100 {
		t.Fatalf("skill match score = %v, want 100", match.SkillMatchScore)
	}
}

func TestScoreCandidateEmptyRequesterSkills(t *testing.T) {
	requester := profile(1, nil, nil, models.AvailabilityFlexible, 0, true)
	candidate := profile(2, []string{"Go"}, []string{"Rust"}, models.AvailabilityFlexible, 5, true)

	match := ScoreCandidate(&requester, &candidate)
	if match.SkillMatchScore != 0 {
		t.Fatalf("skill match score = %v, want 0 for empty requester skills", match.SkillMatchScore)
	}
}

func TestAvailabilityMatch(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Availability
		want float64
	}{
		{"equal", models.AvailabilityWeekends, models.AvailabilityWeekends, 100},
		{"requester flexible", models.AvailabilityFlexible, models.AvailabilityWeekdays, 100},
		{"candidate flexible", models.AvailabilityEvenings, models.AvailabilityFlexible, 100},
		{"disjoint", models.AvailabilityWeekends, models.AvailabilityEvenings, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := availabilityMatch(tt.a, tt.b); got != tt.want {
				t.Fatalf("availabilityMatch(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestRankCandidatesNilInputs(t *testing.T) {
	requester := profile(1, []string{"Go"}, []string{"Rust"}, models.AvailabilityFlexible, 0, true)

	if _, err := RankCandidates(nil, []models.SkillProfile{}, Config{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for nil requester, got %v", err)
	}
	if _, err := RankCandidates(&requester, nil, Config{}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for nil candidates, got %v", err)
	}
}

func TestRankCandidatesExcludesSelfAndInvisible(t *testing.T) {
	requester := profile(1, []string{"Go"}, []string{"Rust"}, models.AvailabilityFlexible, 0, true)
	candidates := []models.SkillProfile{
		profile(1, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 5, true),  // requester itself
		profile(2, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 5, false), // invisible
		profile(3, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 5, true),
	}

	matches, err := RankCandidates(&requester, candidates, Config{})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(matches))
	}
	if matches[0].Candidate.UserID != 3 {
		t.Fatalf("expected candidate 3, got %d", matches[0].Candidate.UserID)
	}
}

func TestRankCandidatesSortedCappedAndThresholded(t *testing.T) {
	requester := profile(1, []string{"Go", "SQL"}, []string{"Rust", "Docker"}, models.AvailabilityWeekends, 0, true)

	candidates := []models.SkillProfile{}
	// Strong candidates: full overlap, matching availability, varied ratings.
	for id := uint(2); id <= 11; id++ {
		candidates = append(candidates, profile(id,
			[]string{"Rust", "Docker"}, []string{"Go", "SQL"},
			models.AvailabilityWeekends, float64(id%5), true))
	}
	// Weak candidate: no overlap, no availability match; scores at most
	// rating*10*0.1 = 5, below the default threshold.
	candidates = append(candidates, profile(50, []string{"Knitting"}, []string{"Pottery"}, models.AvailabilityEvenings, 5, true))

	matches, err := RankCandidates(&requester, candidates, Config{})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}

	if len(matches) != DefaultMaxResults {
		t.Fatalf("expected %d matches, got %d", DefaultMaxResults, len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].CompatibilityScore > matches[i-1].CompatibilityScore {
			t.Fatalf("matches not sorted descending at index %d", i)
		}
	}
	for _, m := range matches {
		if m.Candidate.UserID == 50 {
			t.Fatal("below-threshold candidate leaked into results")
		}
		if m.CompatibilityScore < 0 || m.CompatibilityScore > 100 {
			t.Fatalf("compatibility score %d out of range", m.CompatibilityScore)
		}
	}
}

func TestRankCandidatesDeterministicTieBreak(t *testing.T) {
	requester := profile(1, []string{"Go"}, []string{"Rust"}, models.AvailabilityFlexible, 0, true)
	// Identical candidates except for id; equal scores must sort by id.
	candidates := []models.SkillProfile{
		profile(7, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 3, true),
		profile(3, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 3, true),
		profile(5, []string{"Rust"}, []string{"Go"}, models.AvailabilityFlexible, 3, true),
	}

	matches, err := RankCandidates(&requester, candidates, Config{})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i, want := range []uint{3, 5, 7} {
		if matches[i].Candidate.UserID != want {
			t.Fatalf("tie break order wrong: position %d has candidate %d, want %d", i, matches[i].Candidate.UserID, want)
		}
	}
}

func TestRankCandidatesEmptyPoolIsNotAnError(t *testing.T) {
	requester := profile(1, []string{"Go"}, []string{"Rust"}, models.AvailabilityFlexible, 0, true)

	matches, err := RankCandidates(&requester, []models.SkillProfile{}, Config{})
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(matches) != 0 {
		t.Fatalf("expected empty result, got %d matches", len(matches))
	}
}

func TestTierBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  models.MatchTier
	}{
		{81, models.TierPerfect},
		{80, models.TierGreat},
		{61, models.TierGreat},
		{60, models.TierGood},
		{41, models.TierGood},
		{40, models.TierPotential},
		{0, models.TierPotential},
	}
	for _, tt := range tests {
		if got := tierFor(tt.score); got != tt.want {
			t.Fatalf("tierFor(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}
