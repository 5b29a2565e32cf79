package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/skillswap/backend/internal/models"
)

// Weights for the compatibility formula; they sum to 1.0. Rating is scaled
// by 10 before weighting.
const (
	skillWeight        = 0.6
	availabilityWeight = 0.3
	ratingWeight       = 0.1
)

// Default limits applied when Config fields are left zero.
const (
	DefaultMaxResults = 6
	DefaultMinScore   = 20.0
)

// Config bounds the result list produced by RankCandidates.
type Config struct {
	MaxResults int     // cap on returned matches, must be >= 1
	MinScore   float64 // candidates scoring <= MinScore are dropped
}

// withDefaults fills in zero-valued fields.
func (c Config) withDefaults() Config {
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.MinScore <= 0 {
		c.MinScore = DefaultMinScore
	}
	return c
}

// RankCandidates scores every eligible candidate against the requester and
// returns the top matches, best first. The requester itself and invisible
// profiles are skipped. An empty result is not an error; nil inputs are.
func RankCandidates(requester *models.SkillProfile, candidates []models.SkillProfile, cfg Config) ([]models.MatchResult, error) {
	if requester == nil || candidates == nil {
		return nil, ErrInvalidInput
	}
	cfg = cfg.withDefaults()

	results := make([]models.MatchResult, 0, len(candidates))
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.UserID == requester.UserID || !candidate.Visibility {
			continue
		}

		match := ScoreCandidate(requester, candidate)
		if float64(match.CompatibilityScore) <= cfg.MinScore {
			continue
		}
		results = append(results, match)
	}

	// Ties broken by candidate id so the ordering is stable across calls.
	sort.Slice(results, func(i, j int) bool {
		if results[i].CompatibilityScore != results[j].CompatibilityScore {
			return results[i].CompatibilityScore > results[j].CompatibilityScore
		}
		return results[i].Candidate.UserID < results[j].Candidate.UserID
	})

	if len(results) > cfg.MaxResults {
		results = results[:cfg.MaxResults]
	}
	return results, nil
}

// ScoreCandidate computes the full MatchResult for a single candidate.
func ScoreCandidate(requester, candidate *models.SkillProfile) models.MatchResult {
	offeredMatches := intersectSkills(requester.SkillsWanted, candidate.SkillsOffered)
	wantedMatches := intersectSkills(candidate.SkillsWanted, requester.SkillsOffered)

	skillScore := skillMatchScore(requester, len(offeredMatches)+len(wantedMatches))
	availScore := availabilityMatch(requester.Availability, candidate.Availability)
	total := int(math.Round(skillScore*skillWeight + availScore*availabilityWeight + candidate.Rating*10*ratingWeight))

	return models.MatchResult{
		Candidate:           *candidate,
		SkillOverlapOffered: offeredMatches,
		SkillOverlapWanted:  wantedMatches,
		SkillMatchScore:     skillScore,
		AvailabilityMatch:   availScore,
		CompatibilityScore:  total,
		Tier:                tierFor(total),
	}
}

// skillMatchScore normalizes the overlap count by the requester's total skill
// count. A requester with no skills at all scores zero everywhere.
func skillMatchScore(requester *models.SkillProfile, overlap int) float64 {
	total := len(requester.SkillsOffered) + len(requester.SkillsWanted)
	if total == 0 {
		return 0
	}
	score := 100 * float64(overlap) / float64(total)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// availabilityMatch is all-or-nothing: equal slots match, and Flexible on
// either side matches everything.
func availabilityMatch(a, b models.Availability) float64 {
	if a == b || a == models.AvailabilityFlexible || b == models.AvailabilityFlexible {
		return 100
	}
	return 0
}

func tierFor(score int) models.MatchTier {
	switch {
	case score > 80:
		return models.TierPerfect
	case score > 60:
		return models.TierGreat
	case score > 40:
		return models.TierGood
	default:
		return models.TierPotential
	}
}

// intersectSkills returns the members of pool whose lowercased form appears in
// wanted. Labels keep the casing they have in pool; duplicates collapse.
func intersectSkills(wanted, pool []string) []string {
	lookup := make(map[string]struct{}, len(wanted))
	for _, s := range wanted {
		lookup[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	seen := make(map[string]struct{}, len(pool))
	matches := []string{}
	for _, s := range pool {
		key := strings.ToLower(strings.TrimSpace(s))
		if _, ok := lookup[key]; !ok {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		matches = append(matches, s)
	}
	return matches
}
