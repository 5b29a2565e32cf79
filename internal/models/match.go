package models

// MatchTier is a human-readable bucket derived from the compatibility score.
type MatchTier string

const (
	TierPerfect   MatchTier = "Perfect Match"
	TierGreat     MatchTier = "Great Match"
	TierGood      MatchTier = "Good Match"
	TierPotential MatchTier = "Potential Match"
)

// MatchResult is a scored candidate for a skill swap. It is computed on the
// fly and never persisted.
type MatchResult struct {
	Candidate           SkillProfile `json:"candidate"`
	SkillOverlapOffered []string     `json:"skill_overlap_offered"` // candidate offers, requester wants
	SkillOverlapWanted  []string     `json:"skill_overlap_wanted"`  // requester offers, candidate wants
	SkillMatchScore     float64      `json:"skill_match_score"`
	AvailabilityMatch   float64      `json:"availability_match"`
	CompatibilityScore  int          `json:"compatibility_score"`
	Tier                MatchTier    `json:"tier"`
}
