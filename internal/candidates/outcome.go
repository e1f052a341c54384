package candidates

import "github.com/talentsift/sift/internal/evaluation"

// Decide applies the screening decision rules to a scorecard:
//
//   - confidence >= 0.8 and skills_match >= 0.75: SHORTLIST
//   - confidence <= 0.4: REJECT
//   - anything else: NEEDS_HUMAN_REVIEW
//
// Missing scorecard fields decode to zero, so an empty scorecard
// resolves to REJECT.
func Decide(scorecard evaluation.Scorecard) string {
	if scorecard.Confidence >= 0.8 && scorecard.SkillsMatch >= 0.75 {
		return OutcomeShortlist
	}

	if scorecard.Confidence <= 0.4 {
		return OutcomeReject
	}

	return OutcomeReview
}

// ValidReviewOutcome reports whether the outcome is acceptable for a
// human review decision. Reviewers must resolve to a terminal outcome.
func ValidReviewOutcome(outcome string) bool {
	return outcome == OutcomeShortlist || outcome == OutcomeReject
}
