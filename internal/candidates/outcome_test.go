package candidates_test

import (
	"testing"

	"github.com/talentsift/sift/internal/candidates"
	"github.com/talentsift/sift/internal/evaluation"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name      string
		scorecard evaluation.Scorecard
		want      string
	}{
		{
			name:      "high confidence and strong skills shortlists",
			scorecard: evaluation.Scorecard{Confidence: 0.9, SkillsMatch: 0.8},
			want:      candidates.OutcomeShortlist,
		},
		{
			name:      "shortlist thresholds are inclusive",
			scorecard: evaluation.Scorecard{Confidence: 0.8, SkillsMatch: 0.75},
			want:      candidates.OutcomeShortlist,
		},
		{
			name:      "low confidence rejects",
			scorecard: evaluation.Scorecard{Confidence: 0.3, SkillsMatch: 0.9},
			want:      candidates.OutcomeReject,
		},
		{
			name:      "reject threshold is inclusive",
			scorecard: evaluation.Scorecard{Confidence: 0.4, SkillsMatch: 0.9},
			want:      candidates.OutcomeReject,
		},
		{
			name:      "confident but weak skills needs review",
			scorecard: evaluation.Scorecard{Confidence: 0.9, SkillsMatch: 0.5},
			want:      candidates.OutcomeReview,
		},
		{
			name:      "borderline confidence needs review",
			scorecard: evaluation.Scorecard{Confidence: 0.6, SkillsMatch: 0.9},
			want:      candidates.OutcomeReview,
		},
		{
			name:      "just above reject threshold needs review",
			scorecard: evaluation.Scorecard{Confidence: 0.41, SkillsMatch: 0.2},
			want:      candidates.OutcomeReview,
		},
		{
			name:      "empty scorecard rejects",
			scorecard: evaluation.Scorecard{},
			want:      candidates.OutcomeReject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := candidates.Decide(tt.scorecard); got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValidReviewOutcome(t *testing.T) {
	tests := []struct {
		outcome string
		want    bool
	}{
		{candidates.OutcomeShortlist, true},
		{candidates.OutcomeReject, true},
		{candidates.OutcomeReview, false},
		{"", false},
		{"shortlist", false},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			if got := candidates.ValidReviewOutcome(tt.outcome); got != tt.want {
				t.Errorf("ValidReviewOutcome(%q) = %v, want %v", tt.outcome, got, tt.want)
			}
		})
	}
}
