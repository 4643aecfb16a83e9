package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		want     *int
	}{
		{
			name:     "score at end",
			feedback: "Question 1: good work [5/5 marks]\n\nSCORE: 85",
			want:     intp(85),
		},
		{
			name:     "score with denominator",
			feedback: "Feedback here.\n\nSCORE: 62/100",
			want:     intp(62),
		},
		{
			name:     "score on its own line mid-text",
			feedback: "SCORE: 40\nNote: partial credit given for Q3.",
			want:     intp(40),
		},
		{
			name:     "final score variant",
			feedback: "Good effort overall. Final Score: 73",
			want:     intp(73),
		},
		{
			name:     "total score variant",
			feedback: "Total Score: 91/100 after review",
			want:     intp(91),
		},
		{
			name:     "clamped above 100",
			feedback: "SCORE: 140",
			want:     intp(100),
		},
		{
			name:     "no score",
			feedback: "The handwriting was illegible on every page.",
			want:     nil,
		},
		{
			name:     "marks fractions are not scores",
			feedback: "Question 1: [4/5 marks]\nQuestion 2: [3/10 marks]",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractScore(tt.feedback)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestStripScoreMarker(t *testing.T) {
	tests := []struct {
		name     string
		feedback string
		want     string
	}{
		{
			name:     "marker at end",
			feedback: "Question 1: good work [5/5 marks]\n\nSCORE: 85",
			want:     "Question 1: good work [5/5 marks]",
		},
		{
			name:     "marker with denominator",
			feedback: "Feedback here.\n\nSCORE: 62/100",
			want:     "Feedback here.",
		},
		{
			name:     "marker on its own line mid-text",
			feedback: "SCORE: 40\nNote: partial credit given for Q3.",
			want:     "Note: partial credit given for Q3.",
		},
		{
			name:     "final score variant",
			feedback: "Good effort overall. Final Score: 73",
			want:     "Good effort overall.",
		},
		{
			name:     "no marker is untouched",
			feedback: "Question 1: [4/5 marks]\nQuestion 2: [3/10 marks]",
			want:     "Question 1: [4/5 marks]\nQuestion 2: [3/10 marks]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripScoreMarker(tt.feedback))
		})
	}
}

func TestExtractThenStripRoundTrip(t *testing.T) {
	feedback := "Question 1: correct [5/5 marks]\nGood work overall.\nSCORE: 87"

	score := ExtractScore(feedback)
	require.NotNil(t, score)
	assert.Equal(t, 87, *score)

	stripped := StripScoreMarker(feedback)
	assert.Equal(t, "Question 1: correct [5/5 marks]\nGood work overall.", stripped)
	assert.Nil(t, ExtractScore(stripped))
}

func intp(n int) *int { return &n }
