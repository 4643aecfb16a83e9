package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeedback = `Section A: Algebra

Question 1: Solve for x in 2x + 3 = 11
Student's Attempt: Correct isolation of x, clean working shown.
Marks Awarded: 5/5

Question 2: Factorise x^2 - 9
Student's Attempt: Identified the difference of squares but dropped a sign.
Marks Awarded: 3/5

Section B: Geometry

Question 3: Find the area of the given triangle
Student's Attempt: Used the wrong base length, method otherwise sound.
Marks Awarded: 7/10

Overall Performance Assessment: Solid algebra fundamentals, geometry needs revision.

SCORE: 75`

func TestParseGradeFeedback_Sections(t *testing.T) {
	parsed := ParseGradeFeedback(sampleFeedback)

	assert.Equal(t, 75, parsed.TotalScore)
	assert.Equal(t, sampleFeedback, parsed.Raw)
	require.Len(t, parsed.Sections, 2)

	secA := parsed.Sections[0]
	assert.Equal(t, "Section A: Algebra", secA.Name)
	require.Len(t, secA.Questions, 2)
	assert.Equal(t, "1", secA.Questions[0].Number)
	assert.Equal(t, 5, secA.Questions[0].Awarded)
	assert.Equal(t, 5, secA.Questions[0].MaxMarks)
	assert.Equal(t, "2", secA.Questions[1].Number)
	assert.Equal(t, 3, secA.Questions[1].Awarded)
	assert.Equal(t, 8, secA.Total)
	assert.Equal(t, 10, secA.Max)

	secB := parsed.Sections[1]
	assert.Equal(t, "Section B: Geometry", secB.Name)
	require.Len(t, secB.Questions, 1)
	assert.Equal(t, 7, secB.Questions[0].Awarded)
	assert.Equal(t, 10, secB.Questions[0].MaxMarks)
}

func TestParseGradeFeedback_NoSections(t *testing.T) {
	feedback := "Question 1: Define osmosis\nMarks Awarded: 2/4\n\nQuestion 2: Label the diagram\nMarks Awarded: 4/4\n\nSCORE: 60"
	parsed := ParseGradeFeedback(feedback)

	assert.Equal(t, 60, parsed.TotalScore)
	require.Len(t, parsed.Sections, 1)
	assert.Equal(t, "All Questions", parsed.Sections[0].Name)
	require.Len(t, parsed.Sections[0].Questions, 2)
	assert.Equal(t, 6, parsed.Sections[0].Total)
	assert.Equal(t, 8, parsed.Sections[0].Max)
}

func TestParseGradeFeedback_Unparseable(t *testing.T) {
	parsed := ParseGradeFeedback("The scan was blank.")
	assert.Empty(t, parsed.Sections)
	assert.Equal(t, 0, parsed.TotalScore)
}

func TestReconstructFeedback_RecomputesScore(t *testing.T) {
	parsed := ParseGradeFeedback(sampleFeedback)

	// Bump question 2 from 3 to 5 after a teacher review.
	updated := ReconstructFeedback(parsed, map[string]int{
		QuestionKey("Section A: Algebra", "2"): 5,
	})

	assert.Contains(t, updated, "Marks Awarded: 5/5")
	assert.True(t, strings.HasSuffix(updated, "SCORE: 17"),
		"score must equal the sum of updated marks, got tail %q", tail(updated))

	// Round-tripping the rebuilt text agrees with itself.
	reparsed := ParseGradeFeedback(updated)
	assert.Equal(t, 17, reparsed.TotalScore)
}

func TestReconstructFeedback_NoUpdatesKeepsScore(t *testing.T) {
	parsed := ParseGradeFeedback(sampleFeedback)
	rebuilt := ReconstructFeedback(parsed, nil)
	assert.True(t, strings.HasSuffix(rebuilt, "SCORE: 75"), "got tail %q", tail(rebuilt))
}

func TestUpdateMarksInFeedback(t *testing.T) {
	updated := UpdateMarksInFeedback(sampleFeedback, map[string]MarkUpdate{
		QuestionKey("Section B: Geometry", "3"): {Old: 7, New: 9, Max: 10},
	})

	assert.Contains(t, updated, "Marks Awarded: 9/10")
	assert.NotContains(t, updated, "Marks Awarded: 7/10")
	assert.Contains(t, updated, "SCORE: 77")
}

func tail(s string) string {
	if len(s) <= 40 {
		return s
	}
	return s[len(s)-40:]
}
