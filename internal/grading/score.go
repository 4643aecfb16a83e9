package grading

import (
	"regexp"
	"strconv"
	"strings"
)

// Ordered from strictest to loosest. The model is told to end with
// "SCORE: N/100" but older passes produced variants.
var scorePatterns = []*regexp.Regexp{
	// "SCORE: 14" or "SCORE: 14/100" at the end of the text
	regexp.MustCompile(`(?im)SCORE:\s*(\d+)(?:\s*/\s*100)?\s*$`),
	// "SCORE: 14" on its own line anywhere
	regexp.MustCompile(`(?im)(?:^|\n)SCORE:\s*(\d+)(?:\s*/\s*100)?\s*(?:\n|$)`),
	// "Final Score: 14" / "Total Score: 14"
	regexp.MustCompile(`(?i)(?:Final|Total)\s+Score:\s*(\d+)(?:\s*/\s*100)?`),
}

var scoreLine = regexp.MustCompile(`(?im)SCORE:\s*\d+(?:\s*/\s*100)?\s*$`)

// Strip variants mirror scorePatterns without capture groups. The
// Final/Total form goes first so the bare line pattern cannot match
// inside it and leave a dangling prefix.
var scoreStripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Final|Total)\s+Score:\s*\d+(?:\s*/\s*100)?`),
	scoreLine,
	regexp.MustCompile(`(?im)(?:^|\n)SCORE:\s*\d+(?:\s*/\s*100)?\s*(?:\n|$)`),
}

// ExtractScore pulls the overall score out of feedback text, clamped to
// 0..100. Returns nil when no pattern matches; callers treat that as a
// grade without a score, not a failure.
func ExtractScore(feedback string) *int {
	for _, re := range scorePatterns {
		m := re.FindStringSubmatch(feedback)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		v := clampScore(n)
		return &v
	}
	return nil
}

// StripScoreMarker removes the machine-readable score lines from
// feedback once the score has been extracted, so teachers and students
// never see the raw marker. Text without a marker comes back as is.
func StripScoreMarker(feedback string) string {
	out := feedback
	for _, re := range scoreStripPatterns {
		if loc := re.FindStringIndex(out); loc != nil {
			out = out[:loc[0]] + out[loc[1]:]
		}
	}
	return strings.TrimSpace(out)
}

func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
