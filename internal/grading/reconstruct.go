package grading

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// QuestionKey identifies a question across parse/reconstruct round
// trips, matching the keys teachers edit against.
func QuestionKey(sectionName, questionNumber string) string {
	return sectionName + "-Q" + questionNumber
}

// ReconstructFeedback rebuilds feedback text from structured grade data,
// substituting any updated marks and recomputing the final score from
// the (possibly updated) per-question marks.
func ReconstructFeedback(parsed ParsedGrade, updatedMarks map[string]int) string {
	var b strings.Builder

	awarded := func(section string, q QuestionGrade) int {
		if v, ok := updatedMarks[QuestionKey(section, q.Number)]; ok {
			return v
		}
		return q.Awarded
	}

	for _, section := range parsed.Sections {
		b.WriteString(section.Name)
		b.WriteString("\n\n")

		for _, q := range section.Questions {
			fmt.Fprintf(&b, "Question %s: %s\n", q.Number, q.Text)
			if q.Feedback != "" && q.Feedback != q.Text {
				b.WriteString(q.Feedback)
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "Marks Awarded: %d/%d\n\n", awarded(section.Name, q), q.MaxMarks)
		}

		sectionTotal, sectionMax := 0, 0
		for _, q := range section.Questions {
			sectionTotal += awarded(section.Name, q)
			sectionMax += q.MaxMarks
		}
		fmt.Fprintf(&b, "Total for %s: %d/%d marks\n\n", section.Name, sectionTotal, sectionMax)
	}

	if parsed.Overall != "" {
		fmt.Fprintf(&b, "Overall Performance Assessment:\n%s\n\n", parsed.Overall)
	}

	total := parsed.TotalScore
	if len(updatedMarks) > 0 {
		total = 0
		for _, section := range parsed.Sections {
			for _, q := range section.Questions {
				total += awarded(section.Name, q)
			}
		}
	}
	fmt.Fprintf(&b, "SCORE: %d", total)

	return b.String()
}

// MarkUpdate describes an in-place marks edit for UpdateMarksInFeedback.
type MarkUpdate struct {
	Old int
	New int
	Max int
}

var finalScoreRe = regexp.MustCompile(`(?i)SCORE:\s*(\d+)`)

// UpdateMarksInFeedback patches marks directly in the original text
// without a full reconstruction, then shifts the final score by the net
// marks change. Cheaper than ReconstructFeedback and keeps the model's
// prose untouched.
func UpdateMarksInFeedback(original string, updates map[string]MarkUpdate) string {
	updated := original

	for _, u := range updates {
		probes := []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(?i)Question\s+\d+[^\n]*?\s*%d\s*/\s*%d`, u.Old, u.Max)),
			regexp.MustCompile(fmt.Sprintf(`(?i)Marks\s+Awarded[:.]?\s*%d\s*/\s*%d`, u.Old, u.Max)),
			regexp.MustCompile(fmt.Sprintf(`(?i)\d+\s*/\s*%d\s*marks?`, u.Max)),
		}
		for _, probe := range probes {
			if probe.MatchString(updated) {
				re := regexp.MustCompile(fmt.Sprintf(`%d\s*/\s*%d`, u.Old, u.Max))
				updated = re.ReplaceAllString(updated, fmt.Sprintf("%d/%d", u.New, u.Max))
				break
			}
		}
	}

	if m := finalScoreRe.FindStringSubmatch(original); m != nil {
		oldTotal, _ := strconv.Atoi(m[1])
		diff := 0
		for _, u := range updates {
			diff += u.New - u.Old
		}
		updated = finalScoreRe.ReplaceAllString(updated,
			fmt.Sprintf("SCORE: %d", clampScore(oldTotal+diff)))
	}

	return updated
}
