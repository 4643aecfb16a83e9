package grading

import (
	"regexp"
	"strconv"
	"strings"
)

// QuestionGrade is one question's marks as recovered from feedback text.
type QuestionGrade struct {
	Number   string
	Text     string
	MaxMarks int
	Awarded  int
	Feedback string
}

type SectionGrade struct {
	Name      string
	Questions []QuestionGrade
	Total     int
	Max       int
}

// ParsedGrade is the structured view of a feedback blob. Parsing is best
// effort: feedback the patterns cannot recover stays available in Raw.
type ParsedGrade struct {
	Sections   []SectionGrade
	TotalScore int
	Overall    string
	Raw        string
}

var (
	sectionRe = regexp.MustCompile(`(?i)(?:^|\n)(Section\s+[A-Z]:[^\n]*)`)
	// "Question 1: ... Marks Awarded: 4/25", with an optional inline
	// "(25 marks)" on the question line
	questionRe = regexp.MustCompile(`(?i)(?:Question|Q)\s*(\d+)[:.)]?\s*([^\n]*?)(?:\((\d+)\s*marks?\))?[\s\S]*?(?:Marks\s+Awarded|Awarded|Marks?)[:.]?\s*(\d+)\s*/\s*(\d+)`)
	// fallback: "Question 1: ... 4/25 marks"
	questionAltRe  = regexp.MustCompile(`(?i)(?:Question|Q)\s*(\d+)[:.)]?\s*([^\n]*?)\s*(\d+)\s*/\s*(\d+)\s*marks?`)
	overallHeadRe  = regexp.MustCompile(`(?i)(?:Overall\s+Performance\s+Assessment|Summary|Overall)[:.]?\s*`)
	attemptHeadRe  = regexp.MustCompile(`(?i)(?:Student's\s+Attempt|Attempt|Feedback)[:.]?\s*`)
	questionHeadRe = regexp.MustCompile(`(?i)^(?:Question|Marks)`)
)

// ParseGradeFeedback extracts structured grading data from AI feedback.
func ParseGradeFeedback(feedback string) ParsedGrade {
	parsed := ParsedGrade{Raw: feedback}
	if s := ExtractScore(feedback); s != nil {
		parsed.TotalScore = *s
	}

	body := strings.TrimSpace(scoreLine.ReplaceAllString(feedback, ""))

	marks := sectionRe.FindAllStringSubmatchIndex(body, -1)
	if len(marks) == 0 {
		if qs := parseQuestions(body); len(qs) > 0 {
			parsed.Sections = []SectionGrade{buildSection("All Questions", qs)}
		}
		return parsed
	}

	for i, m := range marks {
		start := m[0]
		end := len(body)
		if i < len(marks)-1 {
			end = marks[i+1][0]
		}
		sectionText := body[start:end]
		name := strings.TrimSpace(body[m[2]:m[3]])
		parsed.Sections = append(parsed.Sections, buildSection(name, parseQuestions(sectionText)))
	}

	parsed.Overall = extractOverall(body)
	return parsed
}

func buildSection(name string, qs []QuestionGrade) SectionGrade {
	s := SectionGrade{Name: name, Questions: qs}
	for _, q := range qs {
		s.Total += q.Awarded
		s.Max += q.MaxMarks
	}
	return s
}

func parseQuestions(text string) []QuestionGrade {
	var questions []QuestionGrade
	for _, m := range questionRe.FindAllStringSubmatchIndex(text, -1) {
		number := text[m[2]:m[3]]
		qText := strings.TrimSpace(sliceAt(text, m, 2))
		if qText == "" {
			qText = "Question " + number
		}
		awarded, _ := strconv.Atoi(sliceAt(text, m, 4))
		max, _ := strconv.Atoi(sliceAt(text, m, 5))
		if max == 0 {
			if inline := sliceAt(text, m, 3); inline != "" {
				max, _ = strconv.Atoi(inline)
			}
		}

		fb := extractQuestionFeedback(text, m[0], m[1])
		if fb == "" {
			fb = qText
		}
		questions = append(questions, QuestionGrade{
			Number:   number,
			Text:     qText,
			MaxMarks: max,
			Awarded:  awarded,
			Feedback: fb,
		})
	}
	if len(questions) > 0 {
		return questions
	}

	for _, m := range questionAltRe.FindAllStringSubmatch(text, -1) {
		qText := strings.TrimSpace(m[2])
		if qText == "" {
			qText = "Question " + m[1]
		}
		awarded, _ := strconv.Atoi(m[3])
		max, _ := strconv.Atoi(m[4])
		questions = append(questions, QuestionGrade{
			Number:   m[1],
			Text:     qText,
			MaxMarks: max,
			Awarded:  awarded,
			Feedback: strings.TrimSpace(m[2]),
		})
	}
	return questions
}

// sliceAt returns the text of capture group g, or "" when it did not
// participate in the match.
func sliceAt(text string, m []int, g int) string {
	lo, hi := m[2*g], m[2*g+1]
	if lo < 0 {
		return ""
	}
	return text[lo:hi]
}

// extractQuestionFeedback pulls the commentary between a question
// heading and its marks line.
func extractQuestionFeedback(text string, qStart, qEnd int) string {
	ctxStart := qStart - 200
	if ctxStart < 0 {
		ctxStart = 0
	}
	window := text[ctxStart:qEnd]

	loc := attemptHeadRe.FindStringIndex(window)
	if loc == nil {
		return ""
	}
	rest := window[loc[1]:]
	var lines []string
	for i, line := range strings.Split(rest, "\n") {
		if i > 0 && questionHeadRe.MatchString(strings.TrimSpace(line)) {
			break
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractOverall(body string) string {
	loc := overallHeadRe.FindStringIndex(body)
	if loc == nil {
		return ""
	}
	rest := body[loc[1]:]
	if i := strings.Index(rest, "\n\n"); i >= 0 {
		rest = rest[:i]
	}
	return strings.TrimSpace(rest)
}
