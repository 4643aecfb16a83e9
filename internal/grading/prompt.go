package grading

import "strings"

// BuildGradingPrompt composes the instruction block sent ahead of the
// attached files. The output contract matters: per-question marks in
// bracketed X/Y form and a single final SCORE line, because downstream
// parsing depends on both.
func BuildGradingPrompt(req Request) string {
	parts := []string{
		"You are an experienced teacher grading a student's handwritten exam answers.",
		"The attached files are, in order: the question paper (if provided), then the student's answer sheets.",
		"Student: " + req.StudentName + ".",
		"Grade every question you can identify. For each question write:",
		"a heading 'Question N:', what the student did well, what was wrong or missing, and the marks awarded as '[X/Y marks]'.",
		"Be specific: quote the student's working where it helps.",
		"If a page is illegible or an answer is absent, say so and award 0 for that question.",
		"Partially correct or incomplete answers earn proportional credit, never full marks.",
		"After all questions, write exactly one final line: 'SCORE: N/100' where N is the overall percentage.",
		"Do not add anything after the SCORE line.",
	}
	if prev := strings.TrimSpace(req.PreviousFeedback); prev != "" {
		parts = append(parts,
			"A previous grading pass produced the feedback below. Re-grade from scratch, fixing any mistakes it made:",
			prev,
		)
	}
	return strings.Join(parts, "\n")
}
