package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGradingPrompt_InstructionContract(t *testing.T) {
	p := BuildGradingPrompt(Request{StudentName: "Ada Lovelace"})

	assert.Contains(t, p, "Student: Ada Lovelace.")
	assert.Contains(t, p, "'[X/Y marks]'")
	assert.Contains(t, p, "'SCORE: N/100'")
	assert.Contains(t, p, "proportional credit, never full marks")
	assert.NotContains(t, p, "previous grading pass")
}

func TestBuildGradingPrompt_RegradeIncludesPreviousFeedback(t *testing.T) {
	prev := "Question 1: wrong sign in step 2 [3/5 marks]\nSCORE: 60"
	p := BuildGradingPrompt(Request{StudentName: "Sam", PreviousFeedback: "  " + prev + "\n"})

	assert.Contains(t, p, "Re-grade from scratch")
	assert.True(t, strings.HasSuffix(p, prev), "trimmed previous feedback goes last")
}
