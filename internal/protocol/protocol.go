// Package protocol holds the wire types shared by the server's HTTP
// handlers and the offline capture agent that syncs against them.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// SubmissionPayload is one student submission as sent over the wire.
type SubmissionPayload struct {
	StudentName    string   `json:"studentName"`
	StudentEmail   string   `json:"studentEmail"`
	ImageURLs      []string `json:"imageUrls"`
	MagicLinkToken string   `json:"magicLinkToken"`
}

// BulkSubmissionRequest uploads a batch in one call. LocalIDs parallels
// Submissions so the agent can map server results back to its rows.
type BulkSubmissionRequest struct {
	Submissions []SubmissionPayload `json:"submissions"`
	LocalIDs    []string            `json:"localIds"`
}

// BulkItemResult reports one item's outcome. A failed item never fails
// the batch.
type BulkItemResult struct {
	LocalID  string `json:"localId"`
	Success  bool   `json:"success"`
	ServerID string `json:"serverId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// TeacherSubmissionRequest is the authenticated upload path. Override
// replaces an existing submission for the same student instead of
// rejecting the duplicate.
type TeacherSubmissionRequest struct {
	TestID       string   `json:"testId"`
	StudentName  string   `json:"studentName"`
	StudentEmail string   `json:"studentEmail"`
	ImageURLs    []string `json:"imageUrls"`
	Override     bool     `json:"override"`
}

// FeedbackUpdateRequest saves a teacher's review of draft feedback.
// When UpdatedMarks is set the server patches the marks into the text
// and recomputes the score; otherwise Feedback replaces the text as is.
type FeedbackUpdateRequest struct {
	Feedback     string         `json:"feedback,omitempty"`
	UpdatedMarks map[string]int `json:"updatedMarks,omitempty"`
}

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

const bulkSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["submissions", "localIds"],
  "properties": {
    "submissions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["studentName", "studentEmail", "imageUrls", "magicLinkToken"],
        "properties": {
          "studentName":    {"type": "string", "minLength": 1},
          "studentEmail":   {"type": "string", "minLength": 3},
          "imageUrls":      {"type": "array", "minItems": 1, "items": {"type": "string", "minLength": 1}},
          "magicLinkToken": {"type": "string", "minLength": 1}
        }
      }
    },
    "localIds": {
      "type": "array",
      "items": {"type": "string", "minLength": 1}
    }
  }
}`

var bulkSchema = jsonschema.MustCompileString("bulk_submission.json", bulkSchemaJSON)

// ValidateBulkRequest checks the raw body against the bulk schema.
// Structural failures here are the only thing that turns a whole batch
// into a 400; per-item problems surface in BulkItemResult instead.
func ValidateBulkRequest(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if err := bulkSchema.Validate(v); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
