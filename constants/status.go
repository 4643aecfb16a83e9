package constants

// SubmissionStatus is the teacher-facing lifecycle of a submission.
type SubmissionStatus string

// Stable values (store these exact strings in DB).
const (
	SubmissionPending SubmissionStatus = "pending" // awaiting teacher review
	SubmissionGraded  SubmissionStatus = "graded"  // final score confirmed
)

// ProcessingStatus tracks the AI pipeline stage for a submission.
type ProcessingStatus string

const (
	ProcessingPending   ProcessingStatus = "pending"          // not queued; manual retrigger available
	ProcessingAI        ProcessingStatus = "processing_ai"    // queued or in flight at the grading provider
	ProcessingReady     ProcessingStatus = "ready"            // draft feedback produced, awaiting review
	ProcessingAudio     ProcessingStatus = "generating_audio" // grade final; audio synthesis in progress
	ProcessingCompleted ProcessingStatus = "graded"           // terminal
)

// SyncStatus is the station-local delivery state of a buffered submission.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSyncing SyncStatus = "syncing"
	SyncSynced  SyncStatus = "synced"
	SyncError   SyncStatus = "error"
)

// SubmittedBy distinguishes student submissions from teacher overrides.
type SubmittedBy string

const (
	SubmittedByStudent SubmittedBy = "student"
	SubmittedByTeacher SubmittedBy = "teacher"
)

// Allowed enum values for schema validation.
var (
	SubmissionStatuses = []string{string(SubmissionPending), string(SubmissionGraded)}
	ProcessingStatuses = []string{
		string(ProcessingPending), string(ProcessingAI), string(ProcessingReady),
		string(ProcessingAudio), string(ProcessingCompleted),
	}
	SubmittedByValues = []string{string(SubmittedByStudent), string(SubmittedByTeacher)}
)
