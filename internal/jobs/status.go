package jobs

// Generation-job status values. Transitions are monotonic: a job starts as
// running and is finalized exactly once, to done or to failed. Finalized jobs
// are never reopened or retried in place.
const (
	StatusRunning = "running"
	StatusDone    = "done"
	StatusFailed  = "failed"
)
