package model

// ViewJob asks a background worker to bump the remote view counter for one
// record. Failures are logged and dropped, never retried.
type ViewJob struct {
	EBookID string
}
