package constants

// JobStatus is the canonical status for rows in parse_jobs.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"  // waiting in the batch queue
	JobStatusRunning JobStatus = "RUNNING" // pages being fetched / parsed
	JobStatusParsed  JobStatus = "PARSED"  // invoice extracted and stored
	JobStatusFailed  JobStatus = "FAILED"  // terminal failure (transport)
)

// JobStatuses lists the stored values for schema validation.
var JobStatuses = []string{
	string(JobStatusQueued),
	string(JobStatusRunning),
	string(JobStatusParsed),
	string(JobStatusFailed),
}
