package notify

// Job is one outbound email. It has no identity and is never queued or
// retried; a Job lives exactly as long as its single delivery attempt.
type Job struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers a single Job.
type Mailer interface {
	Send(job Job) error
}
