package domain

// SubmissionStatus is the result of handing a contact form to a submitter.
type SubmissionStatus string

const (
	SubmissionAccepted SubmissionStatus = "accepted"
	SubmissionFailed   SubmissionStatus = "failed"
)

// SubmissionOutcome is the user-visible acknowledgment of a form submission.
type SubmissionOutcome struct {
	Status  SubmissionStatus
	Message string
}

// OK returns true if the submission was accepted.
func (o SubmissionOutcome) OK() bool {
	return o.Status == SubmissionAccepted
}

// Accepted builds a successful outcome.
func Accepted(message string) SubmissionOutcome {
	return SubmissionOutcome{Status: SubmissionAccepted, Message: message}
}

// Failed builds an unsuccessful outcome.
func Failed(message string) SubmissionOutcome {
	return SubmissionOutcome{Status: SubmissionFailed, Message: message}
}
