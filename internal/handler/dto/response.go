package dto

import "github.com/bydcare/landing/internal/domain"

// ContactIntentResponse is returned by POST /api/v1/contact/intent.
type ContactIntentResponse struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MailtoURI string `json:"mailto_uri"`
}

// SubmissionResponse is returned by POST /api/v1/contact/submit.
type SubmissionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ToContactIntentResponse converts domain.ContactIntent to ContactIntentResponse.
func ToContactIntentResponse(intent domain.ContactIntent) ContactIntentResponse {
	return ContactIntentResponse{
		Subject:   intent.Subject,
		Body:      intent.Body,
		MailtoURI: intent.MailtoURI,
	}
}

// ToSubmissionResponse converts domain.SubmissionOutcome to SubmissionResponse.
func ToSubmissionResponse(outcome domain.SubmissionOutcome) SubmissionResponse {
	return SubmissionResponse{
		Status:  string(outcome.Status),
		Message: outcome.Message,
	}
}
