package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bydcare/landing/internal/domain"
)

// PlaceholderAcknowledgment is shown after a submission until a real backend is wired in.
const PlaceholderAcknowledgment = "Submitted. Wire this to Formspree or backend."

// FailedAcknowledgment is shown when a submitter returns an error.
const FailedAcknowledgment = "We could not send your inquiry. Please use Open Email Client instead."

// Submitter hands a contact form to whatever handles leads.
// Implementations must not modify the snapshot.
type Submitter interface {
	Submit(ctx context.Context, form domain.ContactForm) (domain.SubmissionOutcome, error)
}

// PlaceholderSubmitter accepts every submission without sending or storing it.
type PlaceholderSubmitter struct{}

// Submit logs the submission and acknowledges it.
func (PlaceholderSubmitter) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmissionOutcome, error) {
	if err := ctx.Err(); err != nil {
		return domain.SubmissionOutcome{}, err
	}

	// Field values stay out of logs.
	slog.InfoContext(ctx, "contact form submitted",
		"has_name", form.Name != "",
		"has_email", form.Email != "",
		"has_company", form.Company != "",
		"has_volume", form.Volume != "",
		"message_length", len(form.Message),
	)

	return domain.Accepted(PlaceholderAcknowledgment), nil
}

// ContactService coordinates intent building and form submission.
type ContactService struct {
	intents     *IntentMemo
	submitter   Submitter
	submissions *prometheus.CounterVec
}

// NewContactService creates a ContactService and registers its metrics on reg.
func NewContactService(builder *ContactIntentBuilder, submitter Submitter, reg prometheus.Registerer) (*ContactService, error) {
	submissions := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_contact_submissions_total",
			Help: "Contact form submissions by outcome.",
		},
		[]string{"outcome"},
	)
	if err := reg.Register(submissions); err != nil {
		return nil, fmt.Errorf("register submissions counter: %w", err)
	}

	return &ContactService{
		intents:     NewIntentMemo(builder),
		submitter:   submitter,
		submissions: submissions,
	}, nil
}

// Intent returns the email-client intent for form.
func (s *ContactService) Intent(form domain.ContactForm) domain.ContactIntent {
	return s.intents.Build(form)
}

// Submit runs the configured submitter. On failure the returned outcome is
// still renderable and the error wraps domain.ErrSubmissionFailed.
func (s *ContactService) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmissionOutcome, error) {
	outcome, err := s.submitter.Submit(ctx, form)
	if err != nil {
		s.submissions.WithLabelValues(string(domain.SubmissionFailed)).Inc()
		slog.ErrorContext(ctx, "contact submission failed", "error", err)
		return domain.Failed(FailedAcknowledgment), fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
	}

	s.submissions.WithLabelValues(string(outcome.Status)).Inc()
	return outcome, nil
}
