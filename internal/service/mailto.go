package service

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bydcare/landing/internal/config"
	"github.com/bydcare/landing/internal/domain"
)

const (
	subjectPrefix   = "New Brand Inquiry — "
	subjectFallback = "Website"
)

// ContactIntentBuilder derives email-client intents from contact form snapshots.
// It is a pure function of its input: no I/O, no state, never fails.
type ContactIntentBuilder struct {
	recipient string
}

// NewContactIntentBuilder creates a builder addressing every intent to recipient.
func NewContactIntentBuilder(recipient string) (*ContactIntentBuilder, error) {
	addr, err := config.ValidateRecipient(recipient)
	if err != nil {
		return nil, err
	}
	return &ContactIntentBuilder{recipient: addr}, nil
}

// Recipient returns the fixed address intents are sent to.
func (b *ContactIntentBuilder) Recipient() string {
	return b.recipient
}

// Subject returns the inquiry subject. Company wins over name; with neither
// set the subject falls back to "Website".
func (b *ContactIntentBuilder) Subject(form domain.ContactForm) string {
	who := form.Company
	if who == "" {
		who = form.Name
	}
	if who == "" {
		who = subjectFallback
	}
	return subjectPrefix + who
}

// Body returns the labelled inquiry body. Values are interpolated verbatim.
func (b *ContactIntentBuilder) Body(form domain.ContactForm) string {
	var sb strings.Builder
	sb.WriteString("Name: ")
	sb.WriteString(form.Name)
	sb.WriteString("\nCompany: ")
	sb.WriteString(form.Company)
	sb.WriteString("\nEmail: ")
	sb.WriteString(form.Email)
	sb.WriteString("\nMonthly Volume: ")
	sb.WriteString(form.Volume)
	sb.WriteString("\n\nMessage:\n")
	sb.WriteString(form.Message)
	return sb.String()
}

// BuildMailtoURI returns mailto:<recipient>?subject=<enc>&body=<enc>.
func (b *ContactIntentBuilder) BuildMailtoURI(form domain.ContactForm) string {
	return b.mailto(b.Subject(form), b.Body(form))
}

// Build returns the subject, body and mailto URI for form.
func (b *ContactIntentBuilder) Build(form domain.ContactForm) domain.ContactIntent {
	subject := b.Subject(form)
	body := b.Body(form)
	return domain.ContactIntent{
		Subject:   subject,
		Body:      body,
		MailtoURI: b.mailto(subject, body),
	}
}

func (b *ContactIntentBuilder) mailto(subject, body string) string {
	return "mailto:" + b.recipient +
		"?subject=" + escapeComponent(subject) +
		"&body=" + escapeComponent(body)
}

// escapeComponent percent-encodes s for a mailto query. Spaces become %20
// since mail clients do not decode '+' (RFC 6068); a literal '+' is already %2B.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// IntentMemo caches the intent of the most recent snapshot and rebuilds only
// when a different snapshot is seen.
type IntentMemo struct {
	builder *ContactIntentBuilder

	mu     sync.Mutex
	primed bool
	last   domain.ContactForm
	intent domain.ContactIntent
	builds int
}

// NewIntentMemo wraps builder with single-entry memoization.
func NewIntentMemo(builder *ContactIntentBuilder) *IntentMemo {
	return &IntentMemo{builder: builder}
}

// Build returns the intent for form, reusing the cached one when form is unchanged.
func (m *IntentMemo) Build(form domain.ContactForm) domain.ContactIntent {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.primed && m.last == form {
		return m.intent
	}

	m.intent = m.builder.Build(form)
	m.last = form
	m.primed = true
	m.builds++
	return m.intent
}

// Builds returns how many times the intent was recomputed.
func (m *IntentMemo) Builds() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.builds
}
