// Package render turns the page catalog and a contact form snapshot into the
// landing page HTML.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/bydcare/landing/internal/content"
	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/static"
)

// View is everything the landing page template needs for one response.
type View struct {
	Catalog   *content.Catalog
	Recipient string
	Fields    []domain.ContactField
	Form      domain.ContactForm
	Intent    domain.ContactIntent
	Outcome   *domain.SubmissionOutcome
	Year      int
}

// MailtoHref returns the intent URI for an href attribute.
// The URI is built from percent-encoded components only.
func (v View) MailtoHref() template.URL {
	return template.URL(v.Intent.MailtoURI)
}

// RecipientHref returns a bare mailto link to the recipient.
func (v View) RecipientHref() template.URL {
	return template.URL("mailto:" + v.Recipient)
}

type cardTitle struct {
	Emoji string
	Title string
}

var funcs = template.FuncMap{
	"card": func(emoji, title string) cardTitle {
		return cardTitle{Emoji: emoji, Title: title}
	},
	"fieldValue": func(form domain.ContactForm, key domain.FieldKey) string {
		return form.Value(key)
	},
}

// PageRenderer renders the landing page.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the embedded landing page template.
func NewPageRenderer() (*PageRenderer, error) {
	return NewPageRendererFromSource(static.IndexTemplate)
}

// NewPageRendererFromSource parses a landing page template from src.
func NewPageRendererFromSource(src string) (*PageRenderer, error) {
	tmpl, err := template.New("index").Funcs(funcs).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render writes the page for view to w. Nothing is written if execution fails.
func (r *PageRenderer) Render(w io.Writer, view View) error {
	if view.Fields == nil {
		view.Fields = domain.ContactFields
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("write page: %w", err)
	}
	return nil
}
