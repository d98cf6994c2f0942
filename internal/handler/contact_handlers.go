package handler

import (
	"net/http"

	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/handler/dto"
)

// handleIndex renders the landing page with an empty contact form.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.respondPage(w, r, http.StatusOK, domain.ContactForm{}, nil)
}

// handleContactSubmit runs the submitter for a posted form and re-renders the
// page in place with the acknowledgment. Field values are kept.
func (h *Handler) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	outcome, err := h.contacts.Submit(r.Context(), form)
	status := http.StatusOK
	if err != nil {
		status, _, _ = dto.MapDomainError(err)
	}

	h.respondPage(w, r, status, form, &outcome)
}

// handleOpenEmail redirects to the mailto URI built from the current field values.
func (h *Handler) handleOpenEmail(w http.ResponseWriter, r *http.Request) {
	form, ok := parseForm(w, r)
	if !ok {
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, h.contacts.Intent(form).MailtoURI, http.StatusSeeOther)
}

// handleContactIntent returns the subject, body and mailto URI for a snapshot.
func (h *Handler) handleContactIntent(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeJSON(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, dto.ToContactIntentResponse(h.contacts.Intent(form)))
}

// handleContactSubmitJSON runs the submitter for a JSON snapshot.
func (h *Handler) handleContactSubmitJSON(w http.ResponseWriter, r *http.Request) {
	form, ok := decodeJSON(w, r)
	if !ok {
		return
	}

	outcome, err := h.contacts.Submit(r.Context(), form)
	status := http.StatusOK
	if err != nil {
		status, _, _ = dto.MapDomainError(err)
	}

	respondJSON(w, status, dto.ToSubmissionResponse(outcome))
}
