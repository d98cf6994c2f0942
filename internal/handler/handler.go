package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bydcare/landing/internal/config"
	"github.com/bydcare/landing/internal/content"
	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/handler/dto"
	"github.com/bydcare/landing/internal/render"
	"github.com/bydcare/landing/internal/service"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	catalog  *content.Catalog
	builder  *service.ContactIntentBuilder
	contacts *service.ContactService
	renderer *render.PageRenderer
	gatherer prometheus.Gatherer
	now      func() time.Time
}

// New creates a new Handler instance with all dependencies.
// Service metrics are registered on reg, which also backs GET /metrics.
func New(
	catalog *content.Catalog,
	builder *service.ContactIntentBuilder,
	submitter service.Submitter,
	reg *prometheus.Registry,
) (*Handler, error) {
	contacts, err := service.NewContactService(builder, submitter, reg)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewPageRenderer()
	if err != nil {
		return nil, err
	}

	return &Handler{
		catalog:  catalog,
		builder:  builder,
		contacts: contacts,
		renderer: renderer,
		gatherer: reg,
		now:      time.Now,
	}, nil
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check and metrics
	mux.HandleFunc("GET /healthz", h.handleHealthz)
	mux.Handle("GET /metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	// Landing page
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("POST /contact", h.handleContactSubmit)
	mux.HandleFunc("GET /contact/email", h.handleOpenEmail)

	// JSON API
	mux.HandleFunc("POST /api/v1/contact/intent", h.handleContactIntent)
	mux.HandleFunc("POST /api/v1/contact/submit", h.handleContactSubmitJSON)
}

// handleHealthz returns 200 OK while the process is serving.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// respondPage renders the landing page for form and an optional outcome.
func (h *Handler) respondPage(w http.ResponseWriter, r *http.Request, status int, form domain.ContactForm, outcome *domain.SubmissionOutcome) {
	view := render.View{
		Catalog:   h.catalog,
		Recipient: h.builder.Recipient(),
		Fields:    domain.ContactFields,
		Form:      form,
		Intent:    h.contacts.Intent(form),
		Outcome:   outcome,
		Year:      h.now().Year(),
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, view); err != nil {
		slog.ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// decodeForm builds a snapshot from form values. Browsers submit textarea
// line breaks as CRLF; they are normalized to LF as typed.
func decodeForm(values url.Values) domain.ContactForm {
	var form domain.ContactForm
	for _, field := range domain.ContactFields {
		value := values.Get(string(field.Key))
		if field.IsTextArea() {
			value = strings.ReplaceAll(value, "\r\n", "\n")
		}
		form = form.With(field.Key, value)
	}
	return form
}

// parseForm limits the body size and parses query and form values.
// Returns false if the request was rejected (error already sent to client).
func parseForm(w http.ResponseWriter, r *http.Request) (domain.ContactForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return domain.ContactForm{}, false
	}
	return decodeForm(r.Form), true
}

// decodeJSON limits the body size and decodes a contact form request.
// Returns false if the request was rejected (error already sent to client).
func decodeJSON(w http.ResponseWriter, r *http.Request) (domain.ContactForm, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, config.MaxRequestBodyBytes)

	var req dto.ContactFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return domain.ContactForm{}, false
	}
	return req.ToDomain(), true
}
