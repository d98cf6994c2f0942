package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"github.com/bydcare/landing/internal/content"
	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/handler"
	"github.com/bydcare/landing/internal/handler/dto"
	"github.com/bydcare/landing/internal/service"
)

type stubSubmitter struct {
	err   error
	forms []domain.ContactForm
}

func (s *stubSubmitter) Submit(ctx context.Context, form domain.ContactForm) (domain.SubmissionOutcome, error) {
	s.forms = append(s.forms, form)
	if s.err != nil {
		return domain.SubmissionOutcome{}, s.err
	}
	return service.PlaceholderSubmitter{}.Submit(ctx, form)
}

type HandlerTestSuite struct {
	suite.Suite
	submitter *stubSubmitter
	mux       *http.ServeMux
}

func (s *HandlerTestSuite) SetupTest() {
	catalog, err := content.Default()
	s.Require().NoError(err)

	builder, err := service.NewContactIntentBuilder("sales@bydcare.shop")
	s.Require().NoError(err)

	s.submitter = &stubSubmitter{}
	h, err := handler.New(catalog, builder, s.submitter, prometheus.NewRegistry())
	s.Require().NoError(err)

	s.mux = http.NewServeMux()
	h.RegisterRoutes(s.mux)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.mux.ServeHTTP(w, req)
	return w
}

func (s *HandlerTestSuite) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.serve(req)
}

func (s *HandlerTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return s.serve(req)
}

func (s *HandlerTestSuite) TestIndex() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("text/html; charset=utf-8", w.Header().Get("Content-Type"))
	s.Contains(w.Body.String(), "BYD CARE Distribution")
	s.Contains(w.Body.String(), `id="contact"`)
	s.Contains(w.Body.String(), `href="mailto:sales@bydcare.shop?subject=New%20Brand%20Inquiry%20%E2%80%94%20Website&amp;body=`)
	s.Empty(s.submitter.forms)
}

func (s *HandlerTestSuite) TestUnknownPathIsNotFound() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/pricing", nil))
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlerTestSuite) TestHealthz() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Equal("ok", w.Body.String())
}

func (s *HandlerTestSuite) TestContactSubmit_AcknowledgesAndKeepsFields() {
	w := s.postForm("/contact", url.Values{
		"name":    {"Jo"},
		"company": {"Acme"},
		"email":   {"a@b.com"},
		"volume":  {"500"},
		"message": {"Hello\r\nWorld"},
	})

	s.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	s.Contains(body, `data-outcome="accepted"`)
	s.Contains(body, service.PlaceholderAcknowledgment)
	s.Contains(body, `value="Acme"`)
	s.Contains(body, "Hello\nWorld</textarea>")

	s.Require().Len(s.submitter.forms, 1)
	s.Equal(domain.ContactForm{
		Name:    "Jo",
		Company: "Acme",
		Email:   "a@b.com",
		Volume:  "500",
		Message: "Hello\nWorld",
	}, s.submitter.forms[0])
}

func (s *HandlerTestSuite) TestContactSubmit_EmptyFormAccepted() {
	w := s.postForm("/contact", url.Values{})

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `data-outcome="accepted"`)
}

func (s *HandlerTestSuite) TestContactSubmit_Failure() {
	s.submitter.err = errors.New("upstream down")

	w := s.postForm("/contact", url.Values{"name": {"Jo"}})

	s.Equal(http.StatusBadGateway, w.Code)
	s.Contains(w.Body.String(), `data-outcome="failed"`)
	s.Contains(w.Body.String(), `value="Jo"`)
	s.NotContains(w.Body.String(), "upstream down")
}

func (s *HandlerTestSuite) TestContactSubmit_BodyTooLarge() {
	w := s.postForm("/contact", url.Values{"message": {strings.Repeat("x", 70<<10)}})

	s.Equal(http.StatusBadRequest, w.Code)
	s.Empty(s.submitter.forms)
}

func (s *HandlerTestSuite) TestOpenEmail_RedirectsToMailto() {
	query := url.Values{"name": {"Jo"}, "message": {"Hello\r\nWorld"}}
	w := s.serve(httptest.NewRequest(http.MethodGet, "/contact/email?"+query.Encode(), nil))

	s.Equal(http.StatusSeeOther, w.Code)
	location := w.Header().Get("Location")
	s.True(strings.HasPrefix(location, "mailto:sales@bydcare.shop?subject="), location)

	values, err := url.ParseQuery(strings.SplitN(location, "?", 2)[1])
	s.Require().NoError(err)
	s.Equal("New Brand Inquiry — Jo", values.Get("subject"))
	s.Equal("Name: Jo\nCompany: \nEmail: \nMonthly Volume: \n\nMessage:\nHello\nWorld", values.Get("body"))
	s.Empty(s.submitter.forms, "opening the email client must not submit")
}

func (s *HandlerTestSuite) TestContactIntentAPI() {
	w := s.postJSON("/api/v1/contact/intent", dto.ContactFormRequest{
		Company: "Acme",
		Email:   "a@b.com",
		Volume:  "500",
		Message: "hi",
	})

	s.Equal(http.StatusOK, w.Code)

	var resp dto.ContactIntentResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("New Brand Inquiry — Acme", resp.Subject)
	s.Equal("Name: \nCompany: Acme\nEmail: a@b.com\nMonthly Volume: 500\n\nMessage:\nhi", resp.Body)
	s.True(strings.HasPrefix(resp.MailtoURI, "mailto:sales@bydcare.shop?subject="))
}

func (s *HandlerTestSuite) TestContactIntentAPI_InvalidJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact/intent", strings.NewReader("{"))
	w := s.serve(req)

	s.Equal(http.StatusBadRequest, w.Code)

	var errResp dto.ErrorResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&errResp))
	s.Equal("INVALID_JSON", errResp.Error.Code)
}

func (s *HandlerTestSuite) TestContactSubmitAPI() {
	w := s.postJSON("/api/v1/contact/submit", dto.ContactFormRequest{Name: "Jo"})

	s.Equal(http.StatusOK, w.Code)

	var resp dto.SubmissionResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("accepted", resp.Status)
	s.Equal(service.PlaceholderAcknowledgment, resp.Message)
}

func (s *HandlerTestSuite) TestContactSubmitAPI_Failure() {
	s.submitter.err = errors.New("rate limited")

	w := s.postJSON("/api/v1/contact/submit", dto.ContactFormRequest{})

	s.Equal(http.StatusBadGateway, w.Code)

	var resp dto.SubmissionResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
	s.Equal("failed", resp.Status)
	s.Equal(service.FailedAcknowledgment, resp.Message)
}

func (s *HandlerTestSuite) TestMetricsEndpoint() {
	s.postForm("/contact", url.Values{"name": {"Jo"}})

	w := s.serve(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `landing_contact_submissions_total{outcome="accepted"} 1`)
}

func (s *HandlerTestSuite) TestMethodNotAllowed() {
	w := s.serve(httptest.NewRequest(http.MethodGet, "/api/v1/contact/intent", nil))
	s.Equal(http.StatusMethodNotAllowed, w.Code)
}
