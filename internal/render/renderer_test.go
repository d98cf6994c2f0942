package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bydcare/landing/internal/content"
	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/render"
	"github.com/bydcare/landing/internal/service"
)

func newView(t *testing.T, form domain.ContactForm) render.View {
	t.Helper()

	catalog, err := content.Default()
	require.NoError(t, err)
	builder, err := service.NewContactIntentBuilder("sales@bydcare.shop")
	require.NoError(t, err)

	return render.View{
		Catalog:   catalog,
		Recipient: builder.Recipient(),
		Form:      form,
		Intent:    builder.Build(form),
		Year:      2026,
	}
}

func renderString(t *testing.T, view render.View) string {
	t.Helper()

	renderer, err := render.NewPageRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, view))
	return buf.String()
}

func TestRender_Sections(t *testing.T) {
	html := renderString(t, newView(t, domain.ContactForm{}))

	for _, want := range []string{
		`<title>BYD CARE Distribution</title>`,
		`id="channels"`, `id="services"`, `id="cases"`, `id="categories"`, `id="contact"`,
		`href="#channels"`, `href="#contact"`,
		"Multi-Channel Distribution that actually ships and scales.",
		"Channels we operate", "What we do", "Recent results", "Categories we&#39;ve sold in",
		"Amazon FBA/FBM", "Target Plus &amp; Retail", "Wholesale &amp; 3P",
		"Retail Chargebacks: <span", "&lt;0.3%",
		"HomeCare Brand", "&#43;212% 90-day sales",
		"N95 Respirators",
		"(626) 885-3145",
		`href="mailto:sales@bydcare.shop"`,
		"© 2026 BYD CARE Distribution. All rights reserved.",
	} {
		assert.Contains(t, html, want)
	}
}

func TestRender_ContactForm(t *testing.T) {
	html := renderString(t, newView(t, domain.ContactForm{}))

	assert.Contains(t, html, `<form method="post" action="/contact#contact"`)
	assert.Contains(t, html, `formaction="/contact/email" formmethod="get"`)
	assert.Contains(t, html, `<input name="email" type="email" value=""`)
	assert.Contains(t, html, `<textarea name="message" rows="5"`)
	assert.Contains(t, html, "Monthly Volume (units)")
	assert.NotContains(t, html, `role="status"`)
	assert.Contains(t, html, `data-action="open-email" href="mailto:sales@bydcare.shop?subject=New%20Brand%20Inquiry%20%E2%80%94%20Website&amp;body=Name%3A%20%0ACompany%3A%20`)

	order := []string{`name="name"`, `name="company"`, `name="email"`, `name="volume"`, `name="message"`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		require.Greater(t, idx, last, marker)
		last = idx
	}
}

func TestRender_PreservesAndEscapesFormValues(t *testing.T) {
	form := domain.ContactForm{
		Name:    `Jo "the <boss>"`,
		Message: "line one\n</textarea><script>alert(1)</script>",
	}
	html := renderString(t, newView(t, form))

	assert.Contains(t, html, `value="Jo &#34;the &lt;boss&gt;&#34;"`)
	assert.Contains(t, html, "line one\n&lt;/textarea&gt;&lt;script&gt;")
	assert.NotContains(t, html, "<script>alert(1)</script>")
}

func TestRender_Outcome(t *testing.T) {
	view := newView(t, domain.ContactForm{Name: "Jo"})
	outcome := domain.Accepted(service.PlaceholderAcknowledgment)
	view.Outcome = &outcome

	html := renderString(t, view)

	assert.Contains(t, html, `data-outcome="accepted"`)
	assert.Contains(t, html, "Submitted. Wire this to Formspree or backend.")
	assert.Contains(t, html, `href="mailto:sales@bydcare.shop?subject=New%20Brand%20Inquiry%20%E2%80%94%20Jo&amp;body=Name%3A%20Jo%0A`)
	assert.Contains(t, html, `value="Jo"`)
}

func TestRender_OpenEmailLinkTracksSnapshot(t *testing.T) {
	html := renderString(t, newView(t, domain.ContactForm{Company: "Acme", Volume: "500"}))

	assert.Contains(t, html, `data-action="open-email" href="mailto:sales@bydcare.shop?subject=New%20Brand%20Inquiry%20%E2%80%94%20Acme&amp;body=`)
	assert.Contains(t, html, `Monthly%20Volume%3A%20500`)
}

func TestRender_FailedOutcome(t *testing.T) {
	view := newView(t, domain.ContactForm{})
	outcome := domain.Failed(service.FailedAcknowledgment)
	view.Outcome = &outcome

	html := renderString(t, view)

	assert.Contains(t, html, `data-outcome="failed"`)
	assert.Contains(t, html, "bg-red-50")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_WriteError(t *testing.T) {
	renderer, err := render.NewPageRenderer()
	require.NoError(t, err)

	err = renderer.Render(failingWriter{}, newView(t, domain.ContactForm{}))
	assert.ErrorContains(t, err, "write page")
}

func TestRender_ExecuteErrorWritesNothing(t *testing.T) {
	renderer, err := render.NewPageRendererFromSource(`{{.Catalog.Brand.Name}}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = renderer.Render(&buf, render.View{})
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestNewPageRendererFromSource_ParseError(t *testing.T) {
	_, err := render.NewPageRendererFromSource(`{{.Broken`)
	assert.ErrorContains(t, err, "parse page template")
}
