package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/yaml.v3"

	"github.com/bydcare/landing/internal/domain"
	"github.com/bydcare/landing/internal/static"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy
)

// Default loads the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Load(static.ContentYAML)
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file %s: %w", path, err)
	}
	return Load(data)
}

// Load decodes a YAML catalog, rejects unknown keys, checks required
// sections and sanitizes every markup field.
func Load(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var catalog Catalog
	if err := dec.Decode(&catalog); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidContent)
		}
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrInvalidContent, err)
	}

	if err := catalog.validate(); err != nil {
		return nil, err
	}

	catalog.sanitize()
	return &catalog, nil
}

func (c *Catalog) validate() error {
	var problems []error
	require := func(ok bool, what string) {
		if !ok {
			problems = append(problems, fmt.Errorf("%w: %s is required", domain.ErrInvalidContent, what))
		}
	}

	require(strings.TrimSpace(c.Brand.Name) != "", "brand.name")
	require(len(c.Nav) > 0, "nav")
	require(strings.TrimSpace(c.Hero.Headline) != "", "hero.headline")
	require(len(c.Channels.Items) > 0, "channels.items")
	require(len(c.Services.Items) > 0, "services.items")
	require(len(c.Cases.Items) > 0, "cases.items")
	require(len(c.Categories.Items) > 0, "categories.items")
	require(strings.TrimSpace(c.Contact.Title) != "", "contact.title")

	for i, link := range c.Nav {
		require(link.Label != "" && link.Anchor != "", fmt.Sprintf("nav[%d].label and nav[%d].anchor", i, i))
	}

	return errors.Join(problems...)
}

func (c *Catalog) sanitize() {
	c.Brand.BlurbHTML = sanitizeMarkup(c.Brand.BlurbHTML)
	c.Hero.LeadHTML = sanitizeMarkup(c.Hero.LeadHTML)
	c.Contact.IntroHTML = sanitizeMarkup(c.Contact.IntroHTML)
}

func sanitizeMarkup(raw Markup) Markup {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}
	return Markup(strings.TrimSpace(markupSanitizer().Sanitize(trimmed)))
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("strong", "em", "b", "i", "br", "span")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.AllowURLSchemes("mailto", "tel")
		policy.RequireNoFollowOnLinks(true)
		markupPolicy = policy
	})
	return markupPolicy
}
