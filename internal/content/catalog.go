// Package content holds the presentation data of the landing page: brand,
// navigation, hero copy, metrics, channels, services, case studies, product
// categories and contact details. The catalog is plain data; it carries no
// behavior beyond decoding and sanitizing.
package content

import "html/template"

// Markup is catalog text that may contain inline HTML. It is sanitized on load.
type Markup string

// HTML returns the sanitized markup for direct inclusion in a template.
func (m Markup) HTML() template.HTML {
	return template.HTML(m)
}

// Link is a navigation target, either an in-page anchor or an href.
type Link struct {
	Label  string `yaml:"label"`
	Anchor string `yaml:"anchor,omitempty"`
	Href   string `yaml:"href,omitempty"`
}

// URL returns the link target, preferring the in-page anchor.
func (l Link) URL() string {
	if l.Anchor != "" {
		return "#" + l.Anchor
	}
	if l.Href != "" {
		return l.Href
	}
	return "#"
}

// Brand identifies the business.
type Brand struct {
	Name      string `yaml:"name"`
	Emoji     string `yaml:"emoji"`
	BlurbHTML Markup `yaml:"blurb_html"`
}

// Hero is the headline block at the top of the page.
type Hero struct {
	Headline     string `yaml:"headline"`
	LeadHTML     Markup `yaml:"lead_html"`
	PrimaryCTA   Link   `yaml:"primary_cta"`
	SecondaryCTA Link   `yaml:"secondary_cta"`
}

// Metric is a headline operational figure.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Channel is a sales channel the business operates.
type Channel struct {
	Name        string `yaml:"name"`
	Emoji       string `yaml:"emoji"`
	Description string `yaml:"description"`
}

// Service is an offered service with its bullet points.
type Service struct {
	Title  string   `yaml:"title"`
	Emoji  string   `yaml:"emoji"`
	Points []string `yaml:"points"`
}

// CaseStudy is a client result.
type CaseStudy struct {
	Brand  string `yaml:"brand"`
	Result string `yaml:"result"`
	Detail string `yaml:"detail"`
}

// Category is a product category with example products.
type Category struct {
	Name     string   `yaml:"name"`
	Examples []string `yaml:"examples"`
}

// Section is a titled list of cards.
type Section[T any] struct {
	Title string `yaml:"title"`
	Items []T    `yaml:"items"`
}

// Contact is the copy next to the contact form.
type Contact struct {
	Title     string `yaml:"title"`
	IntroHTML Markup `yaml:"intro_html"`
	Phone     string `yaml:"phone"`
}

// Footer holds the footer link columns. The company column reuses the nav links.
type Footer struct {
	CompanyTitle string `yaml:"company_title"`
	LegalTitle   string `yaml:"legal_title"`
	Legal        []Link `yaml:"legal"`
}

// Catalog is the full landing page content.
type Catalog struct {
	Brand      Brand              `yaml:"brand"`
	Nav        []Link             `yaml:"nav"`
	Hero       Hero               `yaml:"hero"`
	Metrics    []Metric           `yaml:"metrics"`
	Channels   Section[Channel]   `yaml:"channels"`
	Services   Section[Service]   `yaml:"services"`
	Cases      Section[CaseStudy] `yaml:"cases"`
	Categories Section[Category]  `yaml:"categories"`
	Contact    Contact            `yaml:"contact"`
	Footer     Footer             `yaml:"footer"`
}
