package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor pulls headline and body text out of one site's page structure.
type Extractor interface {
	Name() string
	Hosts() []string
	Extract(doc *goquery.Document) (headline, body string)
}

// Registry maps hostnames to site-specific extractors, falling back to the
// generic one for everything else.
type Registry struct {
	byHost  map[string]Extractor
	generic Extractor
}

// NewRegistry builds a registry with the generic fallback installed.
func NewRegistry() *Registry {
	return &Registry{
		byHost:  map[string]Extractor{},
		generic: &GenericExtractor{},
	}
}

// Register adds or replaces an extractor for each host it claims.
func (r *Registry) Register(extractor Extractor) {
	for _, host := range extractor.Hosts() {
		r.byHost[host] = extractor
	}
}

// Resolve returns the extractor for host, matching on suffix so subdomains
// (www., amp.) hit their site's extractor.
func (r *Registry) Resolve(host string) Extractor {
	host = strings.ToLower(host)
	for registered, extractor := range r.byHost {
		if host == registered || strings.HasSuffix(host, "."+registered) {
			return extractor
		}
	}
	return r.generic
}

// GenericExtractor handles the common article shape: first <h1> as headline,
// paragraphs inside <article> (or anywhere, as a last resort) as body.
type GenericExtractor struct{}

func (e *GenericExtractor) Name() string    { return "generic" }
func (e *GenericExtractor) Hosts() []string { return nil }

func (e *GenericExtractor) Extract(doc *goquery.Document) (string, string) {
	headline := strings.TrimSpace(doc.Find("h1").First().Text())

	body := joinParagraphs(doc.Find("article p"))
	if body == "" {
		body = joinParagraphs(doc.Find("main p"))
	}
	if body == "" {
		body = joinParagraphs(doc.Find("p"))
	}
	return headline, body
}

// SnopesExtractor targets snopes.com fact-check pages.
type SnopesExtractor struct{}

func (e *SnopesExtractor) Name() string    { return "snopes" }
func (e *SnopesExtractor) Hosts() []string { return []string{"snopes.com"} }

func (e *SnopesExtractor) Extract(doc *goquery.Document) (string, string) {
	headline := strings.TrimSpace(doc.Find("h1").First().Text())
	body := joinParagraphs(doc.Find("article p"))
	if body == "" {
		body = strings.TrimSpace(doc.Find("article").Text())
	}
	return headline, body
}

// PolitifactExtractor targets politifact.com articles.
type PolitifactExtractor struct{}

func (e *PolitifactExtractor) Name() string    { return "politifact" }
func (e *PolitifactExtractor) Hosts() []string { return []string{"politifact.com"} }

func (e *PolitifactExtractor) Extract(doc *goquery.Document) (string, string) {
	headline := strings.TrimSpace(doc.Find("h1.article__title").First().Text())
	if headline == "" {
		headline = strings.TrimSpace(doc.Find("h1").First().Text())
	}

	body := joinParagraphs(doc.Find("article.article p"))
	if body == "" {
		for _, selector := range []string{".article__text p", ".m-textblock p"} {
			if body = joinParagraphs(doc.Find(selector)); body != "" {
				break
			}
		}
	}
	return headline, body
}
