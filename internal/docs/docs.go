package docs

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// ErrNotFound is returned when a documentation page cannot be located.
var ErrNotFound = errors.New("docs: not found")

// Page represents one documentation article, addressed by its slug.
type Page struct {
	Slug      string
	Title     string
	Badge     string
	Summary   string
	UpdatedAt time.Time
	SEO       PageSEO
	Sections  []Section
}

// PageSEO holds optional metadata overrides for a page. Empty fields fall
// back to site defaults derived from the page content.
type PageSEO struct {
	Title       string
	Description string
	OGImage     string
}

// Section groups an ordered run of blocks under a heading.
type Section struct {
	Heading string
	Blocks  []Block
}

// BlockKind discriminates the Block variants.
type BlockKind string

const (
	KindParagraph BlockKind = "paragraph"
	KindCode      BlockKind = "code"
	KindTable     BlockKind = "table"
	KindCallout   BlockKind = "callout"
)

// CalloutVariant selects the callout styling.
type CalloutVariant string

const (
	CalloutInfo    CalloutVariant = "info"
	CalloutWarning CalloutVariant = "warning"
)

// Block is one renderable content unit. Exactly the fields for its Kind are
// set; the rest stay zero. Code sources are opaque literals: they document an
// external API and are never parsed or executed here.
type Block struct {
	Kind BlockKind

	// Paragraph / Callout
	Text    string
	Variant CalloutVariant

	// Code
	Lang   string
	Source string

	// Table
	Headers []string
	Rows    [][]string
}

// Paragraph builds a paragraph block. Text may use inline Markdown.
func Paragraph(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

// Code builds a verbatim code sample block.
func Code(lang, source string) Block {
	return Block{Kind: KindCode, Lang: lang, Source: source}
}

// Table builds a table block from a header row and data rows.
func Table(headers []string, rows ...[]string) Block {
	return Block{Kind: KindTable, Headers: headers, Rows: rows}
}

// Callout builds an info or warning callout.
func Callout(variant CalloutVariant, text string) Block {
	return Block{Kind: KindCallout, Variant: variant, Text: text}
}

// Registry is the immutable slug → page mapping the site serves from. It is
// constructed once at startup and only read afterwards.
type Registry struct {
	pages map[string]Page
	order []string
}

// NewRegistry builds a registry from the given pages, preserving their order.
// A duplicate or empty slug is a construction error.
func NewRegistry(pages []Page) (*Registry, error) {
	r := &Registry{pages: make(map[string]Page, len(pages))}
	for _, p := range pages {
		slug := CleanSlug(p.Slug)
		if slug == "" {
			return nil, fmt.Errorf("docs: page %q has invalid slug %q", p.Title, p.Slug)
		}
		if _, dup := r.pages[slug]; dup {
			return nil, fmt.Errorf("docs: duplicate slug %q", slug)
		}
		p.Slug = slug
		r.pages[slug] = p
		r.order = append(r.order, slug)
	}
	return r, nil
}

// Resolve returns the page registered under slug, or ErrNotFound.
func (r *Registry) Resolve(slug string) (Page, error) {
	slug = CleanSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}
	p, ok := r.pages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return p, nil
}

// Pages returns all registered pages in registration order.
func (r *Registry) Pages() []Page {
	out := make([]Page, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.pages[slug])
	}
	return out
}

// Len reports the number of registered pages.
func (r *Registry) Len() int { return len(r.order) }

// CleanSlug normalizes a route slug: lowercased, trimmed of surrounding
// slashes and whitespace. Traversal-looking slugs come back empty.
func CleanSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") {
		return ""
	}
	if strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

// PrettifySlug turns "api-keys" into "Api Keys" for fallback labels.
func PrettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
