// Package render turns documentation blocks into HTML fragments for the
// page templates. Rendering is a pure function of the page: no I/O, no
// per-request state, identical input gives identical output.
package render

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"sardis.io/docs-web/internal/docs"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	sanitizer = newSanitizer()
)

func newSanitizer() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	// in-site links like /docs/webhooks
	p.AllowRelativeURLs(true)
	return p
}

// Section is the rendered form of a docs.Section.
type Section struct {
	Heading string
	Anchor  string
	HTML    template.HTML
}

// Page renders every section of a page, preserving authored order.
func Page(p docs.Page) []Section {
	out := make([]Section, 0, len(p.Sections))
	for _, sec := range p.Sections {
		out = append(out, Section{
			Heading: sec.Heading,
			Anchor:  Anchor(sec.Heading),
			HTML:    Blocks(sec.Blocks),
		})
	}
	return out
}

// Blocks renders an ordered run of blocks into one HTML fragment.
func Blocks(blocks []docs.Block) template.HTML {
	var b strings.Builder
	for _, blk := range blocks {
		writeBlock(&b, blk)
	}
	return template.HTML(b.String())
}

func writeBlock(b *strings.Builder, blk docs.Block) {
	switch blk.Kind {
	case docs.KindParagraph:
		b.WriteString(Markdown(blk.Text))
	case docs.KindCode:
		writeCode(b, blk)
	case docs.KindTable:
		writeTable(b, blk)
	case docs.KindCallout:
		variant := blk.Variant
		if variant != docs.CalloutWarning {
			variant = docs.CalloutInfo
		}
		fmt.Fprintf(b, `<div class="callout callout-%s">`, variant)
		b.WriteString(Markdown(blk.Text))
		b.WriteString("</div>\n")
	}
}

// writeCode emits the sample verbatim: HTML-escaped, never reflowed,
// highlighted client-side off the language class.
func writeCode(b *strings.Builder, blk docs.Block) {
	lang := strings.TrimSpace(strings.ToLower(blk.Lang))
	if lang == "" {
		lang = "text"
	}
	fmt.Fprintf(b, `<pre class="code-sample"><code class="language-%s">`, html.EscapeString(lang))
	b.WriteString(html.EscapeString(blk.Source))
	b.WriteString("</code></pre>\n")
}

func writeTable(b *strings.Builder, blk docs.Block) {
	b.WriteString(`<table class="doc-table"><thead><tr>`)
	for _, h := range blk.Headers {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range blk.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>\n")
}

// Markdown converts block text to sanitized HTML. Conversion failures fall
// back to an escaped paragraph rather than dropping content.
func Markdown(text string) string {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return "<p>" + html.EscapeString(text) + "</p>\n"
	}
	return sanitizer.Sanitize(buf.String())
}

// Anchor derives a stable fragment id from a section heading.
func Anchor(heading string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(heading) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
