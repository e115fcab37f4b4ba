package render

import (
	"html"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sardis.io/docs-web/internal/docs"
)

func samplePage() docs.Page {
	return docs.Page{
		Slug:  "sample",
		Title: "Sample",
		Sections: []docs.Section{
			{
				Heading: "First things",
				Blocks: []docs.Block{
					docs.Paragraph("Plain text with **bold** and a [link](/docs/payments)."),
					docs.Code("bash", "curl https://api.sardis.sh/v1/wallets \\\n  -H \"Authorization: Bearer sk_test_abc\""),
				},
			},
			{
				Heading: "Second & last",
				Blocks: []docs.Block{
					docs.Table([]string{"Prefix", "Environment"},
						[]string{"sk_live_", "Production"},
						[]string{"sk_test_", "Testnet"},
					),
					docs.Callout(docs.CalloutWarning, "Keep keys secret."),
				},
			},
		},
	}
}

func TestPageRenderIsIdempotent(t *testing.T) {
	p := samplePage()
	first := Page(p)
	second := Page(p)
	require.Equal(t, first, second)
}

func TestPagePreservesSectionOrder(t *testing.T) {
	out := Page(samplePage())
	require.Len(t, out, 2)
	assert.Equal(t, "First things", out[0].Heading)
	assert.Equal(t, "Second & last", out[1].Heading)
	assert.Equal(t, "first-things", out[0].Anchor)
	assert.Equal(t, "second-last", out[1].Anchor)
}

func TestCodeSampleIsVerbatim(t *testing.T) {
	source := "curl -d '{\"amount\": \"12.50\"}' <https://api.sardis.sh>\n\t# tabs & spacing preserved"
	out := string(Blocks([]docs.Block{docs.Code("bash", source)}))

	start := strings.Index(out, "<code class=\"language-bash\">")
	require.NotEqual(t, -1, start)
	start += len("<code class=\"language-bash\">")
	end := strings.Index(out, "</code>")
	require.NotEqual(t, -1, end)

	// escaped in the wrapper, byte-for-byte after unescaping
	assert.Equal(t, source, html.UnescapeString(out[start:end]))
	// markdown pipeline never touches code sources
	assert.NotContains(t, out, "<strong>")
}

func TestCodeSampleDefaultsLanguage(t *testing.T) {
	out := string(Blocks([]docs.Block{docs.Code("", "x")}))
	assert.Contains(t, out, `language-text`)
}

func TestParagraphMarkdown(t *testing.T) {
	out := string(Blocks([]docs.Block{docs.Paragraph("See **bold** and [docs](/docs/webhooks).")}))
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, `href="/docs/webhooks"`)
}

func TestParagraphSanitized(t *testing.T) {
	out := string(Blocks([]docs.Block{docs.Paragraph(`hello <script>alert(1)</script> world`)}))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "hello")
}

func TestTableRowsInOrder(t *testing.T) {
	out := string(Blocks([]docs.Block{docs.Table([]string{"A"}, []string{"first"}, []string{"second"})}))
	assert.Less(t, strings.Index(out, "first"), strings.Index(out, "second"))
	assert.Contains(t, out, "<th>A</th>")
}

func TestTableCellsEscaped(t *testing.T) {
	out := string(Blocks([]docs.Block{docs.Table([]string{"H"}, []string{`<img src=x>`})}))
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;img src=x&gt;")
}

func TestCalloutVariants(t *testing.T) {
	warn := string(Blocks([]docs.Block{docs.Callout(docs.CalloutWarning, "careful")}))
	assert.Contains(t, warn, `callout-warning`)

	info := string(Blocks([]docs.Block{docs.Callout(docs.CalloutInfo, "fyi")}))
	assert.Contains(t, info, `callout-info`)

	// unknown variants degrade to info
	odd := string(Blocks([]docs.Block{{Kind: docs.KindCallout, Variant: "loud", Text: "hm"}}))
	assert.Contains(t, odd, `callout-info`)
}

func TestAnchor(t *testing.T) {
	assert.Equal(t, "before-you-begin", Anchor("Before you begin"))
	assert.Equal(t, "1-create-a-wallet", Anchor("1. Create a wallet"))
	assert.Equal(t, "", Anchor("???"))
}
