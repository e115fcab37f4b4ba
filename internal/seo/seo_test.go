package seo

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timeDate(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestForPageDefaults(t *testing.T) {
	m := ForPage("", "", "/", "https://docs.sardis.sh", nil)
	assert.Equal(t, SiteName, m.Title)
	assert.Equal(t, DefaultDescription, m.Description)
	assert.Equal(t, "https://docs.sardis.sh/", m.Canonical)
	assert.Equal(t, m.Title, m.OG.Title)
	assert.Equal(t, SiteName, m.OG.SiteName)
}

func TestForPageTitleSuffix(t *testing.T) {
	m := ForPage("Payments", "", "/docs/payments", "https://docs.sardis.sh", nil)
	assert.Equal(t, "Payments | Sardis Docs", m.Title)

	// already qualified titles are not double-suffixed
	m = ForPage("Payments | Sardis Docs", "", "", "", nil)
	assert.Equal(t, "Payments | Sardis Docs", m.Title)
}

func TestForPageNoBaseURLNoCanonical(t *testing.T) {
	m := ForPage("Payments", "", "/docs/payments", "", nil)
	assert.Empty(t, m.Canonical)
	assert.Empty(t, m.OG.URL)
}

func TestDescribeHTMLFirstParagraph(t *testing.T) {
	frag := `<h2>Heading</h2><p>Sardis is a <strong>payments</strong> API.</p><p>Second.</p>`
	assert.Equal(t, "Sardis is a payments API.", DescribeHTML(frag))
}

func TestDescribeHTMLClips(t *testing.T) {
	long := "<p>" + strings.Repeat("word ", 60) + "</p>"
	got := DescribeHTML(long)
	assert.LessOrEqual(t, len(got), maxDescriptionLen+len("…"))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestDescribeHTMLNoParagraph(t *testing.T) {
	assert.Empty(t, DescribeHTML("<ul><li>x</li></ul>"))
}

func TestJSONLDBuilders(t *testing.T) {
	out := JSON(TechArticle("Payments", "desc", "https://docs.sardis.sh/docs/payments", timeDate(2026, 8, 5)))
	require.NotEmpty(t, out)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, "TechArticle", m["@type"])
	assert.Equal(t, "Payments", m["headline"])
	assert.Equal(t, "2026-08-05", m["dateModified"])

	bl := BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://docs.sardis.sh/"},
		{Name: "Documentation", Item: "https://docs.sardis.sh/docs"},
	})
	el, ok := bl["itemListElement"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, el, 2)
	assert.Equal(t, 1, el[0]["position"])
	assert.Equal(t, "Documentation", el[1]["name"])

	ws := WebSite(SiteName, "https://docs.sardis.sh", "")
	_, hasAction := ws["potentialAction"]
	assert.False(t, hasAction)
}
