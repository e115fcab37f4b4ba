package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlayPage = `slug: changelog
title: Changelog
badge: Reference
summary: Notable API changes.
updated_at: 2026-08-12
seo:
  description: Changelog for the Sardis API.
sections:
  - heading: August 2026
    blocks:
      - paragraph: Added **AP2 mandates** to the agent protocol surface.
      - code:
          lang: bash
          source: |-
            curl https://api.sardis.sh/v1/changelog
      - table:
          headers: [Date, Change]
          rows:
            - ["2026-08-11", "AP2 mandates GA"]
      - callout:
          kind: warning
          text: Older SDKs must upgrade before 2027.
`

func writeOverlay(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	return dir
}

func TestLoadDirParsesPage(t *testing.T) {
	dir := writeOverlay(t, "changelog.yaml", overlayPage)

	pages, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, pages, 1)

	p := pages[0]
	assert.Equal(t, "changelog", p.Slug)
	assert.Equal(t, "Changelog", p.Title)
	assert.Equal(t, "Reference", p.Badge)
	assert.Equal(t, "Changelog for the Sardis API.", p.SEO.Description)
	assert.Equal(t, 2026, p.UpdatedAt.Year())

	require.Len(t, p.Sections, 1)
	blocks := p.Sections[0].Blocks
	require.Len(t, blocks, 4)
	assert.Equal(t, KindParagraph, blocks[0].Kind)
	assert.Equal(t, KindCode, blocks[1].Kind)
	assert.Equal(t, "curl https://api.sardis.sh/v1/changelog", blocks[1].Source)
	assert.Equal(t, KindTable, blocks[2].Kind)
	assert.Equal(t, []string{"Date", "Change"}, blocks[2].Headers)
	assert.Equal(t, KindCallout, blocks[3].Kind)
	assert.Equal(t, CalloutWarning, blocks[3].Variant)
}

func TestLoadDirSlugFromFilename(t *testing.T) {
	dir := writeOverlay(t, "migration-guide.yaml", `title: Migrating
sections:
  - heading: Steps
    blocks:
      - paragraph: One step.
`)
	pages, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Equal(t, "migration-guide", pages[0].Slug)
}

func TestLoadDirMissingIsNotError(t *testing.T) {
	pages, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, pages)

	pages, err = LoadDir("")
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestLoadDirRejectsAmbiguousBlock(t *testing.T) {
	dir := writeOverlay(t, "bad.yaml", `slug: bad
sections:
  - heading: Broken
    blocks:
      - paragraph: text
        code:
          lang: bash
          source: echo hi
`)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of")
}

func TestLoadDirRejectsRaggedTable(t *testing.T) {
	dir := writeOverlay(t, "bad.yaml", `slug: bad
sections:
  - heading: Broken
    blocks:
      - table:
          headers: [A, B]
          rows:
            - ["only one"]
`)
	_, err := LoadDir(dir)
	require.Error(t, err)
}

func TestLoadDirRejectsUnknownCalloutKind(t *testing.T) {
	dir := writeOverlay(t, "bad.yaml", `slug: bad
sections:
  - heading: Broken
    blocks:
      - callout:
          kind: danger
          text: boom
`)
	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "callout kind")
}

func TestLoadDirSortsByFilename(t *testing.T) {
	dir := t.TempDir()
	page := "slug: %s\nsections:\n  - heading: H\n    blocks:\n      - paragraph: body\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "02-b.yaml"), []byte(fmt.Sprintf(page, "two")), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "01-a.yaml"), []byte(fmt.Sprintf(page, "one")), 0o644))

	pages, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "one", pages[0].Slug)
	assert.Equal(t, "two", pages[1].Slug)
}
