package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sardis.io/docs-web/internal/docs"
)

func TestBuildActiveState(t *testing.T) {
	items := Build("/docs/payments")
	require.Len(t, items, len(Main))
	for _, it := range items {
		switch it.Href {
		case "/docs":
			assert.True(t, it.Active)
		default:
			assert.False(t, it.Active, it.Href)
		}
	}

	// prefix must respect path boundaries
	for _, it := range Build("/docsy") {
		assert.False(t, it.Active, it.Href)
	}
}

func TestSidebarGroupsByBadge(t *testing.T) {
	pages := []docs.Page{
		{Slug: "quickstart", Title: "Quickstart", Badge: "Getting Started"},
		{Slug: "authentication", Title: "Authentication", Badge: "Getting Started"},
		{Slug: "wallets", Title: "Wallets", Badge: "Platform"},
		{Slug: "misc", Title: "Misc"},
	}
	groups := Sidebar(pages, "/docs/wallets")
	require.Len(t, groups, 3)
	assert.Equal(t, "Getting Started", groups[0].Label)
	assert.Equal(t, "Platform", groups[1].Label)
	assert.Equal(t, "Docs", groups[2].Label)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "Quickstart", groups[0].Items[0].Label)
	assert.True(t, groups[1].Items[0].Active)
	assert.False(t, groups[0].Items[0].Active)
}

func TestBreadcrumbsHomeOnly(t *testing.T) {
	crumbs := Breadcrumbs("/", "")
	require.Len(t, crumbs, 1)
	assert.Equal(t, "Home", crumbs[0].Label)
	assert.True(t, crumbs[0].Active)
}

func TestBreadcrumbsDocPage(t *testing.T) {
	crumbs := Breadcrumbs("/docs/agent-protocols", "Agent Protocols")
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Home", crumbs[0].Label)
	assert.Equal(t, "Documentation", crumbs[1].Label)
	assert.Equal(t, "/docs", crumbs[1].Href)
	assert.False(t, crumbs[1].Active)
	assert.Equal(t, "Agent Protocols", crumbs[2].Label)
	assert.True(t, crumbs[2].Active)
}

func TestBreadcrumbsUnknownTopLevel(t *testing.T) {
	crumbs := Breadcrumbs("/legal/terms", "")
	require.Len(t, crumbs, 3)
	assert.Equal(t, "Legal", crumbs[1].Label)
	assert.Equal(t, "Terms", crumbs[2].Label)
}
