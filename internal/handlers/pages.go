package handlers

import (
	"sardis.io/docs-web/internal/nav"
	"sardis.io/docs-web/internal/seo"
)

// PageData is the generic view model for pages using the shared layout.
// View selects which content template the base layout includes.
type PageData struct {
	View      string
	Title     string
	SEO       seo.Meta
	Analytics Analytics

	Path        string
	Nav         []nav.RenderedItem
	Sidebar     []nav.SidebarGroup
	Breadcrumbs []nav.Crumb

	// Optional per-page view model payloads
	Home   any
	Docs   any
	Doc    any
	Status any
}

// chrome fills the layout fields shared by every page.
func (s *Site) chrome(pd *PageData, currentPath, pageTitle string) {
	pd.Path = currentPath
	pd.Nav = nav.Build(currentPath)
	pd.Sidebar = nav.Sidebar(s.Registry.Pages(), currentPath)
	pd.Breadcrumbs = nav.Breadcrumbs(currentPath, pageTitle)
	pd.Analytics = s.Analytics
}
