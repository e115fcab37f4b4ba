package handlers

import (
	"time"

	"sardis.io/docs-web/internal/docs"
	"sardis.io/docs-web/internal/format"
	"sardis.io/docs-web/internal/nav"
	"sardis.io/docs-web/internal/render"
	"sardis.io/docs-web/internal/seo"
)

// DocView is the view model for one rendered documentation page.
type DocView struct {
	Slug     string
	Title    string
	Badge    string
	Summary  string
	Updated  string
	Sections []render.Section
}

// DocIndexEntry is one row on the documentation index.
type DocIndexEntry struct {
	Href    string
	Title   string
	Summary string
}

// DocIndexGroup groups index entries under their badge label.
type DocIndexGroup struct {
	Label   string
	Entries []DocIndexEntry
}

// BuildDocPageData renders a resolved page into the layout view model,
// attaching SEO metadata with content-derived fallbacks.
func (s *Site) BuildDocPageData(page docs.Page) PageData {
	currentPath := "/docs/" + page.Slug
	sections := render.Page(page)

	description := page.SEO.Description
	if description == "" {
		description = page.Summary
	}
	if description == "" && len(sections) > 0 {
		description = seo.DescribeHTML(string(sections[0].HTML))
	}

	title := page.SEO.Title
	if title == "" {
		title = page.Title
	}
	canonical := ""
	if s.BaseURL != "" {
		canonical = s.BaseURL + currentPath
	}
	jsonld := []string{
		seo.JSON(seo.TechArticle(page.Title, description, canonical, page.UpdatedAt)),
		seo.JSON(seo.BreadcrumbList(s.breadcrumbItems(currentPath, page.Title))),
	}

	pd := PageData{
		View:  "doc",
		Title: page.Title,
		SEO:   seo.ForPage(title, description, currentPath, s.BaseURL, jsonld),
		Doc: DocView{
			Slug:     page.Slug,
			Title:    page.Title,
			Badge:    page.Badge,
			Summary:  page.Summary,
			Updated:  updatedLabel(page.UpdatedAt),
			Sections: sections,
		},
	}
	s.chrome(&pd, currentPath, page.Title)
	return pd
}

// BuildDocsIndexData lists every registered page grouped by badge.
func (s *Site) BuildDocsIndexData() PageData {
	var groups []DocIndexGroup
	index := map[string]int{}
	for _, p := range s.Registry.Pages() {
		label := p.Badge
		if label == "" {
			label = "Docs"
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, DocIndexGroup{Label: label})
		}
		groups[i].Entries = append(groups[i].Entries, DocIndexEntry{
			Href:    "/docs/" + p.Slug,
			Title:   p.Title,
			Summary: p.Summary,
		})
	}

	pd := PageData{
		View:  "docs_index",
		Title: "Documentation",
		SEO:   seo.ForPage("Documentation", "", "/docs", s.BaseURL, nil),
		Docs:  groups,
	}
	s.chrome(&pd, "/docs", "Documentation")
	return pd
}

// BuildNotFoundData is the view model for the 404 page.
func (s *Site) BuildNotFoundData(currentPath string) PageData {
	pd := PageData{
		View:  "not_found",
		Title: "Page not found",
		SEO:   seo.ForPage("Page not found", "", "", "", nil),
	}
	pd.SEO.Robots = "noindex"
	s.chrome(&pd, currentPath, "Page not found")
	return pd
}

func (s *Site) breadcrumbItems(currentPath, pageTitle string) []seo.BreadcrumbItem {
	crumbs := nav.Breadcrumbs(currentPath, pageTitle)
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: s.BaseURL + c.Href})
	}
	return items
}

func updatedLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return "Updated " + format.FmtDate(t)
}
