package nav

import (
	"path"
	"strings"

	"sardis.io/docs-web/internal/docs"
)

// Item represents a top-level navigation item.
type Item struct {
	Path  string // e.g. "/docs"
	Label string
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href   string
	Label  string
	Active bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/docs", Label: "Documentation"},
	{Path: "/status", Label: "Status"},
}

// Build renders navigation items with active state given the current path.
func Build(currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:   it.Path,
			Label:  it.Label,
			Active: isActive(it.Path, currentPath),
		})
	}
	return items
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/docs" or "/docs/..."
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, itemPath+"/")
}

// SidebarGroup is one badge-labelled run of sidebar links.
type SidebarGroup struct {
	Label string
	Items []RenderedItem
}

// Sidebar groups registry pages by badge, preserving both page order and the
// order in which badges first appear.
func Sidebar(pages []docs.Page, currentPath string) []SidebarGroup {
	var groups []SidebarGroup
	index := map[string]int{}
	for _, p := range pages {
		label := p.Badge
		if label == "" {
			label = "Docs"
		}
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, SidebarGroup{Label: label})
		}
		href := "/docs/" + p.Slug
		groups[i].Items = append(groups[i].Items, RenderedItem{
			Href:   href,
			Label:  p.Title,
			Active: href == currentPath,
		})
	}
	return groups
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Rules:
// - Always start with Home
// - Known top-level sections use their nav label
// - Deeper segments use pageTitle when given, else a prettified segment
func Breadcrumbs(currentPath, pageTitle string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	if clean == "." {
		clean = "/"
	}
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	if len(parts) > 0 && parts[0] != "" {
		top := "/" + parts[0]
		label := docs.PrettifySlug(parts[0])
		for _, it := range Main {
			if it.Path == top {
				label = it.Label
				break
			}
		}
		crumbs = append(crumbs, Crumb{Href: top, Label: label, Active: len(parts) == 1})
	}

	if len(parts) > 1 {
		href := "/" + parts[0]
		for i := 1; i < len(parts); i++ {
			href = href + "/" + parts[i]
			label := docs.PrettifySlug(parts[i])
			if i == len(parts)-1 && pageTitle != "" {
				label = pageTitle
			}
			crumbs = append(crumbs, Crumb{
				Href:   href,
				Label:  label,
				Active: i == len(parts)-1,
			})
		}
	}
	return crumbs
}
