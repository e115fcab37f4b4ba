package handlers

import "sardis.io/docs-web/internal/seo"

// HomeView is the view model payload for the landing page.
type HomeView struct {
	Headline string
	Message  string
	Primary  DocIndexEntry
	Featured []DocIndexEntry
}

// BuildHomeData constructs the view model for the landing page.
func (s *Site) BuildHomeData() PageData {
	view := HomeView{
		Headline: "Sardis Developer Docs",
		Message:  "Programmatic money movement: MPC wallets, stablecoin payments, and agent payment protocols over a plain JSON API.",
		Primary:  DocIndexEntry{Href: "/docs/quickstart", Title: "Quickstart", Summary: "Send your first payment in under ten minutes."},
	}
	for _, p := range s.Registry.Pages() {
		if len(view.Featured) == 3 {
			break
		}
		if p.Slug == "quickstart" {
			continue
		}
		view.Featured = append(view.Featured, DocIndexEntry{
			Href:    "/docs/" + p.Slug,
			Title:   p.Title,
			Summary: p.Summary,
		})
	}

	jsonld := []string{
		seo.JSON(seo.Organization("Sardis", s.BaseURL, "")),
		seo.JSON(seo.WebSite(seo.SiteName, s.BaseURL, "")),
	}
	pd := PageData{
		View:  "home",
		Title: seo.SiteName,
		SEO:   seo.ForPage("", "", "/", s.BaseURL, jsonld),
		Home:  view,
	}
	s.chrome(&pd, "/", "")
	return pd
}
