package main

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sardis.io/docs-web/internal/docs"
)

// DocsIndexHandler renders the documentation index.
func DocsIndexHandler(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, site.BuildDocsIndexData())
}

// DocPageHandler resolves a slug and renders the page, or the 404 page for
// unknown slugs. An unknown slug is a normal response, never a failure.
func DocPageHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := site.Registry.Resolve(slug)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			NotFoundHandler(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, site.BuildDocPageData(page))
}

// NotFoundHandler renders the shared 404 page.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusNotFound, site.BuildNotFoundData(r.URL.Path))
}

// StatusHandler renders the platform status page.
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	summary := statusClient.FetchSummary(r.Context())
	render(w, http.StatusOK, site.BuildStatusData(summary))
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapHandler emits a sitemap over every registered page.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	base := site.BaseURL
	set := sitemapSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs,
		sitemapURL{Loc: base + "/"},
		sitemapURL{Loc: base + "/docs"},
	)
	for _, p := range site.Registry.Pages() {
		u := sitemapURL{Loc: base + "/docs/" + p.Slug}
		if !p.UpdatedAt.IsZero() {
			u.LastMod = p.UpdatedAt.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	_ = enc.Encode(set)
}
