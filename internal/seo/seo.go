package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Meta is everything the layout writes into <head> for one page.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Defaults used when a page carries no overrides.
const (
	SiteName           = "Sardis Docs"
	DefaultDescription = "Developer documentation for the Sardis payments API: MPC wallets, stablecoin payments, webhooks, and agent payment protocols."
)

// ForPage assembles head metadata for a docs page. Every argument other than
// title may be empty; missing pieces fall back to site defaults so metadata
// gaps are never fatal.
func ForPage(title, description, canonicalPath, baseURL string, jsonld []string) Meta {
	switch {
	case title == "":
		title = SiteName
	case title == SiteName, strings.HasSuffix(title, " | "+SiteName):
		// already fully qualified
	default:
		title = title + " | " + SiteName
	}
	if description == "" {
		description = DefaultDescription
	}
	m := Meta{
		Title:       title,
		Description: description,
		JSONLD:      jsonld,
	}
	if baseURL != "" && canonicalPath != "" {
		m.Canonical = baseURL + canonicalPath
	}
	m.OG = OpenGraph{
		Title:       title,
		Description: description,
		Type:        "article",
		URL:         m.Canonical,
		SiteName:    SiteName,
	}
	m.Twitter = Twitter{Card: "summary"}
	return m
}
