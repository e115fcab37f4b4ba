package handlers

import "sardis.io/docs-web/internal/docs"

// Site bundles the immutable per-process collaborators view model builders
// need: the page registry, the canonical base URL, and analytics config.
// It is constructed once in main and shared read-only across requests.
type Site struct {
	Registry  *docs.Registry
	BaseURL   string
	Analytics Analytics
}
