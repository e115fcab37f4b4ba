package handlers

import (
	"sardis.io/docs-web/internal/format"
	"sardis.io/docs-web/internal/seo"
	"sardis.io/docs-web/internal/status"
)

// StatusView is the view model payload for the platform status page.
type StatusView struct {
	State      string
	StateLabel string
	UpdatedAt  string
	Components []status.Component
	Incidents  []status.Incident
}

// BuildStatusData wraps a status summary in the shared layout.
func (s *Site) BuildStatusData(summary status.Summary) PageData {
	view := StatusView{
		State:      summary.State,
		StateLabel: summary.StateLabel,
		Components: summary.Components,
		Incidents:  summary.Incidents,
	}
	if !summary.UpdatedAt.IsZero() {
		view.UpdatedAt = format.FmtDate(summary.UpdatedAt)
	}
	pd := PageData{
		View:   "status",
		Title:  "Platform Status",
		SEO:    seo.ForPage("Platform Status", "Live status of the Sardis API, MPC signing, and webhook delivery.", "/status", s.BaseURL, nil),
		Status: view,
	}
	s.chrome(&pd, "/status", "Platform Status")
	return pd
}
