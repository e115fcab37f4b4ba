package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Summary captures an overview of the Sardis platform status and recent
// incidents, as shown on the docs /status page.
type Summary struct {
	State      string
	StateLabel string
	UpdatedAt  time.Time
	Components []Component
	Incidents  []Incident
}

// Component represents the status of an individual subsystem.
type Component struct {
	Name   string
	Status string
}

// Incident describes a status incident with optional updates.
type Incident struct {
	ID         string
	Title      string
	Status     string
	Impact     string
	StartedAt  time.Time
	ResolvedAt time.Time
	Updates    []IncidentUpdate
}

// IncidentUpdate captures a timeline entry for an incident.
type IncidentUpdate struct {
	Timestamp time.Time
	Status    string
	Body      string
}

// ErrNotFound indicates the status endpoint has no summary to serve.
var ErrNotFound = errors.New("status: not found")

// Client fetches status summaries from the external Sardis status endpoint
// with a local fallback. The docs site never fails because status is down.
type Client struct {
	baseURL string
	http    *http.Client

	mu     sync.RWMutex
	cached Summary
	expiry time.Time
	ttl    time.Duration
}

// NewClient builds a status client with the provided base URL. When baseURL
// is empty, the client exclusively serves fallback data.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSpace(baseURL),
		http:    &http.Client{Timeout: 5 * time.Second},
		ttl:     2 * time.Minute,
	}
}

// SetCacheTTL configures the cache duration (primarily for tests).
func (c *Client) SetCacheTTL(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	c.mu.Lock()
	c.ttl = d
	c.mu.Unlock()
}

// FetchSummary returns the platform status summary, prioritizing cached
// values, then remote data, and finally the local fallback.
func (c *Client) FetchSummary(ctx context.Context) Summary {
	c.mu.RLock()
	if !c.expiry.IsZero() && time.Now().Before(c.expiry) {
		cached := cloneSummary(c.cached)
		c.mu.RUnlock()
		return cached
	}
	c.mu.RUnlock()

	var summary Summary
	if c.baseURL != "" {
		remote, err := c.fetchRemote(ctx)
		if err == nil {
			summary = remote
		}
	}
	if summary.State == "" {
		summary = fallbackSummary()
	}

	c.mu.Lock()
	c.cached = cloneSummary(summary)
	c.expiry = time.Now().Add(c.ttl)
	c.mu.Unlock()
	return summary
}

func (c *Client) fetchRemote(ctx context.Context) (Summary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Summary{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return Summary{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return Summary{}, fmt.Errorf("status: remote status %d", resp.StatusCode)
	}

	var payload remoteSummary
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Summary{}, err
	}
	return mapRemoteSummary(payload), nil
}

type remoteSummary struct {
	State      string            `json:"state"`
	UpdatedAt  string            `json:"updated_at"`
	Components []remoteComponent `json:"components"`
	Incidents  []remoteIncident  `json:"incidents"`
}

type remoteComponent struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type remoteIncident struct {
	ID         string                 `json:"id"`
	Title      string                 `json:"title"`
	Status     string                 `json:"status"`
	Impact     string                 `json:"impact"`
	StartedAt  string                 `json:"started_at"`
	ResolvedAt string                 `json:"resolved_at"`
	Updates    []remoteIncidentUpdate `json:"updates"`
}

type remoteIncidentUpdate struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Body      string `json:"body"`
}

func mapRemoteSummary(raw remoteSummary) Summary {
	summary := Summary{
		State:      strings.TrimSpace(raw.State),
		UpdatedAt:  parseTime(raw.UpdatedAt),
	}
	summary.StateLabel = stateLabel(summary.State)
	for _, c := range raw.Components {
		summary.Components = append(summary.Components, Component{
			Name:   strings.TrimSpace(c.Name),
			Status: strings.TrimSpace(c.Status),
		})
	}
	for _, inc := range raw.Incidents {
		item := Incident{
			ID:         strings.TrimSpace(inc.ID),
			Title:      strings.TrimSpace(inc.Title),
			Status:     strings.TrimSpace(inc.Status),
			Impact:     strings.TrimSpace(inc.Impact),
			StartedAt:  parseTime(inc.StartedAt),
			ResolvedAt: parseTime(inc.ResolvedAt),
		}
		for _, upd := range inc.Updates {
			item.Updates = append(item.Updates, IncidentUpdate{
				Timestamp: parseTime(upd.Timestamp),
				Status:    strings.TrimSpace(upd.Status),
				Body:      strings.TrimSpace(upd.Body),
			})
		}
		summary.Incidents = append(summary.Incidents, item)
	}
	return summary
}

func stateLabel(state string) string {
	switch state {
	case "operational":
		return "All systems operational"
	case "degraded":
		return "Degraded performance"
	case "outage":
		return "Service disruption"
	default:
		return "Status unknown"
	}
}

func parseTime(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t
	}
	return time.Time{}
}

func cloneSummary(src Summary) Summary {
	cp := Summary{
		State:      src.State,
		StateLabel: src.StateLabel,
		UpdatedAt:  src.UpdatedAt,
	}
	if len(src.Components) > 0 {
		cp.Components = make([]Component, len(src.Components))
		copy(cp.Components, src.Components)
	}
	if len(src.Incidents) > 0 {
		cp.Incidents = make([]Incident, len(src.Incidents))
		for i, inc := range src.Incidents {
			cp.Incidents[i] = inc
			if len(inc.Updates) > 0 {
				cp.Incidents[i].Updates = make([]IncidentUpdate, len(inc.Updates))
				copy(cp.Incidents[i].Updates, inc.Updates)
			}
		}
	}
	return cp
}

func fallbackSummary() Summary {
	return Summary{
		State:      "operational",
		StateLabel: stateLabel("operational"),
		Components: []Component{
			{Name: "API", Status: "operational"},
			{Name: "MPC Signing", Status: "operational"},
			{Name: "Webhook Delivery", Status: "operational"},
			{Name: "Dashboard", Status: "operational"},
		},
	}
}
