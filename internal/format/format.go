package format

import "time"

// FmtDate formats a timestamp for "last updated" stamps on doc pages.
func FmtDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
