package handlers

import "os"

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	PlausibleDomain  string // e.g. docs.sardis.sh
	Debug            bool
}

// LoadAnalyticsFromEnv builds Analytics from environment variables.
func LoadAnalyticsFromEnv() Analytics {
	return Analytics{
		GA4MeasurementID: os.Getenv("SARDIS_DOCS_GA_MEASUREMENT_ID"),
		PlausibleDomain:  os.Getenv("SARDIS_DOCS_PLAUSIBLE_DOMAIN"),
		Debug:            os.Getenv("SARDIS_DOCS_ANALYTICS_DEBUG") != "",
	}
}
