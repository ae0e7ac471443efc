package httpmetrics

import (
	"github.com/aalemi-dev/reqobserve/interceptor"
)

// Config configures a Middleware.
type Config struct {
	// Interceptor holds the observation settings.
	Interceptor interceptor.Config `yaml:"interceptor"`

	// CaptureHeaders lists request headers copied into the record's
	// attributes, keyed by their lower-case name. Absent headers are skipped.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "capture_headers" key
	//   - Environment variable HTTP_CAPTURE_HEADERS (comma separated)
	CaptureHeaders []string `yaml:"capture_headers" envconfig:"HTTP_CAPTURE_HEADERS"`
}
