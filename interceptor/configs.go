package interceptor

// Config defines the behaviour of an interceptor layer.
// It is set once when the layer is built and never changes afterwards.
type Config struct {
	// TimeIncompleteRequests controls whether requests that never produced a
	// response are still reported.
	//
	// Successful requests are always reported. When this flag is true, requests
	// whose handler returned an error, and requests that were abandoned after
	// being driven at least once (client disconnect, timeout, upstream
	// cancellation), produce a record without response metadata. When false,
	// those dispositions are dropped silently.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "time_incomplete_requests" key
	//   - Environment variable INTERCEPTOR_TIME_INCOMPLETE_REQUESTS
	//
	// Default: false
	TimeIncompleteRequests bool `yaml:"time_incomplete_requests" envconfig:"INTERCEPTOR_TIME_INCOMPLETE_REQUESTS"`
}
