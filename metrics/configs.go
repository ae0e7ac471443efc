package metrics

// Default addresses for metrics servers if none is specified.
const (
	DefaultSystemMetricsAddress      = ":9090"
	DefaultApplicationMetricsAddress = ":9091"
)

// Config defines the configuration of the Prometheus metrics servers.
//
// Two endpoints are exposed:
//  1. System metrics (default :9090): Go runtime, process and build info
//  2. Application metrics (default :9091): request observations and any
//     metric created through MetricsCollector
type Config struct {
	// SystemMetricsAddress is the listen address of the system endpoint.
	// nil uses the default; a pointer to "" disables the endpoint.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "system_metrics_address" key
	//   - Environment variable METRICS_SYSTEM_ADDRESS
	SystemMetricsAddress *string `yaml:"system_metrics_address" envconfig:"METRICS_SYSTEM_ADDRESS"`

	// ApplicationMetricsAddress is the listen address of the application endpoint.
	// nil uses the default; a pointer to "" disables the HTTP server. The
	// application registry itself always exists, so metrics can still be
	// created and gathered in-process.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "application_metrics_address" key
	//   - Environment variable METRICS_APPLICATION_ADDRESS
	ApplicationMetricsAddress *string `yaml:"application_metrics_address" envconfig:"METRICS_APPLICATION_ADDRESS"`

	// ServiceName is attached as a constant "service" label to every metric.
	//
	// This setting can be configured via:
	//   - YAML configuration with the "service_name" key
	//   - Environment variable METRICS_SERVICE_NAME
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}

// Ptr returns a pointer to the given string value.
//
// Example:
//
//	cfg := metrics.Config{
//	    SystemMetricsAddress: metrics.Ptr(""), // disabled
//	    ServiceName:          "edge-proxy",
//	}
func Ptr(s string) *string {
	return &s
}
