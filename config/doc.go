// Package config loads the configuration of an observed service from
// defaults, an optional YAML file and the environment, in that order.
//
// Every setting is documented on its section type together with its YAML key
// and environment variable, for example:
//
//	http:
//	  capture_headers: [User-Agent]
//	  interceptor:
//	    time_incomplete_requests: true
//
// or INTERCEPTOR_TIME_INCOMPLETE_REQUESTS=true.
package config
