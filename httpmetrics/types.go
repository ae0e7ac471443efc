package httpmetrics

import (
	"net/http"
	"strings"

	"github.com/aalemi-dev/reqobserve/interceptor"
)

// Exchange is a single HTTP request together with the writer for its response.
type Exchange struct {
	Writer  http.ResponseWriter
	Request *http.Request
}

// Response summarises what the handler wrote.
type Response struct {
	// StatusCode is the first non-informational status written, 200 when the
	// handler never called WriteHeader.
	StatusCode int

	// Size is the number of body bytes written.
	Size int64
}

// RequestMetadata extracts the method, the URL path and the given headers
// of ex.
func RequestMetadata(ex Exchange, headers ...string) interceptor.RequestMetadata {
	meta := interceptor.RequestMetadata{
		Method: ex.Request.Method,
		Path:   ex.Request.URL.Path,
	}

	for _, h := range headers {
		v := ex.Request.Header.Get(h)
		if v == "" {
			continue
		}
		if meta.Attributes == nil {
			meta.Attributes = make(map[string]string, len(headers))
		}
		meta.Attributes[strings.ToLower(h)] = v
	}
	return meta
}

// ResponseMetadata returns the status code of r.
func ResponseMetadata(r Response) interceptor.ResponseMetadata {
	return interceptor.ResponseMetadata{StatusCode: r.StatusCode}
}

// headerCarrier flattens h into the lower-case keyed map read by
// tracer.SetCarrierOnContext.
func headerCarrier(h http.Header) map[string]string {
	carrier := make(map[string]string, len(h))
	for k := range h {
		carrier[strings.ToLower(k)] = h.Get(k)
	}
	return carrier
}
