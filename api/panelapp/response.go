package panelapp

import (
	"net/http"
	"strings"
)

// Response is a successful reply from the genes endpoint
type Response struct {
	StatusCode int
	Status     string

	// Headers maps lower-cased header names to their values.
	// Repeated headers are joined with ", ".
	Headers map[string]string

	Body []byte
}

// Header returns the value of the named header, ignoring case
func (r *Response) Header(name string) string {
	return r.Headers[strings.ToLower(name)]
}

func lowerHeaders(h http.Header) map[string]string {
	headers := make(map[string]string, len(h))
	for name, values := range h {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	return headers
}
