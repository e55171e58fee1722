// Package api looks up genes in PanelApp and renders the returned gene records.
//
// A lookup runs in three steps:
//   - NewQuery collects gene symbols from a GeneSource and pairs them with a field.Selection
//   - Lookup fetches the genes endpoint once through a panelapp.Client and parses the results
//   - WriteReport prints the selected fields of every record
package api

// ErrorCode defines error types for API operations
type ErrorCode string

const (
	// ErrNoGenes is returned when the gene source yields no symbols
	ErrNoGenes ErrorCode = "NoGenes"

	// ErrNoResults is returned when the response has no usable results array
	ErrNoResults ErrorCode = "NoResults"

	// ErrMalformedResponse is returned when the response body is not JSON
	ErrMalformedResponse ErrorCode = "MalformedResponse"

	// ErrReadGenes is returned when the gene source cannot be read
	ErrReadGenes ErrorCode = "ReadGenes"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
