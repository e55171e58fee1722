package api

import (
	"strings"

	"github.com/Jeffail/gabs"
	"github.com/ka2n/ppa/api/field"
	"github.com/ka2n/ppa/api/panelapp"
	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// missingValue is printed for absent, null and empty values
const missingValue = "-"

// Result holds the gene records of one lookup
type Result struct {
	Records []Record

	// Headers of the HTTP response, lower-cased
	Headers map[string]string
}

// Record is one entry of the results array. Values are kept untyped since
// PanelApp mixes strings, arrays and nested objects.
type Record struct {
	c *gabs.Container
}

// NewResult parses the body of a genes response
func NewResult(resp *panelapp.Response) (Result, error) {
	records, err := parseRecords(resp.Body)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Records: records,
		Headers: resp.Headers,
	}, nil
}

func parseRecords(body []byte) ([]Record, error) {
	parsed, err := gabs.ParseJSON(body)
	if err != nil {
		return nil, failure.New(ErrMalformedResponse,
			failure.Message("PanelApp returned a response that is not valid JSON"),
			failure.Context{"error": err.Error()},
		)
	}

	noResults := failure.New(ErrNoResults,
		failure.Message("JSON response did not contain results field or results is empty"),
	)

	if _, ok := parsed.Data().(map[string]interface{}); !ok {
		return nil, noResults
	}
	results := parsed.Search("results")
	if items, ok := results.Data().([]interface{}); !ok || len(items) == 0 {
		return nil, noResults
	}

	children, err := results.Children()
	if err != nil {
		return nil, failure.Wrap(err)
	}
	return lo.Map(children, func(c *gabs.Container, _ int) Record {
		return Record{c: c}
	}), nil
}

// EntityName returns the gene symbol of the record
func (r Record) EntityName() string {
	return r.Value(field.EntityName)
}

// Value renders a field of the record for display.
// List fields are joined with ", "; nested objects and numbers are rendered as
// compact JSON; empty values become "-".
func (r Record) Value(f field.Field) string {
	v := r.c.Search(f.String())

	if f.IsList() {
		if _, ok := v.Data().([]interface{}); ok {
			items, _ := v.Children()
			return orMissing(strings.Join(lo.Map(items, func(item *gabs.Container, _ int) string {
				return render(item)
			}), ", "))
		}
	}

	return orMissing(render(v))
}

func render(c *gabs.Container) string {
	switch v := c.Data().(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return c.String()
	}
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}
