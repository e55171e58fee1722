package field

import (
	"fmt"
	"strings"

	"github.com/morikuni/failure/v2"
	"github.com/samber/lo"
)

// ErrorCode defines error types for field selection
type ErrorCode string

const (
	// ErrInvalidField is returned when a requested field is not in the whitelist
	ErrInvalidField ErrorCode = "InvalidField"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Field is the name of an attribute of a PanelApp gene record
type Field string

const (
	GeneData            Field = "gene_data"
	EntityType          Field = "entity_type"
	EntityName          Field = "entity_name"
	ConfidenceLevel     Field = "confidence_level"
	Penetrance          Field = "penetrance"
	ModeOfPathogenicity Field = "mode_of_pathogenicity"
	Publications        Field = "publications"
	Evidence            Field = "evidence"
	Phenotypes          Field = "phenotypes"
	ModeOfInheritance   Field = "mode_of_inheritance"
	Tags                Field = "tags"
	Panel               Field = "panel"
)

// Known is the whitelist of selectable fields, in display order
var Known = []Field{
	GeneData,
	EntityType,
	EntityName,
	ConfidenceLevel,
	Penetrance,
	ModeOfPathogenicity,
	Publications,
	Evidence,
	Phenotypes,
	ModeOfInheritance,
	Tags,
	Panel,
}

// Defaults are reported when no fields are requested
var Defaults = []Field{Evidence, Phenotypes, ModeOfInheritance}

// String returns the string representation of the Field
func (f Field) String() string {
	return string(f)
}

// Label returns the upper-cased name used in the report
func (f Field) Label() string {
	return strings.ToUpper(string(f))
}

// IsKnown returns true if the field is in the whitelist
func (f Field) IsKnown() bool {
	return lo.Contains(Known, f)
}

// IsList returns true if the API returns the field as an array of values
func (f Field) IsList() bool {
	switch f {
	case Publications, Evidence, Phenotypes, Tags:
		return true
	default:
		return false
	}
}

// IsDefault returns true if the field is reported when no fields are requested
func (f Field) IsDefault() bool {
	return lo.Contains(Defaults, f)
}

// Selection is an ordered list of fields to report
type Selection struct {
	Fields []Field

	// Default is true when no fields were requested explicitly
	Default bool
}

// DefaultSelection returns the selection used when no fields are requested
func DefaultSelection() Selection {
	return Selection{
		Fields:  append([]Field(nil), Defaults...),
		Default: true,
	}
}

// Parse parses a comma-separated field list and validates every name against the whitelist.
// An empty list yields the default selection.
func Parse(list string) (Selection, error) {
	if strings.TrimSpace(list) == "" {
		return DefaultSelection(), nil
	}
	return FromNames(strings.Split(list, ","))
}

// FromNames validates the given field names in order
func FromNames(names []string) (Selection, error) {
	fields := make([]Field, 0, len(names))
	for _, name := range names {
		f := Field(strings.TrimSpace(name))
		if !f.IsKnown() {
			return Selection{}, failure.New(ErrInvalidField,
				failure.Message(fmt.Sprintf("Invalid field specified: %q. Fields must be one of the following: %s", string(f), KnownList())),
				failure.Context{
					"field": string(f),
				},
			)
		}
		fields = append(fields, f)
	}
	return Selection{Fields: fields}, nil
}

// KnownList returns the whitelist as a comma-separated string
func KnownList() string {
	return strings.Join(lo.Map(Known, func(f Field, _ int) string {
		return f.String()
	}), ", ")
}

// Names returns the selected field names
func (s Selection) Names() []string {
	return lo.Map(s.Fields, func(f Field, _ int) string {
		return f.String()
	})
}

// Confirmation describes which fields are being reported
func (s Selection) Confirmation() string {
	if s.Default {
		return "(Reporting default fields EVIDENCE, PHENOTYPES, and MODE_OF_INHERITANCE)"
	}
	return fmt.Sprintf("(Reporting for entered fields: %s)", strings.Join(s.Names(), ", "))
}
