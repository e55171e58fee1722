package cli

import (
	"github.com/spf13/pflag"
)

// geneFlag remembers whether -g was given, so that an empty value is not
// mistaken for "read genes from standard input"
type geneFlag struct {
	IsSet bool
	Value string
}

// String implements pflag.Value.
func (s *geneFlag) String() string {
	return s.Value
}

func (s *geneFlag) Set(value string) error {
	s.Value = value
	s.IsSet = true
	return nil
}

func (s *geneFlag) Type() string {
	return "symbol"
}

var _ pflag.Value = &geneFlag{}
