package api

import (
	"bufio"
	"io"
	"strings"

	"github.com/ka2n/ppa/api/field"
	"github.com/morikuni/failure/v2"
)

// GeneSource supplies the gene symbols to look up
type GeneSource interface {
	Genes() ([]string, error)
}

// StreamSource reads one gene symbol per line: the first whitespace-delimited
// token of every non-blank line.
type StreamSource struct {
	Reader io.Reader
}

func (s StreamSource) Genes() ([]string, error) {
	var genes []string
	scanner := bufio.NewScanner(s.Reader)
	for scanner.Scan() {
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}
		genes = append(genes, tokens[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, failure.New(ErrReadGenes,
			failure.Message("Failed to read gene symbols"),
			failure.Context{"error": err.Error()},
		)
	}
	return genes, nil
}

// SingleSource supplies exactly one gene symbol, or none if it is blank
type SingleSource struct {
	Gene string
}

func (s SingleSource) Genes() ([]string, error) {
	gene := strings.TrimSpace(s.Gene)
	if gene == "" {
		return nil, nil
	}
	return []string{gene}, nil
}

// Query is a validated lookup request
type Query struct {
	Genes     []string
	Selection field.Selection
}

// NewQuery collects the genes of src. It fails with ErrNoGenes when there are none.
func NewQuery(src GeneSource, selection field.Selection) (Query, error) {
	genes, err := src.Genes()
	if err != nil {
		return Query{}, err
	}
	if len(genes) == 0 {
		return Query{}, failure.New(ErrNoGenes,
			failure.Message("Did not receive any genes. Please try again."),
		)
	}
	return Query{
		Genes:     genes,
		Selection: selection,
	}, nil
}
