package api

import (
	"context"

	"github.com/ka2n/ppa/api/panelapp"
	"github.com/ka2n/ppa/log"
)

// Fetcher retrieves the genes endpoint for a list of gene symbols
type Fetcher interface {
	FetchGenes(ctx context.Context, genes []string) (*panelapp.Response, error)
}

var _ Fetcher = (*panelapp.Client)(nil)

// Lookup performs the single request for q and parses the returned records
func Lookup(ctx context.Context, f Fetcher, q Query) (Result, error) {
	logger := log.Logger.With("genes", q.Genes, "fields", q.Selection.Names())

	logger.Debug("Fetching genes")
	resp, err := f.FetchGenes(ctx, q.Genes)
	if err != nil {
		return Result{}, err
	}

	result, err := NewResult(resp)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Fetched genes", "records", len(result.Records), "content_type", resp.Header("Content-Type"))

	return result, nil
}
