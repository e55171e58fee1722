package mcp

import (
	"github.com/ka2n/ppa/api"
	"github.com/ka2n/ppa/api/panelapp"
	"github.com/ka2n/ppa/config"
	"github.com/ka2n/ppa/log"
	"github.com/morikuni/failure/v2"
	"github.com/spf13/cobra"
)

// Command returns the MCP server command
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long:  "Serve the fetch_gene_panels and list_gene_fields tools over the Model Context Protocol on stdin/stdout",
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	store, err := config.Open(path)
	if err != nil {
		return err
	}
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	log.SetDebug(cfg.Debug)

	client, err := panelapp.NewClient(cfg.BaseURL,
		panelapp.WithTimeout(cfg.Timeout),
		panelapp.WithUserAgent(api.UserAgent()),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	server := NewServer(client)
	return server.Run()
}
