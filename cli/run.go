package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ka2n/ppa/api"
	"github.com/ka2n/ppa/api/field"
	"github.com/ka2n/ppa/api/panelapp"
	"github.com/ka2n/ppa/config"
	"github.com/ka2n/ppa/log"
	"github.com/ka2n/ppa/mcp"
	"github.com/mattn/go-isatty"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var (
	// Version information, set at build time
	Commit = "none"
	Date   = "unknown"

	// openURL is replaced in tests
	openURL = browser.OpenURL

	// runPager is replaced in tests
	runPager = RunPager
)

type rootOptions struct {
	configPath string
	fields     string
	gene       geneFlag
	browser    bool
	pager      bool
}

// Run executes the main CLI functionality
func Run() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ppa [-f fields] [-g gene]",
		Short:         "Look up genes in PanelApp",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `ppa queries the Genomics England PanelApp API for one or more genes and
prints selected fields of every gene record found.

Genes are read from standard input, one per line (only the first word of each
line is used), unless a single gene is given with --gene.`,
		Example: `  echo BRCA1 | ppa
  ppa -g brca2 -f evidence,tags,panel
  cut -f1 genes.tsv | ppa --pager`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/"+config.FileName+")")
	rootCmd.Flags().StringVarP(&opts.fields, "fields", "f", "", "Comma-separated fields to report (see 'ppa fields')")
	rootCmd.Flags().VarP(&opts.gene, "gene", "g", "Look up a single gene instead of reading standard input")
	rootCmd.Flags().BoolVarP(&opts.browser, "browser", "b", false, "Open the PanelApp gene pages in the browser")
	rootCmd.Flags().BoolVar(&opts.pager, "pager", false, "Show the report in a pager when writing to a terminal")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newFieldsCmd())
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(mcp.Command())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print detailed version information about ppa",
		Run: func(cmd *cobra.Command, args []string) {
			commit := Commit
			if api.VersionCommit != "" {
				commit = api.VersionCommit
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ppa version %s\n", api.Version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", Date)
		},
	}
}

// openStore returns the config store for the --config path or ~/.ppa.yaml
func openStore(opts *rootOptions) (*config.Store, error) {
	return config.Open(opts.configPath)
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	out := cmd.OutOrStdout()

	store, err := openStore(opts)
	if err != nil {
		return failure.Wrap(err)
	}
	if err := store.BindFlag(config.KeyFields, cmd.Flags().Lookup("fields")); err != nil {
		return failure.Wrap(err)
	}
	cfg, err := store.Load()
	if err != nil {
		return failure.Wrap(err)
	}
	log.SetDebug(cfg.Debug)

	selection, err := field.Parse(cfg.Fields)
	if failure.Is(err, field.ErrInvalidField) {
		fmt.Fprintln(out, failure.MessageOf(err))
		return nil
	}
	if err != nil {
		return failure.Wrap(err)
	}

	query, err := api.NewQuery(geneSource(cmd, opts), selection)
	if failure.Is(err, api.ErrNoGenes) {
		fmt.Fprintln(out, failure.MessageOf(err))
		return nil
	}
	if err != nil {
		return failure.Wrap(err)
	}

	client, err := panelapp.NewClient(cfg.BaseURL,
		panelapp.WithTimeout(cfg.Timeout),
		panelapp.WithUserAgent(api.UserAgent()),
	)
	if err != nil {
		return failure.Wrap(err)
	}

	if opts.browser {
		return openInBrowser(out, client, query.Genes)
	}

	result, err := api.Lookup(cmd.Context(), client, query)
	if failure.Is(err, api.ErrNoResults) {
		fmt.Fprintln(out, failure.MessageOf(err))
		return nil
	}
	if err != nil {
		return failure.Wrap(err)
	}

	if opts.pager && isTerminal(out) {
		if err := runPager(api.Report(result, selection)); err != nil {
			return failure.New(PagerFailed,
				failure.Message("Failed to run pager"),
				failure.Context{"error": err.Error()},
			)
		}
		return nil
	}

	return api.WriteReport(out, result, selection)
}

// geneSource picks -g when given, standard input otherwise
func geneSource(cmd *cobra.Command, opts *rootOptions) api.GeneSource {
	if opts.gene.IsSet {
		return api.SingleSource{Gene: opts.gene.Value}
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		log.Info("Reading gene symbols from standard input, one per line (Ctrl-D to finish)")
	}
	return api.StreamSource{Reader: in}
}

// openInBrowser opens the PanelApp page of every gene
func openInBrowser(out io.Writer, client *panelapp.Client, genes []string) error {
	for _, gene := range genes {
		u := client.EntityURL(gene)
		fmt.Fprintf(out, "Opening PanelApp page in browser: %s\n", u)
		if err := openURL(u.String()); err != nil {
			return failure.New(BrowserFailed,
				failure.Message("Failed to open browser"),
				failure.Context{
					"url":   u.String(),
					"error": err.Error(),
				},
			)
		}
	}
	return nil
}

// isTerminal reports whether v is an *os.File attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
