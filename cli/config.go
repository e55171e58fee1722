package cli

import (
	"fmt"
	"strings"

	"github.com/ka2n/ppa/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ppa configuration",
		Long: fmt.Sprintf(`Show, get, or set configuration values. Config is stored in ~/%s.

Keys: %s
Every key can also be set with a PPA_ environment variable, e.g. PPA_BASE_URL.`,
			config.FileName, strings.Join(config.Keys(), ", ")),
		Example: `  ppa config                              # show all config
  ppa config set fields evidence,panel    # change the default fields
  ppa config get timeout                  # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			if _, err := store.Load(); err != nil {
				return err
			}
			out, err := store.Show()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", store.Path(), out)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			if err := store.Set(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], store.Path())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(opts)
			if err != nil {
				return err
			}
			if _, err := store.Load(); err != nil {
				return err
			}
			val, err := store.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), val)
			return nil
		},
	})

	return cmd
}
