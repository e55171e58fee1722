// Package cli implements the command-line interface for ppa.
//
// The cli package provides:
// - Flag parsing and field validation
// - Gene symbol collection from standard input or -g
// - Report output to stdout or an interactive pager
// - Opening PanelApp gene pages in the browser
// - config, fields and version subcommands
package cli
