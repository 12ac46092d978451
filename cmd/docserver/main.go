package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/config"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/format"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/version"
)

// errReported means the command already printed its failure.
var errReported = errors.New("reported")

type rootOptions struct {
	env     string
	format  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	serveOpts := &serveOptions{}

	root := &cobra.Command{
		Use:   "docserver",
		Short: "NextMCP documentation knowledge base",
		Long: "docserver serves the NextMCP documentation corpus to MCP clients " +
			"(stdio or streamable HTTP) and answers the same queries from the command line.",
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		// MCP clients launch the bare binary, so no subcommand means serve.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts, serveOpts)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.env, "env", config.GetEnv(), "configuration environment (local, dev, prod)")
	pf.StringVarP(&opts.format, "format", "f", string(format.FormatText), "output format: text, json, markdown")
	pf.BoolVar(&opts.verbose, "verbose", false, "log query operations to stderr")

	root.AddCommand(
		newServeCmd(opts, serveOpts),
		newSearchCmd(opts),
		newDocCmd(opts),
		newCategoriesCmd(opts),
		newExampleCmd(opts),
		newPromptCmd(opts),
		newStatsCmd(opts),
	)
	return root
}
