package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domprompt "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/prompt"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/format"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport/api"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
	docserver "github.com/KeshavVarad/nextmcp-docs-server/pkg/sdk"
)

// queryEnv is what every query command needs: an in-process client and a printer.
type queryEnv struct {
	client  *docserver.Client
	printer *format.Printer
}

func newQueryEnv(cmd *cobra.Command, root *rootOptions) (*queryEnv, error) {
	f, err := format.Parse(root.format)
	if err != nil {
		return nil, err
	}

	var opts []docserver.Option
	if root.verbose {
		opts = append(opts, docserver.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)))
	}
	client, err := docserver.New(opts...)
	if err != nil {
		return nil, err
	}

	return &queryEnv{client: client, printer: format.New(cmd.OutOrStdout(), f)}, nil
}

// miss prints a not-found payload and returns errReported; other errors pass through.
func (q *queryEnv) miss(err error) error {
	resp, ok := api.FromNotFound(err)
	if !ok {
		return err
	}
	if perr := q.printer.Miss(resp); perr != nil {
		return perr
	}
	return errReported
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search documentation by title, content or tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			return q.printer.Search(q.client.Search(cmd.Context(), args[0]))
		},
	}
}

func newDocCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "doc <id>",
		Aliases: []string{"get"},
		Short:   "Print a full documentation article",
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			client, err := docserver.New()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return client.CompleteDocIDs(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			doc, err := q.client.Doc(cmd.Context(), args[0])
			if err != nil {
				return q.miss(err)
			}
			return q.printer.Document(doc)
		},
	}
}

func newCategoriesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List documentation categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			return q.printer.List(q.client.Categories(cmd.Context()))
		},
	}
}

func newExampleCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "example <name>",
		Short: "Print a runnable code example",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			client, err := docserver.New()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return client.CompleteExampleNames(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			ex, err := q.client.Example(cmd.Context(), args[0])
			if err != nil {
				return q.miss(err)
			}
			return q.printer.Example(args[0], ex)
		},
	}
}

func newPromptCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render a workflow prompt",
	}

	var features string
	build := &cobra.Command{
		Use:   "build-server <server_type>",
		Long:  "Server types: " + joinNames(domprompt.Archetypes()),
		Short: "Step-by-step guide for building a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			text := q.client.BuildServerPrompt(cmd.Context(), args[0], features)
			return q.printer.Prompt(api.Prompt{Name: promptuc.BuildServerName, Text: text})
		},
	}
	build.Flags().StringVar(&features, "features", domprompt.NoFeatures, "comma-separated features: "+joinNames(domprompt.Features()))

	debug := &cobra.Command{
		Use:   "debug <issue_type>",
		Long:  "Issue types: " + joinNames(domprompt.Issues()),
		Short: "Troubleshooting checklist for an issue type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			text := q.client.DebugPrompt(cmd.Context(), args[0])
			return q.printer.Prompt(api.Prompt{Name: promptuc.DebugName, Text: text})
		},
	}

	var style string
	learn := &cobra.Command{
		Use:   "learn <topic>",
		Short: "Learning path for a documentation topic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			text := q.client.LearnPrompt(cmd.Context(), args[0], style)
			return q.printer.Prompt(api.Prompt{Name: promptuc.LearnName, Text: text})
		},
	}
	learn.Flags().StringVar(&style, "style", domprompt.DefaultLearnStyle,
		"learning style: "+strings.Join(domprompt.LearnStyles(), ", "))

	cmd.AddCommand(build, debug, learn)
	return cmd
}

func newStatsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print knowledge base statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newQueryEnv(cmd, root)
			if err != nil {
				return err
			}
			return q.printer.Stats(q.client.Stats(cmd.Context()))
		},
	}
}


func joinNames[T ~string](names []T) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
