package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	domprompt "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/prompt"
	promptuc "github.com/KeshavVarad/nextmcp-docs-server/internal/usecase/prompt"
)

type promptEntry struct {
	def    mcp.Prompt
	handle func(context.Context, mcp.GetPromptRequest) (*mcp.GetPromptResult, error)
}

func (h *Host) promptDefs() []promptEntry {
	return []promptEntry{
		{
			def: mcp.NewPrompt(promptuc.BuildServerName,
				mcp.WithPromptDescription("Build a new MCP server"),
				mcp.WithArgument("server_type", mcp.RequiredArgument(),
					mcp.ArgumentDescription("Type of server to build"+suggest(domprompt.Archetypes()))),
				mcp.WithArgument("features",
					mcp.ArgumentDescription("Features to include, comma-separated or \"none\""+suggest(domprompt.Features()))),
			),
			handle: h.handleBuildServer,
		},
		{
			def: mcp.NewPrompt(promptuc.DebugName,
				mcp.WithPromptDescription("Debug common NextMCP issues"),
				mcp.WithArgument("issue_type", mcp.RequiredArgument(),
					mcp.ArgumentDescription("Type of issue"+suggest(domprompt.Issues()))),
			),
			handle: h.handleDebug,
		},
		{
			def: mcp.NewPrompt(promptuc.LearnName,
				mcp.WithPromptDescription("Learn about NextMCP features"),
				mcp.WithArgument("topic", mcp.RequiredArgument(),
					mcp.ArgumentDescription("Topic to learn"+suggest(domprompt.LearnTopics()))),
				mcp.WithArgument("learn_style",
					mcp.ArgumentDescription("Learning style"+suggest(domprompt.LearnStyles()))),
			),
			handle: h.handleLearn,
		},
	}
}

func (h *Host) handleBuildServer(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	serverType, err := requireArg(req, "server_type")
	if err != nil {
		return nil, err
	}
	features, ok := req.Params.Arguments["features"]
	if !ok {
		features = domprompt.NoFeatures
	}
	return promptResult("Build a new MCP server", h.prompts.BuildServer(ctx, serverType, features)), nil
}

func (h *Host) handleDebug(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	issue, err := requireArg(req, "issue_type")
	if err != nil {
		return nil, err
	}
	return promptResult("Debug common NextMCP issues", h.prompts.Debug(ctx, issue)), nil
}

func (h *Host) handleLearn(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, err := requireArg(req, "topic")
	if err != nil {
		return nil, err
	}
	style := req.Params.Arguments["learn_style"]
	return promptResult("Learn about NextMCP features", h.prompts.Learn(ctx, topic, style)), nil
}

func requireArg(req mcp.GetPromptRequest, name string) (string, error) {
	v, ok := req.Params.Arguments[name]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	return v, nil
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

// suggest renders the advertised values of an argument.
func suggest[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return " (suggestions: " + strings.Join(parts, ", ") + ")"
}
