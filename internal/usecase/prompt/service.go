package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	domprompt "github.com/KeshavVarad/nextmcp-docs-server/internal/domain/prompt"
	logpkg "github.com/KeshavVarad/nextmcp-docs-server/internal/logger"
)

// Prompt names as exposed to hosts.
const (
	BuildServerName = "build_server_prompt"
	DebugName       = "debug_prompt"
	LearnName       = "learn_prompt"
)

const learnTemplate = `Learning path for: %[1]s (%[2]s style)

Step 1: Get documentation
Use: get_full_doc("%[1]s")

Step 2: Understand the concept
- Read the full documentation
- Review code examples
- Understand the use cases

Step 3: Hands-on practice
Use: get_example_code("simple-tool") or similar examples
- Copy the example code
- Modify it for your use case
- Run and test locally

Step 4: Build something
- Combine what you learned with other features
- Refer to documentation as needed
- Use search_documentation() to find related topics

Step 5: Deploy and iterate
- Use get_full_doc("deployment") for deployment guide
- Test in production environment
- Monitor and improve

Recommended next topics after %[1]s:
%[3]s
`

// Service composes workflow prompts. It holds no per-call state.
type Service struct {
	rendered *prometheus.CounterVec
}

// New creates a prompt service.
func New() *Service {
	return &Service{}
}

// WithMetrics attaches a counter vec with labels "prompt" and "variant".
func (s *Service) WithMetrics(rendered *prometheus.CounterVec) *Service {
	s.rendered = rendered
	return s
}

// BuildServer assembles the build-server prompt. Section order is fixed and
// independent of the order of features. Unknown server types get only the
// generic sections.
func (s *Service) BuildServer(ctx context.Context, serverType, features string) string {
	fs := domprompt.ParseFeatures(features)
	archetype := domprompt.Archetype(serverType)

	var b strings.Builder
	b.WriteString("Build a NextMCP server of type: ")
	b.WriteString(serverType)
	b.WriteString(setupSection)

	if section, ok := archetypeSections[archetype]; ok {
		b.WriteString(section)
	}
	if fs.Has(domprompt.Auth) {
		b.WriteString(authSection)
	}
	if fs.Has(domprompt.Metrics) {
		b.WriteString(metricsSection)
	}
	b.WriteString(closingSection)

	variant := string(archetype)
	if !archetype.IsValid() {
		variant = "unknown"
	}
	s.record(ctx, BuildServerName, variant)
	return b.String()
}

// Debug returns the remediation steps for issueType, or a fallback naming it.
func (s *Service) Debug(ctx context.Context, issueType string) string {
	steps, ok := debugSteps[domprompt.Issue(issueType)]
	if !ok {
		s.record(ctx, DebugName, "unknown")
		return fmt.Sprintf("Debug steps for '%s' not available. Search documentation for help.", issueType)
	}
	s.record(ctx, DebugName, issueType)
	return steps
}

// Learn returns the five-step learning path for topic. The style is only
// echoed; an empty style means domprompt.DefaultLearnStyle.
func (s *Service) Learn(ctx context.Context, topic, style string) string {
	if style == "" {
		style = domprompt.DefaultLearnStyle
	}
	s.record(ctx, LearnName, "default")
	return fmt.Sprintf(learnTemplate, topic, style, strings.Join(domprompt.NextTopics(topic), ", "))
}

func (s *Service) record(ctx context.Context, name, variant string) {
	if s.rendered != nil {
		s.rendered.WithLabelValues(name, variant).Inc()
	}
	logpkg.FromContext(ctx).Debug("prompt rendered",
		zap.String("prompt", name),
		zap.String("variant", variant),
	)
}
