// Package prompt defines the enumerated inputs of the prompt composer.
package prompt

import "strings"

// Archetype is the kind of server a build prompt targets.
type Archetype string

// Archetype constants.
const (
	ToolBased     Archetype = "tool-based"
	Documentation Archetype = "documentation"
	APIWrapper    Archetype = "api-wrapper"
	// DataProvider is advertised but has no archetype-specific section.
	DataProvider Archetype = "data-provider"
)

// Archetypes lists the suggested server types in display order.
func Archetypes() []Archetype {
	return []Archetype{ToolBased, Documentation, APIWrapper, DataProvider}
}

// IsValid checks if the archetype is one of the suggested values.
func (a Archetype) IsValid() bool {
	return a == ToolBased || a == Documentation || a == APIWrapper || a == DataProvider
}

// Feature is an optional capability requested in a build prompt.
type Feature string

// Feature constants. Only Auth and Metrics produce a section.
const (
	Auth         Feature = "auth"
	RateLimiting Feature = "rate-limiting"
	Metrics      Feature = "metrics"
	WebSockets   Feature = "websockets"
)

// Features lists the suggested feature values.
func Features() []Feature {
	return []Feature{Auth, RateLimiting, Metrics, WebSockets}
}

// NoFeatures is the sentinel meaning an empty feature list.
const NoFeatures = "none"

// FeatureSet is a parsed feature list.
type FeatureSet []string

// ParseFeatures splits a comma-delimited list. Tokens are kept verbatim, so
// "auth, metrics" yields "auth" and " metrics".
func ParseFeatures(s string) FeatureSet {
	if s == NoFeatures {
		return nil
	}
	return strings.Split(s, ",")
}

// Has reports whether f is an exact member of the set.
func (fs FeatureSet) Has(f Feature) bool {
	for _, v := range fs {
		if v == string(f) {
			return true
		}
	}
	return false
}

// Issue is a debugging category.
type Issue string

// Issue constants.
const (
	ServerNotStarting Issue = "server-not-starting"
	ToolNotWorking    Issue = "tool-not-working"
	AuthFailing       Issue = "auth-failing"
	DeploymentError   Issue = "deployment-error"
)

// Issues lists the suggested issue types.
func Issues() []Issue {
	return []Issue{ServerNotStarting, ToolNotWorking, AuthFailing, DeploymentError}
}

// DefaultLearnStyle is used when no style is given.
const DefaultLearnStyle = "overview"

// LearnStyles lists the suggested learning styles. The style is cosmetic.
func LearnStyles() []string {
	return []string{"overview", "hands-on", "deep-dive"}
}

// LearnTopics lists the suggested learning topics.
func LearnTopics() []string {
	return []string{"tools", "prompts", "resources", "authentication", "deployment", "middleware"}
}

// NextTopics returns the fixed follow-up list minus topic, in fixed order.
func NextTopics(topic string) []string {
	out := make([]string, 0, 4)
	for _, t := range []string{"tools", "prompts", "resources", "deployment"} {
		if t != topic {
			out = append(out, t)
		}
	}
	return out
}
