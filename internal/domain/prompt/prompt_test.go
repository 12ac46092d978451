package prompt

import (
	"reflect"
	"testing"
)

func TestParseFeatures(t *testing.T) {
	tests := []struct {
		in   string
		want FeatureSet
	}{
		{"none", nil},
		{"auth", FeatureSet{"auth"}},
		{"auth,metrics", FeatureSet{"auth", "metrics"}},
		{"auth, metrics", FeatureSet{"auth", " metrics"}},
		{"", FeatureSet{""}},
	}
	for _, tc := range tests {
		got := ParseFeatures(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ParseFeatures(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestFeatureSet_Has(t *testing.T) {
	fs := ParseFeatures("metrics,auth")
	if !fs.Has(Auth) || !fs.Has(Metrics) {
		t.Error("expected auth and metrics")
	}
	if fs.Has(WebSockets) {
		t.Error("unexpected websockets")
	}
	if ParseFeatures("auth, metrics").Has(Metrics) {
		t.Error("padded token must not match")
	}
	if ParseFeatures(NoFeatures).Has(Auth) {
		t.Error("none must be empty")
	}
}

func TestArchetype_IsValid(t *testing.T) {
	for _, a := range Archetypes() {
		if !a.IsValid() {
			t.Errorf("%q should be valid", a)
		}
	}
	if Archetype("cli").IsValid() {
		t.Error("cli should be invalid")
	}
}

func TestNextTopics(t *testing.T) {
	tests := []struct {
		topic string
		want  []string
	}{
		{"tools", []string{"prompts", "resources", "deployment"}},
		{"deployment", []string{"tools", "prompts", "resources"}},
		{"middleware", []string{"tools", "prompts", "resources", "deployment"}},
		{"Tools", []string{"tools", "prompts", "resources", "deployment"}},
	}
	for _, tc := range tests {
		if got := NextTopics(tc.topic); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("NextTopics(%q) = %v, want %v", tc.topic, got, tc.want)
		}
	}
}
