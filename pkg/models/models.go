// Package models provides a curated catalog of known model identifiers
// per provider. The catalog is informational: unknown model strings are
// passed through to providers untouched.
package models

import "sort"

// Known maps provider names to model identifiers that are known to work.
var Known = map[string][]string{
	"anthropic": {
		"claude-sonnet-4-20250514",
		"claude-opus-4-20250514",
		"claude-3-5-sonnet-20241022",
		"claude-3-5-haiku-20241022",
		"claude-3-opus-20240229",
		"claude-3-sonnet-20240229",
		"claude-3-haiku-20240307",
	},
	"openrouter": {
		"anthropic/claude-3-opus",
		"anthropic/claude-3.5-sonnet",
		"openai/gpt-4-turbo-preview",
		"openai/gpt-4o",
		"meta-llama/llama-3.1-70b-instruct",
	},
	"openai": {
		"gpt-4o",
		"gpt-4o-mini",
		"gpt-4-turbo",
	},
	"gemini": {
		"gemini-2.5-flash",
		"gemini-2.5-pro",
	},
	// The custom provider takes whatever model its endpoint serves.
	"custom": nil,
}

var defaults = map[string]string{
	"anthropic":  "claude-sonnet-4-20250514",
	"openrouter": "anthropic/claude-3-opus",
	"openai":     "gpt-4o",
	"gemini":     "gemini-2.5-flash",
}

// Default returns the default model for a provider, or "" when the
// provider has no default (the custom provider requires an explicit model).
func Default(provider string) string {
	return defaults[provider]
}

// Providers returns the provider names in the catalog, sorted.
func Providers() []string {
	names := make([]string, 0, len(Known))
	for name := range Known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
