// Package wordlist defines the wordlist types: their validation rules,
// prompt templates, and output conventions.
package wordlist

import (
	"fmt"
	"sort"
	"strings"
)

// Type describes one kind of wordlist the tool can generate.
type Type struct {
	Name            string
	Description     string
	DefaultFilename string

	// SeedHints explains what seed words work well for this type.
	SeedHints string
	// UsageNotes explains what to do with the generated list.
	UsageNotes string

	// Normalize is applied to each candidate before validation.
	// Optional; types with case-strict rules lowercase here.
	Normalize func(word string) string
	// Validate reports whether a candidate belongs in the output.
	// Pure and deterministic.
	Validate func(word string) bool
	// Prompt builds the LLM prompt for the given seeds and target length.
	Prompt func(seeds []string, length int) string
}

// Registry maps type names to registered Types.
type Registry struct {
	types map[string]Type
}

// NewRegistry returns an empty type registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]Type)}
}

// Register adds a type. Incomplete types are rejected: every type must
// carry a name, a default filename, a validator, and a prompt template.
func (r *Registry) Register(t Type) error {
	switch {
	case t.Name == "":
		return fmt.Errorf("wordlist type has no name")
	case t.DefaultFilename == "":
		return fmt.Errorf("wordlist type %q has no default filename", t.Name)
	case t.Validate == nil:
		return fmt.Errorf("wordlist type %q has no validator", t.Name)
	case t.Prompt == nil:
		return fmt.Errorf("wordlist type %q has no prompt template", t.Name)
	}
	if _, exists := r.types[t.Name]; exists {
		return fmt.Errorf("wordlist type %q already registered", t.Name)
	}
	r.types[t.Name] = t
	return nil
}

// Resolve looks up a type by name. Unknown names are an error that lists
// the registered types; there is no fallback.
func (r *Registry) Resolve(name string) (Type, error) {
	t, ok := r.types[name]
	if !ok {
		return Type{}, fmt.Errorf("unknown wordlist type %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return t, nil
}

// Names returns the registered type names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns the registered types in name order.
func (r *Registry) All() []Type {
	var all []Type
	for _, name := range r.Names() {
		all = append(all, r.types[name])
	}
	return all
}

// Builtin returns a registry with the four built-in types.
func Builtin() *Registry {
	r := NewRegistry()
	for _, t := range []Type{passwordType, subdomainType, directoryType, cloudResourceType} {
		if err := r.Register(t); err != nil {
			// Built-in registration only fails on a programming error.
			panic(err)
		}
	}
	return r
}

func bulletList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
