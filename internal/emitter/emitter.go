// Package emitter provides the built-in output generators. Each
// generator implements registry.Emitter and turns the resolved entity
// stream into concrete files.
package emitter

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/galogen/internal/registry"
)

// DefaultGenerator is used when the caller does not pick one.
const DefaultGenerator = "c_noload"

// generators maps each generator name to its constructor.
var generators = map[string]func() registry.Emitter{
	"c_noload":     func() registry.Emitter { return newCGenerator(false) },
	"c_nulldriver": func() registry.Emitter { return newCGenerator(true) },
}

// New returns the named generator. An unknown name is a configuration
// error.
func New(name string) (registry.Emitter, error) {
	ctor, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("invalid generator %q specified (available: %v)", name, Names())
	}
	return ctor(), nil
}

// Names returns the available generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// createFile opens an output file for writing, truncating any previous
// content. Split out so tests can capture output in memory.
var createFile = func(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", name, err)
	}
	return f, nil
}
