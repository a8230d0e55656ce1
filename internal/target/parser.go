package target

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseFile reads a target file, validates it against the schema, and
// returns the parsed target. Schema violations are fatal: a target file
// exists to pin a build, so a misspelled key must not be silently
// ignored.
func ParseFile(path string) (*Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading target file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse validates and unmarshals raw target-file bytes. The path is
// used only for error messages.
func Parse(data []byte, path string) (*Target, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating target file %s: %w", path, err)
	}
	if !result.Valid {
		var msgs []string
		for _, issue := range result.Issues {
			msgs = append(msgs, issue.String())
		}
		return nil, fmt.Errorf("invalid target file %s:\n  %s", path, strings.Join(msgs, "\n  "))
	}

	var t Target
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing target file %s: %w", path, err)
	}
	return &t, nil
}
