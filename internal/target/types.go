package target

// Target describes one generation request loaded from a YAML file.
// Every field is optional; command-line flags override whatever the
// file sets, and defaults fill the rest.
type Target struct {
	API        string   `yaml:"api,omitempty" json:"api,omitempty"`
	Version    string   `yaml:"version,omitempty" json:"version,omitempty"`
	Profile    string   `yaml:"profile,omitempty" json:"profile,omitempty"`
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Generator  string   `yaml:"generator,omitempty" json:"generator,omitempty"`
	Filename   string   `yaml:"filename,omitempty" json:"filename,omitempty"`
}
