// Package target handles parsing and validation of generation-target
// files. A target file is a YAML document that pins one generation
// request (API, version, profile, extensions, generator, output name)
// so a build can be reproduced without retyping flags. Files are
// validated against an embedded JSON Schema before use.
package target
