package cli

import (
	"fmt"
	"strings"

	"github.com/google/galogen/internal/config"
	"github.com/google/galogen/internal/emitter"
	"github.com/google/galogen/internal/registry"
	"github.com/google/galogen/internal/target"
)

// validAPIs are the API names the registry schema family covers.
var validAPIs = map[string]bool{
	"gl":    true,
	"gles1": true,
	"gles2": true,
	"glsc2": true,
}

// defaultVersions is the version generated when --ver is omitted.
var defaultVersions = map[string]string{
	"gl":    "4.0",
	"gles1": "1.0",
	"gles2": "2.0",
	"glsc2": "2.0",
}

var validProfiles = map[string]bool{
	"core":          true,
	"compatibility": true,
}

// flagValues carries the raw command-line flag strings; empty means the
// flag was not given.
type flagValues struct {
	api       string
	version   string
	profile   string
	exts      string
	filename  string
	generator string
}

// options is a fully resolved generation request.
type options struct {
	cfg       registry.Config
	generator string
	filename  string
}

// buildOptions merges flags, the target file, user config, and built-in
// defaults into one request. Precedence: flag, then target file, then
// config, then default.
func buildOptions(f flagValues, tgt *target.Target, cfgGet func(string) string) (*options, error) {
	pick := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}

	api := pick(f.api, tgt.API, cfgGet(config.KeyAPI), "gl")
	if !validAPIs[api] {
		return nil, fmt.Errorf("invalid API name %q", api)
	}

	profile := pick(f.profile, tgt.Profile, cfgGet(config.KeyProfile), "compatibility")
	if !validProfiles[profile] {
		return nil, fmt.Errorf("profile must be either \"core\" or \"compatibility\", got %q", profile)
	}

	verStr := pick(f.version, tgt.Version, defaultVersions[api])
	ver, err := registry.ParseVersion(verStr)
	if err != nil {
		return nil, err
	}

	// --exts names come without the vendor prefix; target-file entries
	// are full extension names.
	var extensions []string
	if f.exts != "" {
		for _, name := range strings.Split(f.exts, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				extensions = append(extensions, "GL_"+name)
			}
		}
	}
	extensions = append(extensions, tgt.Extensions...)

	return &options{
		cfg: registry.Config{
			API:        api,
			Version:    ver,
			Profile:    profile,
			Extensions: extensions,
		},
		generator: pick(f.generator, tgt.Generator, cfgGet(config.KeyGenerator), emitter.DefaultGenerator),
		filename:  pick(f.filename, tgt.Filename, "gl"),
	}, nil
}
