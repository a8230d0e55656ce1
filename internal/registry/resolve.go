package registry

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/google/galogen/internal/xmltree"
)

// Config describes one resolution request. It is immutable for the
// duration of a run.
type Config struct {
	// API name, e.g. "gl" or "gles2".
	API string

	// Version is the target API version. Must be valid.
	Version Version

	// Profile gates require/remove entries that carry a profile attribute.
	Profile string

	// Extensions are the extension names requested by the caller. Every
	// one of them must be consumed by a supported, matching extension.
	Extensions []string
}

// Required accumulates the names of entities demanded by a resolution
// run, one set per kind. Membership is all that matters; emission order
// is decided later by the driver.
type Required struct {
	Types    map[string]bool
	Groups   map[string]bool
	Enums    map[string]bool
	Commands map[string]bool
}

// NewRequired returns an empty accumulator.
func NewRequired() *Required {
	return &Required{
		Types:    make(map[string]bool),
		Groups:   make(map[string]bool),
		Enums:    make(map[string]bool),
		Commands: make(map[string]bool),
	}
}

// Result carries the outcome of a resolution run.
type Result struct {
	Required *Required

	// Warnings collects non-fatal conditions, currently only extensions
	// that were requested but are not supported by the target API.
	Warnings []string
}

// Resolve applies the registry's feature deltas in version order up to
// the target version, then applies the requested extensions, and
// returns the accumulated required-entity sets.
func Resolve(root *xmltree.Element, store *Store, cfg Config) (*Result, error) {
	res := &Result{Required: NewRequired()}

	features, err := matchingFeatures(root, cfg.API)
	if err != nil {
		return nil, err
	}

	// Feature blocks are incremental diffs against the previous version,
	// and the registry does not guarantee their document order. Sort by
	// version, apply in order, and stop at the first block newer than
	// the target.
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].version.Compare(features[j].version) < 0
	})
	for _, f := range features {
		if f.version.Compare(cfg.Version) > 0 {
			break
		}
		if err := applyDeltas(f.elem, store, cfg, res.Required); err != nil {
			return nil, err
		}
	}

	if err := applyExtensions(root, store, cfg, res); err != nil {
		return nil, err
	}
	return res, nil
}

// feature pairs a <feature> element with its parsed version.
type feature struct {
	elem    *xmltree.Element
	version Version
}

// matchingFeatures collects the feature blocks declared for the target API.
func matchingFeatures(root *xmltree.Element, api string) ([]feature, error) {
	var features []feature
	for _, el := range root.ChildrenNamed("feature") {
		featureAPI := el.Attr("api")
		if featureAPI == "" {
			return nil, fmt.Errorf("feature missing \"api\" attribute")
		}
		if featureAPI != api {
			continue
		}
		v, err := ParseVersion(el.Attr("number"))
		if err != nil {
			return nil, fmt.Errorf("feature for API %q: %w", api, err)
		}
		features = append(features, feature{elem: el, version: v})
	}
	return features, nil
}

// applyDeltas walks the require/remove lists of one feature or extension
// block and updates the accumulator. Entries gated on a different
// profile are skipped. Requiring a command also pulls in the types its
// signature references and the groups its parameters belong to; the
// registry almost never names types or groups directly.
func applyDeltas(block *xmltree.Element, store *Store, cfg Config, req *Required) error {
	for _, op := range block.ChildrenNamed("") {
		var require bool
		switch op.Tag {
		case "require":
			require = true
		case "remove":
			require = false
		default:
			return fmt.Errorf("unexpected element <%s> in %s %q", op.Tag, block.Tag, block.Attr("name"))
		}
		if op.HasAttr("profile") && op.Attr("profile") != cfg.Profile {
			continue
		}

		for _, ref := range op.ChildrenNamed("") {
			name := ref.Attr("name")
			if name == "" {
				return fmt.Errorf("%s entry missing \"name\" attribute", ref.Tag)
			}
			set, err := req.byKind(ref.Tag)
			if err != nil {
				return err
			}
			if !require {
				// Removal is set erasure only. It never retracts types or
				// groups inferred from an earlier command requirement.
				delete(set, name)
				continue
			}
			set[name] = true
			if ref.Tag == "command" {
				if err := requireCommandDeps(store, cfg.API, name, req); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// requireCommandDeps adds the types referenced by a command's signature
// and the groups its parameters belong to.
func requireCommandDeps(store *Store, api, name string, req *Required) error {
	cmd, err := store.ResolveCommand(name, api)
	if err != nil {
		return fmt.Errorf("requiring command: %w", err)
	}
	if cmd.ReferencedType != "" {
		req.Types[cmd.ReferencedType] = true
	}
	for _, p := range cmd.Parameters {
		if p.ReferencedType != "" {
			req.Types[p.ReferencedType] = true
		}
		if p.Group != "" {
			req.Groups[p.Group] = true
		}
	}
	return nil
}

// applyExtensions applies the deltas of every requested extension whose
// "supported" pattern matches the target API. A requested extension that
// exists but does not support the API is a warning; a requested name
// that no extension consumed is a configuration error.
func applyExtensions(root *xmltree.Element, store *Store, cfg Config, res *Result) error {
	pending := make(map[string]bool, len(cfg.Extensions))
	for _, name := range cfg.Extensions {
		pending[name] = true
	}

	extensions := root.Child("extensions")
	if extensions != nil {
		for _, ext := range extensions.ChildrenNamed("extension") {
			name := ext.Attr("name")
			if name == "" {
				return fmt.Errorf("extension missing \"name\" attribute")
			}
			supported := ext.Attr("supported")
			if supported == "" {
				return fmt.Errorf("extension %q missing \"supported\" attribute", name)
			}
			if !pending[name] {
				continue
			}
			re, err := regexp.Compile("^" + supported + "$")
			if err != nil {
				return fmt.Errorf("compiling \"supported\" pattern of extension %q: %w", name, err)
			}
			if !re.MatchString(cfg.API) {
				// Recognized but unsupported: report and keep going, with
				// none of the extension's deltas applied.
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("extension %s requested, but not supported by API %s", name, cfg.API))
				delete(pending, name)
				continue
			}
			if err := applyDeltas(ext, store, cfg, res.Required); err != nil {
				return err
			}
			delete(pending, name)
		}
	}

	if len(pending) > 0 {
		leftover := make([]string, 0, len(pending))
		for name := range pending {
			leftover = append(leftover, name)
		}
		sort.Strings(leftover)
		return fmt.Errorf("invalid extensions specified: %v", leftover)
	}
	return nil
}

// byKind maps a registry reference tag to its accumulator set.
func (r *Required) byKind(kind string) (map[string]bool, error) {
	switch kind {
	case "type":
		return r.Types, nil
	case "enum":
		return r.Enums, nil
	case "command":
		return r.Commands, nil
	case "group":
		return r.Groups, nil
	default:
		return nil, fmt.Errorf("unknown entity kind %q in require/remove entry", kind)
	}
}
