package registry

import (
	"fmt"
	"sort"
)

// Emitter turns fully resolved records into a concrete output artifact.
// The driver calls it in a fixed order: Start, every type in dependency
// order, every group, every enumerant, every command, Finish.
type Emitter interface {
	Start(outputName, apiName, profile string, verMajor, verMinor int) error
	EmitType(t *TypeInfo) error
	EmitEnumGroup(g *GroupInfo) error
	EmitEnumerant(e *EnumerantInfo) error
	EmitCommand(c *CommandInfo) error
	Finish() error
}

// DefaultBaselineTypes are force-emitted before any required type.
// GLDEBUGPROC transitively depends on them without declaring the
// dependency anywhere in the registry, so they must always come first.
// See https://github.com/KhronosGroup/OpenGL-Registry/issues/160
var DefaultBaselineTypes = []string{"GLenum", "GLuint", "GLsizei", "GLchar"}

// Driver orders the required entities and feeds them to an Emitter. One
// driver performs exactly one emission run; the processed flags it sets
// on type entities are never reset.
type Driver struct {
	store *Store

	// Baseline lists type names emitted before any required type.
	Baseline []string
}

// NewDriver returns a driver over the given store with the default
// baseline types.
func NewDriver(store *Store) *Driver {
	return &Driver{store: store, Baseline: DefaultBaselineTypes}
}

// Emit drives one full emission run for the given request.
func (d *Driver) Emit(cfg Config, req *Required, outputName string, em Emitter) error {
	if err := em.Start(outputName, cfg.API, cfg.Profile, cfg.Version.Major(), cfg.Version.Minor()); err != nil {
		return fmt.Errorf("starting output: %w", err)
	}

	for _, name := range d.Baseline {
		if err := d.emitType(name, cfg.API, em); err != nil {
			return err
		}
	}
	for _, name := range sortedNames(req.Types) {
		if err := d.emitType(name, cfg.API, em); err != nil {
			return err
		}
	}

	for _, name := range sortedNames(req.Groups) {
		ent, ok := d.store.Groups[name]
		if !ok {
			// The registry permits referring to groups that are never
			// defined; such references are simply dropped.
			continue
		}
		group, ok := ent.Get(cfg.API)
		if !ok {
			return fmt.Errorf("no definition of group %q for API %q", name, cfg.API)
		}
		if err := em.EmitEnumGroup(group); err != nil {
			return fmt.Errorf("emitting group %q: %w", name, err)
		}
	}

	for _, name := range sortedNames(req.Enums) {
		enum, err := d.store.ResolveEnum(name, cfg.API)
		if err != nil {
			return err
		}
		if err := em.EmitEnumerant(enum); err != nil {
			return fmt.Errorf("emitting enumerant %q: %w", name, err)
		}
	}

	for _, name := range sortedNames(req.Commands) {
		cmd, err := d.store.ResolveCommand(name, cfg.API)
		if err != nil {
			return err
		}
		if err := em.EmitCommand(cmd); err != nil {
			return fmt.Errorf("emitting command %q: %w", name, err)
		}
	}

	if err := em.Finish(); err != nil {
		return fmt.Errorf("finishing output: %w", err)
	}
	return nil
}

// emitType emits the named type after everything it requires, then
// marks it processed. Re-emission requests for a processed type are
// no-ops, which keeps the recursive walk duplicate-free.
func (d *Driver) emitType(name, api string, em Emitter) error {
	ent, ok := d.store.Types[name]
	if !ok {
		return fmt.Errorf("reference to undefined type %q", name)
	}
	info, ok := ent.Get(api)
	if !ok {
		return fmt.Errorf("no definition of type %q for API %q", name, api)
	}
	if ent.Processed() {
		return nil
	}
	if info.Requires != "" {
		if err := d.emitType(info.Requires, api, em); err != nil {
			return err
		}
	}
	if err := em.EmitType(info); err != nil {
		return fmt.Errorf("emitting type %q: %w", name, err)
	}
	ent.MarkProcessed()
	return nil
}

// sortedNames returns the set's members in sorted order so that one
// request always produces one emission order.
func sortedNames(set map[string]bool) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
