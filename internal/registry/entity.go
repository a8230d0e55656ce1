package registry

import "fmt"

// Entity holds every variant definition of one named entity. The same
// name may be defined differently per API (e.g. an enumerant with
// different values in GL vs GL ES); variants keep their insertion order.
type Entity[T apiQualified] struct {
	variants  []T
	processed bool
}

// Add appends a variant definition.
func (e *Entity[T]) Add(v T) {
	e.variants = append(e.variants, v)
}

// Get resolves the variant that applies to the given API. A variant with
// an empty API qualifier is a candidate only while nothing has matched
// yet; a variant whose qualifier equals the requested API always wins.
// The net effect is that the most specific, last-declared match is
// returned, with a qualifier-less variant as the fallback.
func (e *Entity[T]) Get(api string) (T, bool) {
	var result T
	found := false
	for _, v := range e.variants {
		q := v.apiName()
		if (q == "" && !found) || q == api {
			result = v
			found = true
		}
	}
	return result, found
}

// MarkProcessed flags the entity as already emitted. Used only by the
// type-closure walk to keep emission idempotent.
func (e *Entity[T]) MarkProcessed() { e.processed = true }

// Processed reports whether the entity has been emitted.
func (e *Entity[T]) Processed() bool { return e.processed }

// Store maps entity names to their variant sets, one namespace per kind.
type Store struct {
	Types    map[string]*Entity[*TypeInfo]
	Enums    map[string]*Entity[*EnumerantInfo]
	Groups   map[string]*Entity[*GroupInfo]
	Commands map[string]*Entity[*CommandInfo]
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		Types:    make(map[string]*Entity[*TypeInfo]),
		Enums:    make(map[string]*Entity[*EnumerantInfo]),
		Groups:   make(map[string]*Entity[*GroupInfo]),
		Commands: make(map[string]*Entity[*CommandInfo]),
	}
}

// addVariant appends a variant to the named entity in m, creating the
// entity on first sight.
func addVariant[T apiQualified](m map[string]*Entity[T], name string, v T) {
	ent, ok := m[name]
	if !ok {
		ent = &Entity[T]{}
		m[name] = ent
	}
	ent.Add(v)
}

// ResolveType returns the type definition for the given API.
func (s *Store) ResolveType(name, api string) (*TypeInfo, error) {
	return resolveVariant(s.Types, "type", name, api)
}

// ResolveEnum returns the enumerant definition for the given API.
func (s *Store) ResolveEnum(name, api string) (*EnumerantInfo, error) {
	return resolveVariant(s.Enums, "enumerant", name, api)
}

// ResolveGroup returns the group definition for the given API.
func (s *Store) ResolveGroup(name, api string) (*GroupInfo, error) {
	return resolveVariant(s.Groups, "group", name, api)
}

// ResolveCommand returns the command definition for the given API.
func (s *Store) ResolveCommand(name, api string) (*CommandInfo, error) {
	return resolveVariant(s.Commands, "command", name, api)
}

func resolveVariant[T apiQualified](m map[string]*Entity[T], kind, name, api string) (T, error) {
	var zero T
	ent, ok := m[name]
	if !ok {
		return zero, fmt.Errorf("reference to undefined %s %q", kind, name)
	}
	v, ok := ent.Get(api)
	if !ok {
		return zero, fmt.Errorf("no definition of %s %q for API %q", kind, name, api)
	}
	return v, nil
}
