package registry

// TypeInfo describes an API type, such as GLuint or GLfloat.
type TypeInfo struct {
	// Name of this type.
	Name string

	// CDecl is legal C code declaring the type, reconstructed from the
	// registry element's text and children in document order.
	CDecl string

	// Requires names another type that must be declared before this one.
	// Empty if the type stands alone.
	Requires string

	// API name this definition applies to. Empty means any API, unless
	// an API-specific variant exists for the requested API.
	API string
}

// EnumerantInfo describes an enumerant, such as GL_TEXTURE_2D.
type EnumerantInfo struct {
	// Name of this enumerant.
	Name string

	// Alias is an alternative name sharing this enumerant's value.
	Alias string

	// Value is the literal value string from the registry.
	Value string

	// Suffix is a numeric-literal suffix to append to the value (from
	// the registry's "type" attribute, e.g. "ull").
	Suffix string

	// API name this definition applies to.
	API string
}

// GroupInfo describes a named group of enumerants, such as "TextureTarget".
// Group members are resolved eagerly during loading, so they are records,
// not names.
type GroupInfo struct {
	// Name of the group.
	Name string

	// Enums are the resolved members, in registry order.
	Enums []*EnumerantInfo

	// API is always empty: groups are not API-variant in the registry.
	API string
}

// ParamInfo describes one parameter of a command.
type ParamInfo struct {
	// Name of the parameter.
	Name string

	// CType is the full C type of the parameter (e.g. "const GLfloat*").
	CType string

	// ReferencedType is the API type the parameter's type references
	// (e.g. "GLfloat" for "const GLfloat*"). Empty if the type uses no
	// API-specific types (e.g. "const void*").
	ReferencedType string

	// Group names the enumerant group this parameter's values belong to.
	Group string

	// Len is the registry's length annotation: either an element count or
	// a loosely specified expression over other parameters and GL state.
	// It is carried through verbatim, never interpreted.
	Len string
}

// CommandInfo describes an API command, such as glBindTexture.
type CommandInfo struct {
	// Name of this command.
	Name string

	// Prototype is the C prototype text up to and including the command
	// name, without the parameter list.
	Prototype string

	// ReturnCType is the C type returned by the command, whitespace-trimmed.
	ReturnCType string

	// ReferencedType is the API type referenced by the return type, if any.
	ReferencedType string

	// Parameters in declaration order.
	Parameters []ParamInfo

	// Alias names another command this command is an alias of.
	Alias string

	// VecEquiv names the vector equivalent of this command.
	VecEquiv string

	// API is always empty: commands are not API-variant in the registry.
	API string
}

// apiQualified is implemented by every record stored in an entity list so
// variant resolution can read the API qualifier generically.
type apiQualified interface {
	apiName() string
}

func (t *TypeInfo) apiName() string      { return t.API }
func (e *EnumerantInfo) apiName() string { return e.API }
func (g *GroupInfo) apiName() string     { return g.API }
func (c *CommandInfo) apiName() string   { return c.API }
