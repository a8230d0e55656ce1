package emitter

import (
	"fmt"
	"io"

	"github.com/google/galogen/internal/registry"
)

// cGenerator writes a C header plus a loader source file. In null-driver
// mode the generated functions are stubs that return zero values instead
// of loading real entry points.
type cGenerator struct {
	nullDriver bool
	header     io.WriteCloser
	source     io.WriteCloser
}

func newCGenerator(nullDriver bool) *cGenerator {
	return &cGenerator{nullDriver: nullDriver}
}

func (g *cGenerator) Start(outputName, apiName, profile string, verMajor, verMinor int) error {
	var err error
	if g.header, err = createFile(outputName + ".h"); err != nil {
		return err
	}
	if g.source, err = createFile(outputName + ".c"); err != nil {
		g.header.Close()
		return err
	}

	fmt.Fprintf(g.header, "%s\n", headerPreamble)
	fmt.Fprintf(g.header,
		"#define GALOGEN_API_NAME \"%s\"\n"+
			"#define GALOGEN_API_PROFILE \"%s\"\n"+
			"#define GALOGEN_API_VER_MAJ %d\n"+
			"#define GALOGEN_API_VER_MIN %d\n",
		apiName, profile, verMajor, verMinor)

	fmt.Fprintf(g.source, "#include \"%s.h\"\n", outputName)
	if !g.nullDriver {
		fmt.Fprintf(g.source, "%s\n", sourcePreamble)
	}
	return nil
}

func (g *cGenerator) EmitType(t *registry.TypeInfo) error {
	fmt.Fprintf(g.header, "%s\n", t.CDecl)
	return nil
}

// EmitEnumGroup is a no-op: C has no construct for enumerant groups, so
// the C generators only use the flat #define stream.
func (g *cGenerator) EmitEnumGroup(group *registry.GroupInfo) error {
	return nil
}

func (g *cGenerator) EmitEnumerant(e *registry.EnumerantInfo) error {
	fmt.Fprintf(g.header, "#define %s %s%s\n", e.Name, e.Value, e.Suffix)
	if e.Alias != "" {
		fmt.Fprintf(g.header, "#define %s %s%s\n", e.Alias, e.Value, e.Suffix)
	}
	return nil
}

func (g *cGenerator) EmitCommand(c *registry.CommandInfo) error {
	var sig, call string
	for _, p := range c.Parameters {
		if sig != "" {
			sig += ", "
			call += ", "
		}
		sig += p.CType + " " + p.Name
		call += p.Name
	}

	// Function pointer type, declaration, and a macro routing the GL
	// name through the pointer.
	fmt.Fprintf(g.header, "\ntypedef %s (GL_APIENTRY *PFN_%s)(%s);\n", c.ReturnCType, c.Name, sig)
	fmt.Fprintf(g.header, "extern PFN_%s _glptr_%s;\n", c.Name, c.Name)
	fmt.Fprintf(g.header, "#define %s _glptr_%s\n", c.Name, c.Name)
	if c.Alias != "" {
		fmt.Fprintf(g.header, "#define %s %s\n", c.Alias, c.Name)
	}

	// Initial implementation: either a lazy loader that rebinds the
	// pointer on first call, or a null stub.
	fmt.Fprintf(g.source, "static %s GL_APIENTRY _impl_%s (%s) {\n", c.ReturnCType, c.Name, sig)
	if g.nullDriver {
		if c.ReturnCType != "void" {
			fmt.Fprintf(g.source, "  return (%s)0;\n", c.ReturnCType)
		}
		fmt.Fprintf(g.source, "}\n")
	} else {
		fmt.Fprintf(g.source, "  _glptr_%s = (PFN_%s)GalogenGetProcAddress(\"%s\");\n  ", c.Name, c.Name, c.Name)
		ret := ""
		if c.ReturnCType != "void" {
			ret = "return"
		}
		fmt.Fprintf(g.source, "%s _glptr_%s(%s);\n}\n", ret, c.Name, call)
	}
	fmt.Fprintf(g.source, "PFN_%s _glptr_%s = _impl_%s;\n\n", c.Name, c.Name, c.Name)
	return nil
}

func (g *cGenerator) Finish() error {
	fmt.Fprintf(g.header, "#if defined(__cplusplus)\n}\n#endif\n")
	fmt.Fprintf(g.header, "#endif\n")

	herr := g.header.Close()
	serr := g.source.Close()
	if herr != nil {
		return fmt.Errorf("closing header: %w", herr)
	}
	if serr != nil {
		return fmt.Errorf("closing source: %w", serr)
	}
	return nil
}
