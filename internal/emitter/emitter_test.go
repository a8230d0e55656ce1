package emitter

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/galogen/internal/registry"
)

// memFile is an in-memory stand-in for an output file.
type memFile struct {
	bytes.Buffer
}

func (*memFile) Close() error { return nil }

// captureFiles redirects createFile into memory for the duration of a test.
func captureFiles(t *testing.T) map[string]*memFile {
	t.Helper()
	files := make(map[string]*memFile)
	orig := createFile
	createFile = func(name string) (io.WriteCloser, error) {
		f := &memFile{}
		files[name] = f
		return f, nil
	}
	t.Cleanup(func() { createFile = orig })
	return files
}

func TestNewUnknownGenerator(t *testing.T) {
	if _, err := New("fortran"); err == nil {
		t.Error("New(fortran) succeeded, want error")
	}
	if _, err := New(DefaultGenerator); err != nil {
		t.Errorf("New(%s): %v", DefaultGenerator, err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 {
		t.Fatalf("Names() = %v, want 2 entries", names)
	}
	if names[0] != "c_noload" || names[1] != "c_nulldriver" {
		t.Errorf("Names() = %v", names)
	}
}

func TestCGeneratorHeader(t *testing.T) {
	files := captureFiles(t)

	gen, err := New("c_noload")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := gen.Start("gl45", "gl", "core", 4, 5); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := gen.EmitType(&registry.TypeInfo{Name: "GLuint", CDecl: "typedef unsigned int GLuint;"}); err != nil {
		t.Fatalf("EmitType: %v", err)
	}
	if err := gen.EmitEnumerant(&registry.EnumerantInfo{Name: "GL_TEXTURE_2D", Value: "0x0DE1"}); err != nil {
		t.Fatalf("EmitEnumerant: %v", err)
	}
	if err := gen.EmitEnumerant(&registry.EnumerantInfo{Name: "GL_ONE", Value: "1", Suffix: "u", Alias: "GL_UNO"}); err != nil {
		t.Fatalf("EmitEnumerant: %v", err)
	}
	if err := gen.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	header := files["gl45.h"].String()
	for _, want := range []string{
		"#define GALOGEN_API_NAME \"gl\"",
		"#define GALOGEN_API_PROFILE \"core\"",
		"#define GALOGEN_API_VER_MAJ 4",
		"#define GALOGEN_API_VER_MIN 5",
		"typedef unsigned int GLuint;",
		"#define GL_TEXTURE_2D 0x0DE1",
		"#define GL_ONE 1u",
		"#define GL_UNO 1u",
		"#endif",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}

	source := files["gl45.c"].String()
	if !strings.Contains(source, "#include \"gl45.h\"") {
		t.Error("source missing header include")
	}
	if !strings.Contains(source, "GalogenGetProcAddress") {
		t.Error("source missing loader preamble")
	}
}

func TestCGeneratorCommand(t *testing.T) {
	files := captureFiles(t)

	gen, _ := New("c_noload")
	if err := gen.Start("out", "gl", "core", 1, 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cmd := &registry.CommandInfo{
		Name:        "glGenTextures",
		ReturnCType: "void",
		Alias:       "glGenTexturesEXT",
		Parameters: []registry.ParamInfo{
			{Name: "n", CType: "GLsizei"},
			{Name: "textures", CType: "GLuint *"},
		},
	}
	if err := gen.EmitCommand(cmd); err != nil {
		t.Fatalf("EmitCommand: %v", err)
	}
	if err := gen.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	header := files["out.h"].String()
	for _, want := range []string{
		"typedef void (GL_APIENTRY *PFN_glGenTextures)(GLsizei n, GLuint * textures);",
		"extern PFN_glGenTextures _glptr_glGenTextures;",
		"#define glGenTextures _glptr_glGenTextures",
		"#define glGenTexturesEXT glGenTextures",
	} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}

	source := files["out.c"].String()
	for _, want := range []string{
		"static void GL_APIENTRY _impl_glGenTextures (GLsizei n, GLuint * textures) {",
		"_glptr_glGenTextures = (PFN_glGenTextures)GalogenGetProcAddress(\"glGenTextures\");",
		"_glptr_glGenTextures(n, textures);",
		"PFN_glGenTextures _glptr_glGenTextures = _impl_glGenTextures;",
	} {
		if !strings.Contains(source, want) {
			t.Errorf("source missing %q", want)
		}
	}
}

func TestCGeneratorNullDriver(t *testing.T) {
	files := captureFiles(t)

	gen, _ := New("c_nulldriver")
	if err := gen.Start("out", "gl", "core", 1, 0); err != nil {
		t.Fatalf("Start: %v", err)
	}
	cmd := &registry.CommandInfo{Name: "glCreateProgram", ReturnCType: "GLuint"}
	if err := gen.EmitCommand(cmd); err != nil {
		t.Fatalf("EmitCommand: %v", err)
	}
	if err := gen.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	source := files["out.c"].String()
	if !strings.Contains(source, "return (GLuint)0;") {
		t.Error("null driver stub missing zero return")
	}
	if strings.Contains(source, "GalogenGetProcAddress") {
		t.Error("null driver source contains loader preamble")
	}
}
