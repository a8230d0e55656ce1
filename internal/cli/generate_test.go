package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/galogen/internal/target"
)

// miniRegistry is a registry small enough to read in one glance but
// exercising the full pipeline: types with requires edges, the baseline
// types, enumerants, a command with transitive type inference, versioned
// features, and an extension.
const miniRegistry = `<registry>
	<types>
		<type>typedef unsigned int <name>GLenum</name>;</type>
		<type>typedef unsigned int <name>GLuint</name>;</type>
		<type>typedef int <name>GLsizei</name>;</type>
		<type>typedef char <name>GLchar</name>;</type>
		<type requires="GLenum">typedef GLenum <name>GLtarget</name>;</type>
	</types>
	<enums>
		<enum value="0x0DE1" name="GL_TEXTURE_2D"/>
		<enum value="0x84C0" name="GL_TEXTURE0"/>
	</enums>
	<commands>
		<command>
			<proto>void <name>glGenTextures</name></proto>
			<param><ptype>GLsizei</ptype> <name>n</name></param>
			<param><ptype>GLuint</ptype> *<name>textures</name></param>
		</command>
		<command>
			<proto>void <name>glActiveTexture</name></proto>
			<param><ptype>GLtarget</ptype> <name>texture</name></param>
		</command>
	</commands>
	<feature api="gl" number="1.1">
		<require>
			<command name="glGenTextures"/>
			<enum name="GL_TEXTURE_2D"/>
		</require>
	</feature>
	<feature api="gl" number="1.3">
		<require>
			<command name="glActiveTexture"/>
			<enum name="GL_TEXTURE0"/>
		</require>
	</feature>
	<extensions>
		<extension name="GL_TEST_extension" supported="gles2"/>
	</extensions>
</registry>`

func writeMiniRegistry(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gl.xml")
	if err := os.WriteFile(path, []byte(miniRegistry), 0644); err != nil {
		t.Fatalf("writing registry fixture: %v", err)
	}
	return path
}

func TestGenerateEndToEnd(t *testing.T) {
	registryPath := writeMiniRegistry(t)
	outBase := filepath.Join(t.TempDir(), "gl11")

	opts, err := buildOptions(flagValues{api: "gl", version: "1.1", filename: outBase}, &target.Target{}, noConfig)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := generate(registryPath, opts, &out, &errOut); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out.String(), "Generation finished successfully!") {
		t.Errorf("missing success line, got %q", out.String())
	}

	header, err := os.ReadFile(outBase + ".h")
	if err != nil {
		t.Fatalf("reading generated header: %v", err)
	}
	h := string(header)
	for _, want := range []string{
		"typedef unsigned int GLuint;",
		"#define GL_TEXTURE_2D 0x0DE1",
		"#define glGenTextures _glptr_glGenTextures",
		"#define GALOGEN_API_VER_MAJ 1",
		"#define GALOGEN_API_VER_MIN 1",
	} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	// Target 1.1 must not include 1.3 content.
	if strings.Contains(h, "glActiveTexture") || strings.Contains(h, "GL_TEXTURE0") {
		t.Error("header contains entities from a feature newer than the target")
	}

	if _, err := os.Stat(outBase + ".c"); err != nil {
		t.Errorf("generated source missing: %v", err)
	}
}

func TestGenerateVersionGating(t *testing.T) {
	registryPath := writeMiniRegistry(t)
	outBase := filepath.Join(t.TempDir(), "gl13")

	opts, err := buildOptions(flagValues{api: "gl", version: "1.3", filename: outBase}, &target.Target{}, noConfig)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := generate(registryPath, opts, &out, &errOut); err != nil {
		t.Fatalf("generate: %v", err)
	}

	header, err := os.ReadFile(outBase + ".h")
	if err != nil {
		t.Fatalf("reading generated header: %v", err)
	}
	h := string(header)
	for _, want := range []string{"glActiveTexture", "GL_TEXTURE0", "GLtarget"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q at target 1.3", want)
		}
	}
	// Dependency order: GLenum declared before the type requiring it.
	if strings.Index(h, "GLenum;") > strings.Index(h, "GLtarget;") {
		t.Error("requires edge violated in header")
	}
}

func TestGenerateUnsupportedExtensionWarns(t *testing.T) {
	registryPath := writeMiniRegistry(t)
	outBase := filepath.Join(t.TempDir(), "out")

	opts, err := buildOptions(flagValues{api: "gl", version: "1.1", filename: outBase, exts: "TEST_extension"}, &target.Target{}, noConfig)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := generate(registryPath, opts, &out, &errOut); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(errOut.String(), "GL_TEST_extension") {
		t.Errorf("stderr missing unsupported-extension warning, got %q", errOut.String())
	}
}

func TestGenerateUnknownExtensionFails(t *testing.T) {
	registryPath := writeMiniRegistry(t)
	outBase := filepath.Join(t.TempDir(), "out")

	opts, err := buildOptions(flagValues{api: "gl", version: "1.1", filename: outBase, exts: "NO_such_ext"}, &target.Target{}, noConfig)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}

	var out, errOut bytes.Buffer
	if err := generate(registryPath, opts, &out, &errOut); err == nil {
		t.Fatal("generate succeeded with unknown extension, want error")
	}
}

func TestGenerateMissingRegistryFile(t *testing.T) {
	opts, err := buildOptions(flagValues{}, &target.Target{}, noConfig)
	if err != nil {
		t.Fatalf("buildOptions: %v", err)
	}
	var out, errOut bytes.Buffer
	if err := generate(filepath.Join(t.TempDir(), "absent.xml"), opts, &out, &errOut); err == nil {
		t.Error("generate succeeded with missing registry file, want error")
	}
}
