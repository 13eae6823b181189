package files_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/renderers/files"
	"github.com/goliatone/go-formforge/pkg/testsupport"
)

func TestWrite(t *testing.T) {
	s, opts := testsupport.PersonScenario(t)
	artifact := codegen.Generate(s, opts)
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := files.Write(dir, codegen.Tabs(artifact, opts))
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	want := []string{
		filepath.Join(dir, "Person.model.ts"),
		filepath.Join(dir, "personForm.ts"),
		filepath.Join(dir, "personForm.component.html"),
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}

	contents := []string{artifact.ModelFile, artifact.FormFile, artifact.TemplateFile}
	for i, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if string(data) != contents[i] {
			t.Fatalf("%s content mismatch", path)
		}
	}
}

func TestWrite_RejectsEscapingNames(t *testing.T) {
	tabs := []codegen.Tab{{ID: codegen.TabModel, FileName: "../evil.ts", Content: "x"}}
	if _, err := files.Write(t.TempDir(), tabs); err == nil {
		t.Fatalf("expected error for path outside output directory")
	}
}

func TestWrite_RequiresDirectory(t *testing.T) {
	if _, err := files.Write("  ", nil); err == nil {
		t.Fatalf("expected error for empty directory")
	}
}
