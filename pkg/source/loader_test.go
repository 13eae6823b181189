package source_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/source"
)

const contactYAML = `
modelName: Contact
fields:
  - name: email
    type: string
    required: true
    label: E-mail
  - name: age
    type: number
`

func wantContact() schema.Schema {
	return schema.Schema{
		ModelName: "Contact",
		Fields: []schema.Field{
			{Name: "email", Kind: schema.KindText, Required: true, Label: "E-mail"},
			{Name: "age", Kind: schema.KindNumber},
		},
	}
}

func TestLoader_FileFormats(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "contact.json")
	yamlPath := filepath.Join(dir, "contact.yml")
	if err := os.WriteFile(jsonPath, []byte(`{"modelName":"Contact","fields":[{"name":"email","type":"string","required":true,"label":"E-mail"},{"name":"age","type":"number"}]}`), 0o644); err != nil {
		t.Fatalf("write json: %v", err)
	}
	if err := os.WriteFile(yamlPath, []byte(contactYAML), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	loader := source.NewLoader()
	for _, path := range []string{jsonPath, yamlPath} {
		doc, err := loader.Load(context.Background(), source.FromFile(path))
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		got, err := doc.Parse()
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		if diff := cmp.Diff(wantContact(), got); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", path, diff)
		}
	}
}

func TestLoader_FS(t *testing.T) {
	files := fstest.MapFS{
		"forms/contact.yaml": {Data: []byte(contactYAML)},
	}
	loader := source.NewLoader(source.WithFileSystem(files))

	doc, err := loader.Load(context.Background(), source.FromFS("forms/contact.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Format() != source.FormatYAML {
		t.Fatalf("expected yaml format, got %s", doc.Format())
	}
	got, err := doc.Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(wantContact(), got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_FSNotConfigured(t *testing.T) {
	_, err := source.NewLoader().Load(context.Background(), source.FromFS("missing.json"))
	if err == nil {
		t.Fatalf("expected error without filesystem")
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := source.NewLoader().Load(context.Background(), source.FromFile(filepath.Join(t.TempDir(), "nope.json")))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.NewLoader().Load(ctx, source.FromString(`{}`))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDocument_ParseErrorsKeepTaxonomy(t *testing.T) {
	tests := []struct {
		name string
		src  source.Source
		want schema.Code
	}{
		{name: "blank yaml", src: source.FromBytes("blank.yaml", []byte("  \n"), source.FormatYAML), want: schema.CodeEmptyInput},
		{name: "broken yaml", src: source.FromBytes("broken.yaml", []byte("fields: [\n  - name"), source.FormatYAML), want: schema.CodeInvalidJSON},
		{name: "yaml without fields", src: source.FromBytes("list.yaml", []byte("- a\n- b\n"), source.FormatYAML), want: schema.CodeInvalidStructure},
		{name: "blank json", src: source.FromString(""), want: schema.CodeEmptyInput},
		{name: "broken json", src: source.FromString("{"), want: schema.CodeInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := source.NewLoader().Load(context.Background(), tt.src)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			_, err = doc.Parse()
			if got := schema.CodeOf(err); got != tt.want {
				t.Fatalf("code = %q, want %q (err %v)", got, tt.want, err)
			}
		})
	}
}

func TestFromBytesCopiesInput(t *testing.T) {
	data := []byte(`{"fields":[{"name":"a","type":"string"}]}`)
	src := source.FromBytes("inline", data, "")
	data[2] = 'X'

	doc, err := source.NewLoader().Load(context.Background(), src)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := doc.Parse(); err != nil {
		t.Fatalf("source should not observe caller mutation: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	cases := map[string]source.Format{
		"a.json": source.FormatJSON,
		"a.YAML": source.FormatYAML,
		"a.yml":  source.FormatYAML,
		"a":      source.FormatJSON,
	}
	for path, want := range cases {
		if got := source.FormatFromPath(path); got != want {
			t.Errorf("FormatFromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
