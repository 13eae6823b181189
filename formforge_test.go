package formforge_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	formforge "github.com/goliatone/go-formforge"
	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/source"
	"github.com/goliatone/go-formforge/pkg/testsupport"
)

const personRaw = `{"fields":[{"name":"age","type":"number","required":true,"label":"Age"}]}`

func TestGenerateFromText(t *testing.T) {
	opts := formforge.Options{ModelName: "Person", FormName: "personForm"}

	got, err := formforge.GenerateFromText(personRaw, opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := codegen.Generate(testsupport.MustParseSchema(t, personRaw), opts)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("artifact mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromText_ParseError(t *testing.T) {
	_, err := formforge.GenerateFromText("   ", codegen.DefaultOptions())

	var perr *formforge.ParseError
	if !errors.As(err, &perr) || perr.Code != schema.CodeEmptyInput {
		t.Fatalf("expected EMPTY_INPUT parse error, got %v", err)
	}
}

func TestGenerateFromText_InvalidOptions(t *testing.T) {
	if _, err := formforge.GenerateFromText(personRaw, formforge.Options{}); !errors.Is(err, codegen.ErrInvalidOptions) {
		t.Fatalf("expected ErrInvalidOptions, got %v", err)
	}
}

func TestRender(t *testing.T) {
	out, err := formforge.Render(
		testsupport.Context(),
		source.FromString(personRaw),
		formforge.Options{ModelName: "Person", FormName: "personForm"},
		"text",
	)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "// ==> personForm.ts") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(formforge.EmbeddedTemplates(), "templates/preview.tpl"); err != nil {
		t.Fatalf("preview template missing: %v", err)
	}
}
