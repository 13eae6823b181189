package preview_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/render"
	"github.com/goliatone/go-formforge/pkg/renderers/preview"
	"github.com/goliatone/go-formforge/pkg/testsupport"
)

func personBundle(t *testing.T) render.Bundle {
	t.Helper()
	s, opts := testsupport.PersonScenario(t)
	return render.Bundle{Schema: s, Options: opts, Artifact: codegen.Generate(s, opts)}
}

func TestRenderer_RenderPanes(t *testing.T) {
	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if renderer.Name() != "preview" {
		t.Fatalf("name = %q", renderer.Name())
	}
	if !strings.HasPrefix(renderer.ContentType(), "text/html") {
		t.Fatalf("content type = %q", renderer.ContentType())
	}

	output, err := renderer.Render(testsupport.Context(), personBundle(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(output)

	for _, want := range []string{
		"<title>Generated form code</title>",
		"1 field &middot; model Person &middot; form personForm",
		`id="pane-model" data-file="Person.model.ts"`,
		`id="pane-form" data-file="personForm.ts"`,
		`id="pane-template" data-file="personForm.component.html"`,
		"Model.ts <small>Person.model.ts (8 lines)</small>",
		`<code id="code-model">/**`,
		"export interface Person {",
		"&lt;form [formGroup]=&quot;personform&quot;&gt;",
		`data-copy="code-template"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("preview missing %q\n%s", want, html)
		}
	}
	if strings.Contains(html, `<form [formGroup]`) {
		t.Fatalf("generated markup must be escaped inside the preview")
	}

	model := strings.Index(html, `id="pane-model"`)
	form := strings.Index(html, `id="pane-form"`)
	tmpl := strings.Index(html, `id="pane-template"`)
	if !(model < form && form < tmpl) {
		t.Fatalf("expected panes in model, form, template order")
	}
}

func TestRenderer_WithTitleAndTemplates(t *testing.T) {
	files := fstest.MapFS{
		"templates/preview.tpl": {Data: []byte(`{{ title }}|{% for tab in tabs %}{{ tab.label }};{% endfor %}`)},
	}
	renderer, err := preview.New(preview.WithTemplatesFS(files), preview.WithTitle("  Person form  "))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(testsupport.Context(), personBundle(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(output), "Person form|Model.ts;Form.ts;Template.html;"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRenderer_WithFilter(t *testing.T) {
	name := fmt.Sprintf("ext_%d", time.Now().UnixNano())
	files := fstest.MapFS{
		"templates/preview.tpl": {Data: []byte(`{% for tab in tabs %}{{ tab.fileName|` + name + ` }} {% endfor %}`)},
	}
	extension := func(input any, _ any) (any, error) {
		fileName, _ := input.(string)
		return fileName[strings.LastIndex(fileName, ".")+1:], nil
	}

	renderer, err := preview.New(preview.WithTemplatesFS(files), preview.WithFilter(name, extension))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	output, err := renderer.Render(testsupport.Context(), personBundle(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got, want := string(output), "ts ts html "; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := preview.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := renderer.Render(ctx, personBundle(t)); err == nil {
		t.Fatalf("expected context error")
	}
}
