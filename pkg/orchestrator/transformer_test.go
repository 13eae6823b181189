package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formforge/pkg/orchestrator"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/testsupport"
)

func TestOrchestrator_AppliesTransformer(t *testing.T) {
	transformer := orchestrator.TransformerFunc(func(_ context.Context, s *schema.Schema) error {
		s.Fields[0].Label = "Age in years"
		return nil
	})
	orch := orchestrator.New(orchestrator.WithSchemaTransformer(transformer))

	resp, err := orch.Generate(testsupport.Context(), orchestrator.Request{Raw: personRaw, Options: personOptions})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(resp.Bundle.Artifact.TemplateFile, `<label for="age">Age in years *</label>`) {
		t.Fatalf("transformed label missing:\n%s", resp.Bundle.Artifact.TemplateFile)
	}
}

func TestJSONPresetTransformerFromFS(t *testing.T) {
	files := fstest.MapFS{
		"preset.json": {Data: []byte(`{"fields":{"age":{"placeholder":"e.g. 42","required":false}}}`)},
	}
	transformer, err := orchestrator.NewJSONPresetTransformerFromFS(files, "preset.json")
	if err != nil {
		t.Fatalf("load preset: %v", err)
	}

	s := testsupport.MustParseSchema(t, personRaw)
	if err := transformer.Transform(context.Background(), &s); err != nil {
		t.Fatalf("transform: %v", err)
	}

	field := s.Fields[0]
	if field.Required {
		t.Fatalf("expected required override to false")
	}
	if field.Placeholder != "e.g. 42" || field.Label != "Age" {
		t.Fatalf("unexpected field after patch: %+v", field)
	}
}

func TestJSONPresetTransformer_UnknownField(t *testing.T) {
	transformer, err := orchestrator.NewJSONPresetTransformer([]byte(`{"fields":{"height":{"label":"Height"}}}`))
	if err != nil {
		t.Fatalf("new transformer: %v", err)
	}
	s := testsupport.MustParseSchema(t, personRaw)
	if err := transformer.Transform(context.Background(), &s); err == nil {
		t.Fatalf("expected unknown field error")
	}

	if _, err := orchestrator.NewJSONPresetTransformer([]byte("  ")); err == nil {
		t.Fatalf("expected empty document error")
	}
}

func TestOrchestrator_TransformerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	orch := orchestrator.New(orchestrator.WithSchemaTransformer(orchestrator.TransformerFunc(
		func(context.Context, *schema.Schema) error { return boom },
	)))

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{Raw: personRaw, Options: personOptions})
	if !errors.Is(err, boom) {
		t.Fatalf("expected transformer error, got %v", err)
	}
	if orch.CacheLen() != 0 {
		t.Fatalf("nothing should be cached after a transformer failure")
	}
}
