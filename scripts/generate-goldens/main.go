package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	formforge "github.com/goliatone/go-formforge"
	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/orchestrator"
	"github.com/goliatone/go-formforge/pkg/render"
	"github.com/goliatone/go-formforge/pkg/schema"
)

const snapshotRendererName = "golden-snapshot"

// snapshotRenderer writes the tabs selected by a scenario as golden files.
type snapshotRenderer struct {
	dir string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *snapshotRenderer) Render(ctx context.Context, bundle render.Bundle) ([]byte, error) {
	sc, ok := ctx.Value(scenarioKey{}).(scenario)
	if !ok {
		return nil, fmt.Errorf("snapshot renderer: scenario missing from context")
	}
	var written []byte
	for _, tab := range bundle.Tabs() {
		if !sc.wants(tab.ID) {
			continue
		}
		path := filepath.Join(r.dir, sc.prefix+"."+string(tab.ID)+".golden")
		if err := os.WriteFile(path, []byte(tab.Content), 0o644); err != nil {
			return nil, err
		}
		written = append(written, path+"\n"...)
	}
	return written, nil
}

type scenarioKey struct{}

type scenario struct {
	prefix string
	raw    string
	opts   codegen.Options
	tabs   []codegen.TabID
}

func (s scenario) wants(id codegen.TabID) bool {
	for _, tab := range s.tabs {
		if tab == id {
			return true
		}
	}
	return false
}

var scenarios = []scenario{
	{
		prefix: "person",
		raw:    `{"fields":[{"name":"age","type":"number","required":true,"label":"Age"}]}`,
		opts:   codegen.Options{ModelName: "Person", FormName: "personForm"},
		tabs:   []codegen.TabID{codegen.TabModel, codegen.TabForm, codegen.TabTemplate},
	},
	{
		prefix: "example",
		raw:    schema.Example,
		opts:   codegen.DefaultOptions(),
		tabs:   []codegen.TabID{codegen.TabTemplate},
	},
}

func main() {
	dir := flag.String("dir", "pkg/codegen/testdata", "directory receiving the golden files")
	flag.Parse()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{dir: *dir})

	generator := formforge.NewOrchestrator(
		orchestrator.WithRegistry(registry),
		orchestrator.WithCacheSize(0),
	)

	for _, sc := range scenarios {
		ctx := context.WithValue(context.Background(), scenarioKey{}, sc)
		resp, err := generator.Generate(ctx, orchestrator.Request{
			Raw:      sc.raw,
			Options:  sc.opts,
			Renderer: snapshotRendererName,
		})
		if err != nil {
			log.Fatalf("scenario %s: %v", sc.prefix, err)
		}
		fmt.Print(string(resp.Output))
	}
}
