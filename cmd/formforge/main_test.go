package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formforge/internal/config"
	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/prompt"
	"github.com/goliatone/go-formforge/pkg/schema"
	"github.com/goliatone/go-formforge/pkg/testsupport"
)

type harness struct {
	app    *app
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(stdin string, env map[string]string) *harness {
	var stdout, stderr bytes.Buffer
	return &harness{
		app: &app{
			stdin:  strings.NewReader(stdin),
			stdout: &stdout,
			stderr: &stderr,
			lookup: func(key string) (string, bool) {
				v, ok := env[key]
				return v, ok
			},
		},
		stdout: &stdout,
		stderr: &stderr,
	}
}

func (h *harness) run(args ...string) int {
	return h.app.run(context.Background(), args)
}

func TestRun_TextToStdout(t *testing.T) {
	h := newHarness("", nil)

	code := h.run("-input", "testdata/person.json", "-model", "Person", "-form", "personForm")
	require.Equal(t, exitOK, code, h.stderr.String())

	s := testsupport.MustLoadSchema(t, "testdata/person.json")
	artifact := codegen.Generate(s, codegen.Options{ModelName: "Person", FormName: "personForm"})

	out := h.stdout.String()
	assert.True(t, strings.HasPrefix(out, "// ==> Person.model.ts\n"))
	assert.Contains(t, out, artifact.FormFile)
	assert.Contains(t, out, "// ==> personForm.component.html\n")
}

func TestRun_DefaultsFromEnvironment(t *testing.T) {
	h := newHarness("", map[string]string{
		config.EnvModelName: "Customer",
		config.EnvRenderer:  "json",
	})

	code := h.run("-example")
	require.Equal(t, exitOK, code, h.stderr.String())

	var doc struct {
		Options codegen.Options `json:"options"`
		Schema  schema.Schema   `json:"schema"`
	}
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &doc))
	assert.Equal(t, codegen.Options{ModelName: "Customer", FormName: "userForm"}, doc.Options)
	assert.Equal(t, []string{"firstName", "lastName", "age", "isActive"}, doc.Schema.FieldNames())
}

func TestRun_StdinParseErrorPrintsMessage(t *testing.T) {
	h := newHarness(`{"fields":[{"name":"a","type":"date"}]}`, nil)

	code := h.run("-input", "-")
	assert.Equal(t, exitError, code)
	assert.Empty(t, h.stdout.String())
	assert.Equal(t, "field \"a\" has an invalid type. Supported types: string, number, boolean\n", h.stderr.String())
}

func TestRun_WritesFilesAndOpenAPI(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated")
	h := newHarness("", nil)

	code := h.run("-input", "testdata/person.json", "-model", "Person", "-form", "personForm", "-output", dir, "-openapi", "-preset", "testdata/preset.json")
	require.Equal(t, exitOK, code, h.stderr.String())

	for _, name := range []string{"Person.model.ts", "personForm.ts", "personForm.component.html", "Person.openapi.json"} {
		assert.FileExists(t, filepath.Join(dir, name))
		assert.Contains(t, h.stdout.String(), filepath.Join(dir, name))
	}

	html, err := os.ReadFile(filepath.Join(dir, "personForm.component.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "Age in years *")

	component, err := os.ReadFile(filepath.Join(dir, "Person.openapi.json"))
	require.NoError(t, err)
	assert.Contains(t, string(component), `"Person"`)
}

func TestRun_OpenAPIToStdout(t *testing.T) {
	h := newHarness("", nil)

	code := h.run("-example", "-model", "Person", "-openapi")
	require.Equal(t, exitOK, code, h.stderr.String())

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(h.stdout.Bytes(), &doc))
	assert.Contains(t, doc, "Person")
	assert.Equal(t, "object", doc["Person"]["type"])
}

func TestRun_Interactive(t *testing.T) {
	h := newHarness("", nil)
	h.app.driver = &scriptedDriver{inputs: []string{"Invoice", "invoiceForm"}, selection: "preview"}

	code := h.run("-example", "-interactive")
	require.Equal(t, exitOK, code, h.stderr.String())
	assert.Contains(t, h.stdout.String(), "<!DOCTYPE html>")
	assert.Contains(t, h.stdout.String(), `data-file="invoiceForm.component.html"`)
}

func TestRun_UsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no input":        {},
		"both inputs":     {"-example", "-input", "x.json"},
		"unknown flag":    {"-nope"},
		"blank form name": {"-example", "-form", "  "},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHarness("", nil)
			assert.Equal(t, exitUsage, h.run(args...))
		})
	}
}

func TestRun_UnknownRenderer(t *testing.T) {
	h := newHarness("", nil)

	code := h.run("-example", "-renderer", "pdf")
	assert.Equal(t, exitError, code)
	assert.Contains(t, h.stderr.String(), "pdf")
}

type scriptedDriver struct {
	inputs    []string
	selection string
	pos       int
}

func (d *scriptedDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	if d.pos >= len(d.inputs) {
		return cfg.Default, nil
	}
	v := d.inputs[d.pos]
	d.pos++
	return v, nil
}

func (d *scriptedDriver) Confirm(context.Context, prompt.ConfirmConfig) (bool, error) {
	return true, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	for i, option := range cfg.Options {
		if option == d.selection {
			return i, nil
		}
	}
	return 0, nil
}
