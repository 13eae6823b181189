package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formforge/pkg/codegen"
)

type stubDriver struct {
	inputs     []string
	selectIdx  []int
	confirm    []bool
	seenInputs []InputConfig
	seenSelect []SelectConfig
	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.seenInputs = append(s.seenInputs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	if cfg.Validator != nil {
		if err := cfg.Validator(val); err != nil {
			return "", err
		}
	}
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.seenSelect = append(s.seenSelect, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func TestAskOptions(t *testing.T) {
	driver := &stubDriver{inputs: []string{" Person ", "personForm"}}

	got, err := AskOptions(context.Background(), driver, codegen.Options{ModelName: "Customer"})
	if err != nil {
		t.Fatalf("ask options: %v", err)
	}

	want := codegen.Options{ModelName: "Person", FormName: "personForm"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}

	if len(driver.seenInputs) != 2 {
		t.Fatalf("expected two prompts, got %d", len(driver.seenInputs))
	}
	if driver.seenInputs[0].Default != "Customer" {
		t.Fatalf("model default = %q, want current value", driver.seenInputs[0].Default)
	}
	if driver.seenInputs[1].Default != "userForm" {
		t.Fatalf("form default = %q, want built-in default", driver.seenInputs[1].Default)
	}
}

func TestAskOptions_RequiredValidator(t *testing.T) {
	driver := &stubDriver{inputs: []string{"   "}}

	if _, err := AskOptions(context.Background(), driver, codegen.Options{}); err == nil {
		t.Fatalf("expected blank model name to be rejected")
	}
}

func TestAskOptions_Aborted(t *testing.T) {
	driver := &abortDriver{}

	_, err := AskOptions(context.Background(), driver, codegen.Options{})
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestAskRenderer(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	names := []string{"json", "preview", "text"}

	got, err := AskRenderer(context.Background(), driver, names, "preview")
	if err != nil {
		t.Fatalf("ask renderer: %v", err)
	}
	if got != "text" {
		t.Fatalf("renderer = %q, want text", got)
	}
	if driver.seenSelect[0].DefaultIndex != 1 {
		t.Fatalf("default index = %d, want 1", driver.seenSelect[0].DefaultIndex)
	}

	if _, err := AskRenderer(context.Background(), driver, nil, ""); !errors.Is(err, ErrNoChoices) {
		t.Fatalf("expected ErrNoChoices, got %v", err)
	}
}

func TestConfirmWrite(t *testing.T) {
	driver := &stubDriver{confirm: []bool{false}}

	ok, err := ConfirmWrite(context.Background(), driver, "out", []string{"a.ts"})
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if ok {
		t.Fatalf("expected declined write")
	}
}

type abortDriver struct{ stubDriver }

func (a *abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}
