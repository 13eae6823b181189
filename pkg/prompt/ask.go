package prompt

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-formforge/pkg/codegen"
)

// Required rejects blank answers.
func Required(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// AskOptions asks for the model and form names. Current values are offered as
// defaults; blank current values fall back to codegen.DefaultOptions.
func AskOptions(ctx context.Context, driver Driver, current codegen.Options) (codegen.Options, error) {
	if driver == nil {
		return codegen.Options{}, errors.New("prompt: driver is nil")
	}

	defaults := codegen.DefaultOptions()
	if strings.TrimSpace(current.ModelName) == "" {
		current.ModelName = defaults.ModelName
	}
	if strings.TrimSpace(current.FormName) == "" {
		current.FormName = defaults.FormName
	}

	model, err := driver.Input(ctx, InputConfig{
		Message:   "Model name:",
		Default:   current.ModelName,
		Help:      "Name of the generated interface and model file",
		Validator: Required,
	})
	if err != nil {
		return codegen.Options{}, fmt.Errorf("prompt: model name: %w", err)
	}

	form, err := driver.Input(ctx, InputConfig{
		Message:   "Form name:",
		Default:   current.FormName,
		Help:      "Name of the generated form class, variable and files",
		Validator: Required,
	})
	if err != nil {
		return codegen.Options{}, fmt.Errorf("prompt: form name: %w", err)
	}

	opts := codegen.Options{
		ModelName: strings.TrimSpace(model),
		FormName:  strings.TrimSpace(form),
	}
	if err := opts.Validate(); err != nil {
		return codegen.Options{}, fmt.Errorf("prompt: %w", err)
	}
	return opts, nil
}

// AskRenderer lets the user pick one of the named renderers, preselecting
// current when present.
func AskRenderer(ctx context.Context, driver Driver, names []string, current string) (string, error) {
	if driver == nil {
		return "", errors.New("prompt: driver is nil")
	}
	if len(names) == 0 {
		return "", ErrNoChoices
	}

	idx, err := driver.Select(ctx, SelectConfig{
		Message:      "Output format:",
		Options:      names,
		DefaultIndex: slices.Index(names, current),
	})
	if err != nil {
		return "", fmt.Errorf("prompt: renderer: %w", err)
	}
	if idx < 0 || idx >= len(names) {
		return "", fmt.Errorf("prompt: renderer: selection %d out of range", idx)
	}
	return names[idx], nil
}

// ConfirmWrite asks before writing generated files into dir.
func ConfirmWrite(ctx context.Context, driver Driver, dir string, files []string) (bool, error) {
	if driver == nil {
		return false, errors.New("prompt: driver is nil")
	}
	ok, err := driver.Confirm(ctx, ConfirmConfig{
		Message: fmt.Sprintf("Write %s to %s?", strings.Join(files, ", "), dir),
		Default: true,
	})
	if err != nil {
		return false, fmt.Errorf("prompt: confirm write: %w", err)
	}
	return ok, nil
}
