package prompt

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes a free-text question.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig describes a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig describes a pick-one question. DefaultIndex outside Options
// leaves the cursor on the first entry.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
}

// Driver asks questions. Flows take a Driver so tests can script answers.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

// SurveyDriver asks on the terminal with survey.
type SurveyDriver struct {
	opts []survey.AskOpt
}

var _ Driver = (*SurveyDriver)(nil)

// NewSurveyDriver applies opts, such as survey.WithStdio, to every question.
func NewSurveyDriver(opts ...survey.AskOpt) *SurveyDriver {
	return &SurveyDriver{opts: opts}
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var extra []survey.AskOpt
	if validate := cfg.Validator; validate != nil {
		extra = append(extra, survey.WithValidator(func(answer any) error {
			text, _ := answer.(string)
			return validate(text)
		}))
	}
	return ask[string](ctx, &survey.Input{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, d.with(extra...))
}

func (d *SurveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	return ask[bool](ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default, Help: cfg.Help}, d.opts)
}

// Select returns the index of the chosen option.
func (d *SurveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(cfg.Options) == 0 {
		return 0, ErrNoChoices
	}
	question := &survey.Select{Message: cfg.Message, Options: cfg.Options, Help: cfg.Help}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		question.Default = cfg.DefaultIndex
	}
	return ask[int](ctx, question, d.opts)
}

func (d *SurveyDriver) with(extra ...survey.AskOpt) []survey.AskOpt {
	if len(extra) == 0 {
		return d.opts
	}
	return append(append([]survey.AskOpt(nil), d.opts...), extra...)
}

// ask runs one survey question, mapping Ctrl-C to ErrAborted.
func ask[T any](ctx context.Context, question survey.Prompt, opts []survey.AskOpt) (T, error) {
	var answer T
	if err := ctx.Err(); err != nil {
		return answer, err
	}
	if err := survey.AskOne(question, &answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			err = ErrAborted
		}
		var zero T
		return zero, err
	}
	return answer, nil
}
