package codegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formforge/pkg/naming"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("codegen: invalid generation options")

// Options carries the caller chosen names for generated output.
type Options struct {
	ModelName string `json:"modelName" yaml:"modelName"`
	FormName  string `json:"formName" yaml:"formName"`
}

// DefaultOptions mirrors the names offered to users before they type their
// own.
func DefaultOptions() Options {
	return Options{ModelName: "User", FormName: "userForm"}
}

// Validate reports whether both names are present and yield a usable
// identifier.
func (o Options) Validate() error {
	var problems []string
	check := func(label, value string) {
		switch {
		case strings.TrimSpace(value) == "":
			problems = append(problems, label+" required")
		case naming.Identifier(value) == "":
			problems = append(problems, fmt.Sprintf("%s %q has no letters or digits usable in an identifier", label, strings.TrimSpace(value)))
		}
	}
	check("model name", o.ModelName)
	check("form name", o.FormName)

	if len(problems) > 0 {
		return errors.Join(ErrInvalidOptions, errors.New(strings.Join(problems, "; ")))
	}
	return nil
}

// Artifact holds the three generated files.
type Artifact struct {
	ModelFile    string `json:"modelFile"`
	FormFile     string `json:"formFile"`
	TemplateFile string `json:"templateFile"`
}
