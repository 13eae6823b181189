package schema

import "errors"

// Result is the structured parse outcome handed to display and persistence
// layers. Exactly one of Data or Error is set.
type Result struct {
	Success bool        `json:"success"`
	Data    *Schema     `json:"data,omitempty"`
	Error   *ParseError `json:"error,omitempty"`
}

// ParseResult runs Parse and folds its outcome into a Result.
func ParseResult(raw string) Result {
	schema, err := Parse(raw)
	if err != nil {
		var perr *ParseError
		if !errors.As(err, &perr) {
			perr = &ParseError{Code: CodeUnknown, Message: err.Error(), Cause: err}
		}
		return Result{Error: perr}
	}
	return Result{Success: true, Data: &schema}
}
