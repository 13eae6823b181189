package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formforge/pkg/naming"
)

// Parse validates raw and converts it into a Schema. On failure the returned
// error is always a *ParseError.
func Parse(raw string) (schema Schema, err error) {
	defer func() {
		if r := recover(); r != nil {
			schema = Schema{}
			err = newError(CodeUnknown, "unexpected error: %v", r)
		}
	}()

	schema, err = parse(raw)
	if err == nil {
		return schema, nil
	}

	var perr *ParseError
	if errors.As(err, &perr) {
		return Schema{}, perr
	}
	return Schema{}, &ParseError{
		Code:    CodeUnknown,
		Message: "unexpected error: " + err.Error(),
		Cause:   err,
	}
}

// MustParse panics when raw does not parse. Intended for tests and fixtures.
func MustParse(raw string) Schema {
	schema, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return schema
}

func parse(raw string) (Schema, error) {
	if strings.TrimSpace(raw) == "" {
		return Schema{}, newError(CodeEmptyInput, "input must not be empty")
	}

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		perr := newError(CodeInvalidJSON, "invalid JSON: %s", err.Error())
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			perr.Message = fmt.Sprintf("invalid JSON: %s (offset %d)", syntaxErr.Error(), syntaxErr.Offset)
		}
		perr.Cause = err
		return Schema{}, perr
	}

	obj, rawFields, ok := shape(doc)
	if !ok {
		return Schema{}, newError(CodeInvalidStructure, `input must be an object with a "fields" array containing at least one field`)
	}

	fields := make([]Field, 0, len(rawFields))
	for i, rawField := range rawFields {
		field, err := convertField(i, rawField)
		if err != nil {
			return Schema{}, err
		}
		fields = append(fields, field)
	}

	if dups := duplicateNames(fields); len(dups) > 0 {
		perr := newError(CodeDuplicateFieldNames, "duplicate field names: %s", strings.Join(dups, ", "))
		perr.Details = dups
		return Schema{}, perr
	}
	if clashes := identifierClashes(fields); len(clashes) > 0 {
		groups := make([]string, 0, len(clashes))
		var names []string
		for _, clash := range clashes {
			groups = append(groups, fmt.Sprintf("%s (all become %q)", strings.Join(clash.names, ", "), clash.ident))
			names = append(names, clash.names...)
		}
		perr := newError(CodeDuplicateFieldNames, "duplicate field names: %s", strings.Join(groups, "; "))
		perr.Details = names
		return Schema{}, perr
	}

	formName, err := optionalString(obj, "formName")
	if err != nil {
		return Schema{}, err
	}
	modelName, err := optionalString(obj, "modelName")
	if err != nil {
		return Schema{}, err
	}

	return Schema{
		Fields:    fields,
		FormName:  formName,
		ModelName: modelName,
	}, nil
}

func shape(doc any) (map[string]any, []any, bool) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, nil, false
	}
	fields, ok := obj["fields"].([]any)
	if !ok || len(fields) == 0 {
		return nil, nil, false
	}
	return obj, fields, true
}

func convertField(index int, raw any) (Field, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Field{}, newError(CodeInvalidFieldName, "field at position %d does not have a valid name", index)
	}

	name, _ := obj["name"].(string)
	name = strings.TrimSpace(name)
	if name == "" {
		return Field{}, newError(CodeInvalidFieldName, "field at position %d does not have a valid name", index)
	}
	if naming.Identifier(name) == "" {
		return Field{}, newError(CodeInvalidFieldName, "field at position %d (%q) has no letters or digits usable in an identifier", index, name)
	}

	rawKind, _ := obj["type"].(string)
	kind, ok := ParseKind(rawKind)
	if !ok {
		return Field{}, newError(CodeInvalidFieldType, "field %q has an invalid type. Supported types: %s", name, supportedKinds())
	}

	required, err := optionalBool(obj, "required")
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}
	label, err := optionalString(obj, "label")
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}
	placeholder, err := optionalString(obj, "placeholder")
	if err != nil {
		return Field{}, fmt.Errorf("field %q: %w", name, err)
	}

	return Field{
		Name:        name,
		Kind:        kind,
		Required:    required,
		Label:       label,
		Placeholder: placeholder,
	}, nil
}

// optionalString returns the trimmed string at key. Missing keys and JSON
// null read as "".
func optionalString(obj map[string]any, key string) (string, error) {
	value, ok := obj[key]
	if !ok || value == nil {
		return "", nil
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %s", key, jsonTypeName(value))
	}
	return strings.TrimSpace(s), nil
}

func optionalBool(obj map[string]any, key string) (bool, error) {
	value, ok := obj[key]
	if !ok || value == nil {
		return false, nil
	}
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %s", key, jsonTypeName(value))
	}
	return b, nil
}

// duplicateNames lists every lower-cased name that occurs more than once, in
// order of its second occurrence.
func duplicateNames(fields []Field) []string {
	seen := make(map[string]int, len(fields))
	var dups []string
	for _, field := range fields {
		key := strings.ToLower(field.Name)
		seen[key]++
		if seen[key] == 2 {
			dups = append(dups, key)
		}
	}
	return dups
}

type identifierClash struct {
	ident string
	names []string
}

// identifierClashes groups distinct names that generate the same identifier,
// in order of each identifier's first collision.
func identifierClashes(fields []Field) []identifierClash {
	byIdent := make(map[string][]string, len(fields))
	var order []string
	for _, field := range fields {
		ident := naming.Identifier(field.Name)
		byIdent[ident] = append(byIdent[ident], field.Name)
		if len(byIdent[ident]) == 2 {
			order = append(order, ident)
		}
	}

	clashes := make([]identifierClash, 0, len(order))
	for _, ident := range order {
		clashes = append(clashes, identifierClash{ident: ident, names: byIdent[ident]})
	}
	return clashes
}

func jsonTypeName(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}
