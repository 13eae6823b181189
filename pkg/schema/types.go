package schema

import "strings"

// Kind is the closed set of primitive value kinds a field can carry. The
// string values double as the accepted "type" spellings in input documents.
type Kind string

const (
	KindText    Kind = "string"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

var kinds = []Kind{KindText, KindNumber, KindBoolean}

// Kinds returns the supported kinds in declaration order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind maps an input "type" value to a Kind. Matching is exact.
func ParseKind(raw string) (Kind, bool) {
	for _, kind := range kinds {
		if string(kind) == raw {
			return kind, true
		}
	}
	return "", false
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	_, ok := ParseKind(string(k))
	return ok
}

func (k Kind) String() string {
	return string(k)
}

func supportedKinds() string {
	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = string(kind)
	}
	return strings.Join(names, ", ")
}

// Field is a single validated form entry.
type Field struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"type"`
	Required    bool   `json:"required"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// Schema is the canonical form description. Field order is significant and
// drives declaration order in every generated artifact. FormName and
// ModelName are hints carried from the input; generation options always
// take precedence over them.
type Schema struct {
	Fields    []Field `json:"fields"`
	FormName  string  `json:"formName,omitempty"`
	ModelName string  `json:"modelName,omitempty"`
}

// Clone returns a deep copy so callers can hand the schema to code that
// might retain or modify it.
func (s Schema) Clone() Schema {
	out := s
	out.Fields = append([]Field(nil), s.Fields...)
	return out
}

// FieldNames returns the field names in schema order.
func (s Schema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}
