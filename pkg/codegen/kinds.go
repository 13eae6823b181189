package codegen

import "github.com/goliatone/go-formforge/pkg/schema"

// Each mapping below must cover every schema.Kind. The default branches only
// run when a caller hands over a schema that bypassed schema.Parse.

func tsType(kind schema.Kind) string {
	switch kind {
	case schema.KindText:
		return "string"
	case schema.KindNumber:
		return "number"
	case schema.KindBoolean:
		return "boolean"
	default:
		return "any"
	}
}

func defaultValue(kind schema.Kind) string {
	switch kind {
	case schema.KindText:
		return "''"
	case schema.KindNumber:
		return "0"
	case schema.KindBoolean:
		return "false"
	default:
		return "null"
	}
}

// inputType returns the HTML input type and whether the widget shows a
// placeholder.
func inputType(kind schema.Kind) (string, bool) {
	switch kind {
	case schema.KindText:
		return "text", true
	case schema.KindNumber:
		return "number", true
	case schema.KindBoolean:
		return "checkbox", false
	default:
		return "text", true
	}
}
