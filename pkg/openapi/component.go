package openapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formforge/pkg/codegen"
	"github.com/goliatone/go-formforge/pkg/naming"
	"github.com/goliatone/go-formforge/pkg/schema"
)

// OrderExtension lists property names in field order, since OpenAPI
// properties are an unordered map.
const OrderExtension = "x-formforge-order"

// Component builds the object schema for s and returns it with its
// component name (the PascalCase model name).
func Component(s schema.Schema, opts codegen.Options) (string, *openapi3.Schema) {
	name := naming.TypeName(opts.ModelName)

	component := openapi3.NewObjectSchema()
	component.Title = name

	order := make([]any, 0, len(s.Fields))
	for i, field := range s.Fields {
		ident := naming.IdentifierAt(field.Name, i)
		property := propertySchema(field.Kind)
		if field.Label != "" {
			property.Title = field.Label
		}
		component.WithProperty(ident, property)
		if field.Required {
			component.Required = append(component.Required, ident)
		}
		order = append(order, ident)
	}
	component.Extensions = map[string]any{OrderExtension: order}

	return name, component
}

// MarshalComponent renders {"<Model>": <schema>} as indented JSON, the shape
// expected under components.schemas.
func MarshalComponent(s schema.Schema, opts codegen.Options) ([]byte, error) {
	name, component := Component(s, opts)
	payload, err := json.MarshalIndent(map[string]*openapi3.Schema{name: component}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("openapi: marshal component %q: %w", name, err)
	}
	return payload, nil
}

func propertySchema(kind schema.Kind) *openapi3.Schema {
	switch kind {
	case schema.KindText:
		return openapi3.NewStringSchema()
	case schema.KindNumber:
		return openapi3.NewFloat64Schema()
	case schema.KindBoolean:
		return openapi3.NewBoolSchema()
	default:
		return openapi3.NewSchema()
	}
}
