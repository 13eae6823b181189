// Package openapi exports a validated form schema as an OpenAPI 3 component
// schema so the generated model can be shared with API tooling. The
// kin-openapi types stay behind this package; callers get a ready
// *openapi3.Schema or its JSON encoding.
package openapi
