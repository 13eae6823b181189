// Package codegen turns a validated schema.Schema into three source artifacts
// for an Angular reactive form:
//
//   - ModelFile: a TypeScript interface with one property per field
//   - FormFile: a class wrapping a FormGroup with one FormControl per field
//   - TemplateFile: an HTML template with one labelled input per field
//
// Generation is a pure function of the schema and Options: identical inputs
// produce byte-identical output. Names come from Options only; the FormName
// and ModelName hints embedded in a schema are never consulted.
package codegen
