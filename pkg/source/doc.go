// Package source locates and reads raw form descriptions. Documents may be
// JSON or YAML; YAML is converted to JSON text before it reaches
// schema.Parse.
package source
