// Package template defines renderer-agnostic template interfaces. The pongo
// subpackage provides the default pongo2-backed engine.
package template
