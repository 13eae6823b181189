// Package orchestrator wires the source loader, schema parser, code generator
// and renderer registry behind a single entry point. Generated artifacts are
// cached per schema and naming options.
package orchestrator
