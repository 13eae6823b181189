// Package naming converts user supplied names into identifiers that are safe
// to splice into generated source. Every emitter in pkg/codegen derives field
// identifiers through Identifier.
package naming
