// Package schema parses loosely structured JSON form descriptions into the
// canonical Schema consumed by pkg/codegen.
//
// Parse validates input in stages, cheapest first, and stops at the first
// failure:
//
//  1. blank input (EMPTY_INPUT)
//  2. JSON syntax (INVALID_JSON)
//  3. top-level shape: an object with a non-empty "fields" array (INVALID_STRUCTURE)
//  4. each field, in order: name (INVALID_FIELD_NAME) then type (INVALID_FIELD_TYPE)
//  5. case-insensitive duplicate names (DUPLICATE_FIELD_NAMES)
//
// Anything else that goes wrong is reported as UNKNOWN_ERROR. Every failure
// is returned as a *ParseError; Parse never panics.
//
// A Schema marshals to the same JSON shape Parse accepts, so persistence
// layers can store it verbatim and feed it back through Parse later.
package schema
