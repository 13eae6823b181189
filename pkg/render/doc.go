// Package render defines the Renderer contract and a name-keyed Registry.
// Concrete renderers live under pkg/renderers.
package render
