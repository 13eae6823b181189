package source

import (
	"path/filepath"
	"strings"
)

// Source identifies where a form description originated.
type Source interface {
	Kind() Kind
	Location() string
}

// Kind enumerates the loader modalities.
type Kind string

const (
	KindFile  Kind = "file"
	KindFS    Kind = "fs"
	KindBytes Kind = "bytes"
)

// Format is the notation a document is written in.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type fileSource struct {
	path string
}

func (s fileSource) Location() string { return s.path }
func (s fileSource) Kind() Kind       { return KindFile }

// FromFile returns a Source pointing to a file path.
func FromFile(path string) Source {
	return fileSource{path: filepath.Clean(path)}
}

type fsSource struct {
	name string
}

func (s fsSource) Location() string { return s.name }
func (s fsSource) Kind() Kind       { return KindFS }

// FromFS returns a Source naming a file inside the Loader's fs.FS.
func FromFS(name string) Source {
	return fsSource{name: name}
}

// bytesSource carries an in-memory payload such as editor contents or stdin.
type bytesSource struct {
	name   string
	data   []byte
	format Format
}

func (s bytesSource) Location() string { return s.name }
func (s bytesSource) Kind() Kind       { return KindBytes }

// FromBytes wraps an in-memory document. name is used for error messages
// only.
func FromBytes(name string, data []byte, format Format) Source {
	if format == "" {
		format = FormatJSON
	}
	return bytesSource{name: name, data: append([]byte(nil), data...), format: format}
}

// FromString wraps editor text as a JSON document.
func FromString(text string) Source {
	return FromBytes("inline", []byte(text), FormatJSON)
}
