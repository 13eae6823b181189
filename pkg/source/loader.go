package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFileSystem sets the fs.FS used to resolve FromFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(l *Loader) {
		l.fs = files
	}
}

// Loader reads documents from files, an fs.FS, or memory.
type Loader struct {
	fs fs.FS
}

// NewLoader constructs a Loader applying any provided options.
func NewLoader(options ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches a document from the provided source.
func (l *Loader) Load(ctx context.Context, src Source) (Document, error) {
	if src == nil {
		return Document{}, errors.New("source loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	if s, ok := src.(bytesSource); ok {
		return NewDocument(s, s.format, s.data)
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case KindFile:
		data, err = os.ReadFile(src.Location())
	case KindFS:
		data, err = l.readFS(src.Location())
	default:
		err = fmt.Errorf("unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return Document{}, fmt.Errorf("source loader: read %s: %w", src.Location(), err)
	}

	return NewDocument(src, FormatFromPath(src.Location()), data)
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.fs == nil {
		return nil, errors.New("filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("fs path is required")
	}
	return fs.ReadFile(l.fs, name)
}
