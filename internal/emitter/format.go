package emitter

import (
	"bytes"
	"io"

	"golang.org/x/tools/imports"

	genErrors "github.com/entikit/entitygen/internal/errors"
)

// FormatFiler decorates another filer and runs goimports over each artifact
// before it reaches the underlying sink. Templates may import generously;
// formatting drops what a particular entity does not use.
type FormatFiler struct {
	inner Filer
}

// NewFormatFiler wraps a filer with goimports formatting.
func NewFormatFiler(inner Filer) *FormatFiler {
	return &FormatFiler{inner: inner}
}

// CreateSourceFile returns a buffering sink; the artifact is formatted and
// flushed to the underlying sink on Close.
func (f *FormatFiler) CreateSourceFile(qualifiedName string) (io.WriteCloser, error) {
	sink, err := f.inner.CreateSourceFile(qualifiedName)
	if err != nil {
		return nil, err
	}
	return &formatSink{inner: sink}, nil
}

type formatSink struct {
	inner io.WriteCloser
	buf   bytes.Buffer
}

func (s *formatSink) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Close formats the buffered artifact and writes it through. The inner sink
// is closed on every path, formatting failure included.
func (s *formatSink) Close() error {
	formatted, err := imports.Process(s.path(), s.buf.Bytes(), nil)
	if err != nil {
		_ = s.inner.Close()
		return genErrors.Wrap(genErrors.EmissionIOError, "failed to format generated source", err)
	}

	_, writeErr := s.inner.Write(formatted)
	closeErr := s.inner.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}

// Path exposes the destination path of the underlying sink, when known.
func (s *formatSink) Path() string {
	return s.path()
}

func (s *formatSink) path() string {
	if reporter, ok := s.inner.(PathReporter); ok {
		return reporter.Path()
	}
	return ""
}
