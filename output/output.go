// Package output writes exported documents to a filesystem.
package output

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/graph-gophers/schemadoc/config"
)

// Writer writes a document to a fixed path, replacing any previous content.
// Writes are not atomic: a failed write may leave a truncated or stale file.
type Writer struct {
	fs   afero.Fs
	path string
	perm os.FileMode
}

// New returns a Writer for cfg.OutputPath on fs. A nil cfg means config.Default().
func New(fs afero.Fs, cfg *config.Config) *Writer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Writer{
		fs:   fs,
		path: cfg.OutputPath,
		perm: cfg.Perm,
	}
}

// Path returns the path the Writer writes to.
func (w *Writer) Path() string {
	return w.path
}

// Write creates or truncates the output file and writes doc to it.
func (w *Writer) Write(doc []byte) error {
	if err := afero.WriteFile(w.fs, w.path, doc, w.perm); err != nil {
		return errors.Wrapf(err, "write %s", w.path)
	}
	return nil
}
