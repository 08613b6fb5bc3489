// Package adapter contains sequence and infrastructure adapters for the fromback CLI.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	m "github.com/mouse-blink/fromback/internal/model"
)

// ErrIsDirectory is returned when a source path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// SourceFSAdapter abstracts reading the sources a selection is applied to, so
// the workflow can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadSource loads the whole content of path. m.StdinPath reads standard input.
	ReadSource(path m.Path) ([]byte, error)
}

// LocalSourceFSAdapter reads sources from the local filesystem and stdin.
type LocalSourceFSAdapter struct {
	stdin io.Reader

	once      sync.Once
	stdinData []byte
	stdinErr  error
}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter reading "-" from stdin.
func NewLocalSourceFSAdapter(stdin io.Reader) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{stdin: stdin}
}

// ReadSource reads a file, or standard input for m.StdinPath. Standard input
// is consumed once and the same content is returned on later calls.
func (a *LocalSourceFSAdapter) ReadSource(path m.Path) ([]byte, error) {
	if path == m.StdinPath {
		a.once.Do(func() {
			if a.stdin == nil {
				a.stdinData = []byte{}
				return
			}

			a.stdinData, a.stdinErr = io.ReadAll(a.stdin)
		})

		if a.stdinErr != nil {
			return nil, fmt.Errorf("read stdin: %w", a.stdinErr)
		}

		return a.stdinData, nil
	}

	info, err := os.Stat(string(path))
	if err != nil {
		return nil, fmt.Errorf("source path error: %w", err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return data, nil
}
