// Where: internal/descriptor/descriptor.go
// What: Build descriptor file lifecycle.
// Why: Guarantee the generated file is removed exactly once on every exit path.
package descriptor

import (
	"os"
	"path/filepath"
	"sync"
)

// FileName is the descriptor written into the working directory. A previous
// run's file is overwritten.
const FileName = "Dockerfile.modelbake"

// File is a written build descriptor. Remove is safe to call from multiple
// exit paths; the file is deleted at most once.
type File struct {
	path string

	removeOnce sync.Once
	removeErr  error
}

// Write renders nothing itself; it persists already-rendered content under
// FileName inside dir and returns a handle for cleanup.
func Write(dir, content string) (*File, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return nil, err
	}
	return &File{path: path}, nil
}

// Path returns the descriptor's location on disk.
func (f *File) Path() string {
	return f.path
}

// Remove deletes the descriptor. Only the first call touches the
// filesystem; later calls return the first call's result.
func (f *File) Remove() error {
	f.removeOnce.Do(func() {
		f.removeErr = os.Remove(f.path)
	})
	return f.removeErr
}
