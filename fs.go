package wkhtml

import (
	"io/fs"
	"os"

	"github.com/alnah/go-wkhtml/internal/fileutil"
)

// FileSystem abstracts the filesystem operations the converter performs,
// so tests can substitute a fake instead of touching disk.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
	Remove(path string) error
	MkdirAll(path string, perm fs.FileMode) error
	ReadFile(path string) ([]byte, error)
	// WriteTemp stages content into a fresh temporary file with the given
	// extension. Returns the file path and a cleanup function to remove it.
	WriteTemp(content, extension string) (path string, cleanup func(), err error)
}

// Compile-time interface implementation check.
var _ FileSystem = OSFileSystem{}

// OSFileSystem implements FileSystem against the real filesystem.
type OSFileSystem struct{}

func (OSFileSystem) Stat(path string) (fs.FileInfo, error)  { return os.Stat(path) }
func (OSFileSystem) Lstat(path string) (fs.FileInfo, error) { return os.Lstat(path) }
func (OSFileSystem) Remove(path string) error               { return os.Remove(path) }

func (OSFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path) // #nosec G304 -- paths are caller-provided by contract
}

func (OSFileSystem) WriteTemp(content, extension string) (string, func(), error) {
	return fileutil.WriteTempFile(content, extension)
}
