// Package fs provides filesystem abstractions for trees of files locatable at paths.
package fs

import (
	"io/fs"
	"os"
	"path"
)

// Pather is something with a path.
type Pather interface {
	// Path returns the path of the instance.
	Path() string
}

// A PathedFS provides access to a hierarchical file system locatable at some path.
type PathedFS interface {
	fs.FS
	Pather
	// Sub returns a PathedFS corresponding to the subtree rooted at dir.
	Sub(dir string) (PathedFS, error)
}

// DirExists checks whether a directory exists at the specified path.
func DirExists(dirPath string) bool {
	dir, err := os.Stat(dirPath)
	return err == nil && dir.IsDir()
}

// EnsureExists makes the directory at the specified path, along with any missing parents.
func EnsureExists(dirPath string) error {
	const perm = 0o755 // owner rwx, group rx, public rx
	return os.MkdirAll(dirPath, perm)
}

// FileExists checks whether a regular file exists at the specified path in the provided
// filesystem.
func FileExists(fsys fs.FS, filePath string) bool {
	info, err := fs.Stat(fsys, filePath)
	return err == nil && info.Mode().IsRegular()
}

// DirFS returns a PathedFS for a tree of files rooted at the directory dir.
func DirFS(dir string) PathedFS {
	return dirFS{
		path: dir,
		fsys: os.DirFS(dir),
	}
}

// dirFS

type dirFS struct {
	path string
	fsys fs.FS
}

func (f dirFS) Path() string {
	return f.path
}

func (f dirFS) Open(name string) (fs.File, error) {
	return f.fsys.Open(name)
}

func (f dirFS) Sub(name string) (PathedFS, error) {
	return DirFS(path.Join(f.path, name)), nil
}

// dirFS: fs.ReadDirFS

func (f dirFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(f.fsys, name)
}

// dirFS: fs.ReadFileFS

func (f dirFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, name)
}
