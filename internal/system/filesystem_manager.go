package system

import "os"

// FileSystemManager defines the interface for file system operations.
// This allows the setup steps to be exercised against any afero backend.
type FileSystemManager interface {
	EnsureDirectory(path string, perms os.FileMode) (bool, error)
	WriteFile(path string, content []byte, perms os.FileMode) (WriteResult, error)
}
