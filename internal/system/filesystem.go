package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// FileSystem handles file system operations on top of an afero backend
type FileSystem struct {
	fs  afero.Fs
	log logrus.FieldLogger
}

// NewFileSystem creates a new FileSystem instance.
// A nil logger falls back to the logrus standard logger.
func NewFileSystem(fs afero.Fs, log logrus.FieldLogger) *FileSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FileSystem{
		fs:  fs,
		log: log,
	}
}

// NewOSFileSystem creates a FileSystem backed by the real operating system.
// Relative paths resolve against the process working directory.
func NewOSFileSystem(log logrus.FieldLogger) *FileSystem {
	return NewFileSystem(afero.NewOsFs(), log)
}

// EnsureDirectory creates a directory and any missing parents.
// It returns true when something was created and false when the directory
// already existed. A segment that exists as a non-directory is a conflict.
func (f *FileSystem) EnsureDirectory(path string, perms os.FileMode) (bool, error) {
	path = filepath.Clean(path)

	current := ""
	if filepath.IsAbs(path) {
		current = string(filepath.Separator)
	}

	for _, segment := range strings.Split(strings.TrimPrefix(path, string(filepath.Separator)), string(filepath.Separator)) {
		current = filepath.Join(current, segment)

		info, err := f.fs.Stat(current)
		if err != nil {
			if os.IsNotExist(err) {
				// Everything below a missing segment is missing too
				break
			}
			return false, fmt.Errorf("%w: failed to check %s: %w", ErrIOFailure, current, err)
		}
		if !info.IsDir() {
			return false, fmt.Errorf("%w: %s exists but is not a directory", ErrFileSystemConflict, current)
		}
		if current == path {
			f.log.WithField("path", path).Debug("Directory already exists")
			return false, nil
		}
	}

	if err := f.fs.MkdirAll(path, perms); err != nil {
		return false, fmt.Errorf("%w: failed to create directory %s: %w", ErrIOFailure, path, err)
	}

	f.log.WithField("path", path).Debug("Created directory")
	return true, nil
}

// WriteFile writes content to a file, truncating anything already there.
// The parent directory must already exist.
func (f *FileSystem) WriteFile(path string, content []byte, perms os.FileMode) (WriteResult, error) {
	parent := filepath.Dir(filepath.Clean(path))

	info, err := f.fs.Stat(parent)
	switch {
	case os.IsNotExist(err):
		return WriteResult{}, fmt.Errorf("%w: parent directory %s of %s does not exist", ErrFileSystemConflict, parent, path)
	case errors.Is(err, syscall.ENOTDIR):
		return WriteResult{}, fmt.Errorf("%w: a segment of %s is not a directory", ErrFileSystemConflict, parent)
	case err != nil:
		return WriteResult{}, fmt.Errorf("%w: failed to check %s: %w", ErrIOFailure, parent, err)
	case !info.IsDir():
		return WriteResult{}, fmt.Errorf("%w: parent %s of %s is not a directory", ErrFileSystemConflict, parent, path)
	}

	previous, existed, err := f.readExisting(path)
	if err != nil {
		return WriteResult{}, err
	}

	if err := afero.WriteFile(f.fs, path, content, perms); err != nil {
		return WriteResult{}, fmt.Errorf("%w: failed to write %s: %w", ErrIOFailure, path, err)
	}

	result := compareContent(previous, string(content), existed)
	f.log.WithFields(logrus.Fields{
		"path":    path,
		"outcome": result.Outcome.String(),
		"bytes":   len(content),
	}).Debug("Wrote file")

	return result, nil
}

// readExisting returns the current content of path, if any.
// An unreadable file is treated as empty since it is about to be replaced.
func (f *FileSystem) readExisting(path string) (string, bool, error) {
	info, err := f.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: failed to check %s: %w", ErrIOFailure, path, err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("%w: %s exists but is a directory", ErrFileSystemConflict, path)
	}

	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		f.log.WithError(err).WithField("path", path).Debug("Could not read previous content")
		return "", true, nil
	}
	return string(data), true, nil
}
