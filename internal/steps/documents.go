package steps

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/layout"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/system"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/ui"
)

const filePerms = 0644

// DocumentWriter writes literal documents, replacing whatever is on disk
type DocumentWriter struct {
	fs  system.FileSystemManager
	ui  *ui.UI
	log logrus.FieldLogger
}

// NewDocumentWriter creates a new DocumentWriter instance
func NewDocumentWriter(fs system.FileSystemManager, ui *ui.UI, log logrus.FieldLogger) *DocumentWriter {
	return &DocumentWriter{
		fs:  fs,
		ui:  ui,
		log: log,
	}
}

// Run writes every document in order, stopping at the first failure
func (w *DocumentWriter) Run(docs []layout.Document) error {
	for _, doc := range docs {
		if err := w.write(doc); err != nil {
			return err
		}
	}
	return nil
}

func (w *DocumentWriter) write(doc layout.Document) error {
	result, err := w.fs.WriteFile(doc.Path, []byte(doc.Content), filePerms)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", doc.Path, err)
	}

	switch result.Outcome {
	case system.FileOverwritten:
		w.log.WithFields(logrus.Fields{
			"path":    doc.Path,
			"added":   result.Added,
			"removed": result.Removed,
		}).Warn("Replaced local edits")
		w.ui.Warningf("Overwrote: %s (+%d/-%d lines)", doc.Path, result.Added, result.Removed)
	default:
		w.ui.Successf("Created: %s", doc.Path)
	}

	return nil
}

// IgnoreFileWriter writes the repository .gitignore
type IgnoreFileWriter struct {
	writer *DocumentWriter
}

// NewIgnoreFileWriter creates a new IgnoreFileWriter instance
func NewIgnoreFileWriter(fs system.FileSystemManager, ui *ui.UI, log logrus.FieldLogger) *IgnoreFileWriter {
	return &IgnoreFileWriter{
		writer: NewDocumentWriter(fs, ui, log),
	}
}

// Run writes layout.GitignoreContent to layout.GitignorePath
func (g *IgnoreFileWriter) Run() error {
	return g.writer.write(layout.Document{
		Path:    layout.GitignorePath,
		Content: layout.GitignoreContent,
	})
}
