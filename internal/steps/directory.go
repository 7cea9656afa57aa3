package steps

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/system"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/ui"
)

const dirPerms = 0755

// DirectoryProvisioner handles directory structure creation
type DirectoryProvisioner struct {
	fs  system.FileSystemManager
	ui  *ui.UI
	log logrus.FieldLogger
}

// NewDirectoryProvisioner creates a new DirectoryProvisioner instance
func NewDirectoryProvisioner(fs system.FileSystemManager, ui *ui.UI, log logrus.FieldLogger) *DirectoryProvisioner {
	return &DirectoryProvisioner{
		fs:  fs,
		ui:  ui,
		log: log,
	}
}

// Run ensures every directory exists, in order, stopping at the first failure.
// Directories created before a failure are left in place.
func (d *DirectoryProvisioner) Run(dirs []string) error {
	created := 0
	for _, dir := range dirs {
		wasCreated, err := d.fs.EnsureDirectory(dir, dirPerms)
		if err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}

		if wasCreated {
			created++
			d.ui.Successf("Created: %s", dir)
		} else {
			d.ui.Successf("Exists: %s", dir)
		}
	}

	d.log.WithFields(logrus.Fields{
		"total":   len(dirs),
		"created": created,
	}).Debug("Directory structure provisioned")

	return nil
}
