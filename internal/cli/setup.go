// Package cli provides the orchestration layer for roadmap-setup. It wires the
// filesystem, console output and logger together and runs the setup stages in
// their fixed order.
package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/layout"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/steps"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/system"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/ui"
)

// SetupContext holds all dependencies needed for setup operations
type SetupContext struct {
	FS  system.FileSystemManager
	UI  *ui.UI
	Log logrus.FieldLogger
}

// NewSetupContext creates a SetupContext that works on the current directory
// and prints progress to out.
func NewSetupContext(out io.Writer, log logrus.FieldLogger) *SetupContext {
	return &SetupContext{
		FS:  system.NewOSFileSystem(log),
		UI:  ui.NewWithWriter(out),
		Log: log,
	}
}

// Run provisions the directory tree, writes the section READMEs and then the
// .gitignore. The first error aborts the run; nothing already written is undone.
func (ctx *SetupContext) Run() error {
	if err := layout.Validate(); err != nil {
		return fmt.Errorf("invalid layout: %w", err)
	}

	ctx.UI.Header("Python Learning Roadmap - Setup Script")
	ctx.UI.Print("")

	ctx.UI.Info("Creating directory structure...")
	if err := steps.NewDirectoryProvisioner(ctx.FS, ctx.UI, ctx.Log).Run(layout.Directories); err != nil {
		return fmt.Errorf("directory provisioning failed: %w", err)
	}

	ctx.UI.Section("Creating README files for each section...")
	if err := steps.NewDocumentWriter(ctx.FS, ctx.UI, ctx.Log).Run(layout.Documents); err != nil {
		return fmt.Errorf("writing README files failed: %w", err)
	}

	ctx.UI.Rule()
	ctx.UI.Success("Directory structure created successfully!")
	ctx.printNextSteps()

	if err := steps.NewIgnoreFileWriter(ctx.FS, ctx.UI, ctx.Log).Run(); err != nil {
		return fmt.Errorf("writing %s failed: %w", layout.GitignorePath, err)
	}

	ctx.UI.Print("")
	ctx.UI.Bold("Repository layout:")
	if err := writeLayoutTree(ctx.UI.Writer()); err != nil {
		// The tree is informational only
		ctx.Log.WithError(err).Warn("Failed to render repository layout")
	}

	ctx.UI.Print("")
	ctx.UI.Header("Setup complete! Happy learning! 🐍")

	ctx.Log.WithFields(logrus.Fields{
		"directories": len(layout.Directories),
		"documents":   len(layout.Documents) + 1,
	}).Debug("Setup finished")

	return nil
}

func (ctx *SetupContext) printNextSteps() {
	ctx.UI.Print("")
	ctx.UI.Bold("Next steps:")
	for i, step := range layout.NextSteps {
		ctx.UI.Printf("%d. %s", i+1, step)
	}
}
