package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/layout"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/system"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/ui"
)

func newTestContext(t *testing.T, root string) (*SetupContext, *bytes.Buffer, *test.Hook) {
	t.Helper()
	color.NoColor = true

	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	return &SetupContext{
		FS:  system.NewFileSystem(afero.NewBasePathFs(afero.NewOsFs(), root), logger),
		UI:  ui.NewWithWriter(&out),
		Log: logger,
	}, &out, hook
}

// snapshot maps every path under root to its content ("" for directories)
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	result := map[string]string{}
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			result[rel+"/"] = ""
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		result[rel] = string(data)
		return nil
	})
	require.NoError(t, err)
	return result
}

func TestRunProducesLayout(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	ctx, out, _ := newTestContext(t, root)

	require.NoError(t, ctx.Run())

	for _, dir := range layout.Directories {
		info, err := os.Stat(filepath.Join(root, dir))
		require.NoError(t, err)
		assertion.True(info.IsDir(), "%s should be a directory", dir)
	}
	for _, doc := range layout.Documents {
		data, err := os.ReadFile(filepath.Join(root, doc.Path))
		require.NoError(t, err)
		assertion.Equal(doc.Content, string(data))
	}
	data, err := os.ReadFile(filepath.Join(root, layout.GitignorePath))
	require.NoError(t, err)
	assertion.Equal(layout.GitignoreContent, string(data))

	output := out.String()
	assertion.True(strings.HasPrefix(output, strings.Repeat("=", 50)+"\nPython Learning Roadmap - Setup Script\n"))
	assertion.Contains(output, "Creating directory structure...\n✓ Created: 01-Beginner/Books\n")
	assertion.Contains(output, "Creating README files for each section...\n✓ Created: 01-Beginner/README.md\n")
	assertion.Contains(output, "✓ Directory structure created successfully!\n\nNext steps:\n1. Add your resources")
	assertion.Contains(output, "5. Create GitHub repo and push\n✓ Created: .gitignore\n")
	assertion.Contains(output, "Repository layout:\n")
	assertion.True(strings.HasSuffix(output, "Setup complete! Happy learning! 🐍\n"+strings.Repeat("=", 50)+"\n"))

	// Directory lines come in list order
	first := strings.Index(output, "Created: 01-Beginner/Books")
	last := strings.Index(output, "Created: 07-Tools-and-Setup/Git-Setup")
	assertion.Less(first, last)
}

func TestRunTwiceIsStable(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()

	ctx, _, _ := newTestContext(t, root)
	require.NoError(t, ctx.Run())
	first := snapshot(t, root)

	ctx, out, hook := newTestContext(t, root)
	require.NoError(t, ctx.Run())
	second := snapshot(t, root)

	assertion.Equal(first, second)
	assertion.NotContains(out.String(), "Overwrote")
	for _, entry := range hook.AllEntries() {
		assertion.NotEqual(logrus.WarnLevel, entry.Level, entry.Message)
	}
}

func TestRunRestoresEditedReadme(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()

	ctx, _, _ := newTestContext(t, root)
	require.NoError(t, ctx.Run())

	edited := filepath.Join(root, "03-Advanced", "README.md")
	require.NoError(t, os.WriteFile(edited, []byte("# Advanced Level\n\nmy personal notes\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("*.pdf\n"), 0644))

	ctx, out, hook := newTestContext(t, root)
	require.NoError(t, ctx.Run())

	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assertion.Equal(layout.Documents[2].Content, string(data))

	data, err = os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assertion.Equal(layout.GitignoreContent, string(data))

	assertion.Contains(out.String(), "! Overwrote: 03-Advanced/README.md")
	assertion.Contains(out.String(), "! Overwrote: .gitignore")

	warnings := 0
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assertion.Equal(2, warnings)
}

func TestRunFailsOnFileInPlaceOfDirectory(t *testing.T) {
	assertion := assert.New(t)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "06-Cheatsheets"), []byte("not a directory"), 0644))

	ctx, out, _ := newTestContext(t, root)
	err := ctx.Run()

	assertion.ErrorIs(err, system.ErrFileSystemConflict)
	assertion.NotContains(out.String(), "Creating README files")

	// Nothing after the failure was written
	_, statErr := os.Stat(filepath.Join(root, ".gitignore"))
	assertion.True(os.IsNotExist(statErr))

	// Work done before the failure stays
	info, statErr := os.Stat(filepath.Join(root, "05-Interview-Prep", "Common-Questions"))
	require.NoError(t, statErr)
	assertion.True(info.IsDir())
}

func TestWriteLayoutTree(t *testing.T) {
	assertion := assert.New(t)
	var buf bytes.Buffer

	require.NoError(t, writeLayoutTree(&buf))

	tree := buf.String()
	assertion.True(strings.HasPrefix(tree, ".\n"))
	assertion.Contains(tree, "01-Beginner")
	assertion.Contains(tree, "Computer-Vision")
	assertion.Contains(tree, "README.md")
	assertion.Contains(tree, ".gitignore")
	assertion.Equal(1, strings.Count(tree, "04-Specializations\n"))
}

func TestNewSetupContext(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewSetupContext(&buf, logrus.New())

	assert.NotNil(t, ctx.FS)
	assert.NotNil(t, ctx.UI)
	assert.NotNil(t, ctx.Log)
}
