package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	var buf bytes.Buffer
	return NewWithWriter(&buf), &buf
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		emit func(u *UI)
		want string
	}{
		{
			name: "info",
			emit: func(u *UI) { u.Info("Creating directory structure...") },
			want: "Creating directory structure...\n",
		},
		{
			name: "success",
			emit: func(u *UI) { u.Successf("Created: %s", "06-Cheatsheets") },
			want: "✓ Created: 06-Cheatsheets\n",
		},
		{
			name: "warning",
			emit: func(u *UI) { u.Warningf("Overwrote: %s", ".gitignore") },
			want: "! Overwrote: .gitignore\n",
		},
		{
			name: "printf",
			emit: func(u *UI) { u.Printf("%d. %s", 1, "step") },
			want: "1. step\n",
		},
		{
			name: "section",
			emit: func(u *UI) { u.Section("Next") },
			want: "\n" + strings.Repeat("=", ruleWidth) + "\nNext\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, buf := newTestUI(t)
			tt.emit(u)
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	u, buf := newTestUI(t)
	u.Header("Setup")

	rule := strings.Repeat("=", ruleWidth)
	want := rule + "\nSetup\n" + rule + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Header() output = %q, want %q", got, want)
	}
}

func TestWriter(t *testing.T) {
	u, buf := newTestUI(t)
	if u.Writer() != buf {
		t.Error("Writer() does not return the configured writer")
	}
}
