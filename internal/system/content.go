package system

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// WriteOutcome describes what a write did to the file that was there before
type WriteOutcome int

const (
	// FileCreated means no file existed at the path
	FileCreated WriteOutcome = iota
	// FileUnchanged means the file already held exactly the new content
	FileUnchanged
	// FileOverwritten means different content was replaced
	FileOverwritten
)

func (o WriteOutcome) String() string {
	switch o {
	case FileCreated:
		return "created"
	case FileUnchanged:
		return "unchanged"
	case FileOverwritten:
		return "overwritten"
	default:
		return "unknown"
	}
}

// WriteResult reports the outcome of WriteFile with line-level change counts
type WriteResult struct {
	Outcome WriteOutcome
	Added   int
	Removed int
}

func compareContent(previous, next string, existed bool) WriteResult {
	if !existed {
		return WriteResult{Outcome: FileCreated, Added: countLines(next)}
	}
	if previous == next {
		return WriteResult{Outcome: FileUnchanged}
	}

	added, removed := lineChanges(previous, next)
	return WriteResult{Outcome: FileOverwritten, Added: added, Removed: removed}
}

// lineChanges counts lines inserted and deleted between two texts
func lineChanges(previous, next string) (added, removed int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(previous, next)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return added, removed
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
