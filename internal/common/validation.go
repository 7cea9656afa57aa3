package common

import (
	"fmt"
	"path"
	"strings"
)

// ValidateRelativePath validates that a layout path is relative, slash
// separated and stays below the repository root
func ValidateRelativePath(p string) error {
	if strings.TrimSpace(p) == "" {
		return fmt.Errorf("path cannot be empty")
	}

	if path.IsAbs(p) {
		return fmt.Errorf("path must be relative: %s", p)
	}

	if strings.Contains(p, `\`) {
		return fmt.Errorf("path must use forward slashes: %s", p)
	}

	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path escapes the repository root: %s", p)
	}

	if cleaned != p {
		return fmt.Errorf("path is not in canonical form: %s (want %s)", p, cleaned)
	}

	return nil
}
