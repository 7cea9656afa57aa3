// Package layout holds the fixed repository layout produced by roadmap-setup:
// the directory list, the README table and the .gitignore blob. Every value
// here is a literal and is never mutated at runtime.
package layout

import (
	"fmt"
	"path"

	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/common"
)

// Document is a file written verbatim at a path relative to the repository root
type Document struct {
	Path    string
	Content string
}

// GitignorePath is where the ignore file is written
const GitignorePath = ".gitignore"

// Directories lists every directory of the roadmap, in creation order
var Directories = []string{
	// Beginner level
	"01-Beginner/Books",
	"01-Beginner/Videos",
	"01-Beginner/PDFs",
	"01-Beginner/Exercises",
	"01-Beginner/Projects",

	// Intermediate level
	"02-Intermediate/Books",
	"02-Intermediate/Videos",
	"02-Intermediate/PDFs",
	"02-Intermediate/Exercises",
	"02-Intermediate/Projects",

	// Advanced level
	"03-Advanced/Books",
	"03-Advanced/Videos",
	"03-Advanced/PDFs",
	"03-Advanced/Exercises",
	"03-Advanced/Projects",

	// Specializations
	"04-Specializations/Web-Development/Django",
	"04-Specializations/Web-Development/Flask",
	"04-Specializations/Web-Development/FastAPI",
	"04-Specializations/Data-Science/NumPy-Pandas",
	"04-Specializations/Data-Science/Visualization",
	"04-Specializations/Data-Science/Projects",
	"04-Specializations/Machine-Learning/Scikit-Learn",
	"04-Specializations/Machine-Learning/Deep-Learning",
	"04-Specializations/Machine-Learning/NLP",
	"04-Specializations/Machine-Learning/Computer-Vision",
	"04-Specializations/Automation/Web-Scraping",
	"04-Specializations/Automation/Task-Automation",
	"04-Specializations/Automation/Scripts",
	"04-Specializations/DevOps/Docker",
	"04-Specializations/DevOps/CI-CD",
	"04-Specializations/DevOps/Cloud",

	// Interview prep
	"05-Interview-Prep/Coding-Challenges/Easy",
	"05-Interview-Prep/Coding-Challenges/Medium",
	"05-Interview-Prep/Coding-Challenges/Hard",
	"05-Interview-Prep/System-Design",
	"05-Interview-Prep/Common-Questions",

	// Cheatsheets
	"06-Cheatsheets",

	// Tools and setup
	"07-Tools-and-Setup/Installation-Guides",
	"07-Tools-and-Setup/IDE-Configuration",
	"07-Tools-and-Setup/Git-Setup",
}

// Documents lists the section READMEs in write order
var Documents = []Document{
	{Path: "01-Beginner/README.md", Content: beginnerReadme},
	{Path: "02-Intermediate/README.md", Content: intermediateReadme},
	{Path: "03-Advanced/README.md", Content: advancedReadme},
	{Path: "04-Specializations/README.md", Content: specializationsReadme},
	{Path: "05-Interview-Prep/README.md", Content: interviewPrepReadme},
	{Path: "06-Cheatsheets/README.md", Content: cheatsheetsReadme},
	{Path: "07-Tools-and-Setup/README.md", Content: toolsAndSetupReadme},
}

// NextSteps are printed after setup; none of them are executed
var NextSteps = []string{
	"Add your resources (books, videos, PDFs) to appropriate folders",
	"Initialize git: git init",
	"Add files: git add .",
	"Commit: git commit -m 'Initial commit'",
	"Create GitHub repo and push",
}

// Validate checks that every path is a canonical relative path, that every
// document lands inside a provisioned directory and that no two documents
// share a path.
func Validate() error {
	return validate(Directories, Documents)
}

func validate(dirs []string, docs []Document) error {
	provisioned := make(map[string]bool)
	for _, dir := range dirs {
		if err := common.ValidateRelativePath(dir); err != nil {
			return fmt.Errorf("invalid directory: %w", err)
		}
		// A directory and all of its ancestors exist after provisioning
		for p := dir; p != "."; p = path.Dir(p) {
			provisioned[p] = true
		}
	}

	seen := make(map[string]bool, len(docs))
	for _, doc := range docs {
		if err := common.ValidateRelativePath(doc.Path); err != nil {
			return fmt.Errorf("invalid document: %w", err)
		}
		if seen[doc.Path] {
			return fmt.Errorf("duplicate document path: %s", doc.Path)
		}
		seen[doc.Path] = true

		parent := path.Dir(doc.Path)
		if parent == "." {
			continue
		}
		if !provisioned[parent] {
			return fmt.Errorf("document %s is outside the directory list (missing %s)", doc.Path, parent)
		}
	}

	return nil
}
