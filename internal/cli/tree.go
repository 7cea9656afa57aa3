package cli

import (
	"io"
	"path"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/zoro11031/python-roadmap/roadmap-setup/internal/layout"
)

// writeLayoutTree renders the directories and files setup produces
func writeLayoutTree(w io.Writer) error {
	root := gtree.NewRoot(".")
	nodes := map[string]*gtree.Node{}

	add := func(p string) {
		parent, current := root, ""
		for _, segment := range strings.Split(path.Clean(p), "/") {
			current = path.Join(current, segment)
			node, ok := nodes[current]
			if !ok {
				node = parent.Add(segment)
				nodes[current] = node
			}
			parent = node
		}
	}

	for _, dir := range layout.Directories {
		add(dir)
	}
	for _, doc := range layout.Documents {
		add(doc.Path)
	}
	add(layout.GitignorePath)

	return gtree.OutputFromRoot(w, root)
}
