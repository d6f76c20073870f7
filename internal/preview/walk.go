package preview

import (
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui"
	"github.com/alexisbeaulieu97/tuimorphic/internal/ui/components"
)

// Spinners collects every spinner in the tree, depth first.
func Spinners(node ui.Renderable) []*components.Spinner {
	var out []*components.Spinner
	walk(node, func(n ui.Renderable) {
		if s, ok := n.(*components.Spinner); ok {
			out = append(out, s)
		}
	})
	return out
}

func walk(node ui.Renderable, visit func(ui.Renderable)) {
	if node == nil {
		return
	}
	visit(node)

	switch n := node.(type) {
	case *components.Card:
		for _, child := range n.Children() {
			walk(child, visit)
		}
		walk(n.Footer(), visit)
	case *components.Container:
		for _, child := range n.Children() {
			walk(child, visit)
		}
	case *components.Stack:
		for _, child := range n.Children() {
			walk(child, visit)
		}
	}
}
