package showcase

import "fmt"

const (
	debugMaxTreeDepth  = 32
	debugMaxChildCount = 1000
)

// treeReport summarizes one debug walk of the scene tree.
type treeReport struct {
	nodes       int
	interactive int
	maxDepth    int
	deepest     *Node
	crowded     []*Node
}

// checkDisposed panics when a disposed node takes part in a tree operation.
func checkDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("showcase: %s on disposed node %q", op, n.Name))
	}
}

func walkTree(n *Node, depth int, r *treeReport) {
	r.nodes++
	if n.Interactable {
		r.interactive++
	}
	if depth > r.maxDepth {
		r.maxDepth = depth
		r.deepest = n
	}
	if len(n.children) > debugMaxChildCount {
		r.crowded = append(r.crowded, n)
	}
	for _, c := range n.children {
		walkTree(c, depth+1, r)
	}
}

// debugCheckTree logs tree shape problems. Runs once per step in debug mode;
// each warning is logged only when the offending value changes.
func (s *Scene) debugCheckTree() {
	var r treeReport
	walkTree(s.root, 1, &r)

	if r.maxDepth > debugMaxTreeDepth && r.maxDepth != s.lastDepthWarn {
		s.log.Info("warning: tree depth exceeds threshold",
			"depth", r.maxDepth, "threshold", debugMaxTreeDepth, "node", r.deepest.Name)
	}
	s.lastDepthWarn = r.maxDepth
	if len(r.crowded) != s.lastCrowdedWarn {
		for _, n := range r.crowded {
			s.log.Info("warning: node child count exceeds threshold",
				"node", n.Name, "children", len(n.children), "threshold", debugMaxChildCount)
		}
	}
	s.lastCrowdedWarn = len(r.crowded)

	s.log.V(2).Info("scene tree", "frame", s.frame, "nodes", r.nodes, "interactable", r.interactive,
		"depth", r.maxDepth, "animations", len(s.animations), "timers", s.sched.Pending())
}
