package mondrian

// Node is one region visited during a generation.
type Node struct {
	Region Region
	Depth  int
	// Splits lists the subdivisions applied to Region, in the order they ran.
	// A region large on both axes is split twice; the later split repaints
	// the whole region, so only its subtree stays visible.
	Splits []*Split
	// Filled is true for terminal regions.
	Filled bool
}

// Split is one subdivision of a node's region.
type Split struct {
	Orientation Orientation
	// At is the shared boundary: a row for horizontal splits, a column for vertical ones.
	At       int
	Children [2]*Node
}

// Tree is the recorded split tree of one generation.
type Tree struct {
	Root *Node
}

// Leaves returns the terminal regions that remain visible on the canvas,
// in painting order. Together they tile the root region, overlapping only on
// shared one-pixel boundary lines.
func (t *Tree) Leaves() []Region {
	if t == nil || t.Root == nil {
		return nil
	}
	var out []Region
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if len(n.Splits) == 0 {
			if n.Filled {
				out = append(out, n.Region)
			}
			return
		}
		last := n.Splits[len(n.Splits)-1]
		walk(last.Children[0])
		walk(last.Children[1])
	}
	walk(t.Root)
	return out
}

// Count returns the number of nodes in the tree, including repainted subtrees.
func (t *Tree) Count() int {
	if t == nil {
		return 0
	}
	n := 0
	t.Walk(func(*Node) { n++ })
	return n
}

// Depth returns the deepest node depth. The root has depth 0.
func (t *Tree) Depth() int {
	if t == nil {
		return 0
	}
	d := 0
	t.Walk(func(n *Node) { d = max(d, n.Depth) })
	return d
}

// Walk visits every node in pre-order.
func (t *Tree) Walk(fn func(*Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		fn(n)
		for _, s := range n.Splits {
			walk(s.Children[0])
			walk(s.Children[1])
		}
	}
	walk(t.Root)
}

// Recorder is an Observer that builds a Tree.
type Recorder struct {
	tree  Tree
	stack []*Node
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Tree returns the recorded tree.
func (rec *Recorder) Tree() *Tree { return &rec.tree }

// Enter implements Observer.
func (rec *Recorder) Enter(r Region, depth int) {
	n := &Node{Region: r, Depth: depth}
	if len(rec.stack) == 0 {
		rec.tree.Root = n
	} else {
		parent := rec.stack[len(rec.stack)-1]
		s := parent.Splits[len(parent.Splits)-1]
		if s.Children[0] == nil {
			s.Children[0] = n
		} else {
			s.Children[1] = n
		}
	}
	rec.stack = append(rec.stack, n)
}

// Split implements Observer.
func (rec *Recorder) Split(_ Region, o Orientation, at int) {
	top := rec.stack[len(rec.stack)-1]
	top.Splits = append(top.Splits, &Split{Orientation: o, At: at})
}

// Fill implements Observer.
func (rec *Recorder) Fill(Region) {
	rec.stack[len(rec.stack)-1].Filled = true
}

// Leave implements Observer.
func (rec *Recorder) Leave(Region) {
	rec.stack = rec.stack[:len(rec.stack)-1]
}

var _ Observer = (*Recorder)(nil)
