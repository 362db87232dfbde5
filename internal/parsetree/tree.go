package parsetree

import (
	"slices"

	"sable/internal/diag"
	"sable/internal/token"
)

// Fragment is a finished AST piece the driver attaches to a node at
// finalization. Terminal marks leaf constructs with no further grammar
// expansion; their node ids are recorded in the terminal list.
type Fragment interface {
	Terminal() bool
}

// Node is one in-progress parse-tree entry. Links are plain ids into
// the owning Tree. Result is assigned exactly once, by EndContext.
type Node struct {
	ID       NodeID
	Kind     NodeKind
	Start    *token.Token
	Parent   NodeID
	Children []NodeID
	Result   Fragment

	finished bool
}

// Finished reports whether the node's Result has been attached.
func (n *Node) Finished() bool { return n.finished }

// Tree owns every node of one in-progress parse. It is built for a
// single logical owner; isolation across speculative attempts comes
// from Clone, not from sharing.
type Tree struct {
	root      NodeID
	nodes     map[NodeID]*Node
	terminals []NodeID
	nextID    NodeID
}

func NewTree() *Tree {
	return &Tree{
		nodes:  make(map[NodeID]*Node),
		nextID: 1,
	}
}

// Root returns the root node id, or NoNodeID before the first
// parentless AddChild.
func (t *Tree) Root() NodeID { return t.root }

// Get returns the live node for id, or nil.
func (t *Tree) Get(id NodeID) *Node { return t.nodes[id] }

// Len returns the number of live nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Terminals returns the ids of finalized leaf nodes, in finalization
// order. Не модифицируйте возвращаемый срез.
func (t *Tree) Terminals() []NodeID { return t.terminals }

// AddChild allocates the next id and links a new childless, unfinished
// node under parent. A parentless AddChild on an empty tree establishes
// the root. Always succeeds; a dangling parent id is not checked here
// and surfaces as a fault from EndContext or DeleteContext instead.
func (t *Tree) AddChild(parent NodeID, kind NodeKind, start *token.Token) *Node {
	id := t.nextID
	t.nextID++

	n := &Node{ID: id, Kind: kind, Start: start, Parent: parent}
	t.nodes[id] = n

	if parent.IsValid() {
		if p, ok := t.nodes[parent]; ok {
			p.Children = append(p.Children, id)
		}
	} else if !t.root.IsValid() {
		t.root = id
	}
	return n
}

// EndContext attaches the finished fragment to the node exactly once
// and returns the parent id to resume building it, or NoNodeID when the
// node is the root. Terminal fragments are recorded in the terminal
// list. Missing node, repeated finalization, or a dangling parent id
// are internal faults.
func (t *Tree) EndContext(id NodeID, result Fragment) (NodeID, error) {
	n, ok := t.nodes[id]
	if !ok {
		return NoNodeID, diag.Internalf(diag.IceNodeMissing, "parsetree.EndContext",
			"node %d is not in the arena", id)
	}
	if n.finished {
		return NoNodeID, diag.Internalf(diag.IceRefinalized, "parsetree.EndContext",
			"node %d already carries a result", id)
	}
	n.Result = result
	n.finished = true
	if result != nil && result.Terminal() {
		t.terminals = append(t.terminals, id)
	}

	if !n.Parent.IsValid() {
		return NoNodeID, nil
	}
	if _, ok := t.nodes[n.Parent]; !ok {
		return NoNodeID, diag.Internalf(diag.IceParentMissing, "parsetree.EndContext",
			"node %d names parent %d which is not in the arena", id, n.Parent)
	}
	return n.Parent, nil
}

// DeleteContext unwinds a failed speculative attempt: the node is
// removed from the arena, from its parent's child list and from the
// terminal list. Returns the parent id, or NoNodeID when the node was
// the root. Missing node, dangling parent id, or a parent that does not
// list the node as a child are internal faults. Descendants of the
// deleted node are not removed (see package doc).
func (t *Tree) DeleteContext(id NodeID) (NodeID, error) {
	n, ok := t.nodes[id]
	if !ok {
		return NoNodeID, diag.Internalf(diag.IceNodeMissing, "parsetree.DeleteContext",
			"node %d is not in the arena", id)
	}

	parent := n.Parent
	if parent.IsValid() {
		p, ok := t.nodes[parent]
		if !ok {
			return NoNodeID, diag.Internalf(diag.IceParentMissing, "parsetree.DeleteContext",
				"node %d names parent %d which is not in the arena", id, parent)
		}
		idx := slices.Index(p.Children, id)
		if idx < 0 {
			return NoNodeID, diag.Internalf(diag.IceChildMissing, "parsetree.DeleteContext",
				"parent %d does not list node %d as a child", parent, id)
		}
		p.Children = slices.Delete(p.Children, idx, idx+1)
	}

	delete(t.nodes, id)
	if idx := slices.Index(t.terminals, id); idx >= 0 {
		t.terminals = slices.Delete(t.terminals, idx, idx+1)
	}
	if t.root == id {
		t.root = NoNodeID
	}
	return parent, nil
}

// Clone produces a fully independent duplicate: fresh node values with
// copied child lists, the terminal list and the id counter copied by
// value, and the root carried over by id. Attached fragments are
// shallow-copied; mutating either tree never affects the other's node
// set, child lists or results.
func (t *Tree) Clone() *Tree {
	nodes := make(map[NodeID]*Node, len(t.nodes))
	for id, n := range t.nodes {
		dup := *n
		dup.Children = slices.Clone(n.Children)
		nodes[id] = &dup
	}
	return &Tree{
		root:      t.root,
		nodes:     nodes,
		terminals: slices.Clone(t.terminals),
		nextID:    t.nextID,
	}
}
