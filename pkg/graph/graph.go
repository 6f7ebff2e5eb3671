// Package graph provides a generic directed graph of owned nodes with typed,
// named edges. It is the backing store for the document property model:
// parent/child relationships between properties are kept as edges here rather
// than as raw pointers, so inverse (parent) lookups are always consistent with
// the forward references.
package graph

import (
	"errors"
	"fmt"
)

// Graph errors.
var (
	ErrNodeDisposed = errors.New("graph: node is disposed")
	ErrEmptyName    = errors.New("graph: edge name must not be empty")
	ErrCrossGraph   = errors.New("graph: nodes belong to different graphs")
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// EdgeWatcher is implemented by node owners that maintain secondary
// back-pointers outside the graph (for example a scene node's cached parent).
// Notifications are delivered synchronously while the graph mutates, so a
// watcher must not add or remove edges from inside the callback.
type EdgeWatcher interface {
	EdgeRemoved(e *Edge)
}

// Edge is a directed, named reference from a parent node to a child node.
// Edge identity is pointer identity: the same (parent, name, child) triple may
// appear more than once as distinct edges.
type Edge struct {
	name   string
	parent *Node
	child  *Node
}

// Name returns the semantic name of the edge, e.g. "children" or "material".
func (e *Edge) Name() string { return e.name }

// Parent returns the node the edge points from.
func (e *Edge) Parent() *Node { return e.parent }

// Child returns the node the edge points to.
func (e *Edge) Child() *Node { return e.child }

// Node is a single graph node. Nodes are created through Graph.NewNode and
// carry an opaque owner, typically the domain object that embeds the node.
type Node struct {
	graph    *Graph
	owner    any
	disposed bool
	out      []*Edge // outbound edges, insertion order
	in       []*Edge // inbound edges, insertion order
}

// Owner returns the opaque value supplied to NewNode.
func (n *Node) Owner() any { return n.owner }

// Disposed reports whether the node has been permanently removed from its
// graph. A disposed node cannot take part in any further graph operation.
func (n *Node) Disposed() bool { return n.disposed }

// Graph owns a set of nodes and the edges between them. The zero value is not
// usable; create graphs with New. A Graph is not safe for concurrent use.
type Graph struct {
	nodes map[*Node]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{nodes: make(map[*Node]struct{})}
}

// NewNode creates a node owned by the graph. owner is stored verbatim and
// returned by Node.Owner; it is how callers map graph nodes back to domain
// objects.
func (g *Graph) NewNode(owner any) *Node {
	n := &Node{graph: g, owner: owner}
	g.nodes[n] = struct{}{}
	return n
}

// AddRef creates an edge named name from parent to child. List-valued
// relations rely on edges preserving insertion order, so repeated AddRef calls
// with the same name append.
func (g *Graph) AddRef(parent, child *Node, name string) (*Edge, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if err := g.check(parent); err != nil {
		return nil, err
	}
	if err := g.check(child); err != nil {
		return nil, err
	}
	e := &Edge{name: name, parent: parent, child: child}
	parent.out = append(parent.out, e)
	child.in = append(child.in, e)
	return e, nil
}

// RemoveRef removes the first edge named name from parent to child. Removal is
// always explicit: the graph never drops an edge on its own.
func (g *Graph) RemoveRef(parent, child *Node, name string) error {
	if err := g.check(parent); err != nil {
		return err
	}
	for _, e := range parent.out {
		if e.name == name && e.child == child {
			g.removeEdge(e)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrEdgeNotFound, name)
}

// RemoveEdge removes one specific edge.
func (g *Graph) RemoveEdge(e *Edge) {
	g.removeEdge(e)
}

// Refs returns the edges named name leaving parent, in insertion order.
func (g *Graph) Refs(parent *Node, name string) []*Edge {
	var out []*Edge
	for _, e := range parent.out {
		if e.name == name {
			out = append(out, e)
		}
	}
	return out
}

// Ref returns the first edge named name leaving parent, or nil.
func (g *Graph) Ref(parent *Node, name string) *Edge {
	for _, e := range parent.out {
		if e.name == name {
			return e
		}
	}
	return nil
}

// Children returns all outbound edges of parent in insertion order.
func (g *Graph) Children(parent *Node) []*Edge {
	out := make([]*Edge, len(parent.out))
	copy(out, parent.out)
	return out
}

// Parents returns the distinct nodes holding at least one edge into child.
func (g *Graph) Parents(child *Node) []*Node {
	seen := make(map[*Node]struct{}, len(child.in))
	var out []*Node
	for _, e := range child.in {
		if _, ok := seen[e.parent]; ok {
			continue
		}
		seen[e.parent] = struct{}{}
		out = append(out, e.parent)
	}
	return out
}

// ParentEdges returns all inbound edges of child in insertion order.
func (g *Graph) ParentEdges(child *Node) []*Edge {
	out := make([]*Edge, len(child.in))
	copy(out, child.in)
	return out
}

// Detach removes every inbound and outbound edge of n, leaving the node alive
// but orphaned. Holders of inbound edges are notified per removed edge.
func (g *Graph) Detach(n *Node) error {
	if err := g.check(n); err != nil {
		return err
	}
	for len(n.out) > 0 {
		g.removeEdge(n.out[0])
	}
	for len(n.in) > 0 {
		g.removeEdge(n.in[0])
	}
	return nil
}

// Dispose detaches n and marks it permanently unusable. Further graph
// operations on the node fail with ErrNodeDisposed. Disposing an already
// disposed node is a no-op.
func (g *Graph) Dispose(n *Node) {
	if n.disposed {
		return
	}
	g.Detach(n)
	n.disposed = true
	delete(g.nodes, n)
}

// Len returns the number of live nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

func (g *Graph) check(n *Node) error {
	if n.disposed {
		return ErrNodeDisposed
	}
	if n.graph != g {
		return ErrCrossGraph
	}
	return nil
}

// removeEdge unlinks e from both endpoints and notifies watchers. The parent
// is notified first, then the child, both synchronously; stale back-pointers
// must never outlive this call.
func (g *Graph) removeEdge(e *Edge) {
	e.parent.out = cutEdge(e.parent.out, e)
	e.child.in = cutEdge(e.child.in, e)
	if w, ok := e.parent.owner.(EdgeWatcher); ok {
		w.EdgeRemoved(e)
	}
	if w, ok := e.child.owner.(EdgeWatcher); ok {
		w.EdgeRemoved(e)
	}
}

func cutEdge(edges []*Edge, e *Edge) []*Edge {
	for i, x := range edges {
		if x == e {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
