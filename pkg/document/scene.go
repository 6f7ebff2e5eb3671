package document

// Scene is a set of root nodes. Scenes share the "children" edge name with
// nodes, so the single scene-graph parent invariant covers both.
type Scene struct {
	property
}

// AddChild attaches a root node. If the node already has a scene-graph
// parent it is detached from it first.
func (s *Scene) AddChild(child *Node) *Scene {
	attachChild(s, child)
	return s
}

// RemoveChild detaches one root node.
func (s *Scene) RemoveChild(child *Node) *Scene {
	s.removeRef(refChildren, child)
	return s
}

// Children returns the root nodes in insertion order.
func (s *Scene) Children() []*Node {
	return listAs[*Node](s.listRefs(refChildren))
}

// Traverse visits every node reachable from the scene depth-first, parents
// before children.
func (s *Scene) Traverse(visit func(*Node)) {
	for _, n := range s.Children() {
		traverseNode(n, visit)
	}
}

func traverseNode(n *Node, visit func(*Node)) {
	visit(n)
	for _, c := range n.Children() {
		traverseNode(c, visit)
	}
}

// CopyFrom copies the root node list from src, remapped through the
// resolver.
func (s *Scene) CopyFrom(src *Scene, resolve Resolver) *Scene {
	s.check()
	s.copyBase(&src.property)
	for _, c := range s.Children() {
		s.RemoveChild(c)
	}
	for _, c := range src.Children() {
		s.AddChild(resolve(c).(*Node))
	}
	return s
}

// Equals compares the root node lists structurally.
func (s *Scene) Equals(other Property) bool {
	o, ok := other.(*Scene)
	if !ok {
		return false
	}
	return s.equalsBase(&o.property) && refListEquals(s.Children(), o.Children())
}
