package document

const (
	refSkeleton = "skeleton"
	refIBM      = "inverseBindMatrices"
	refJoints   = "joints"
)

// Skin binds a mesh to a skeleton: an ordered joint list, an optional
// skeleton root, and an optional inverse-bind-matrix accessor.
type Skin struct {
	property
}

// Skeleton returns the skeleton root node, or nil.
func (s *Skin) Skeleton() *Node {
	if n := s.getRef(refSkeleton); n != nil {
		return n.(*Node)
	}
	return nil
}

// SetSkeleton sets or clears the skeleton root node.
func (s *Skin) SetSkeleton(n *Node) *Skin {
	if n == nil {
		s.setRef(refSkeleton, nil)
	} else {
		s.setRef(refSkeleton, n)
	}
	return s
}

// InverseBindMatrices returns the IBM accessor, or nil.
func (s *Skin) InverseBindMatrices() *Accessor {
	if a := s.getRef(refIBM); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetInverseBindMatrices sets or clears the IBM accessor.
func (s *Skin) SetInverseBindMatrices(a *Accessor) *Skin {
	if a == nil {
		s.setRef(refIBM, nil)
	} else {
		s.setRef(refIBM, a)
	}
	return s
}

// AddJoint appends a joint node. Joint order matters: it must match the IBM
// accessor element order.
func (s *Skin) AddJoint(n *Node) *Skin {
	s.addRef(refJoints, n)
	return s
}

// RemoveJoint removes one joint node.
func (s *Skin) RemoveJoint(n *Node) *Skin {
	s.removeRef(refJoints, n)
	return s
}

// ListJoints returns the joints in insertion order.
func (s *Skin) ListJoints() []*Node {
	return listAs[*Node](s.listRefs(refJoints))
}

// CopyFrom copies skeleton, IBMs, and the joint list from src.
func (s *Skin) CopyFrom(src *Skin, resolve Resolver) *Skin {
	s.check()
	s.copyBase(&src.property)
	s.SetSkeleton(resolveAs[*Node](resolve, src.getRef(refSkeleton)))
	s.SetInverseBindMatrices(resolveAs[*Accessor](resolve, src.getRef(refIBM)))
	for _, j := range s.ListJoints() {
		s.removeRef(refJoints, j)
	}
	for _, j := range src.ListJoints() {
		s.addRef(refJoints, resolve(j).(*Node))
	}
	return s
}

// Equals compares skeleton, IBMs, and joints structurally.
func (s *Skin) Equals(other Property) bool {
	o, ok := other.(*Skin)
	if !ok {
		return false
	}
	return s.equalsBase(&o.property) &&
		refEquals(s.getRef(refSkeleton), o.getRef(refSkeleton)) &&
		refEquals(s.getRef(refIBM), o.getRef(refIBM)) &&
		refListEquals(s.ListJoints(), o.ListJoints())
}
