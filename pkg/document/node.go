package document

import (
	"github.com/Faultbox/gltfkit/pkg/graph"
	"github.com/Faultbox/gltfkit/pkg/math"
)

const (
	refChildren = "children"
	refMesh     = "mesh"
	refCamera   = "camera"
	refSkin     = "skin"
)

// Node is one transform in the scene hierarchy, optionally carrying a mesh,
// camera, or skin. A Node has at most one scene-graph parent (a Node or a
// Scene) at a time: attaching to a new parent detaches from the previous one.
// The parent is also kept as an eagerly maintained back-pointer so world
// transforms walk up in O(1) per level; the graph keeps it in sync through
// edge-removal notifications.
type Node struct {
	property
	translation [3]float64
	rotation    [4]float64
	scale       [3]float64
	weights     []float64
	parent      Property // *Node or *Scene, nil when detached
}

// Translation returns the node translation, default [0,0,0].
func (n *Node) Translation() [3]float64 { return n.translation }

// SetTranslation sets the node translation.
func (n *Node) SetTranslation(t [3]float64) *Node {
	n.check()
	n.translation = t
	return n
}

// Rotation returns the node rotation quaternion [x,y,z,w], default identity.
func (n *Node) Rotation() [4]float64 { return n.rotation }

// SetRotation sets the node rotation quaternion [x,y,z,w].
func (n *Node) SetRotation(r [4]float64) *Node {
	n.check()
	n.rotation = r
	return n
}

// Scale returns the node scale, default [1,1,1].
func (n *Node) Scale() [3]float64 { return n.scale }

// SetScale sets the node scale.
func (n *Node) SetScale(s [3]float64) *Node {
	n.check()
	n.scale = s
	return n
}

// Weights returns the morph target weights applied to the node's mesh.
func (n *Node) Weights() []float64 { return n.weights }

// SetWeights sets the morph target weights.
func (n *Node) SetWeights(weights []float64) *Node {
	n.check()
	n.weights = weights
	return n
}

// SetMatrix sets translation, rotation, and scale from a decomposed
// transform matrix. Shear is lost.
func (n *Node) SetMatrix(m math.Mat4) *Node {
	n.check()
	t, r, s := math.Decompose(m)
	n.translation = t.Array()
	n.rotation = r.Array()
	n.scale = s.Array()
	return n
}

// LocalMatrix returns the node's local transform, composed T * R * S.
func (n *Node) LocalMatrix() math.Mat4 {
	return math.Compose(
		math.FromArray(n.translation),
		math.QuatFromArray(n.rotation),
		math.FromArray(n.scale),
	)
}

// WorldMatrix returns the node's world transform, the product of all
// ancestor local matrices down to this node.
func (n *Node) WorldMatrix() math.Mat4 {
	local := n.LocalMatrix()
	if p, ok := n.parent.(*Node); ok {
		return p.WorldMatrix().Mul(local)
	}
	return local
}

// Parent returns the scene-graph parent: a *Node, a *Scene, or nil.
func (n *Node) Parent() Property { return n.parent }

// AddChild attaches child under n. If child already has a scene-graph parent
// it is detached from that parent first; the invariant is enforced at attach
// time.
func (n *Node) AddChild(child *Node) *Node {
	attachChild(n, child)
	return n
}

// RemoveChild detaches one child node.
func (n *Node) RemoveChild(child *Node) *Node {
	n.removeRef(refChildren, child)
	return n
}

// Children returns the child nodes in insertion order.
func (n *Node) Children() []*Node {
	return listAs[*Node](n.listRefs(refChildren))
}

// Mesh returns the attached mesh, or nil.
func (n *Node) Mesh() *Mesh {
	if m := n.getRef(refMesh); m != nil {
		return m.(*Mesh)
	}
	return nil
}

// SetMesh attaches or clears the mesh.
func (n *Node) SetMesh(m *Mesh) *Node {
	if m == nil {
		n.setRef(refMesh, nil)
	} else {
		n.setRef(refMesh, m)
	}
	return n
}

// Camera returns the attached camera, or nil.
func (n *Node) Camera() *Camera {
	if c := n.getRef(refCamera); c != nil {
		return c.(*Camera)
	}
	return nil
}

// SetCamera attaches or clears the camera.
func (n *Node) SetCamera(c *Camera) *Node {
	if c == nil {
		n.setRef(refCamera, nil)
	} else {
		n.setRef(refCamera, c)
	}
	return n
}

// Skin returns the attached skin, or nil.
func (n *Node) Skin() *Skin {
	if s := n.getRef(refSkin); s != nil {
		return s.(*Skin)
	}
	return nil
}

// SetSkin attaches or clears the skin.
func (n *Node) SetSkin(s *Skin) *Node {
	if s == nil {
		n.setRef(refSkin, nil)
	} else {
		n.setRef(refSkin, s)
	}
	return n
}

// EdgeRemoved keeps the parent back-pointer in sync with the graph. It fires
// synchronously for every removed edge touching this node.
func (n *Node) EdgeRemoved(e *graph.Edge) {
	if e.Name() == refChildren && e.Child() == n.node {
		n.parent = nil
	}
}

var _ graph.EdgeWatcher = (*Node)(nil)

// CopyFrom copies attributes and attachment edges from src. Child nodes must
// be remapped through the resolver; an identity resolver panics, since a node
// cannot have two scene-graph parents.
func (n *Node) CopyFrom(src *Node, resolve Resolver) *Node {
	n.check()
	n.copyBase(&src.property)
	n.translation = src.translation
	n.rotation = src.rotation
	n.scale = src.scale
	n.weights = append([]float64(nil), src.weights...)
	n.SetMesh(resolveAs[*Mesh](resolve, src.getRef(refMesh)))
	n.SetCamera(resolveAs[*Camera](resolve, src.getRef(refCamera)))
	n.SetSkin(resolveAs[*Skin](resolve, src.getRef(refSkin)))
	for _, c := range n.Children() {
		n.RemoveChild(c)
	}
	for _, c := range src.Children() {
		rc := resolve(c).(*Node)
		if rc == c {
			// A node has at most one scene-graph parent; adopting the source's
			// children directly would steal them from it.
			panic("document: Node: copying children requires a remapping resolver")
		}
		n.AddChild(rc)
	}
	return n
}

// Equals compares transforms, weights, attachments, and children
// structurally.
func (n *Node) Equals(other Property) bool {
	o, ok := other.(*Node)
	if !ok {
		return false
	}
	if n.translation != o.translation || n.rotation != o.rotation || n.scale != o.scale {
		return false
	}
	if !float64SliceEquals(n.weights, o.weights) || !n.equalsBase(&o.property) {
		return false
	}
	return refEquals(n.getRef(refMesh), o.getRef(refMesh)) &&
		refEquals(n.getRef(refCamera), o.getRef(refCamera)) &&
		refEquals(n.getRef(refSkin), o.getRef(refSkin)) &&
		refListEquals(n.Children(), o.Children())
}

// attachChild enforces the single scene-graph parent invariant for "children"
// edges from Scenes and Nodes.
func attachChild(parent Property, child *Node) {
	if prev := child.parent; prev != nil {
		prev.base().removeRef(refChildren, child)
	}
	parent.base().addRef(refChildren, child)
	child.parent = parent
}
