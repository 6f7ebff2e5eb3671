// Package document implements the glTF document model: a typed, mutable graph
// of properties (buffers, accessors, materials, meshes, nodes, animations)
// with reference tracking and lifecycle rules. Properties are created through
// factory methods on Document and destroyed with Dispose; the underlying
// edges live in a pkg/graph Graph so parent lookups never go stale.
package document

import (
	"fmt"

	"github.com/Faultbox/gltfkit/pkg/graph"
)

// Kind identifies the concrete type of a property. The set is closed; open
// extension data hangs off Extension and ExtensionProperty instead.
type Kind int

// Property kinds.
const (
	KindRoot Kind = iota
	KindScene
	KindNode
	KindMesh
	KindPrimitive
	KindPrimitiveTarget
	KindMaterial
	KindTexture
	KindTextureInfo
	KindAccessor
	KindBuffer
	KindCamera
	KindSkin
	KindAnimation
	KindAnimationChannel
	KindAnimationSampler
	KindExtension
	KindExtensionProperty
)

var kindNames = map[Kind]string{
	KindRoot:              "Root",
	KindScene:             "Scene",
	KindNode:              "Node",
	KindMesh:              "Mesh",
	KindPrimitive:         "Primitive",
	KindPrimitiveTarget:   "PrimitiveTarget",
	KindMaterial:          "Material",
	KindTexture:           "Texture",
	KindTextureInfo:       "TextureInfo",
	KindAccessor:          "Accessor",
	KindBuffer:            "Buffer",
	KindCamera:            "Camera",
	KindSkin:              "Skin",
	KindAnimation:         "Animation",
	KindAnimationChannel:  "AnimationChannel",
	KindAnimationSampler:  "AnimationSampler",
	KindExtension:         "Extension",
	KindExtensionProperty: "ExtensionProperty",
}

// String returns a human-readable kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Resolver maps a source-graph property to its counterpart in a destination
// graph during CopyFrom. Identity keeps edges pointing at the original
// properties (reference-sharing clone); Merge supplies a remapping resolver.
type Resolver func(Property) Property

// Identity is the default resolver: edges keep pointing at the same
// properties.
func Identity(p Property) Property { return p }

// Property is the common surface of every document entity. All concrete
// implementations live in this package; the unexported method closes the set.
type Property interface {
	// Kind returns the concrete type tag.
	Kind() Kind
	// Name returns the optional, non-unique name.
	Name() string
	// SetName sets the optional, non-unique name.
	SetName(name string)
	// Extras returns the free-form extras map, which may be nil.
	Extras() map[string]any
	// SetExtras replaces the free-form extras map.
	SetExtras(extras map[string]any)
	// Disposed reports whether Dispose has been called.
	Disposed() bool
	// Dispose removes the property from the graph. All holders of references
	// to it see those references removed; the property itself becomes
	// permanently unusable.
	Dispose()
	// Equals performs a deep structural comparison, independent of identity
	// or graph membership.
	Equals(other Property) bool

	document() *Document
	graphNode() *graph.Node
	base() *property
}

// property is the embedded base of every concrete property type.
type property struct {
	doc    *Document
	node   *graph.Node
	kind   Kind
	name   string
	extras map[string]any
}

func (p *property) Kind() Kind            { return p.kind }
func (p *property) Name() string          { return p.name }
func (p *property) Extras() map[string]any { return p.extras }
func (p *property) Disposed() bool        { return p.node.Disposed() }

func (p *property) document() *Document    { return p.doc }
func (p *property) graphNode() *graph.Node { return p.node }
func (p *property) base() *property        { return p }

// SetName sets the optional, non-unique name.
func (p *property) SetName(name string) {
	p.check()
	p.name = name
}

// SetExtras replaces the free-form extras map.
func (p *property) SetExtras(extras map[string]any) {
	p.check()
	p.extras = extras
}

// check panics if the property has been disposed. Attribute writes share the
// same fail-fast contract as graph edges.
func (p *property) check() {
	if p.node.Disposed() {
		panic(fmt.Sprintf("document: %s: %v", p.kind, graph.ErrNodeDisposed))
	}
}

// Dispose detaches the property from every holder and marks it unusable.
// Holders are notified synchronously; cascading detach, not cascading delete.
func (p *property) Dispose() {
	p.doc.g.Dispose(p.node)
}

// ListParents returns the distinct properties currently referencing p.
func (p *property) ListParents() []Property {
	nodes := p.doc.g.Parents(p.node)
	out := make([]Property, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Owner().(Property))
	}
	return out
}

// must panics on graph errors. Every graph failure reachable from a property
// setter is a caller bug (typically use after Dispose), so the fluent API
// fails fast instead of returning errors from every chained call.
func (p *property) must(err error) {
	if err != nil {
		panic(fmt.Sprintf("document: %s: %v", p.kind, err))
	}
}

func (p *property) addRef(name string, child Property) {
	_, err := p.doc.g.AddRef(p.node, child.graphNode(), name)
	p.must(err)
}

func (p *property) removeRef(name string, child Property) {
	p.must(p.doc.g.RemoveRef(p.node, child.graphNode(), name))
}

// setRef replaces the single edge named name. A nil child just clears it.
func (p *property) setRef(name string, child Property) {
	if e := p.doc.g.Ref(p.node, name); e != nil {
		p.doc.g.RemoveEdge(e)
	}
	if child != nil {
		p.addRef(name, child)
	}
}

func (p *property) getRef(name string) Property {
	e := p.doc.g.Ref(p.node, name)
	if e == nil {
		return nil
	}
	return e.Child().Owner().(Property)
}

func (p *property) listRefs(name string) []Property {
	edges := p.doc.g.Refs(p.node, name)
	out := make([]Property, 0, len(edges))
	for _, e := range edges {
		out = append(out, e.Child().Owner().(Property))
	}
	return out
}

// copyBase copies name and extras from another property base.
func (p *property) copyBase(src *property) {
	p.name = src.name
	if src.extras == nil {
		p.extras = nil
		return
	}
	p.extras = make(map[string]any, len(src.extras))
	for k, v := range src.extras {
		p.extras[k] = v
	}
}

func (p *property) equalsBase(o *property) bool {
	if p.name != o.name || len(p.extras) != len(o.extras) {
		return false
	}
	for k, v := range p.extras {
		if ov, ok := o.extras[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// refEquals compares two single refs structurally.
func refEquals(a, b Property) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// refListEquals compares two ref lists element-wise.
func refListEquals[T Property](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// resolveAs applies a resolver to a possibly nil property and asserts the
// concrete type.
func resolveAs[T Property](res Resolver, p Property) T {
	var zero T
	if p == nil {
		return zero
	}
	return res(p).(T)
}
