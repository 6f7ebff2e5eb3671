package document

import "strings"

// Primitive topology modes, GL enum values.
const (
	PrimitiveModePoints        = 0
	PrimitiveModeLines         = 1
	PrimitiveModeLineLoop      = 2
	PrimitiveModeLineStrip     = 3
	PrimitiveModeTriangles     = 4
	PrimitiveModeTriangleStrip = 5
	PrimitiveModeTriangleFan   = 6
)

const (
	refPrimitives = "primitives"
	refIndices    = "indices"
	refMaterial   = "material"
	refTargets    = "targets"

	// Per-semantic vertex attribute edges are named with this prefix so the
	// semantic survives as part of the edge name, e.g. "attributes.POSITION".
	attributePrefix = "attributes."
)

// Mesh is an ordered list of Primitives plus default morph target weights.
type Mesh struct {
	property
	weights []float64
}

// Weights returns the default morph target weights.
func (m *Mesh) Weights() []float64 { return m.weights }

// SetWeights sets the default morph target weights.
func (m *Mesh) SetWeights(weights []float64) *Mesh {
	m.check()
	m.weights = weights
	return m
}

// AddPrimitive appends a primitive. Order is preserved: wire-format
// primitive arrays are order-sensitive.
func (m *Mesh) AddPrimitive(p *Primitive) *Mesh {
	m.addRef(refPrimitives, p)
	return m
}

// RemovePrimitive removes one primitive.
func (m *Mesh) RemovePrimitive(p *Primitive) *Mesh {
	m.removeRef(refPrimitives, p)
	return m
}

// ListPrimitives returns the primitives in insertion order.
func (m *Mesh) ListPrimitives() []*Primitive {
	return listAs[*Primitive](m.listRefs(refPrimitives))
}

// CopyFrom copies weights and the primitive list from src.
func (m *Mesh) CopyFrom(src *Mesh, resolve Resolver) *Mesh {
	m.check()
	m.copyBase(&src.property)
	m.weights = append([]float64(nil), src.weights...)
	for _, p := range m.ListPrimitives() {
		m.removeRef(refPrimitives, p)
	}
	for _, p := range src.ListPrimitives() {
		m.addRef(refPrimitives, resolve(p).(*Primitive))
	}
	return m
}

// Equals compares weights and primitives structurally.
func (m *Mesh) Equals(other Property) bool {
	o, ok := other.(*Mesh)
	if !ok {
		return false
	}
	if !float64SliceEquals(m.weights, o.weights) || !m.equalsBase(&o.property) {
		return false
	}
	return refListEquals(m.ListPrimitives(), o.ListPrimitives())
}

// Primitive is one drawable unit: per-semantic vertex attributes, optional
// indices, an optional material, a topology mode, and morph targets. Two
// primitives are equal if their accessors and material are equal, not
// identical.
type Primitive struct {
	property
	mode int
}

// Mode returns the topology mode, default PrimitiveModeTriangles.
func (p *Primitive) Mode() int { return p.mode }

// SetMode sets the topology mode.
func (p *Primitive) SetMode(mode int) *Primitive {
	p.check()
	p.mode = mode
	return p
}

// Indices returns the index accessor, or nil.
func (p *Primitive) Indices() *Accessor {
	if a := p.getRef(refIndices); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetIndices sets or clears the index accessor.
func (p *Primitive) SetIndices(a *Accessor) *Primitive {
	if a == nil {
		p.setRef(refIndices, nil)
	} else {
		p.setRef(refIndices, a)
	}
	return p
}

// Material returns the material, or nil.
func (p *Primitive) Material() *Material {
	if m := p.getRef(refMaterial); m != nil {
		return m.(*Material)
	}
	return nil
}

// SetMaterial sets or clears the material.
func (p *Primitive) SetMaterial(m *Material) *Primitive {
	if m == nil {
		p.setRef(refMaterial, nil)
	} else {
		p.setRef(refMaterial, m)
	}
	return p
}

// Attribute returns the accessor bound to a vertex attribute semantic
// ("POSITION", "NORMAL", "TEXCOORD_0", ...), or nil.
func (p *Primitive) Attribute(semantic string) *Accessor {
	if a := p.getRef(attributePrefix + semantic); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetAttribute binds an accessor to a vertex attribute semantic; a nil
// accessor unbinds it.
func (p *Primitive) SetAttribute(semantic string, a *Accessor) *Primitive {
	if a == nil {
		p.setRef(attributePrefix+semantic, nil)
	} else {
		p.setRef(attributePrefix+semantic, a)
	}
	return p
}

// Semantics returns the bound attribute semantics in insertion order.
func (p *Primitive) Semantics() []string {
	return attributeSemantics(&p.property)
}

// ListAttributes returns the bound accessors in the same order as Semantics.
func (p *Primitive) ListAttributes() []*Accessor {
	return attributeAccessors(&p.property)
}

// AddTarget appends a morph target.
func (p *Primitive) AddTarget(t *PrimitiveTarget) *Primitive {
	p.addRef(refTargets, t)
	return p
}

// RemoveTarget removes one morph target.
func (p *Primitive) RemoveTarget(t *PrimitiveTarget) *Primitive {
	p.removeRef(refTargets, t)
	return p
}

// ListTargets returns the morph targets in insertion order.
func (p *Primitive) ListTargets() []*PrimitiveTarget {
	return listAs[*PrimitiveTarget](p.listRefs(refTargets))
}

// CopyFrom copies mode, attributes, indices, material, and targets from src.
func (p *Primitive) CopyFrom(src *Primitive, resolve Resolver) *Primitive {
	p.check()
	p.copyBase(&src.property)
	p.mode = src.mode
	for _, sem := range p.Semantics() {
		p.SetAttribute(sem, nil)
	}
	for _, sem := range src.Semantics() {
		p.SetAttribute(sem, resolve(src.Attribute(sem)).(*Accessor))
	}
	p.SetIndices(resolveAs[*Accessor](resolve, src.getRef(refIndices)))
	p.SetMaterial(resolveAs[*Material](resolve, src.getRef(refMaterial)))
	for _, t := range p.ListTargets() {
		p.removeRef(refTargets, t)
	}
	for _, t := range src.ListTargets() {
		p.addRef(refTargets, resolve(t).(*PrimitiveTarget))
	}
	return p
}

// Equals compares mode, attributes, indices, material, and targets
// structurally.
func (p *Primitive) Equals(other Property) bool {
	o, ok := other.(*Primitive)
	if !ok {
		return false
	}
	if p.mode != o.mode || !p.equalsBase(&o.property) {
		return false
	}
	if !semanticsEqual(&p.property, &o.property) {
		return false
	}
	return refEquals(p.getRef(refIndices), o.getRef(refIndices)) &&
		refEquals(p.getRef(refMaterial), o.getRef(refMaterial)) &&
		refListEquals(p.ListTargets(), o.ListTargets())
}

// PrimitiveTarget is a morph target: a set of per-semantic displacement
// accessors.
type PrimitiveTarget struct {
	property
}

// Attribute returns the accessor bound to a semantic, or nil.
func (t *PrimitiveTarget) Attribute(semantic string) *Accessor {
	if a := t.getRef(attributePrefix + semantic); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetAttribute binds an accessor to a semantic; nil unbinds.
func (t *PrimitiveTarget) SetAttribute(semantic string, a *Accessor) *PrimitiveTarget {
	if a == nil {
		t.setRef(attributePrefix+semantic, nil)
	} else {
		t.setRef(attributePrefix+semantic, a)
	}
	return t
}

// Semantics returns the bound semantics in insertion order.
func (t *PrimitiveTarget) Semantics() []string {
	return attributeSemantics(&t.property)
}

// ListAttributes returns the bound accessors in the same order as Semantics.
func (t *PrimitiveTarget) ListAttributes() []*Accessor {
	return attributeAccessors(&t.property)
}

// CopyFrom copies all semantic bindings from src.
func (t *PrimitiveTarget) CopyFrom(src *PrimitiveTarget, resolve Resolver) *PrimitiveTarget {
	t.check()
	t.copyBase(&src.property)
	for _, sem := range t.Semantics() {
		t.SetAttribute(sem, nil)
	}
	for _, sem := range src.Semantics() {
		t.SetAttribute(sem, resolve(src.Attribute(sem)).(*Accessor))
	}
	return t
}

// Equals compares semantic bindings structurally.
func (t *PrimitiveTarget) Equals(other Property) bool {
	o, ok := other.(*PrimitiveTarget)
	if !ok {
		return false
	}
	return t.equalsBase(&o.property) && semanticsEqual(&t.property, &o.property)
}

func attributeSemantics(p *property) []string {
	var out []string
	for _, e := range p.doc.g.Children(p.node) {
		if strings.HasPrefix(e.Name(), attributePrefix) {
			out = append(out, strings.TrimPrefix(e.Name(), attributePrefix))
		}
	}
	return out
}

func attributeAccessors(p *property) []*Accessor {
	var out []*Accessor
	for _, e := range p.doc.g.Children(p.node) {
		if strings.HasPrefix(e.Name(), attributePrefix) {
			out = append(out, e.Child().Owner().(*Accessor))
		}
	}
	return out
}

func semanticsEqual(a, b *property) bool {
	as := attributeSemantics(a)
	bs := attributeSemantics(b)
	if len(as) != len(bs) {
		return false
	}
	for _, sem := range as {
		av := a.getRef(attributePrefix + sem)
		bv := b.getRef(attributePrefix + sem)
		if bv == nil || !av.Equals(bv) {
			return false
		}
	}
	return true
}

func float64SliceEquals(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
