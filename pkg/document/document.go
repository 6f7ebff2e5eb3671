package document

import "github.com/Faultbox/gltfkit/pkg/graph"

// Document owns one property graph and its Root. All properties of a document
// are created through the Create* factory methods and share the document's
// graph. A Document is not safe for concurrent use.
type Document struct {
	g    *graph.Graph
	root *Root
}

// New returns an empty document containing only a Root with asset version
// "2.0".
func New() *Document {
	d := &Document{g: graph.New()}
	d.root = newRoot(d)
	return d
}

// Root returns the document's single Root property.
func (d *Document) Root() *Root { return d.root }

// Graph exposes the backing graph, mainly for diagnostics and tests.
func (d *Document) Graph() *graph.Graph { return d.g }

func initProperty(d *Document, owner Property, p *property, kind Kind, name string) {
	p.doc = d
	p.kind = kind
	p.name = name
	p.node = d.g.NewNode(owner)
}

// CreateScene creates a Scene and lists it on the Root.
func (d *Document) CreateScene(name string) *Scene {
	s := &Scene{}
	initProperty(d, s, &s.property, KindScene, name)
	d.root.addRef(refScenes, s)
	return s
}

// CreateNode creates a Node and lists it on the Root.
func (d *Document) CreateNode(name string) *Node {
	n := &Node{}
	initProperty(d, n, &n.property, KindNode, name)
	n.translation = [3]float64{0, 0, 0}
	n.rotation = [4]float64{0, 0, 0, 1}
	n.scale = [3]float64{1, 1, 1}
	d.root.addRef(refNodes, n)
	return n
}

// CreateMesh creates a Mesh and lists it on the Root.
func (d *Document) CreateMesh(name string) *Mesh {
	m := &Mesh{}
	initProperty(d, m, &m.property, KindMesh, name)
	d.root.addRef(refMeshes, m)
	return m
}

// CreatePrimitive creates a Primitive. Primitives are owned by a Mesh, not
// listed on the Root.
func (d *Document) CreatePrimitive() *Primitive {
	p := &Primitive{mode: PrimitiveModeTriangles}
	initProperty(d, p, &p.property, KindPrimitive, "")
	return p
}

// CreatePrimitiveTarget creates a morph target for a Primitive.
func (d *Document) CreatePrimitiveTarget(name string) *PrimitiveTarget {
	t := &PrimitiveTarget{}
	initProperty(d, t, &t.property, KindPrimitiveTarget, name)
	return t
}

// CreateMaterial creates a Material and lists it on the Root.
func (d *Document) CreateMaterial(name string) *Material {
	m := newMaterial(d, name)
	d.root.addRef(refMaterials, m)
	return m
}

// CreateTexture creates a Texture and lists it on the Root.
func (d *Document) CreateTexture(name string) *Texture {
	t := &Texture{}
	initProperty(d, t, &t.property, KindTexture, name)
	d.root.addRef(refTextures, t)
	return t
}

// CreateAccessor creates an Accessor and lists it on the Root.
func (d *Document) CreateAccessor(name string) *Accessor {
	a := &Accessor{elementType: TypeScalar}
	initProperty(d, a, &a.property, KindAccessor, name)
	d.root.addRef(refAccessors, a)
	return a
}

// CreateBuffer creates a Buffer and lists it on the Root.
func (d *Document) CreateBuffer(name string) *Buffer {
	b := &Buffer{}
	initProperty(d, b, &b.property, KindBuffer, name)
	d.root.addRef(refBuffers, b)
	return b
}

// CreateCamera creates a Camera and lists it on the Root.
func (d *Document) CreateCamera(name string) *Camera {
	c := &Camera{cameraType: CameraTypePerspective}
	initProperty(d, c, &c.property, KindCamera, name)
	d.root.addRef(refCameras, c)
	return c
}

// CreateSkin creates a Skin and lists it on the Root.
func (d *Document) CreateSkin(name string) *Skin {
	s := &Skin{}
	initProperty(d, s, &s.property, KindSkin, name)
	d.root.addRef(refSkins, s)
	return s
}

// CreateAnimation creates an Animation and lists it on the Root.
func (d *Document) CreateAnimation(name string) *Animation {
	a := &Animation{}
	initProperty(d, a, &a.property, KindAnimation, name)
	d.root.addRef(refAnimations, a)
	return a
}

// CreateAnimationChannel creates a channel, owned by an Animation.
func (d *Document) CreateAnimationChannel() *AnimationChannel {
	c := &AnimationChannel{}
	initProperty(d, c, &c.property, KindAnimationChannel, "")
	return c
}

// CreateAnimationSampler creates a sampler, owned by an Animation.
func (d *Document) CreateAnimationSampler() *AnimationSampler {
	s := &AnimationSampler{interpolation: InterpolationLinear}
	initProperty(d, s, &s.property, KindAnimationSampler, "")
	return s
}

// CreateExtension enables a named extension on this document. Creating the
// same extension twice returns the existing instance.
func (d *Document) CreateExtension(extensionName string) *Extension {
	for _, e := range d.root.ListExtensions() {
		if e.ExtensionName() == extensionName {
			return e
		}
	}
	e := &Extension{extensionName: extensionName}
	initProperty(d, e, &e.property, KindExtension, "")
	d.root.addRef(refExtensions, e)
	return e
}
