package document

// Root edge names. Wire-format arrays are order-sensitive, so every list here
// preserves insertion order.
const (
	refScenes     = "scenes"
	refNodes      = "nodes"
	refMeshes     = "meshes"
	refMaterials  = "materials"
	refTextures   = "textures"
	refAccessors  = "accessors"
	refBuffers    = "buffers"
	refAnimations = "animations"
	refCameras    = "cameras"
	refSkins      = "skins"
	refExtensions = "extensions"
	refScene      = "scene"
)

// Root is the single entry point of a document. It owns the top-level
// resource lists by reference, asset metadata, and the set of enabled
// extensions. Exactly one Root exists per Document and it is never disposed
// by user code. Root is not extensible.
type Root struct {
	property
	version   string
	generator string
	copyright string
}

func newRoot(d *Document) *Root {
	r := &Root{version: "2.0"}
	initProperty(d, r, &r.property, KindRoot, "")
	return r
}

// Version returns the asset version, "2.0" unless overridden by a reader.
func (r *Root) Version() string { return r.version }

// SetVersion sets the asset version.
func (r *Root) SetVersion(v string) *Root {
	r.check()
	r.version = v
	return r
}

// Generator returns the asset generator string.
func (r *Root) Generator() string { return r.generator }

// SetGenerator sets the asset generator string.
func (r *Root) SetGenerator(g string) *Root {
	r.check()
	r.generator = g
	return r
}

// Copyright returns the asset copyright.
func (r *Root) Copyright() string { return r.copyright }

// SetCopyright sets the asset copyright.
func (r *Root) SetCopyright(c string) *Root {
	r.check()
	r.copyright = c
	return r
}

// DefaultScene returns the default scene, or nil.
func (r *Root) DefaultScene() *Scene {
	if s := r.getRef(refScene); s != nil {
		return s.(*Scene)
	}
	return nil
}

// SetDefaultScene sets or clears the default scene.
func (r *Root) SetDefaultScene(s *Scene) *Root {
	if s == nil {
		r.setRef(refScene, nil)
	} else {
		r.setRef(refScene, s)
	}
	return r
}

func listAs[T Property](props []Property) []T {
	out := make([]T, 0, len(props))
	for _, p := range props {
		out = append(out, p.(T))
	}
	return out
}

// ListScenes returns the root scene list in creation order.
func (r *Root) ListScenes() []*Scene { return listAs[*Scene](r.listRefs(refScenes)) }

// ListNodes returns the root node list.
func (r *Root) ListNodes() []*Node { return listAs[*Node](r.listRefs(refNodes)) }

// ListMeshes returns the root mesh list.
func (r *Root) ListMeshes() []*Mesh { return listAs[*Mesh](r.listRefs(refMeshes)) }

// ListMaterials returns the root material list.
func (r *Root) ListMaterials() []*Material { return listAs[*Material](r.listRefs(refMaterials)) }

// ListTextures returns the root texture list.
func (r *Root) ListTextures() []*Texture { return listAs[*Texture](r.listRefs(refTextures)) }

// ListAccessors returns the root accessor list.
func (r *Root) ListAccessors() []*Accessor { return listAs[*Accessor](r.listRefs(refAccessors)) }

// ListBuffers returns the root buffer list.
func (r *Root) ListBuffers() []*Buffer { return listAs[*Buffer](r.listRefs(refBuffers)) }

// ListAnimations returns the root animation list.
func (r *Root) ListAnimations() []*Animation { return listAs[*Animation](r.listRefs(refAnimations)) }

// ListCameras returns the root camera list.
func (r *Root) ListCameras() []*Camera { return listAs[*Camera](r.listRefs(refCameras)) }

// ListSkins returns the root skin list.
func (r *Root) ListSkins() []*Skin { return listAs[*Skin](r.listRefs(refSkins)) }

// ListExtensions returns the enabled extensions.
func (r *Root) ListExtensions() []*Extension { return listAs[*Extension](r.listRefs(refExtensions)) }

// Equals compares asset metadata and all root lists structurally.
func (r *Root) Equals(other Property) bool {
	o, ok := other.(*Root)
	if !ok {
		return false
	}
	if r.version != o.version || r.generator != o.generator || r.copyright != o.copyright {
		return false
	}
	if !r.equalsBase(&o.property) {
		return false
	}
	return refListEquals(r.ListScenes(), o.ListScenes()) &&
		refListEquals(r.ListNodes(), o.ListNodes()) &&
		refListEquals(r.ListMeshes(), o.ListMeshes()) &&
		refListEquals(r.ListMaterials(), o.ListMaterials()) &&
		refListEquals(r.ListTextures(), o.ListTextures()) &&
		refListEquals(r.ListAccessors(), o.ListAccessors()) &&
		refListEquals(r.ListBuffers(), o.ListBuffers()) &&
		refListEquals(r.ListAnimations(), o.ListAnimations()) &&
		refListEquals(r.ListCameras(), o.ListCameras()) &&
		refListEquals(r.ListSkins(), o.ListSkins())
}
