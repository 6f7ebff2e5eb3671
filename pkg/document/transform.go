package document

// Transform is a whole-document mutation, applied through
// Document.Transform.
type Transform func(*Document) error

// Transform applies each transform in order, stopping at the first error.
func (d *Document) Transform(fns ...Transform) error {
	for _, fn := range fns {
		if err := fn(d); err != nil {
			return err
		}
	}
	return nil
}

// Prune disposes leaf properties referenced only by the Root: materials,
// textures, meshes, cameras, skins, accessors, and buffers that no other
// property uses. It iterates until a fixpoint, so a material that becomes
// unreferenced when its mesh is pruned goes too. Nodes and scenes are never
// pruned.
func Prune() Transform {
	return func(d *Document) error {
		for {
			removed := 0
			root := d.Root()
			var candidates []Property
			for _, m := range root.ListMeshes() {
				candidates = append(candidates, m)
			}
			for _, m := range root.ListMaterials() {
				candidates = append(candidates, m)
			}
			for _, t := range root.ListTextures() {
				candidates = append(candidates, t)
			}
			for _, s := range root.ListSkins() {
				candidates = append(candidates, s)
			}
			for _, c := range root.ListCameras() {
				candidates = append(candidates, c)
			}
			for _, a := range root.ListAccessors() {
				candidates = append(candidates, a)
			}
			for _, b := range root.ListBuffers() {
				candidates = append(candidates, b)
			}
			for _, p := range candidates {
				if onlyRootParent(p) {
					p.Dispose()
					removed++
				}
			}
			if removed == 0 {
				return nil
			}
		}
	}
}

func onlyRootParent(p Property) bool {
	for _, parent := range p.base().ListParents() {
		if parent.Kind() != KindRoot {
			return false
		}
	}
	return true
}
