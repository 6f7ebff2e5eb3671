package document

import "fmt"

// Merge copies everything reachable from other's Root into d. It first
// creates a structural stub for every source property, building a
// source-to-destination map, then replays each property's CopyFrom with that
// map as the resolver, so inter-property edges land on the new copies rather
// than pointing back into the source graph. The source document is not
// modified. Destination asset metadata and default scene are kept.
func (d *Document) Merge(other *Document) error {
	m := make(map[Property]Property)
	resolve := func(p Property) Property {
		if dst, ok := m[p]; ok {
			return dst
		}
		return p
	}

	src := other.Root()

	// Stub pass: allocate destination counterparts in creation order.
	for _, b := range src.ListBuffers() {
		m[b] = d.CreateBuffer(b.Name())
	}
	for _, t := range src.ListTextures() {
		m[t] = d.CreateTexture(t.Name())
	}
	for _, a := range src.ListAccessors() {
		m[a] = d.CreateAccessor(a.Name())
	}
	for _, mat := range src.ListMaterials() {
		m[mat] = d.CreateMaterial(mat.Name())
	}
	for _, mesh := range src.ListMeshes() {
		m[mesh] = d.CreateMesh(mesh.Name())
		for _, prim := range mesh.ListPrimitives() {
			m[prim] = d.CreatePrimitive()
			for _, tgt := range prim.ListTargets() {
				m[tgt] = d.CreatePrimitiveTarget(tgt.Name())
			}
		}
	}
	for _, c := range src.ListCameras() {
		m[c] = d.CreateCamera(c.Name())
	}
	for _, s := range src.ListSkins() {
		m[s] = d.CreateSkin(s.Name())
	}
	for _, n := range src.ListNodes() {
		m[n] = d.CreateNode(n.Name())
	}
	for _, s := range src.ListScenes() {
		m[s] = d.CreateScene(s.Name())
	}
	for _, a := range src.ListAnimations() {
		m[a] = d.CreateAnimation(a.Name())
		for _, c := range a.ListChannels() {
			m[c] = d.CreateAnimationChannel()
		}
		for _, s := range a.ListSamplers() {
			m[s] = d.CreateAnimationSampler()
		}
	}
	for _, e := range src.ListExtensions() {
		de := d.CreateExtension(e.ExtensionName()).SetRequired(e.Required())
		m[e] = de
		for _, ep := range e.ListProperties() {
			m[ep] = de.CreateProperty(ep.Name(), ep.ParentKinds()...).SetFields(ep.Fields())
		}
	}

	// Copy pass: attributes and edges, remapped through the stub map.
	for s, dst := range m {
		switch s := s.(type) {
		case *Buffer:
			dst.(*Buffer).CopyFrom(s, resolve)
		case *Texture:
			dst.(*Texture).CopyFrom(s, resolve)
		case *Accessor:
			dst.(*Accessor).CopyFrom(s, resolve)
		case *Material:
			dst.(*Material).CopyFrom(s, resolve)
		case *Mesh:
			dst.(*Mesh).CopyFrom(s, resolve)
		case *Primitive:
			dst.(*Primitive).CopyFrom(s, resolve)
		case *PrimitiveTarget:
			dst.(*PrimitiveTarget).CopyFrom(s, resolve)
		case *Camera:
			dst.(*Camera).CopyFrom(s, resolve)
		case *Skin:
			dst.(*Skin).CopyFrom(s, resolve)
		case *Node:
			dst.(*Node).CopyFrom(s, resolve)
		case *Scene:
			dst.(*Scene).CopyFrom(s, resolve)
		case *Animation:
			dst.(*Animation).CopyFrom(s, resolve)
		case *AnimationChannel:
			dst.(*AnimationChannel).CopyFrom(s, resolve)
		case *AnimationSampler:
			dst.(*AnimationSampler).CopyFrom(s, resolve)
		case *Extension, *ExtensionProperty:
			// Copied during the stub pass.
		default:
			return fmt.Errorf("document: merge: unhandled property kind %s", s.Kind())
		}
	}

	// Replay extension attachments on the copied parents.
	for s, dst := range m {
		if _, ok := s.(*ExtensionProperty); ok {
			continue
		}
		for _, e := range other.g.Children(s.graphNode()) {
			ep, ok := e.Child().Owner().(*ExtensionProperty)
			if !ok {
				continue
			}
			if err := AttachExtension(dst, m[ep].(*ExtensionProperty)); err != nil {
				return fmt.Errorf("document: merge: %w", err)
			}
		}
	}

	return nil
}
