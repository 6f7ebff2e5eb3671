package document

// Animation sampler interpolation modes.
const (
	InterpolationLinear      = "LINEAR"
	InterpolationStep        = "STEP"
	InterpolationCubicSpline = "CUBICSPLINE"
)

// Animation channel target paths.
const (
	PathTranslation = "translation"
	PathRotation    = "rotation"
	PathScale       = "scale"
	PathWeights     = "weights"
)

const (
	refChannels   = "channels"
	refSamplers   = "samplers"
	refTargetNode = "targetNode"
	refSampler    = "sampler"
	refInput      = "input"
	refOutput     = "output"
)

// Animation is an ordered set of channels and samplers. Channels bind
// sampler outputs to node properties.
type Animation struct {
	property
}

// AddChannel appends a channel.
func (a *Animation) AddChannel(c *AnimationChannel) *Animation {
	a.addRef(refChannels, c)
	return a
}

// RemoveChannel removes one channel.
func (a *Animation) RemoveChannel(c *AnimationChannel) *Animation {
	a.removeRef(refChannels, c)
	return a
}

// ListChannels returns the channels in insertion order.
func (a *Animation) ListChannels() []*AnimationChannel {
	return listAs[*AnimationChannel](a.listRefs(refChannels))
}

// AddSampler appends a sampler.
func (a *Animation) AddSampler(s *AnimationSampler) *Animation {
	a.addRef(refSamplers, s)
	return a
}

// RemoveSampler removes one sampler.
func (a *Animation) RemoveSampler(s *AnimationSampler) *Animation {
	a.removeRef(refSamplers, s)
	return a
}

// ListSamplers returns the samplers in insertion order.
func (a *Animation) ListSamplers() []*AnimationSampler {
	return listAs[*AnimationSampler](a.listRefs(refSamplers))
}

// CopyFrom copies the channel and sampler lists from src.
func (a *Animation) CopyFrom(src *Animation, resolve Resolver) *Animation {
	a.check()
	a.copyBase(&src.property)
	for _, c := range a.ListChannels() {
		a.removeRef(refChannels, c)
	}
	for _, c := range src.ListChannels() {
		a.addRef(refChannels, resolve(c).(*AnimationChannel))
	}
	for _, s := range a.ListSamplers() {
		a.removeRef(refSamplers, s)
	}
	for _, s := range src.ListSamplers() {
		a.addRef(refSamplers, resolve(s).(*AnimationSampler))
	}
	return a
}

// Equals compares channels and samplers structurally.
func (a *Animation) Equals(other Property) bool {
	o, ok := other.(*Animation)
	if !ok {
		return false
	}
	return a.equalsBase(&o.property) &&
		refListEquals(a.ListChannels(), o.ListChannels()) &&
		refListEquals(a.ListSamplers(), o.ListSamplers())
}

// AnimationChannel binds one sampler to one (node, path) target.
type AnimationChannel struct {
	property
	targetPath string
}

// TargetPath returns the animated property path (translation, rotation,
// scale, or weights).
func (c *AnimationChannel) TargetPath() string { return c.targetPath }

// SetTargetPath sets the animated property path.
func (c *AnimationChannel) SetTargetPath(path string) *AnimationChannel {
	c.check()
	c.targetPath = path
	return c
}

// TargetNode returns the animated node, or nil.
func (c *AnimationChannel) TargetNode() *Node {
	if n := c.getRef(refTargetNode); n != nil {
		return n.(*Node)
	}
	return nil
}

// SetTargetNode sets or clears the animated node.
func (c *AnimationChannel) SetTargetNode(n *Node) *AnimationChannel {
	if n == nil {
		c.setRef(refTargetNode, nil)
	} else {
		c.setRef(refTargetNode, n)
	}
	return c
}

// Sampler returns the bound sampler, or nil.
func (c *AnimationChannel) Sampler() *AnimationSampler {
	if s := c.getRef(refSampler); s != nil {
		return s.(*AnimationSampler)
	}
	return nil
}

// SetSampler sets or clears the bound sampler.
func (c *AnimationChannel) SetSampler(s *AnimationSampler) *AnimationChannel {
	if s == nil {
		c.setRef(refSampler, nil)
	} else {
		c.setRef(refSampler, s)
	}
	return c
}

// CopyFrom copies the target path, node, and sampler from src.
func (c *AnimationChannel) CopyFrom(src *AnimationChannel, resolve Resolver) *AnimationChannel {
	c.check()
	c.copyBase(&src.property)
	c.targetPath = src.targetPath
	c.SetTargetNode(resolveAs[*Node](resolve, src.getRef(refTargetNode)))
	c.SetSampler(resolveAs[*AnimationSampler](resolve, src.getRef(refSampler)))
	return c
}

// Equals compares target path, node, and sampler structurally.
func (c *AnimationChannel) Equals(other Property) bool {
	o, ok := other.(*AnimationChannel)
	if !ok {
		return false
	}
	return c.targetPath == o.targetPath &&
		c.equalsBase(&o.property) &&
		refEquals(c.getRef(refTargetNode), o.getRef(refTargetNode)) &&
		refEquals(c.getRef(refSampler), o.getRef(refSampler))
}

// AnimationSampler holds keyframe data: an input (times) accessor, an output
// (values) accessor, and an interpolation mode.
type AnimationSampler struct {
	property
	interpolation string
}

// Interpolation returns the interpolation mode, default InterpolationLinear.
func (s *AnimationSampler) Interpolation() string { return s.interpolation }

// SetInterpolation sets the interpolation mode.
func (s *AnimationSampler) SetInterpolation(mode string) *AnimationSampler {
	s.check()
	s.interpolation = mode
	return s
}

// Input returns the keyframe time accessor, or nil.
func (s *AnimationSampler) Input() *Accessor {
	if a := s.getRef(refInput); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetInput sets or clears the keyframe time accessor.
func (s *AnimationSampler) SetInput(a *Accessor) *AnimationSampler {
	if a == nil {
		s.setRef(refInput, nil)
	} else {
		s.setRef(refInput, a)
	}
	return s
}

// Output returns the keyframe value accessor, or nil.
func (s *AnimationSampler) Output() *Accessor {
	if a := s.getRef(refOutput); a != nil {
		return a.(*Accessor)
	}
	return nil
}

// SetOutput sets or clears the keyframe value accessor.
func (s *AnimationSampler) SetOutput(a *Accessor) *AnimationSampler {
	if a == nil {
		s.setRef(refOutput, nil)
	} else {
		s.setRef(refOutput, a)
	}
	return s
}

// CopyFrom copies interpolation and accessor edges from src.
func (s *AnimationSampler) CopyFrom(src *AnimationSampler, resolve Resolver) *AnimationSampler {
	s.check()
	s.copyBase(&src.property)
	s.interpolation = src.interpolation
	s.SetInput(resolveAs[*Accessor](resolve, src.getRef(refInput)))
	s.SetOutput(resolveAs[*Accessor](resolve, src.getRef(refOutput)))
	return s
}

// Equals compares interpolation and accessors structurally.
func (s *AnimationSampler) Equals(other Property) bool {
	o, ok := other.(*AnimationSampler)
	if !ok {
		return false
	}
	return s.interpolation == o.interpolation &&
		s.equalsBase(&o.property) &&
		refEquals(s.getRef(refInput), o.getRef(refInput)) &&
		refEquals(s.getRef(refOutput), o.getRef(refOutput))
}
