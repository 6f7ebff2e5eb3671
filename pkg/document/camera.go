package document

// Camera projection types.
const (
	CameraTypePerspective  = "perspective"
	CameraTypeOrthographic = "orthographic"
)

// Camera holds either perspective or orthographic projection parameters,
// selected by Type. Unused parameters are ignored on write.
type Camera struct {
	property
	cameraType  string
	znear       float64
	zfar        float64 // 0 means infinite for perspective cameras
	yfov        float64
	aspectRatio float64 // 0 means unset
	xmag        float64
	ymag        float64
}

// Type returns the projection type, default CameraTypePerspective.
func (c *Camera) Type() string { return c.cameraType }

// SetType sets the projection type.
func (c *Camera) SetType(t string) *Camera {
	c.check()
	c.cameraType = t
	return c
}

// ZNear returns the near clipping distance.
func (c *Camera) ZNear() float64 { return c.znear }

// SetZNear sets the near clipping distance.
func (c *Camera) SetZNear(z float64) *Camera {
	c.check()
	c.znear = z
	return c
}

// ZFar returns the far clipping distance; 0 means an infinite perspective
// projection.
func (c *Camera) ZFar() float64 { return c.zfar }

// SetZFar sets the far clipping distance.
func (c *Camera) SetZFar(z float64) *Camera {
	c.check()
	c.zfar = z
	return c
}

// YFov returns the vertical field of view in radians.
func (c *Camera) YFov() float64 { return c.yfov }

// SetYFov sets the vertical field of view in radians.
func (c *Camera) SetYFov(f float64) *Camera {
	c.check()
	c.yfov = f
	return c
}

// AspectRatio returns the aspect ratio; 0 means unset.
func (c *Camera) AspectRatio() float64 { return c.aspectRatio }

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(r float64) *Camera {
	c.check()
	c.aspectRatio = r
	return c
}

// XMag returns the horizontal orthographic magnification.
func (c *Camera) XMag() float64 { return c.xmag }

// SetXMag sets the horizontal orthographic magnification.
func (c *Camera) SetXMag(m float64) *Camera {
	c.check()
	c.xmag = m
	return c
}

// YMag returns the vertical orthographic magnification.
func (c *Camera) YMag() float64 { return c.ymag }

// SetYMag sets the vertical orthographic magnification.
func (c *Camera) SetYMag(m float64) *Camera {
	c.check()
	c.ymag = m
	return c
}

// CopyFrom copies all projection parameters from src.
func (c *Camera) CopyFrom(src *Camera, _ Resolver) *Camera {
	c.check()
	c.copyBase(&src.property)
	c.cameraType = src.cameraType
	c.znear = src.znear
	c.zfar = src.zfar
	c.yfov = src.yfov
	c.aspectRatio = src.aspectRatio
	c.xmag = src.xmag
	c.ymag = src.ymag
	return c
}

// Equals compares all projection parameters.
func (c *Camera) Equals(other Property) bool {
	o, ok := other.(*Camera)
	if !ok {
		return false
	}
	return c.cameraType == o.cameraType &&
		c.znear == o.znear &&
		c.zfar == o.zfar &&
		c.yfov == o.yfov &&
		c.aspectRatio == o.aspectRatio &&
		c.xmag == o.xmag &&
		c.ymag == o.ymag &&
		c.equalsBase(&o.property)
}
