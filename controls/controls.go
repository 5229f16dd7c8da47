// Package controls turns mouse drag and wheel input into the transform of
// the rotating model group.
package controls

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/mogaika/model_viewer/utils"
)

type Params struct {
	RotateSpeed float64 `json:"rotate_speed" yaml:"rotate_speed"` // radians per pixel
	ZoomSpeed   float64 `json:"zoom_speed" yaml:"zoom_speed"`     // scale step per wheel event
	MinScale    float64 `json:"min_scale" yaml:"min_scale"`
	MaxScale    float64 `json:"max_scale" yaml:"max_scale"`
}

var DefaultParams = Params{
	RotateSpeed: 0.01,
	ZoomSpeed:   0.1,
	MinScale:    0.5,
	MaxScale:    2,
}

type Transform struct {
	RotationY float64 `json:"rotation_y"`
	Scale     float64 `json:"scale"`
}

func (t Transform) Matrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DY(t.RotationY).Mul4(mgl64.Scale3D(t.Scale, t.Scale, t.Scale))
}

// Controls is safe for concurrent use.
type Controls struct {
	lock      sync.Mutex
	params    Params
	transform Transform
	dragging  bool
	prevX     float64
	prevY     float64
}

func New(params Params) *Controls {
	return &Controls{
		params:    params,
		transform: Transform{Scale: 1},
	}
}

func (c *Controls) MouseDown(x, y float64) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.dragging = true
	c.prevX, c.prevY = x, y
}

// MouseMove rotates the group around Y by the horizontal delta while dragging
func (c *Controls) MouseMove(x, y float64) Transform {
	c.lock.Lock()
	defer c.lock.Unlock()
	if c.dragging {
		c.transform.RotationY += (x - c.prevX) * c.params.RotateSpeed
		c.prevX, c.prevY = x, y
	}
	return c.transform
}

func (c *Controls) MouseUp() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.dragging = false
}

// Wheel scrolling down (positive delta) shrinks the group, up grows it
func (c *Controls) Wheel(deltaY float64) Transform {
	c.lock.Lock()
	defer c.lock.Unlock()
	if deltaY == 0 {
		return c.transform
	}
	step := c.params.ZoomSpeed
	if deltaY > 0 {
		step = -step
	}
	c.transform.Scale = utils.Clamp(c.transform.Scale+step, c.params.MinScale, c.params.MaxScale)
	return c.transform
}

func (c *Controls) Dragging() bool {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.dragging
}

func (c *Controls) Transform() Transform {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.transform
}

func (c *Controls) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.transform = Transform{Scale: 1}
	c.dragging = false
}
