package viewer

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/mogaika/model_viewer/config"
	"github.com/mogaika/model_viewer/frame"
)

// Camera is a perspective camera. Fov is vertical, in radians.
type Camera struct {
	Fov      float64    `json:"fov"`
	Aspect   float64    `json:"aspect"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
	Position mgl64.Vec3 `json:"position"`
	Target   mgl64.Vec3 `json:"target"`
}

func NewCamera(cfg config.Camera) Camera {
	pos := mgl64.Vec3(cfg.Position)
	return Camera{
		Fov:      mgl64.DegToRad(cfg.FovDegrees),
		Aspect:   1,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Position: pos,
		// unframed camera looks down -Z
		Target: pos.Sub(mgl64.Vec3{0, 0, 1}),
	}
}

func (c *Camera) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("Invalid viewport size %dx%d", width, height)
	}
	c.Aspect = float64(width) / float64(height)
	return nil
}

func (c *Camera) Apply(f frame.CameraFrame) {
	c.Position = f.Position
	c.Target = f.Target
}

func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(c.Fov, c.Aspect, c.Near, c.Far)
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, mgl64.Vec3{0, 1, 0})
}
