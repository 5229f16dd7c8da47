// Package frame places a perspective camera so that a model's bounding
// sphere fits inside the vertical field of view.
package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Params holds the framing tuning values. They have no derivation, they
// just look right for standing humanoid models.
type Params struct {
	// camera height as a fraction of the distance
	HeightFactor float64 `json:"height_factor" yaml:"height_factor"`
	// camera depth as a fraction of the distance
	BackFactor float64 `json:"back_factor" yaml:"back_factor"`
	// look-at height is radius / TargetDivisor
	TargetDivisor float64 `json:"target_divisor" yaml:"target_divisor"`
	// radius floor for degenerate boxes
	MinRadius float64 `json:"min_radius" yaml:"min_radius"`
}

var DefaultParams = Params{
	HeightFactor:  0.2,
	BackFactor:    1.1,
	TargetDivisor: 2,
	MinRadius:     1e-6,
}

func (p Params) Validate() error {
	if !isFinite(p.HeightFactor) || !isFinite(p.BackFactor) {
		return errors.Wrapf(ErrInvalidArgument, "camera factors must be finite (height %v, back %v)", p.HeightFactor, p.BackFactor)
	}
	if !isFinite(p.TargetDivisor) || p.TargetDivisor <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "target divisor %v must be positive", p.TargetDivisor)
	}
	if !isFinite(p.MinRadius) || p.MinRadius <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "min radius %v must be positive", p.MinRadius)
	}
	return nil
}

// CameraFrame is the camera placement for a centered model.
type CameraFrame struct {
	Fov      float64        `json:"fov"`
	Distance float64        `json:"distance"`
	Position mgl64.Vec3     `json:"position"`
	Target   mgl64.Vec3     `json:"target"`
	Sphere   BoundingSphere `json:"sphere"`
}

func ComputeFrame(box BoundingBox, fov float64) (CameraFrame, error) {
	return ComputeFrameWithParams(box, fov, DefaultParams)
}

// ComputeFrameWithParams returns the frame for box viewed with vertical
// field of view fov (radians, open interval (0, π)). The model must be
// moved by CenteringTranslation(box) before the frame is applied.
// Horizontal fit is not guaranteed for viewports narrower than 1:1.
func ComputeFrameWithParams(box BoundingBox, fov float64, p Params) (CameraFrame, error) {
	if err := p.Validate(); err != nil {
		return CameraFrame{}, err
	}
	if !box.Valid() {
		return CameraFrame{}, errors.Wrapf(ErrInvalidArgument, "bounding box %v..%v is empty or not finite", box.Min, box.Max)
	}
	if math.IsNaN(fov) || fov <= 0 || fov >= math.Pi {
		return CameraFrame{}, errors.Wrapf(ErrInvalidArgument, "field of view %v outside (0, π)", fov)
	}

	sphere := box.Sphere()
	if !isFinite(sphere.Radius) {
		return CameraFrame{}, errors.Wrapf(ErrInvalidArgument, "bounding box %v..%v too large", box.Min, box.Max)
	}
	if sphere.Radius < p.MinRadius {
		sphere.Radius = p.MinRadius
	}

	distance := sphere.Radius / math.Sin(fov/2)
	if !isFinite(distance) {
		return CameraFrame{}, errors.Wrapf(ErrInvalidArgument, "radius %v does not fit field of view %v", sphere.Radius, fov)
	}

	return CameraFrame{
		Fov:      fov,
		Distance: distance,
		Position: mgl64.Vec3{0, distance * p.HeightFactor, distance * p.BackFactor},
		Target:   mgl64.Vec3{0, sphere.Radius / p.TargetDivisor, 0},
		Sphere:   sphere,
	}, nil
}

// CenteringTranslation moves the box center to the origin.
func CenteringTranslation(box BoundingBox) mgl64.Vec3 {
	return box.Center().Mul(-1)
}
