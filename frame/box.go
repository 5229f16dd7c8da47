package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BoundingBox is an axis aligned box. Min <= Max component-wise for
// any box that contains at least one point.
type BoundingBox struct {
	Min mgl64.Vec3 `json:"min"`
	Max mgl64.Vec3 `json:"max"`
}

// BoundingSphere is the sphere passing through the corners of a BoundingBox.
type BoundingSphere struct {
	Center mgl64.Vec3 `json:"center"`
	Radius float64    `json:"radius"`
}

// EmptyBox returns an inverted box that becomes valid after the first Extend.
func EmptyBox() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: mgl64.Vec3{inf, inf, inf},
		Max: mgl64.Vec3{-inf, -inf, -inf},
	}
}

func NewBox(min, max mgl64.Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

func (b *BoundingBox) Extend(p mgl64.Vec3) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if o.Empty() {
		return b
	}
	b.Extend(o.Min)
	b.Extend(o.Max)
	return b
}

// Empty reports whether the box contains no points (any Min > Max).
func (b BoundingBox) Empty() bool {
	for i := 0; i < 3; i++ {
		if b.Min[i] > b.Max[i] {
			return true
		}
	}
	return false
}

// Valid reports whether the box is finite and not empty.
func (b BoundingBox) Valid() bool {
	for i := 0; i < 3; i++ {
		if !isFinite(b.Min[i]) || !isFinite(b.Max[i]) {
			return false
		}
	}
	return !b.Empty()
}

// Center and Sphere halve before summing so boxes near MaxFloat64 stay finite.
func (b BoundingBox) Center() mgl64.Vec3 {
	return b.Min.Mul(0.5).Add(b.Max.Mul(0.5))
}

func (b BoundingBox) Size() mgl64.Vec3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Sphere() BoundingSphere {
	h := b.Max.Mul(0.5).Sub(b.Min.Mul(0.5))
	return BoundingSphere{
		Center: b.Center(),
		Radius: math.Hypot(math.Hypot(h[0], h[1]), h[2]),
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
