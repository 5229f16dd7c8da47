package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// glTF stores everything as float32, framing math runs in float64

func Vec3From32(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// QuatFrom32 takes glTF (x, y, z, w) order
func QuatFrom32(q [4]float32) mgl64.Quat {
	return mgl64.Quat{
		W: float64(q[3]),
		V: mgl64.Vec3{float64(q[0]), float64(q[1]), float64(q[2])},
	}
}

// Mat4From32 keeps column-major order, same as mgl64
func Mat4From32(m [16]float32) (r mgl64.Mat4) {
	for i, v := range m {
		r[i] = float64(v)
	}
	return r
}

func Vec3To32(v mgl64.Vec3) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

// TRS composes translation * rotation * scale
func TRS(t mgl64.Vec3, r mgl64.Quat, s mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Translate3D(t[0], t[1], t[2]).
		Mul4(r.Normalize().Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

func IsFiniteV3(v mgl64.Vec3) bool {
	for _, f := range v {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func Clamp(v, min, max float64) float64 {
	return math.Min(math.Max(v, min), max)
}
