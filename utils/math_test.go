package utils

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestTRSIdentity(t *testing.T) {
	m := TRS(mgl64.Vec3{}, mgl64.QuatIdent(), mgl64.Vec3{1, 1, 1})
	if !m.ApproxEqual(mgl64.Ident4()) {
		t.Errorf("TRS of defaults = %v, want identity", m)
	}
}

func TestTRSOrder(t *testing.T) {
	// rotate 90° around y, then translate
	q := QuatFrom32([4]float32{0, float32(math.Sin(math.Pi / 4)), 0, float32(math.Cos(math.Pi / 4))})
	m := TRS(mgl64.Vec3{10, 0, 0}, q, mgl64.Vec3{2, 2, 2})

	got := mgl64.TransformCoordinate(mgl64.Vec3{1, 0, 0}, m)
	want := mgl64.Vec3{10, 0, -2}
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("transformed = %v, want %v", got, want)
	}
}

func TestMat4From32(t *testing.T) {
	var m [16]float32
	for i := range m {
		m[i] = float32(i)
	}
	r := Mat4From32(m)
	// column-major: element 12 is x translation
	if r.At(0, 3) != 12 {
		t.Errorf("At(0,3) = %v, want 12", r.At(0, 3))
	}
}

func TestIsFiniteV3(t *testing.T) {
	if !IsFiniteV3(mgl64.Vec3{1, 2, 3}) {
		t.Error("finite vector reported as not finite")
	}
	if IsFiniteV3(mgl64.Vec3{1, math.NaN(), 3}) || IsFiniteV3(mgl64.Vec3{math.Inf(-1), 0, 0}) {
		t.Error("non finite vector reported as finite")
	}
}

var clampTests = []struct {
	in, out float64
}{
	{0.4, 0.5},
	{0.5, 0.5},
	{1.3, 1.3},
	{2, 2},
	{2.1, 2},
}

func TestClamp(t *testing.T) {
	for _, test := range clampTests {
		if r := Clamp(test.in, 0.5, 2); r != test.out {
			t.Errorf("Clamp(%v)=%v; expected %v", test.in, r, test.out)
		}
	}
}

func TestHexColor(t *testing.T) {
	c := HexColor(0x9370DB)
	if s := c.String(); s != "#9370db" {
		t.Errorf("String() = %q", s)
	}
}

func TestRandomNameUnique(t *testing.T) {
	var rng RandomNameGenerator
	rng.Seed(0)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := rng.RandomName()
		if name == "" {
			t.Fatal("empty name")
		}
		if seen[name] {
			t.Fatalf("duplicate name %q", name)
		}
		seen[name] = true
	}
}
