package frame

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

const eps = 1e-9

var approx = cmpopts.EquateApprox(0, eps)

func TestComputeFrameCube(t *testing.T) {
	box := NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	f, err := ComputeFrame(box, math.Pi/2)
	if err != nil {
		t.Fatalf("ComputeFrame: %v", err)
	}

	radius := math.Sqrt(3)
	distance := radius / math.Sin(math.Pi/4)
	want := CameraFrame{
		Fov:      math.Pi / 2,
		Distance: distance,
		Position: mgl64.Vec3{0, distance * 0.2, distance * 1.1},
		Target:   mgl64.Vec3{0, radius / 2, 0},
		Sphere:   BoundingSphere{Radius: radius},
	}
	if diff := cmp.Diff(want, f, approx); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(f.Distance-2.449) > 1e-3 {
		t.Errorf("distance = %v, want ~2.449", f.Distance)
	}
}

var symmetricBoxes = []mgl64.Vec3{
	{1, 1, 1},
	{0.5, 1.8, 0.3},
	{100, 0, 7},
	{0, 0, 0},
}

func TestSymmetricBoxCenteredAtOrigin(t *testing.T) {
	for _, max := range symmetricBoxes {
		box := NewBox(max.Mul(-1), max)
		if c := box.Sphere().Center; !c.ApproxEqual(mgl64.Vec3{}) {
			t.Errorf("center of %v = %v, want origin", max, c)
		}
		if tr := CenteringTranslation(box); !tr.ApproxEqual(mgl64.Vec3{}) {
			t.Errorf("centering of %v = %v, want zero", max, tr)
		}
	}
}

func TestCenteringTranslation(t *testing.T) {
	box := NewBox(mgl64.Vec3{2, 0, -4}, mgl64.Vec3{4, 1.8, -2})
	got := CenteringTranslation(box)
	want := mgl64.Vec3{-3, -0.9, 3}
	if !got.ApproxEqual(want) {
		t.Errorf("CenteringTranslation = %v, want %v", got, want)
	}
}

func TestDistanceDecreasesWithFov(t *testing.T) {
	box := NewBox(mgl64.Vec3{-0.3, 0, -0.2}, mgl64.Vec3{0.3, 1.7, 0.2})
	fovs := floats.Span(make([]float64, 64), 0.01, math.Pi-0.01)

	prev := math.Inf(1)
	for _, fov := range fovs {
		f, err := ComputeFrame(box, fov)
		if err != nil {
			t.Fatalf("ComputeFrame(fov=%v): %v", fov, err)
		}
		if f.Distance >= prev {
			t.Errorf("distance %v at fov %v not below %v", f.Distance, fov, prev)
		}
		prev = f.Distance
	}
}

func TestDistanceIncreasesWithRadius(t *testing.T) {
	sizes := floats.Span(make([]float64, 32), 0.1, 50)

	prev := 0.0
	for _, s := range sizes {
		box := NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{s, s, s})
		f, err := ComputeFrame(box, mgl64.DegToRad(75))
		if err != nil {
			t.Fatalf("ComputeFrame(size=%v): %v", s, err)
		}
		if f.Distance <= prev {
			t.Errorf("distance %v at size %v not above %v", f.Distance, s, prev)
		}
		prev = f.Distance
	}
}

func TestTargetIsHalfRadius(t *testing.T) {
	boxes := []BoundingBox{
		NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1}),
		NewBox(mgl64.Vec3{3, 4, 5}, mgl64.Vec3{3, 6, 9}),
		NewBox(mgl64.Vec3{-0.2, 0, -0.1}, mgl64.Vec3{0.2, 1.75, 0.1}),
	}
	for _, box := range boxes {
		f, err := ComputeFrame(box, 1)
		if err != nil {
			t.Fatalf("ComputeFrame(%v): %v", box, err)
		}
		if f.Target.Y() != f.Sphere.Radius/2 {
			t.Errorf("target y %v, radius %v", f.Target.Y(), f.Sphere.Radius)
		}
		if f.Target.X() != 0 || f.Target.Z() != 0 {
			t.Errorf("target %v not on the y axis", f.Target)
		}
	}
}

func TestSphereFitsFrustum(t *testing.T) {
	box := NewBox(mgl64.Vec3{-0.4, 0, -0.3}, mgl64.Vec3{0.4, 1.8, 0.3})
	for _, deg := range []float64{30, 45, 75, 90, 120} {
		fov := mgl64.DegToRad(deg)
		f, err := ComputeFrame(box, fov)
		if err != nil {
			t.Fatal(err)
		}
		// half angle subtended by the sphere from distance d is asin(r/d)
		half := math.Asin(f.Sphere.Radius / f.Distance)
		if half > fov/2+eps {
			t.Errorf("fov %v: sphere half angle %v exceeds %v", deg, half, fov/2)
		}
	}
}

var invalidFovs = []float64{0, -0.1, math.Pi, math.Pi + 1, math.NaN(), math.Inf(1)}

func TestInvalidFov(t *testing.T) {
	box := NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	for _, fov := range invalidFovs {
		if _, err := ComputeFrame(box, fov); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ComputeFrame(fov=%v) err = %v, want ErrInvalidArgument", fov, err)
		}
	}
}

func TestDistanceOverflow(t *testing.T) {
	cube := NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	huge := NewBox(mgl64.Vec3{-1e300, -1e300, -1e300}, mgl64.Vec3{1e300, 1e300, 1e300})
	for _, test := range []struct {
		box BoundingBox
		fov float64
	}{
		{cube, math.SmallestNonzeroFloat64},
		{cube, 1e-320},
		{huge, 1e-10},
	} {
		f, err := ComputeFrame(test.box, test.fov)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("ComputeFrame(%v, fov=%v) = distance %v, err %v; want ErrInvalidArgument",
				test.box.Max, test.fov, f.Distance, err)
		}
	}
}

func TestHugeBox(t *testing.T) {
	box := NewBox(mgl64.Vec3{-1e200, -1e200, -1e200}, mgl64.Vec3{1e200, 1e200, 1e200})
	f, err := ComputeFrame(box, math.Pi/2)
	if err != nil {
		t.Fatalf("ComputeFrame: %v", err)
	}
	if r := f.Sphere.Radius; math.Abs(r/(math.Sqrt(3)*1e200)-1) > eps {
		t.Errorf("radius = %v, want sqrt(3)e200", r)
	}
	if !isFinite(f.Distance) || !isFinite(f.Position.Z()) {
		t.Errorf("frame not finite: %+v", f)
	}
	if c := box.Center(); c != (mgl64.Vec3{}) {
		t.Errorf("center = %v", c)
	}
}

func TestInvalidBox(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	boxes := []BoundingBox{
		EmptyBox(),
		{},
		NewBox(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 1}),
		NewBox(mgl64.Vec3{nan, 0, 0}, mgl64.Vec3{1, 1, 1}),
		NewBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{inf, 1, 1}),
		NewBox(mgl64.Vec3{-math.MaxFloat64, 0, 0}, mgl64.Vec3{math.MaxFloat64, 0, 0}),
	}
	for i, box := range boxes {
		_, err := ComputeFrame(box, 1)
		if i == 1 {
			// zero value is a degenerate point at the origin, not empty
			if err != nil {
				t.Errorf("zero box: %v", err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("box %d (%v..%v) err = %v, want ErrInvalidArgument", i, box.Min, box.Max, err)
		}
	}
}

func TestDegenerateBox(t *testing.T) {
	p := mgl64.Vec3{2, 3, 4}
	f, err := ComputeFrame(NewBox(p, p), mgl64.DegToRad(75))
	if err != nil {
		t.Fatalf("ComputeFrame: %v", err)
	}
	if f.Sphere.Radius != DefaultParams.MinRadius {
		t.Errorf("radius = %v, want floor %v", f.Sphere.Radius, DefaultParams.MinRadius)
	}
	if !isFinite(f.Distance) || f.Distance <= 0 {
		t.Errorf("distance = %v, want finite and positive", f.Distance)
	}
}

func TestInvalidParams(t *testing.T) {
	box := NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	params := []Params{
		{HeightFactor: 0.2, BackFactor: 1.1, TargetDivisor: 0, MinRadius: 1e-6},
		{HeightFactor: 0.2, BackFactor: 1.1, TargetDivisor: 2, MinRadius: 0},
		{HeightFactor: math.NaN(), BackFactor: 1.1, TargetDivisor: 2, MinRadius: 1e-6},
	}
	for _, p := range params {
		if _, err := ComputeFrameWithParams(box, 1, p); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("params %+v err = %v, want ErrInvalidArgument", p, err)
		}
	}
}

func TestCustomParams(t *testing.T) {
	box := NewBox(mgl64.Vec3{-1, -1, -1}, mgl64.Vec3{1, 1, 1})
	p := Params{HeightFactor: 0, BackFactor: 1, TargetDivisor: 4, MinRadius: 1e-3}
	f, err := ComputeFrameWithParams(box, math.Pi/3, p)
	if err != nil {
		t.Fatal(err)
	}
	// sin(π/6) = 0.5
	want := mgl64.Vec3{0, 0, 2 * math.Sqrt(3)}
	if !f.Position.ApproxEqualThreshold(want, eps) {
		t.Errorf("position = %v, want %v", f.Position, want)
	}
	if math.Abs(f.Target.Y()-math.Sqrt(3)/4) > eps {
		t.Errorf("target = %v", f.Target)
	}
}

func TestBoxExtend(t *testing.T) {
	box := EmptyBox()
	if !box.Empty() || box.Valid() {
		t.Fatal("new box must be empty")
	}
	box.Extend(mgl64.Vec3{1, 2, 3})
	box.Extend(mgl64.Vec3{4, 5, 6})
	box.Extend(mgl64.Vec3{-1, 0, 2})

	if box.Min != (mgl64.Vec3{-1, 0, 2}) {
		t.Errorf("Min = %v", box.Min)
	}
	if box.Max != (mgl64.Vec3{4, 5, 6}) {
		t.Errorf("Max = %v", box.Max)
	}
	if box.Size() != (mgl64.Vec3{5, 5, 4}) {
		t.Errorf("Size = %v", box.Size())
	}

	u := EmptyBox().Union(box).Union(EmptyBox())
	if u != box {
		t.Errorf("Union = %v, want %v", u, box)
	}
}
