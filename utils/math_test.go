package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var eulerTests = []struct {
	x, y, z float32
}{
	{0, 0, 0},
	{90, 0, 0},
	{0, 45, 0},
	{0, 0, -30},
	{10, 20, 30},
}

func TestEulerQuatRoundTrip(t *testing.T) {
	for _, test := range eulerTests {
		q := QuatFromEulerDegrees(test.x, test.y, test.z)
		e := QuatToEulerDegrees(q)
		if !near(e.X(), test.x) || !near(e.Y(), test.y) || !near(e.Z(), test.z) {
			t.Errorf("QuatToEulerDegrees(QuatFromEulerDegrees(%v,%v,%v)) = %v",
				test.x, test.y, test.z, e)
		}
	}
}

func TestDegreeRadianConversion(t *testing.T) {
	v := mgl32.Vec3{180, 90, -360}
	r := DegreesToRadiansV3(v)
	if !near(r.X(), 3.14159265) || !near(r.Y(), 1.57079633) || !near(r.Z(), -6.28318531) {
		t.Errorf("DegreesToRadiansV3(%v) = %v", v, r)
	}
	back := RadiansToDegreesV3(r)
	if !near(back.X(), 180) || !near(back.Y(), 90) || !near(back.Z(), -360) {
		t.Errorf("RadiansToDegreesV3(%v) = %v", r, back)
	}
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-3
}
