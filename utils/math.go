package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// result in radians
func QuatToEuler(q mgl32.Quat) (e mgl32.Vec3) {
	sinr_cosp := float64(2 * (q.W*q.X() + q.Y()*q.Z()))
	cosr_cosp := float64(1 - 2*(q.X()*q.X()+q.Y()*q.Y()))

	e[0] = float32(math.Atan2(sinr_cosp, cosr_cosp))

	sinp := float64(2 * (q.W*q.Y() - q.Z()*q.X()))
	if math.Abs(sinp) >= 1 {
		e[1] = math.Pi / 2
		if sinp < 0 {
			e[1] *= -1
		}
	} else {
		e[1] = float32(math.Asin(sinp))
	}

	siny_cosp := float64(2 * (q.W*q.Z() + q.X()*q.Y()))
	cosy_cosp := float64(1 - 2*(q.Y()*q.Y()+q.Z()*q.Z()))
	e[2] = float32(math.Atan2(siny_cosp, cosy_cosp))

	return e
}

func RadiansToDegreesV3(v mgl32.Vec3) mgl32.Vec3 {
	return v.Mul(180.0 / math.Pi)
}

func DegreesToRadiansV3(v mgl32.Vec3) mgl32.Vec3 {
	return v.Mul(math.Pi / 180.0)
}

// QuatFromEulerDegrees builds a rotation from euler angles in degrees,
// the representation arena catalogs are authored in. Composition is
// yaw*pitch*roll, the inverse of QuatToEuler.
func QuatFromEulerDegrees(x, y, z float32) mgl32.Quat {
	qx := mgl32.QuatRotate(mgl32.DegToRad(x), mgl32.Vec3{1, 0, 0})
	qy := mgl32.QuatRotate(mgl32.DegToRad(y), mgl32.Vec3{0, 1, 0})
	qz := mgl32.QuatRotate(mgl32.DegToRad(z), mgl32.Vec3{0, 0, 1})
	return qz.Mul(qy).Mul(qx)
}

// QuatToEulerDegrees is the readable form used by web views.
func QuatToEulerDegrees(q mgl32.Quat) mgl32.Vec3 {
	return RadiansToDegreesV3(QuatToEuler(q))
}
