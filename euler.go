package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Two independent Euler-angle families live in this file: a yaw-pitch-roll
// family (QuatToYPR/YPRToQuat) and a roll-pitch-yaw family
// (QuatToRPY/RPYToQuat). Each family is internally consistent, but the two
// use distinct sign conventions and are NOT round-trip compatible with each
// other. Do not unify them; downstream code depends on the exact conventions.

// QuatToYPR converts a unit quaternion to yaw-pitch-roll Euler angles.
// The inverse of YPRToQuat.
func QuatToYPR(q Quat) Vec3 {
	return Vec3{
		math.Atan2(2*(-q[3]*q[0]+q[1]*q[2]), 1-2*(q[0]*q[0]+q[1]*q[1])),
		math.Asin(2 * (-q[3]*q[1] - q[0]*q[2])),
		math.Atan2(2*(-q[3]*q[2]+q[0]*q[1]), 1-2*(q[1]*q[1]+q[2]*q[2])),
	}
}

// YPRToQuat converts yaw-pitch-roll Euler angles to the corresponding unit
// quaternion.
func YPRToQuat(v Vec3) Quat {
	c0 := math.Cos(v[0] / 2)
	s0 := math.Sin(v[0] / 2)
	c1 := math.Cos(v[1] / 2)
	s1 := math.Sin(v[1] / 2)
	c2 := math.Cos(v[2] / 2)
	s2 := math.Sin(v[2] / 2)
	return Quat{
		c0*s1*s2 - c1*c2*s0,
		-c0*s1*c2 - c1*s2*s0,
		-c0*c1*s2 + s1*c2*s0,
		c0*c1*c2 + s1*s2*s0,
	}
}

// QuatToRPY converts a unit quaternion to roll-pitch-yaw Euler angles.
// Inverts RPYToQuat up to reversal of the angle order:
// QuatToRPY(RPYToQuat(v)) == (v2,v1,v0).
func QuatToRPY(q Quat) Vec3 {
	return Vec3{
		math.Atan2(2*(-q[2]*q[1]-q[3]*q[0]), q[2]*q[2]+q[3]*q[3]-q[0]*q[0]-q[1]*q[1]),
		math.Asin(2 * (q[0]*q[2] - q[3]*q[1])),
		math.Atan2(-2*q[0]*q[1]-2*q[3]*q[2], q[0]*q[0]+q[3]*q[3]-q[2]*q[2]-q[1]*q[1]),
	}
}

// RPYToQuat converts roll-pitch-yaw Euler angles to the corresponding unit
// quaternion.
func RPYToQuat(v Vec3) Quat {
	c0 := math.Cos(v[0] / 2)
	s0 := math.Sin(v[0] / 2)
	c1 := math.Cos(v[1] / 2)
	s1 := math.Sin(v[1] / 2)
	c2 := math.Cos(v[2] / 2)
	s2 := math.Sin(v[2] / 2)
	return Quat{
		-c0*c1*s2 - s1*c2*s0,
		-c0*s1*c2 + c1*s2*s0,
		-c0*s1*s2 - c1*c2*s0,
		c0*c1*c2 - s1*s2*s0,
	}
}

// RPYToEulerRate returns the 3x3 matrix mapping body angular rate to
// roll-pitch-yaw Euler-angle rate, evaluated at the given rpy angles.
func RPYToEulerRate(rpy Vec3) *mat.Dense {
	cp := math.Cos(rpy[1])
	sp := math.Sin(rpy[1])
	cy := math.Cos(rpy[2])
	sy := math.Sin(rpy[2])
	return mat.NewDense(3, 3, []float64{
		cp * cy, sy, 0,
		-cp * sy, cy, 0,
		sp, 0, 1,
	})
}

// RPYToEulerRateInv returns the inverse of RPYToEulerRate, mapping
// roll-pitch-yaw Euler-angle rate to body angular rate. The map has a
// singularity at pitch = +-pi/2; when cos(pitch) <= NormTolerance the zero
// matrix is returned instead of a near-singular inverse. Callers must treat
// the zero matrix as "rate not observable near gimbal lock", not as a valid
// linear map.
func RPYToEulerRateInv(rpy Vec3) *mat.Dense {
	m := mat.NewDense(3, 3, nil)
	cp := math.Cos(rpy[1])
	if cp > NormTolerance {
		cpi := 1 / cp
		tp := math.Tan(rpy[1])
		cy := math.Cos(rpy[2])
		sy := math.Sin(rpy[2])
		m.Set(0, 0, cpi*cy)
		m.Set(0, 1, -cpi*sy)
		m.Set(1, 0, sy)
		m.Set(1, 1, cy)
		m.Set(2, 0, -cy*tp)
		m.Set(2, 1, sy*tp)
		m.Set(2, 2, 1)
	}
	return m
}
