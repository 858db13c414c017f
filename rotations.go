// Package manifold implements the rotation-representation conversions and the
// product-manifold state algebra used by error-state attitude and legged-robot
// estimators.
//
// Conventions: roll-pitch-yaw angles are alias, rotation matrices, rotation
// vectors and quaternions are alibi. Quaternions are stored vector-part-first,
// i.e. (x,y,z,w).
package manifold

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// NormTolerance is the threshold below which a vector or quaternion norm is
// treated as zero. Functions that would otherwise divide by such a norm switch
// to a degenerate fallback (linearized form, identity quaternion or zero
// matrix) instead of producing Inf/NaN.
const NormTolerance = 1e-10

// Vec3 is a 3D vector with format (x,y,z).
type Vec3 [3]float64

// Quat is a quaternion with format (x,y,z,w), i.e. vector part first, scalar
// part last. A Quat represents an alibi rotation and is expected to have unit
// norm; no function checks this precondition, feeding a non-unit quaternion
// silently degrades the numerical result.
type Quat [4]float64

// Skew returns the 3x3 skew-symmetric cross-product matrix of v, such that
// Skew(v)*u == cross(v,u) for any vector u.
func Skew(v Vec3) *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		0, -v[2], v[1],
		v[2], 0, -v[0],
		-v[1], v[0], 0,
	})
}

// RangePi rescales a rotation vector so that its magnitude lies in [0,pi],
// by subtracting the nearest multiple of 2*pi from the angle. A vector whose
// magnitude is already at most pi is returned unchanged, so an angle of
// exactly pi stays pi.
func RangePi(v Vec3) Vec3 {
	a := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if a <= math.Pi {
		return v
	}
	a2 := a - 2*math.Pi*math.Floor((a+math.Pi)/(2*math.Pi))
	scale := a2 / a
	return Vec3{scale * v[0], scale * v[1], scale * v[2]}
}

// QuatToRotMat converts a unit quaternion to the corresponding rotation
// matrix, using R = (2w^2-1)*I + 2w*skew(v) + 2v*v'.
func QuatToRotMat(q Quat) *mat.Dense {
	x, y, z, w := q[0], q[1], q[2], q[3]
	d := 2*w*w - 1 // diagonal term
	return mat.NewDense(3, 3, []float64{
		d + 2*x*x, 2*x*y - 2*w*z, 2*x*z + 2*w*y,
		2*x*y + 2*w*z, d + 2*y*y, 2*y*z - 2*w*x,
		2*x*z - 2*w*y, 2*y*z + 2*w*x, d + 2*z*z,
	})
}

// QuatToRotVec converts a unit quaternion to the corresponding rotation
// vector. The rotation angle is 2*atan2(||v||,w), which lies in [0,pi] for a
// quaternion with non-negative scalar part. When the vector part is smaller
// than NormTolerance the small-angle linearization 2*v is returned instead,
// avoiding a division by a near-zero norm. No double-cover resolution is
// performed beyond this.
func QuatToRotVec(q Quat) Vec3 {
	s := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2])
	if s < NormTolerance {
		return Vec3{2 * q[0], 2 * q[1], 2 * q[2]}
	}
	scale := 2 * math.Atan2(s, q[3]) / s
	return Vec3{scale * q[0], scale * q[1], scale * q[2]}
}

// RotVecToQuat converts a rotation vector to the corresponding unit
// quaternion, w = cos(||v||/2) and vector part sin(||v||/2)/||v|| * v. For
// magnitudes below NormTolerance the vector part degenerates to v itself.
// The result is explicitly renormalized before being returned.
func RotVecToQuat(v Vec3) Quat {
	var q Quat
	a := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	q[3] = math.Cos(a / 2)
	if a >= NormTolerance {
		b := math.Sin(a/2) / a
		q[0] = b * v[0]
		q[1] = b * v[1]
		q[2] = b * v[2]
	} else {
		q[0] = v[0]
		q[1] = v[1]
		q[2] = v[2]
	}

	// Renormalize (the norm is analytically 1 up to the small-angle branch,
	// this just removes the floating-point drift)
	qscale := 1 / math.Sqrt(q[0]*q[0]+q[1]*q[1]+q[2]*q[2]+q[3]*q[3])
	q[0] *= qscale
	q[1] *= qscale
	q[2] *= qscale
	q[3] *= qscale
	return q
}

// QuatInverse returns the inverse of a unit quaternion, i.e. its conjugate.
// This is a valid inverse only because q is assumed to have unit norm.
func QuatInverse(q Quat) Quat {
	return Quat{-q[0], -q[1], -q[2], q[3]}
}

// QuatIdentity returns the identity quaternion (0,0,0,1).
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatL returns the 4x4 left-hand multiplication matrix of q, such that the
// quaternion product q*p equals QuatL(q) applied to p as a 4-vector. Used for
// linearizing quaternion composition in error-state formulations.
func QuatL(q Quat) *mat.Dense {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return mat.NewDense(4, 4, []float64{
		w, -z, y, x,
		z, w, -x, y,
		-y, x, w, z,
		-x, -y, -z, w,
	})
}

// QuatR returns the 4x4 right-hand multiplication matrix of q, such that the
// quaternion product p*q equals QuatR(q) applied to p as a 4-vector.
func QuatR(q Quat) *mat.Dense {
	x, y, z, w := q[0], q[1], q[2], q[3]
	return mat.NewDense(4, 4, []float64{
		w, z, -y, x,
		-z, w, x, y,
		y, -x, w, z,
		-x, -y, -z, w,
	})
}

// QuatRotateVec rotates the vector v by the unit quaternion q, using the
// expanded form v + 2w*(u x v) + 2u x (u x v) with u the vector part of q.
// This avoids building the full rotation matrix.
func QuatRotateVec(q Quat, v Vec3) Vec3 {
	// t = 2*(u x v)
	tx := 2 * (q[1]*v[2] - q[2]*v[1])
	ty := 2 * (q[2]*v[0] - q[0]*v[2])
	tz := 2 * (q[0]*v[1] - q[1]*v[0])
	return Vec3{
		v[0] + q[3]*tx + q[1]*tz - q[2]*ty,
		v[1] + q[3]*ty + q[2]*tx - q[0]*tz,
		v[2] + q[3]*tz + q[0]*ty - q[1]*tx,
	}
}
