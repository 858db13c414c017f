package manifold

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// NQuat is a normalized quaternion with format (x,y,z,w), packaged as a
// mutable value type independent of the fixed-size linear algebra used
// elsewhere. It carries the same semantic content as Quat (a unit alibi
// rotation) but with explicit renormalization and composition, which is what
// the manifold state stores in its quaternion slots.
type NQuat [4]float64

// Normalize rescales the quaternion to unit norm in place. If the current
// norm is at or below NormTolerance the value is replaced with the identity
// quaternion; this, not an error, is the degenerate-case policy.
func (q *NQuat) Normalize() {
	a := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if a > NormTolerance {
		q[0] /= a
		q[1] /= a
		q[2] /= a
		q[3] /= a
	} else {
		q[0] = 0
		q[1] = 0
		q[2] = 0
		q[3] = 1
	}
}

// SetIdentity sets the quaternion to the identity rotation (0,0,0,1).
func (q *NQuat) SetIdentity() {
	q[0] = 0
	q[1] = 0
	q[2] = 0
	q[3] = 1
}

// Compose returns the Hamilton product q*p, representing "apply rotation p
// then q" under the alibi convention. The product is evaluated directly in
// component form rather than via the QuatL/QuatR matrices.
func (q NQuat) Compose(p NQuat) NQuat {
	return NQuat{
		q[3]*p[0] - q[2]*p[1] + q[1]*p[2] + q[0]*p[3],
		q[2]*p[0] + q[3]*p[1] - q[0]*p[2] + q[1]*p[3],
		-q[1]*p[0] + q[0]*p[1] + q[3]*p[2] + q[2]*p[3],
		-q[0]*p[0] - q[1]*p[1] - q[2]*p[2] + q[3]*p[3],
	}
}

// Inverse returns the conjugate of q, which is its inverse under the
// unit-norm assumption.
func (q NQuat) Inverse() NQuat {
	return NQuat{-q[0], -q[1], -q[2], q[3]}
}

// RotVec converts the quaternion to the corresponding rotation vector, with
// the same small-angle fallback as QuatToRotVec.
func (q NQuat) RotVec() Vec3 {
	return QuatToRotVec(Quat(q))
}

// RotVecToNQuat converts a rotation vector to the corresponding normalized
// quaternion.
func RotVecToNQuat(v Vec3) NQuat {
	return NQuat(RotVecToQuat(v))
}

// Number returns q as a gonum quat.Number, for interop with code built on
// gonum.org/v1/gonum/num/quat.
func (q NQuat) Number() quat.Number {
	return quat.Number{Real: q[3], Imag: q[0], Jmag: q[1], Kmag: q[2]}
}

// NQuatFromNumber converts a gonum quat.Number into an NQuat. The value is
// not normalized.
func NQuatFromNumber(n quat.Number) NQuat {
	return NQuat{n.Imag, n.Jmag, n.Kmag, n.Real}
}
