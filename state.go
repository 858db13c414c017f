package manifold

import "gonum.org/v1/gonum/mat"

// State is a point on the product manifold R^n x (R^3)^m x SO(3)^l: an
// ordered composite of n scalar slots, m 3-vector slots and l unit-quaternion
// slots. The shape is fixed at construction and all storage is allocated up
// front; after that, Difference and Retract are allocation-free when a
// destination is supplied.
//
// A State must not be mutated concurrently from multiple goroutines without
// external synchronization. Distinct instances share no storage, so
// concurrent read-only use of distinct instances is safe.
type State struct {
	scalars []float64
	vectors []Vec3
	quats   []NQuat
}

// NewState returns a State of shape (n,m,l) in the reset condition: zero
// scalars, zero vectors, identity quaternions.
func NewState(n, m, l int) *State {
	x := &State{
		scalars: make([]float64, n),
		vectors: make([]Vec3, m),
		quats:   make([]NQuat, l),
	}
	x.Reset()
	return x
}

// Reset sets all scalars to zero, all vectors to zero and all quaternions to
// the identity rotation.
func (x *State) Reset() {
	for i := range x.scalars {
		x.scalars[i] = 0
	}
	for i := range x.vectors {
		x.vectors[i] = Vec3{}
	}
	for i := range x.quats {
		x.quats[i].SetIdentity()
	}
}

// Shape returns the number of scalar, vector and quaternion slots.
func (x *State) Shape() (n, m, l int) {
	return len(x.scalars), len(x.vectors), len(x.quats)
}

// Dim returns the tangent-space dimension n + 3m + 3l.
func (x *State) Dim() int {
	return len(x.scalars) + 3*(len(x.vectors)+len(x.quats))
}

// Scalar returns the i-th scalar slot.
func (x *State) Scalar(i int) float64 {
	return x.scalars[i]
}

// SetScalar sets the i-th scalar slot.
func (x *State) SetScalar(i int, s float64) {
	x.scalars[i] = s
}

// Vector returns a pointer to the i-th vector slot, allowing in-place
// mutation.
func (x *State) Vector(i int) *Vec3 {
	return &x.vectors[i]
}

// Quat returns a pointer to the i-th quaternion slot, allowing in-place
// mutation.
func (x *State) Quat(i int) *NQuat {
	return &x.quats[i]
}

// Difference computes the manifold box-minus x-y, returning a newly
// allocated tangent vector of dimension Dim(). See DifferenceTo.
func (x *State) Difference(y *State) *mat.VecDense {
	d := mat.NewVecDense(x.Dim(), nil)
	x.DifferenceTo(d, y)
	return d
}

// DifferenceTo computes the manifold box-minus x-y into dst. Scalar and
// vector slots subtract linearly; quaternion slots map through
// log(x_i * y_i^-1), the local rotation taking y_i to x_i expressed in the
// tangent space at y_i. Precondition: x and y have equal shape and dst has
// length Dim(); the operation is undefined otherwise.
func (x *State) DifferenceTo(dst *mat.VecDense, y *State) {
	n := len(x.scalars)
	m := len(x.vectors)
	for i := range x.scalars {
		dst.SetVec(i, x.scalars[i]-y.scalars[i])
	}
	for i := range x.vectors {
		dst.SetVec(n+3*i, x.vectors[i][0]-y.vectors[i][0])
		dst.SetVec(n+3*i+1, x.vectors[i][1]-y.vectors[i][1])
		dst.SetVec(n+3*i+2, x.vectors[i][2]-y.vectors[i][2])
	}
	for i := range x.quats {
		v := x.quats[i].Compose(y.quats[i].Inverse()).RotVec()
		dst.SetVec(n+3*m+3*i, v[0])
		dst.SetVec(n+3*m+3*i+1, v[1])
		dst.SetVec(n+3*m+3*i+2, v[2])
	}
}

// Retract computes the manifold box-plus x+d, returning a new State of the
// same shape. See RetractTo.
func (x *State) Retract(d mat.Vector) *State {
	out := NewState(x.Shape())
	x.RetractTo(out, d)
	return out
}

// RetractTo computes the manifold box-plus x+d into dst. Scalar and vector
// slots add linearly; quaternion slots compose exp(d_i) * x_i, i.e. the
// perturbation quaternion is applied on the left of the base quaternion.
// Precondition: dst has the same shape as x and d has length Dim(); the
// operation is undefined otherwise. dst may be x itself for an in-place
// update.
func (x *State) RetractTo(dst *State, d mat.Vector) {
	n := len(x.scalars)
	m := len(x.vectors)
	for i := range x.scalars {
		dst.scalars[i] = x.scalars[i] + d.AtVec(i)
	}
	for i := range x.vectors {
		dst.vectors[i] = Vec3{
			x.vectors[i][0] + d.AtVec(n+3*i),
			x.vectors[i][1] + d.AtVec(n+3*i+1),
			x.vectors[i][2] + d.AtVec(n+3*i+2),
		}
	}
	for i := range x.quats {
		v := Vec3{d.AtVec(n + 3*m + 3*i), d.AtVec(n + 3*m + 3*i + 1), d.AtVec(n + 3*m + 3*i + 2)}
		dst.quats[i] = RotVecToNQuat(v).Compose(x.quats[i])
	}
}
