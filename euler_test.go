package manifold

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestYPRRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	for i := 0; i < 500; i++ {
		v := Vec3{
			(rng.Float64() - 0.5) * 2.4,
			(rng.Float64() - 0.5) * 2.4,
			(rng.Float64() - 0.5) * 2.4,
		}
		r := QuatToYPR(YPRToQuat(v))
		for j := 0; j < 3; j++ {
			if math.Abs(r[j]-v[j]) > 1e-9 {
				t.Fatalf("YPR round trip of %v = %v", v, r)
			}
		}
	}
}

func TestRPYRoundTripReversesOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		v := Vec3{
			(rng.Float64() - 0.5) * 2.4,
			(rng.Float64() - 0.5) * 2.4,
			(rng.Float64() - 0.5) * 2.4,
		}
		r := QuatToRPY(RPYToQuat(v))
		want := Vec3{v[2], v[1], v[0]}
		for j := 0; j < 3; j++ {
			if math.Abs(r[j]-want[j]) > 1e-9 {
				t.Fatalf("RPY round trip of %v = %v, want reversed %v", v, r, want)
			}
		}
	}
}

func TestEulerFamiliesAreDistinct(t *testing.T) {
	// The YPR and RPY families use different sign conventions and must not
	// be mixed: feeding one family's quaternion into the other's inverse
	// does not reproduce the angles.
	v := Vec3{0.4, 0.3, 0.2}
	r := QuatToRPY(YPRToQuat(v))
	same := true
	for j := 0; j < 3; j++ {
		if math.Abs(r[j]-v[j]) > 1e-9 {
			same = false
		}
	}
	if same {
		t.Fatalf("QuatToRPY(YPRToQuat(v)) unexpectedly reproduced %v", v)
	}
}

func TestRPYEulerRateInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 200; i++ {
		rpy := Vec3{
			(rng.Float64() - 0.5) * 6,
			(rng.Float64() - 0.5) * 2.8, // away from gimbal lock
			(rng.Float64() - 0.5) * 6,
		}
		var p mat.Dense
		p.Mul(RPYToEulerRate(rpy), RPYToEulerRateInv(rpy))
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				want := 0.0
				if r == c {
					want = 1
				}
				if math.Abs(p.At(r, c)-want) > 1e-9 {
					t.Fatalf("E*Einv != I at (%d,%d) for rpy=%v: %g", r, c, rpy, p.At(r, c))
				}
			}
		}
	}
}

func TestRPYEulerRateInvGimbalLock(t *testing.T) {
	for _, pitch := range []float64{math.Pi / 2, -math.Pi / 2} {
		m := RPYToEulerRateInv(Vec3{0.3, pitch, -0.7})
		if mat.Norm(m, 1) != 0 {
			t.Fatalf("RPYToEulerRateInv at pitch=%g is not the zero matrix:\n%v",
				pitch, mat.Formatted(m))
		}
	}
}
