package manifold

import (
	"math"
	"math/rand"
	"testing"
)

func TestEulerZYXRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for i := 0; i < 500; i++ {
		v := Vec3{
			(rng.Float64() - 0.5) * 6,
			(rng.Float64() - 0.5) * 2.8,
			(rng.Float64() - 0.5) * 6,
		}
		r := QuatToEulerZYX(EulerZYXToQuat(v))
		for j := 0; j < 3; j++ {
			if math.Abs(r[j]-v[j]) > 1e-9 {
				t.Fatalf("ZYX round trip of %v = %v", v, r)
			}
		}
	}
}

func TestFusedRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 2000; i++ {
		yaw := (rng.Float64() - 0.5) * 6
		pitch := (rng.Float64() - 0.5) * 2.6
		roll := (rng.Float64() - 0.5) * 2.6
		hemi := rng.Intn(2) == 0

		// The fused pitch/roll domain requires sin^2(pitch)+sin^2(roll) <= 1;
		// stay clearly inside it.
		sth := math.Sin(pitch)
		sphi := math.Sin(roll)
		if sth*sth+sphi*sphi > 0.95 {
			continue
		}

		f, h := QuatToFused(FusedToQuat(yaw, pitch, roll, hemi))
		if h != hemi {
			t.Fatalf("hemisphere flipped for (%g,%g,%g,%v)", yaw, pitch, roll, hemi)
		}
		if math.Abs(f[0]-yaw) > 1e-9 || math.Abs(f[1]-pitch) > 1e-9 || math.Abs(f[2]-roll) > 1e-9 {
			t.Fatalf("fused round trip of (%g,%g,%g,%v) = %v", yaw, pitch, roll, hemi, f)
		}
	}
}

func TestFusedTiltSaturation(t *testing.T) {
	// On the domain boundary sin^2(pitch)+sin^2(roll) = 1 the tilt angle
	// saturates at pi/2. A pure pitch of pi/2 is then exactly a quarter turn
	// about y, whichever hemisphere is requested.
	for _, hemi := range []bool{true, false} {
		q := FusedToQuat(0, math.Pi/2, 0, hemi)
		v := QuatToRotVec(q)
		if math.Abs(v[0]) > 1e-9 || math.Abs(v[1]-math.Pi/2) > 1e-9 || math.Abs(v[2]) > 1e-9 {
			t.Fatalf("FusedToQuat(0,pi/2,0,%v) has rotation vector %v, want (0,pi/2,0)", hemi, v)
		}
	}

	// The angles round-trip on the boundary. asin near 1 amplifies rounding
	// in the pitch, and the hemisphere is degenerate on the equator, so only
	// the angles are checked.
	for _, yaw := range []float64{0, 0.7, -2.1} {
		f, _ := QuatToFused(FusedToQuat(yaw, math.Pi/2, 0, true))
		if math.Abs(f[0]-yaw) > 1e-9 || math.Abs(f[1]-math.Pi/2) > 1e-7 || math.Abs(f[2]) > 1e-9 {
			t.Fatalf("saturated round trip of (%g,pi/2,0) = %v", yaw, f)
		}
	}
	f, _ := QuatToFused(FusedToQuat(0.3, 0, -math.Pi/2, true))
	if math.Abs(f[0]-0.3) > 1e-9 || math.Abs(f[1]) > 1e-7 || math.Abs(f[2]+math.Pi/2) > 1e-7 {
		t.Fatalf("saturated round trip of (0.3,0,-pi/2) = %v", f)
	}
}

func TestFusedIdentity(t *testing.T) {
	f, hemi := QuatToFused(QuatIdentity())
	if f != (Vec3{}) || !hemi {
		t.Fatalf("fused angles of identity = %v hemi=%v, want zero angles in the positive hemisphere", f, hemi)
	}
	q := FusedToQuat(0, 0, 0, true)
	for j, want := range QuatIdentity() {
		if math.Abs(q[j]-want) > 1e-12 {
			t.Fatalf("FusedToQuat(0,0,0,true) = %v, want identity", q)
		}
	}
}
