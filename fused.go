package manifold

import "math"

// Fused angles and ZYX Euler angles are alternative orientation
// parameterizations commonly used for walking robots. Both are
// self-consistent families, independent of the YPR/RPY pairs in euler.go.
//
// Output ranges:
//   ZYX Euler:   yaw in (-pi,pi], pitch in [-pi/2,pi/2], roll in (-pi,pi]
//   Fused:       yaw in (-pi,pi], pitch in [-pi/2,pi/2], roll in [-pi/2,pi/2]
//   Hemisphere:  true means the positive-z hemisphere

// QuatToEulerZYX converts a unit quaternion to ZYX Euler angles, returned as
// (yaw,pitch,roll). Relies on the assumption that q is a unit quaternion.
func QuatToEulerZYX(q Quat) Vec3 {
	// Calculate pitch and coerce the asin argument to [-1,1]
	stheta := 2 * (q[3]*q[1] - q[2]*q[0])
	if stheta >= 1 {
		stheta = 1
	} else if stheta <= -1 {
		stheta = -1
	}

	ysq := q[1] * q[1]
	return Vec3{
		math.Atan2(q[3]*q[2]+q[0]*q[1], 0.5-(ysq+q[2]*q[2])),
		math.Asin(stheta),
		math.Atan2(q[3]*q[0]+q[1]*q[2], 0.5-(ysq+q[0]*q[0])),
	}
}

// EulerZYXToQuat converts ZYX Euler angles (yaw,pitch,roll) to the
// corresponding unit quaternion.
func EulerZYXToQuat(v Vec3) Quat {
	cpsi := math.Cos(v[0] / 2)
	spsi := math.Sin(v[0] / 2)
	cth := math.Cos(v[1] / 2)
	sth := math.Sin(v[1] / 2)
	cphi := math.Cos(v[2] / 2)
	sphi := math.Sin(v[2] / 2)
	return quatNormalized(Quat{
		cpsi*cth*sphi - spsi*sth*cphi,
		cpsi*sth*cphi + spsi*cth*sphi,
		spsi*cth*cphi - cpsi*sth*sphi,
		cpsi*cth*cphi + spsi*sth*sphi,
	})
}

// QuatToFused converts a unit quaternion to fused angles (yaw,pitch,roll)
// plus the hemisphere parameter. Relies on the assumption that q is a unit
// quaternion.
func QuatToFused(q Quat) (f Vec3, hemi bool) {
	// Calculate and wrap the fused yaw into (-pi,pi]
	f[0] = 2 * math.Atan2(q[2], q[3]) // atan2 gives [-pi,pi], so this is in [-2*pi,2*pi]
	if f[0] > math.Pi {
		f[0] -= 2 * math.Pi
	}
	if f[0] <= -math.Pi {
		f[0] += 2 * math.Pi
	}

	// Calculate the fused pitch and roll, coercing the asin arguments to [-1,1]
	stheta := 2 * (q[1]*q[3] - q[0]*q[2])
	sphi := 2 * (q[1]*q[2] + q[0]*q[3])
	if stheta >= 1 {
		stheta = 1
	} else if stheta <= -1 {
		stheta = -1
	}
	if sphi >= 1 {
		sphi = 1
	} else if sphi <= -1 {
		sphi = -1
	}
	f[1] = math.Asin(stheta)
	f[2] = math.Asin(sphi)

	// Calculate the hemisphere of the rotation
	hemi = 0.5-(q[0]*q[0]+q[1]*q[1]) >= 0
	return f, hemi
}

// FusedToQuat converts fused angles plus hemisphere to the corresponding
// unit quaternion.
func FusedToQuat(yaw, pitch, roll float64, hemi bool) Quat {
	sth := math.Sin(pitch)
	sphi := math.Sin(roll)

	// Calculate the sine sum criterion and the tilt angle alpha
	crit := sth*sth + sphi*sphi
	var alpha float64
	if crit >= 1 {
		alpha = math.Pi / 2
	} else if hemi {
		alpha = math.Acos(math.Sqrt(1 - crit))
	} else {
		alpha = math.Acos(-math.Sqrt(1 - crit))
	}

	// Calculate the tilt axis gamma
	gamma := math.Atan2(sth, sphi)

	// Evaluate the required intermediate angles
	halpha := 0.5 * alpha
	hpsi := 0.5 * yaw
	hgampsi := gamma + hpsi

	chalpha := math.Cos(halpha)
	shalpha := math.Sin(halpha)
	chpsi := math.Cos(hpsi)
	shpsi := math.Sin(hpsi)
	chgampsi := math.Cos(hgampsi)
	shgampsi := math.Sin(hgampsi)

	return quatNormalized(Quat{
		shalpha * chgampsi,
		shalpha * shgampsi,
		chalpha * shpsi,
		chalpha * chpsi,
	})
}

// quatNormalized rescales q to unit norm, falling back to the identity
// quaternion when the norm is at or below NormTolerance.
func quatNormalized(q Quat) Quat {
	a := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if a <= NormTolerance {
		return QuatIdentity()
	}
	return Quat{q[0] / a, q[1] / a, q[2] / a, q[3] / a}
}
