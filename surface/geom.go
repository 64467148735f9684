package surface

import (
	"math"

	"github.com/TimothyStiles/rnaknot/basepair"
)

// symMatrix3 is a symmetric 3x3 matrix, stored as its upper triangle.
type symMatrix3 struct {
	xx, xy, xz, yy, yz, zz float64
}

func covariance(points []basepair.Vec3, centroid basepair.Vec3) symMatrix3 {
	var m symMatrix3
	for _, p := range points {
		d := p.Sub(centroid)
		m.xx += d.X * d.X
		m.xy += d.X * d.Y
		m.xz += d.X * d.Z
		m.yy += d.Y * d.Y
		m.yz += d.Y * d.Z
		m.zz += d.Z * d.Z
	}
	n := float64(len(points))
	if n > 0 {
		m.xx /= n
		m.xy /= n
		m.xz /= n
		m.yy /= n
		m.yz /= n
		m.zz /= n
	}
	return m
}

// eigenSymmetric3 returns the eigenvalues (ascending) and corresponding unit
// eigenvectors of a symmetric 3x3 matrix, via the cyclic Jacobi rotation
// method. This is the standard textbook approach for small symmetric
// matrices and avoids pulling in a linear-algebra dependency that the
// example corpus's complete repos never import (see DESIGN.md).
func eigenSymmetric3(m symMatrix3) (values [3]float64, vectors [3]basepair.Vec3) {
	a := [3][3]float64{
		{m.xx, m.xy, m.xz},
		{m.xy, m.yy, m.yz},
		{m.xz, m.yz, m.zz},
	}
	v := [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}

	const maxSweeps = 50
	for sweep := 0; sweep < maxSweeps; sweep++ {
		off := math.Abs(a[0][1]) + math.Abs(a[0][2]) + math.Abs(a[1][2])
		if off < 1e-14 {
			break
		}
		for p := 0; p < 2; p++ {
			for q := p + 1; q < 3; q++ {
				if math.Abs(a[p][q]) < 1e-300 {
					continue
				}
				jacobiRotate(&a, &v, p, q)
			}
		}
	}

	for i := 0; i < 3; i++ {
		values[i] = a[i][i]
		vectors[i] = basepair.Vec3{X: v[0][i], Y: v[1][i], Z: v[2][i]}
	}

	// sort ascending by eigenvalue
	for i := 0; i < 3; i++ {
		minIdx := i
		for j := i + 1; j < 3; j++ {
			if values[j] < values[minIdx] {
				minIdx = j
			}
		}
		values[i], values[minIdx] = values[minIdx], values[i]
		vectors[i], vectors[minIdx] = vectors[minIdx], vectors[i]
	}
	return values, vectors
}

// jacobiRotate zeroes a[p][q] (and a[q][p]) by an orthogonal rotation,
// accumulating the rotation into v.
func jacobiRotate(a, v *[3][3]float64, p, q int) {
	app, aqq, apq := a[p][p], a[q][q], a[p][q]
	if apq == 0 {
		return
	}
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1, theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta == 0 {
		t = 1
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	for k := 0; k < 3; k++ {
		akp, akq := a[k][p], a[k][q]
		a[k][p] = c*akp - s*akq
		a[k][q] = s*akp + c*akq
	}
	for k := 0; k < 3; k++ {
		apk, aqk := a[p][k], a[q][k]
		a[p][k] = c*apk - s*aqk
		a[q][k] = s*apk + c*aqk
	}
	for k := 0; k < 3; k++ {
		vkp, vkq := v[k][p], v[k][q]
		v[k][p] = c*vkp - s*vkq
		v[k][q] = s*vkp + c*vkq
	}
}

// fitPlane fits a best-fit plane through points, using the smallest
// eigenvalue's eigenvector as the normal and the largest eigenvalue's
// eigenvector, orthogonalized against it, as the first in-plane axis.
// The plane is invalid when fewer than 3 distinct points are given, or when
// the point spread is collinear within epsCollinear (i.e. the variance
// along the second principal direction is too small to fix a plane).
func fitPlane(points []basepair.Vec3, epsCollinear float64) Plane {
	if len(points) < 3 {
		return Plane{}
	}

	var centroid basepair.Vec3
	for _, p := range points {
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	cov := covariance(points, centroid)
	values, vectors := eigenSymmetric3(cov)
	// values[0] <= values[1] <= values[2]; normal is the smallest-variance
	// direction, the in-plane spread is values[1] and values[2].
	if values[1] <= epsCollinear {
		return Plane{}
	}

	normal := vectors[0].Normalize()
	e1Raw := vectors[2]
	// Gram-Schmidt: remove any normal component, then normalize.
	e1 := e1Raw.Sub(normal.Scale(e1Raw.Dot(normal))).Normalize()
	e2 := normal.Cross(e1).Normalize()

	return Plane{C: centroid, E1: e1, E2: e2, Normal: normal, Valid: true}
}
