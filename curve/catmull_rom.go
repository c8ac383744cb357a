// Package curve builds smooth interpolating paths through ordered points.
package curve

import (
	"math"

	"animcharts/path"
)

// Centripetal is the parameterization that avoids cusps and self-intersections
// on unevenly spaced points.
const Centripetal = 0.5

const epsilon = 1e-12

// Build returns a centripetal Catmull-Rom path through points.
func Build(points []path.Point) *path.Path {
	return CatmullRom(points, Centripetal)
}

// CatmullRom returns a path that passes through every point in order, joined
// by cubic Béziers derived from a Catmull-Rom spline with the given alpha
// (0 uniform, 0.5 centripetal, 1 chordal). One point yields a bare MoveTo,
// two points a straight line.
func CatmullRom(points []path.Point, alpha float64) *path.Path {
	p := path.New()
	switch len(points) {
	case 0:
		return p
	case 1:
		return p.MoveTo(points[0].X, points[0].Y)
	case 2:
		return p.MoveTo(points[0].X, points[0].Y).LineTo(points[1].X, points[1].Y)
	}

	p.MoveTo(points[0].X, points[0].Y)
	// The segment p1→p2 looks at its neighbours p0 and p3. The first segment
	// has no p0 and the last has no p3; a zero chord length there keeps the
	// tangent on the control point itself.
	for i := 0; i+1 < len(points); i++ {
		p1, p2 := points[i], points[i+1]
		l12 := chord(p1, p2, alpha)

		c1 := p1
		if i > 0 {
			p0 := points[i-1]
			l01 := chord(p0, p1, alpha)
			if l01.a > epsilon {
				a := 2*l01.a2 + 3*l01.a*l12.a + l12.a2
				n := 3 * l01.a * (l01.a + l12.a)
				c1 = path.Point{
					X: (p1.X*a - p0.X*l12.a2 + p2.X*l01.a2) / n,
					Y: (p1.Y*a - p0.Y*l12.a2 + p2.Y*l01.a2) / n,
				}
			}
		}

		c2 := p2
		if i+2 < len(points) {
			p3 := points[i+2]
			l23 := chord(p2, p3, alpha)
			if l23.a > epsilon {
				b := 2*l23.a2 + 3*l23.a*l12.a + l12.a2
				m := 3 * l23.a * (l23.a + l12.a)
				c2 = path.Point{
					X: (p2.X*b + p1.X*l23.a2 - p3.X*l12.a2) / m,
					Y: (p2.Y*b + p1.Y*l23.a2 - p3.Y*l12.a2) / m,
				}
			}
		}

		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
	return p
}

// chordLength keeps |d|^alpha and |d|^2alpha for one pair of points.
type chordLength struct {
	a, a2 float64
}

func chord(from, to path.Point, alpha float64) chordLength {
	dx, dy := to.X-from.X, to.Y-from.Y
	a2 := math.Pow(dx*dx+dy*dy, alpha)
	if dx == 0 && dy == 0 {
		// 0^0 would be 1; a repeated point contributes no length
		a2 = 0
	}
	return chordLength{a: math.Sqrt(a2), a2: a2}
}
