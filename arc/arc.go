// Package arc builds the closed outline of one donut (pie) segment.
//
// Angles are in radians, 0 at twelve o'clock and increasing clockwise on a
// y-down surface. Segments are centred on the origin; translate the surface
// to place them.
package arc

import (
	"math"

	"animcharts/path"
)

const (
	epsilon = 1e-12
	tau     = 2 * math.Pi
	halfPi  = math.Pi / 2
)

// Segment describes an annular sector.
//
// PadAngle is the gap left between neighbouring segments; each edge gives
// up half of it. CornerRadius rounds the four corners and is reduced
// automatically when the sector is too thin or too narrow to hold it.
type Segment struct {
	InnerRadius  float64
	OuterRadius  float64
	StartAngle   float64
	EndAngle     float64
	CornerRadius float64
	PadAngle     float64
}

// BuildArcSegment is the positional form of Build.
func BuildArcSegment(innerRadius, outerRadius, startAngle, endAngle, cornerRadius, padAngle float64) *path.Path {
	return Build(Segment{
		InnerRadius:  innerRadius,
		OuterRadius:  outerRadius,
		StartAngle:   startAngle,
		EndAngle:     endAngle,
		CornerRadius: cornerRadius,
		PadAngle:     padAngle,
	})
}

// Build returns a closed fillable outline for s. Invalid input is clamped: negative
// radii, corner radius and padding count as zero, and swapped radii are
// reordered. A zero-width segment yields a closed path without area.
func Build(s Segment) *path.Path {
	p := path.New()

	r0 := math.Max(0, s.InnerRadius)
	r1 := math.Max(0, s.OuterRadius)
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	a0 := s.StartAngle - halfPi
	a1 := s.EndAngle - halfPi
	da := math.Abs(a1 - a0)
	cw := a1 > a0

	switch {
	case !(r1 > epsilon):
		// a point
		p.MoveTo(0, 0)

	case da > tau-epsilon:
		// a circle or an annulus
		p.MoveTo(r1*math.Cos(a0), r1*math.Sin(a0))
		p.Arc(0, 0, r1, a0, a1, !cw)
		if r0 > epsilon {
			p.MoveTo(r0*math.Cos(a1), r0*math.Sin(a1))
			p.Arc(0, 0, r0, a1, a0, cw)
		}

	default:
		sector(p, s, r0, r1, a0, a1, da, cw)
	}

	return p.Close()
}

func sector(p *path.Path, s Segment, r0, r1, a0, a1, da float64, cw bool) {
	a01, a11 := a0, a1 // outer ring edges
	a00, a10 := a0, a1 // inner ring edges
	da0, da1 := da, da
	ap := math.Max(0, s.PadAngle) / 2
	rc := math.Min(math.Abs(r1-r0)/2, math.Max(0, s.CornerRadius))
	rc0, rc1 := rc, rc

	// the pad is a constant linear gap measured at the pad radius, so the
	// inner ring loses more angle than the outer one
	if ap > epsilon {
		rp := math.Sqrt(r0*r0 + r1*r1)
		dir := 1.0
		if !cw {
			dir = -1
		}
		p0 := asin(rp / r0 * math.Sin(ap))
		if r0 <= epsilon {
			p0 = halfPi
		}
		p1 := asin(rp / r1 * math.Sin(ap))
		if da0 -= p0 * 2; da0 > epsilon {
			a00 += dir * p0
			a10 -= dir * p0
		} else {
			da0 = 0
			a00 = (a0 + a1) / 2
			a10 = a00
		}
		if da1 -= p1 * 2; da1 > epsilon {
			a01 += dir * p1
			a11 -= dir * p1
		} else {
			da1 = 0
			a01 = (a0 + a1) / 2
			a11 = a01
		}
	}

	x01, y01 := r1*math.Cos(a01), r1*math.Sin(a01)
	x10, y10 := r0*math.Cos(a10), r0*math.Sin(a10)
	x11, y11 := r1*math.Cos(a11), r1*math.Sin(a11)
	x00, y00 := r0*math.Cos(a00), r0*math.Sin(a00)

	// The corner radius is limited by the angle between the two edges. When
	// the edges do not intersect the sector is too small for rounding at all.
	if rc > epsilon && da < math.Pi {
		if ox, oy, ok := intersect(x01, y01, x00, y00, x11, y11, x10, y10); ok {
			ax, ay := x01-ox, y01-oy
			bx, by := x11-ox, y11-oy
			cos := (ax*bx + ay*by) / (math.Hypot(ax, ay) * math.Hypot(bx, by))
			kc := 1 / math.Sin(acos(cos)/2)
			lc := math.Hypot(ox, oy)
			rc0 = math.Min(rc, (r0-lc)/(kc-1))
			rc1 = math.Min(rc, (r1-lc)/(kc+1))
		} else {
			rc0, rc1 = 0, 0
		}
	}

	switch {
	case !(da1 > epsilon):
		// collapsed to a line
		p.MoveTo(x01, y01)

	case rc1 > epsilon:
		t0 := cornerTangents(x00, y00, x01, y01, r1, rc1, cw)
		t1 := cornerTangents(x11, y11, x10, y10, r1, rc1, cw)
		p.MoveTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc1 < rc {
			// the two corners merged into one
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc1, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r1, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), !cw)
			p.Arc(t1.cx, t1.cy, rc1, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}

	default:
		p.MoveTo(x01, y01)
		p.Arc(0, 0, r1, a01, a11, !cw)
	}

	switch {
	case !(r0 > epsilon) || !(da0 > epsilon):
		// circular sector, or the inner ring was eaten by padding
		p.LineTo(x10, y10)

	case rc0 > epsilon:
		t0 := cornerTangents(x10, y10, x11, y11, r0, -rc0, cw)
		t1 := cornerTangents(x01, y01, x00, y00, r0, -rc0, cw)
		p.LineTo(t0.cx+t0.x01, t0.cy+t0.y01)
		if rc0 < rc {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t1.y01, t1.x01), !cw)
		} else {
			p.Arc(t0.cx, t0.cy, rc0, math.Atan2(t0.y01, t0.x01), math.Atan2(t0.y11, t0.x11), !cw)
			p.Arc(0, 0, r0, math.Atan2(t0.cy+t0.y11, t0.cx+t0.x11), math.Atan2(t1.cy+t1.y11, t1.cx+t1.x11), cw)
			p.Arc(t1.cx, t1.cy, rc0, math.Atan2(t1.y11, t1.x11), math.Atan2(t1.y01, t1.x01), !cw)
		}

	default:
		p.Arc(0, 0, r0, a10, a00, cw)
	}
}

// Centroid is the midpoint of the segment's angular and radial extent, a
// natural anchor for a label.
func Centroid(s Segment) path.Point {
	r := (s.InnerRadius + s.OuterRadius) / 2
	a := (s.StartAngle+s.EndAngle)/2 - halfPi
	return path.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// intersect returns where the line through (x0,y0),(x1,y1) crosses the line
// through (x2,y2),(x3,y3).
func intersect(x0, y0, x1, y1, x2, y2, x3, y3 float64) (float64, float64, bool) {
	x10, y10 := x1-x0, y1-y0
	x32, y32 := x3-x2, y3-y2
	t := y32*x10 - x32*y10
	if t*t < epsilon {
		return 0, 0, false
	}
	t = (x32*(y0-y2) - y32*(x0-x2)) / t
	return x0 + t*x10, y0 + t*y10, true
}

// tangent describes a rounded corner: its centre, and the offsets from the
// centre to where it touches the straight edge (01) and the ring (11).
type tangent struct {
	cx, cy   float64
	x01, y01 float64
	x11, y11 float64
}

// cornerTangents finds the circle of radius rc touching both the edge line
// (x0,y0)→(x1,y1) and the ring of radius r1.
func cornerTangents(x0, y0, x1, y1, r1, rc float64, cw bool) tangent {
	x01, y01 := x0-x1, y0-y1
	lo := -rc
	if cw {
		lo = rc
	}
	lo /= math.Hypot(x01, y01)
	ox, oy := lo*y01, -lo*x01
	x11, y11 := x0+ox, y0+oy
	x10, y10 := x1+ox, y1+oy
	x00, y00 := (x11+x10)/2, (y11+y10)/2
	dx, dy := x10-x11, y10-y11
	d2 := dx*dx + dy*dy
	r := r1 - rc
	D := x11*y10 - x10*y11
	sign := 1.0
	if dy < 0 {
		sign = -1
	}
	d := sign * math.Sqrt(math.Max(0, r*r*d2-D*D))
	cx0 := (D*dy - dx*d) / d2
	cy0 := (-D*dx - dy*d) / d2
	cx1 := (D*dy + dx*d) / d2
	cy1 := (-D*dx + dy*d) / d2
	dx0, dy0 := cx0-x00, cy0-y00
	dx1, dy1 := cx1-x00, cy1-y00

	// pick the closer of the two intersections
	if dx0*dx0+dy0*dy0 > dx1*dx1+dy1*dy1 {
		cx0, cy0 = cx1, cy1
	}

	return tangent{
		cx:  cx0,
		cy:  cy0,
		x01: -ox,
		y01: -oy,
		x11: cx0 * (r1/r - 1),
		y11: cy0 * (r1/r - 1),
	}
}

func acos(x float64) float64 {
	return math.Acos(math.Max(-1, math.Min(1, x)))
}

func asin(x float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, x)))
}
