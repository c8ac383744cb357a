package path

import (
	"math"

	"github.com/akavel/polyclip-go"
)

// Builder receives a path replay. *gg.Context satisfies it.
type Builder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// Replay issues the path's operations on b in order.
func (p *Path) Replay(b Builder) {
	for _, seg := range p.segments {
		switch seg.Op {
		case MoveTo:
			b.MoveTo(seg.Points[0].X, seg.Points[0].Y)
		case LineTo:
			b.LineTo(seg.Points[0].X, seg.Points[0].Y)
		case CubicTo:
			b.CubicTo(seg.Points[0].X, seg.Points[0].Y, seg.Points[1].X, seg.Points[1].Y, seg.Points[2].X, seg.Points[2].Y)
		case Close:
			b.ClosePath()
		}
	}
}

// Flatten approximates the path by polylines, one per subpath. Cubic segments
// are sampled so that consecutive samples are roughly tolerance apart along
// the control polygon.
func (p *Path) Flatten(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	var lines [][]Point
	var current []Point
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, current)
		}
		current = nil
	}
	for _, seg := range p.segments {
		switch seg.Op {
		case MoveTo:
			flush()
			current = []Point{seg.Points[0]}
		case LineTo:
			current = append(current, seg.Points[0])
		case CubicTo:
			if len(current) == 0 {
				current = []Point{seg.Points[0]}
			}
			p0 := current[len(current)-1]
			c1, c2, p3 := seg.Points[0], seg.Points[1], seg.Points[2]
			length := dist(p0, c1) + dist(c1, c2) + dist(c2, p3)
			n := int(math.Ceil(length / tolerance))
			n = max(1, min(n, 256))
			for i := 1; i <= n; i++ {
				current = append(current, cubicAt(p0, c1, c2, p3, float64(i)/float64(n)))
			}
		case Close:
			if len(current) > 0 && current[0] != current[len(current)-1] {
				current = append(current, current[0])
			}
		}
	}
	flush()
	return lines
}

// Polygon converts the flattened path into a polygon for boolean operations.
// Subpaths with fewer than three points enclose no area and are dropped.
func (p *Path) Polygon(tolerance float64) polyclip.Polygon {
	var poly polyclip.Polygon
	for _, line := range p.Flatten(tolerance) {
		if len(line) > 1 && line[0] == line[len(line)-1] {
			line = line[:len(line)-1]
		}
		if len(line) < 3 {
			continue
		}
		contour := make(polyclip.Contour, len(line))
		for i, pt := range line {
			contour[i] = polyclip.Point{X: pt.X, Y: pt.Y}
		}
		poly = append(poly, contour)
	}
	return poly
}

// Area sums the absolute shoelace areas of the polygon's contours. Holes are
// not subtracted.
func Area(poly polyclip.Polygon) float64 {
	total := 0.0
	for _, contour := range poly {
		a := 0.0
		for i := range contour {
			j := (i + 1) % len(contour)
			a += contour[i].X*contour[j].Y - contour[j].X*contour[i].Y
		}
		total += math.Abs(a) / 2
	}
	return total
}

// Overlap is the area p and q have in common, approximated at tolerance.
func Overlap(p, q *Path, tolerance float64) float64 {
	a, b := p.Polygon(tolerance), q.Polygon(tolerance)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return Area(a.Construct(polyclip.INTERSECTION, b))
}

func cubicAt(p0, c1, c2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
