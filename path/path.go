// Package path holds stroke- and fill-able 2D path geometry.
//
// A Path is an ordered list of segments using the canvas vocabulary (move,
// line, cubic Bézier, close). Circular arcs are converted to cubic Béziers
// on insertion, so consumers only ever replay four operations.
package path

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const epsilon = 1e-6

type Op uint8

const (
	MoveTo Op = iota
	LineTo
	CubicTo
	Close
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	}
	return "?"
}

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Segment is one path operation. CubicTo carries two control points followed
// by the end point, MoveTo and LineTo carry the end point only.
type Segment struct {
	Op     Op
	Points []Point
}

// End returns the on-curve point the segment finishes at.
func (s Segment) End() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

type Path struct {
	segments []Segment
	start    Point // start of the current subpath
	current  Point
	has_cur  bool
}

func New() *Path {
	return &Path{}
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.segments = append(p.segments, Segment{Op: MoveTo, Points: []Point{{x, y}}})
	p.start = Point{x, y}
	p.current = p.start
	p.has_cur = true
	return p
}

// LineTo starts a subpath if there is no current point, like a canvas context.
func (p *Path) LineTo(x, y float64) *Path {
	if !p.has_cur {
		return p.MoveTo(x, y)
	}
	p.segments = append(p.segments, Segment{Op: LineTo, Points: []Point{{x, y}}})
	p.current = Point{x, y}
	return p
}

func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) *Path {
	if !p.has_cur {
		p.MoveTo(x1, y1)
	}
	p.segments = append(p.segments, Segment{Op: CubicTo, Points: []Point{{x1, y1}, {x2, y2}, {x, y}}})
	p.current = Point{x, y}
	return p
}

func (p *Path) Close() *Path {
	if !p.has_cur {
		return p
	}
	p.segments = append(p.segments, Segment{Op: Close})
	p.current = p.start
	return p
}

// Arc adds a circular arc around (cx,cy) from angle a0 to a1, in radians
// measured from the positive x axis towards positive y. When the path already
// has a current point a line joins it to the start of the arc, unless the two
// coincide. Sweeps wrap into [0,2π]; a sweep of 2π or more draws a full circle.
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) *Path {
	r = math.Max(0, r)
	x0 := cx + r*math.Cos(a0)
	y0 := cy + r*math.Sin(a0)

	if !p.has_cur {
		p.MoveTo(x0, y0)
	} else if math.Abs(p.current.X-x0) > epsilon || math.Abs(p.current.Y-y0) > epsilon {
		p.LineTo(x0, y0)
	}
	if r == 0 {
		return p
	}

	da := a1 - a0
	if ccw {
		da = a0 - a1
	}
	if da < 0 {
		da = math.Mod(da, 2*math.Pi) + 2*math.Pi
	}
	if da > 2*math.Pi-epsilon {
		da = 2 * math.Pi
	} else if da <= epsilon {
		return p
	}

	sign := 1.0
	if ccw {
		sign = -1
	}
	pieces := int(math.Ceil(da / (math.Pi / 2)))
	step := da / float64(pieces)
	k := 4.0 / 3.0 * math.Tan(step/4) * r
	theta := a0
	for i := 0; i < pieces; i++ {
		next := theta + sign*step
		cos0, sin0 := math.Cos(theta), math.Sin(theta)
		cos1, sin1 := math.Cos(next), math.Sin(next)
		p.CubicTo(
			cx+r*cos0-sign*k*sin0, cy+r*sin0+sign*k*cos0,
			cx+r*cos1+sign*k*sin1, cy+r*sin1-sign*k*cos1,
			cx+r*cos1, cy+r*sin1,
		)
		theta = next
	}
	return p
}

func (p *Path) Segments() []Segment {
	return p.segments
}

func (p *Path) Len() int {
	return len(p.segments)
}

func (p *Path) Empty() bool {
	return len(p.segments) == 0
}

// CurrentPoint is the end of the last segment.
func (p *Path) CurrentPoint() (Point, bool) {
	return p.current, p.has_cur
}

// Vertices returns the on-curve points in order, skipping control points.
func (p *Path) Vertices() []Point {
	vertices := make([]Point, 0, len(p.segments))
	for _, seg := range p.segments {
		if end, ok := seg.End(); ok {
			vertices = append(vertices, end)
		}
	}
	return vertices
}

// Bounds returns the box around all points including control points, which
// contains the curve itself.
func (p *Path) Bounds() (min, max Point) {
	first := true
	for _, seg := range p.segments {
		for _, pt := range seg.Points {
			if first {
				min, max = pt, pt
				first = false
				continue
			}
			min.X = math.Min(min.X, pt.X)
			min.Y = math.Min(min.Y, pt.Y)
			max.X = math.Max(max.X, pt.X)
			max.Y = math.Max(max.Y, pt.Y)
		}
	}
	return min, max
}

// Translate returns a copy of the path moved by (dx,dy).
func (p *Path) Translate(dx, dy float64) *Path {
	moved := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    Point{p.start.X + dx, p.start.Y + dy},
		current:  Point{p.current.X + dx, p.current.Y + dy},
		has_cur:  p.has_cur,
	}
	for i, seg := range p.segments {
		points := make([]Point, len(seg.Points))
		for j, pt := range seg.Points {
			points[j] = Point{pt.X + dx, pt.Y + dy}
		}
		moved.segments[i] = Segment{Op: seg.Op, Points: points}
	}
	return moved
}

// String renders the path as SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	for _, seg := range p.segments {
		sb.WriteString(seg.Op.String())
		for i, pt := range seg.Points {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(format(pt.X))
			sb.WriteByte(',')
			sb.WriteString(format(pt.Y))
		}
	}
	return sb.String()
}

func format(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (pt Point) String() string {
	return fmt.Sprintf("(%s,%s)", format(pt.X), format(pt.Y))
}
