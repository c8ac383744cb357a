package path

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAndSerialize(t *testing.T) {
	p := New().MoveTo(0, 0).LineTo(10, 0).CubicTo(10, 5, 5, 10, 0, 10).Close()
	assert.Equal(t, "M0,0L10,0C10,5 5,10 0,10Z", p.String())
	assert.Equal(t, 4, p.Len())
	assert.Equal(t, []Point{{0, 0}, {10, 0}, {0, 10}}, p.Vertices())

	cur, ok := p.CurrentPoint()
	require.True(t, ok)
	assert.Equal(t, Pt(0, 0), cur)
}

func TestLineToWithoutCurrentPointMoves(t *testing.T) {
	p := New().LineTo(3, 4)
	require.Equal(t, 1, p.Len())
	assert.Equal(t, MoveTo, p.Segments()[0].Op)
	assert.True(t, New().Empty())
	assert.Equal(t, 0, New().Close().Len())
}

func TestArcQuarterCircle(t *testing.T) {
	p := New().Arc(0, 0, 10, 0, math.Pi/2, false)
	segs := p.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, MoveTo, segs[0].Op)
	assert.Equal(t, CubicTo, segs[1].Op)

	end, _ := segs[1].End()
	assert.InDelta(t, 0, end.X, 1e-9)
	assert.InDelta(t, 10, end.Y, 1e-9)

	// the midpoint of a 90° Bézier approximation stays close to the circle
	mid := cubicAt(segs[0].Points[0], segs[1].Points[0], segs[1].Points[1], end, 0.5)
	assert.InDelta(t, 10, math.Hypot(mid.X, mid.Y), 10*5e-4)
}

func TestArcWrapsAndFullCircle(t *testing.T) {
	// clockwise from 3/2π to 0 wraps to a quarter turn
	p := New().Arc(0, 0, 5, 3*math.Pi/2, 0, false)
	assert.Equal(t, 2, p.Len())

	full := New().Arc(0, 0, 5, 0, 2*math.Pi, false)
	assert.Equal(t, 5, full.Len())
	end, _ := full.CurrentPoint()
	assert.InDelta(t, 5, end.X, 1e-9)
	assert.InDelta(t, 0, end.Y, 1e-9)

	ccw := New().Arc(0, 0, 5, math.Pi/2, 0, true)
	end, _ = ccw.CurrentPoint()
	assert.InDelta(t, 5, end.X, 1e-9)
	assert.Equal(t, 2, ccw.Len())
}

func TestArcJoinsCurrentPoint(t *testing.T) {
	p := New().MoveTo(0, 0).Arc(0, 0, 5, 0, math.Pi/2, false)
	assert.Equal(t, LineTo, p.Segments()[1].Op)

	// coincident start: no joining line
	q := New().MoveTo(5, 0).Arc(0, 0, 5, 0, math.Pi/2, false)
	assert.Equal(t, CubicTo, q.Segments()[1].Op)

	// zero radius or zero sweep adds no curve
	assert.Equal(t, 1, New().Arc(1, 1, 0, 0, 1, false).Len())
	assert.Equal(t, 1, New().Arc(0, 0, 3, 1, 1, false).Len())
}

func TestFlattenAndArea(t *testing.T) {
	square := New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close()
	lines := square.Flatten(1)
	require.Len(t, lines, 1)
	assert.Equal(t, lines[0][0], lines[0][len(lines[0])-1])
	assert.InDelta(t, 100, Area(square.Polygon(1)), 1e-9)

	circle := New().Arc(0, 0, 10, 0, 2*math.Pi, false).Close()
	assert.InDelta(t, math.Pi*100, Area(circle.Polygon(0.1)), 0.5)
}

func TestOverlap(t *testing.T) {
	a := New().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).LineTo(0, 10).Close()
	b := a.Translate(5, 5)
	c := a.Translate(20, 0)
	assert.InDelta(t, 25, Overlap(a, b, 1), 1e-6)
	assert.InDelta(t, 0, Overlap(a, c, 1), 1e-6)
	assert.Equal(t, 0.0, Overlap(a, New().MoveTo(1, 1), 1))
}

type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y float64)                    { r.ops = append(r.ops, "M") }
func (r *recorder) LineTo(x, y float64)                    { r.ops = append(r.ops, "L") }
func (r *recorder) CubicTo(x1, y1, x2, y2, x3, y3 float64) { r.ops = append(r.ops, "C") }
func (r *recorder) ClosePath()                             { r.ops = append(r.ops, "Z") }

func TestReplay(t *testing.T) {
	rec := &recorder{}
	New().MoveTo(0, 0).LineTo(1, 1).Arc(0, 0, 1, 0, math.Pi, false).Close().Replay(rec)
	assert.Equal(t, []string{"M", "L", "L", "C", "C", "Z"}, rec.ops)
}

func TestBounds(t *testing.T) {
	p := New().MoveTo(-1, 2).LineTo(4, -3).CubicTo(0, 9, 1, 1, 2, 2)
	lo, hi := p.Bounds()
	assert.Equal(t, Pt(-1, -3), lo)
	assert.Equal(t, Pt(4, 9), hi)
}
