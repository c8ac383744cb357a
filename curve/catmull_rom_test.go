package curve

import (
	"math"
	"testing"

	"animcharts/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassesThroughEveryPoint(t *testing.T) {
	cases := [][]path.Point{
		{},
		{{X: 3, Y: 4}},
		{{X: 0, Y: 0}, {X: 10, Y: 50}},
		{{X: 0, Y: 10}, {X: 10, Y: 80}, {X: 20, Y: 30}},
		{{X: 0, Y: 0}, {X: 1, Y: 90}, {X: 50, Y: 10}, {X: 51, Y: 12}, {X: 300, Y: 0}},
	}
	for _, points := range cases {
		p := Build(points)
		assert.Equal(t, points, nonNil(p.Vertices()), "path %s", p)
	}
}

func TestDegenerateShapes(t *testing.T) {
	assert.True(t, Build(nil).Empty())

	single := Build([]path.Point{{X: 1, Y: 2}})
	require.Equal(t, 1, single.Len())
	assert.Equal(t, path.MoveTo, single.Segments()[0].Op)

	line := Build([]path.Point{{X: 0, Y: 0}, {X: 10, Y: 50}})
	assert.Equal(t, "M0,0L10,50", line.String())
}

func TestSegmentsAreCubics(t *testing.T) {
	points := []path.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}, {X: 30, Y: 10}}
	p := Build(points)
	require.Equal(t, len(points), p.Len())
	for _, seg := range p.Segments()[1:] {
		assert.Equal(t, path.CubicTo, seg.Op)
	}
}

func TestTangentsAgreeAtInteriorPoints(t *testing.T) {
	points := []path.Point{{X: 0, Y: 0}, {X: 2, Y: 40}, {X: 30, Y: 35}, {X: 31, Y: 0}, {X: 90, Y: 20}}
	for _, alpha := range []float64{0, Centripetal, 1} {
		segs := CatmullRom(points, alpha).Segments()
		for i := 1; i+1 < len(segs); i++ {
			in := segs[i].Points[1]    // second control point of the incoming cubic
			knot := segs[i].Points[2]  // shared point
			out := segs[i+1].Points[0] // first control point of the outgoing cubic
			ax, ay := knot.X-in.X, knot.Y-in.Y
			bx, by := out.X-knot.X, out.Y-knot.Y
			cross := ax*by - ay*bx
			norm := math.Hypot(ax, ay) * math.Hypot(bx, by)
			require.Greater(t, norm, 0.0)
			assert.InDelta(t, 0, cross/norm, 1e-9, "alpha %v knot %d", alpha, i)
			assert.Greater(t, ax*bx+ay*by, 0.0)
		}
	}
}

func TestFirstAndLastTangentsUseEndpoints(t *testing.T) {
	points := []path.Point{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 20, Y: 0}}
	segs := Build(points).Segments()
	assert.Equal(t, points[0], segs[1].Points[0])
	assert.Equal(t, points[2], segs[2].Points[1])
}

func TestRepeatedPointsStayFinite(t *testing.T) {
	points := []path.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 9, Y: 1}}
	p := Build(points)
	for _, seg := range p.Segments() {
		for _, pt := range seg.Points {
			assert.False(t, math.IsNaN(pt.X) || math.IsNaN(pt.Y), "NaN in %s", p)
			assert.False(t, math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0), "Inf in %s", p)
		}
	}
	assert.Equal(t, points, p.Vertices())
}

func nonNil(points []path.Point) []path.Point {
	if len(points) == 0 {
		return []path.Point{}
	}
	return points
}
