package arc

import (
	"math"
	"testing"

	"animcharts/path"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 0.05

func TestPlainAnnularSector(t *testing.T) {
	p := BuildArcSegment(50, 100, 0, math.Pi/2, 0, 0)
	vertices := p.Vertices()
	require.NotEmpty(t, vertices)

	// starts at twelve o'clock on the outer ring, moves clockwise to three
	assert.InDelta(t, 0, vertices[0].X, 1e-9)
	assert.InDelta(t, -100, vertices[0].Y, 1e-9)
	assert.Contains(t, rounded(vertices), path.Pt(100, 0))
	assert.Contains(t, rounded(vertices), path.Pt(50, 0))
	assert.Equal(t, path.Close, p.Segments()[p.Len()-1].Op)

	want := (100*100 - 50*50) * (math.Pi / 2) / 2
	assert.InDelta(t, want, path.Area(p.Polygon(tolerance)), want*0.002)
}

func TestCircleAndAnnulus(t *testing.T) {
	disc := BuildArcSegment(0, 10, 0, 2*math.Pi, 0, 0)
	assert.InDelta(t, math.Pi*100, path.Area(disc.Polygon(tolerance)), 0.5)

	ring := BuildArcSegment(5, 10, 0, 2*math.Pi, 3, 0.1)
	require.Len(t, ring.Polygon(tolerance), 2)
}

func TestZeroWidthSegmentHasNoArea(t *testing.T) {
	for _, seg := range []Segment{
		{InnerRadius: 50, OuterRadius: 100, StartAngle: 1, EndAngle: 1},
		{InnerRadius: 50, OuterRadius: 100, StartAngle: 1, EndAngle: 1, CornerRadius: 16, PadAngle: 0.02},
		{InnerRadius: 0, OuterRadius: 100, StartAngle: 0, EndAngle: 0, CornerRadius: 16},
	} {
		p := Build(seg)
		require.False(t, p.Empty())
		assert.Equal(t, path.Close, p.Segments()[p.Len()-1].Op)
		assertFinite(t, p)
		assert.InDelta(t, 0, path.Area(p.Polygon(tolerance)), 1e-9)
	}
}

func TestInvalidRadiiAreClamped(t *testing.T) {
	point := BuildArcSegment(-5, -10, 0, math.Pi, 4, 0.02)
	assertFinite(t, point)
	assert.Equal(t, "M0,0Z", point.String())

	// swapped radii draw the same ring
	a := BuildArcSegment(100, 50, 0, 1, 0, 0)
	b := BuildArcSegment(50, 100, 0, 1, 0, 0)
	assert.Equal(t, b.String(), a.String())

	// an inner radius below zero is a pie slice
	slice := BuildArcSegment(-20, 100, 0, 1, 0, 0)
	assert.Contains(t, rounded(slice.Vertices()), path.Pt(0, 0))
}

func TestCornersStayInsideTheRing(t *testing.T) {
	for _, span := range []float64{0.05, 0.3, math.Pi / 2, 3, 5} {
		p := BuildArcSegment(50, 100, 1, 1+span, 1000, 0.02)
		assertFinite(t, p)
		for _, line := range p.Flatten(tolerance) {
			for _, pt := range line {
				r := math.Hypot(pt.X, pt.Y)
				assert.LessOrEqual(t, r, 100+0.05, "span %v", span)
				assert.GreaterOrEqual(t, r, 50-0.05, "span %v", span)
			}
		}
	}
}

func TestRoundingShrinksArea(t *testing.T) {
	sharp := path.Area(BuildArcSegment(50, 100, 0, 1, 0, 0).Polygon(tolerance))
	round := path.Area(BuildArcSegment(50, 100, 0, 1, 16, 0).Polygon(tolerance))
	assert.Less(t, round, sharp)
	assert.Greater(t, round, sharp*0.8)
}

func TestPaddedNeighboursDoNotOverlap(t *testing.T) {
	angles := []float64{0, math.Pi / 2, 0.6 * 2 * math.Pi, 0.7 * 2 * math.Pi}
	for i := 0; i+2 < len(angles); i++ {
		a := BuildArcSegment(50, 100, angles[i], angles[i+1], 16, 0.02)
		b := BuildArcSegment(50, 100, angles[i+1], angles[i+2], 16, 0.02)
		assert.InDelta(t, 0, path.Overlap(a, b, tolerance), 1e-6)
	}
}

func TestPaddingKeepsSegmentInsideItsAngles(t *testing.T) {
	start, end := 0.5, 1.5
	p := BuildArcSegment(50, 100, start, end, 0, 0.02)
	for _, line := range p.Flatten(tolerance) {
		for _, pt := range line {
			a := clockAngle(pt)
			assert.Greater(t, a, start)
			assert.Less(t, a, end)
		}
	}
}

func TestCounterClockwiseSpan(t *testing.T) {
	p := BuildArcSegment(50, 100, math.Pi/2, 0, 0, 0)
	want := (100*100 - 50*50) * (math.Pi / 2) / 2
	assert.InDelta(t, want, path.Area(p.Polygon(tolerance)), want*0.002)
}

func TestCentroid(t *testing.T) {
	c := Centroid(Segment{InnerRadius: 50, OuterRadius: 100, StartAngle: 0, EndAngle: math.Pi})
	assert.InDelta(t, 75, c.X, 1e-9)
	assert.InDelta(t, 0, c.Y, 1e-9)
}

// clockAngle measures from twelve o'clock, clockwise, in [0, 2π).
func clockAngle(pt path.Point) float64 {
	a := math.Atan2(pt.Y, pt.X) + halfPi
	if a < 0 {
		a += tau
	}
	return a
}

func rounded(points []path.Point) []path.Point {
	out := make([]path.Point, len(points))
	for i, pt := range points {
		out[i] = path.Pt(math.Round(pt.X*1e6)/1e6+0, math.Round(pt.Y*1e6)/1e6+0)
	}
	return out
}

func assertFinite(t *testing.T, p *path.Path) {
	t.Helper()
	for _, seg := range p.Segments() {
		for _, pt := range seg.Points {
			require.False(t, math.IsNaN(pt.X) || math.IsNaN(pt.Y), "NaN in %s", p)
			require.False(t, math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0), "Inf in %s", p)
		}
	}
}
