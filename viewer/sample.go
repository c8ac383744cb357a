package viewer

import (
	"math/rand/v2"

	"animcharts/chart"
)

// RandomLineData is a series with x = 0, 10, ..., 290 and integer y drawn
// uniformly from [1,100].
func RandomLineData(rng *rand.Rand) []chart.Point {
	data := make([]chart.Point, 0, 30)
	for x := 0; x < 300; x += 10 {
		data = append(data, chart.Point{
			X: float64(x),
			Y: float64(rng.IntN(100) + 1),
		})
	}
	return data
}

func DefaultPieData() []chart.Segment {
	return []chart.Segment{
		{Color: "green", Value: 25},
		{Color: "blue", Value: 30},
		{Color: "red", Value: 15},
	}
}
