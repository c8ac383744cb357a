// Package color turns CSS color specifiers into image colors.
package color

import (
	"fmt"
	col "image/color"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'animcharts.color'
func tracer() tracing.Trace {
	return tracing.Select("animcharts.color")
}

// Parse accepts anything a canvas fillStyle accepts: names, hex, rgb(), hsl().
func Parse(color string) (col.RGBA, error) {
	c, err := csscolorparser.Parse(color)
	if err != nil {
		return col.RGBA{}, fmt.Errorf("invalid color %q: %w", color, err)
	}
	r, g, b, a := c.RGBA255()
	return col.RGBA{R: r, G: g, B: b, A: a}, nil
}

// ParseColor is Parse falling back to black, the canvas default.
func ParseColor(color string) col.Color {
	c, err := Parse(color)
	if err != nil {
		tracer().Errorf("%v, using black", err)
		return col.Black
	}
	return c
}

// Valid reports whether color parses.
func Valid(color string) bool {
	_, err := csscolorparser.Parse(color)
	return err == nil
}
