package display

import (
	"fmt"
	"strings"

	"animcharts/path"
	"animcharts/rect"

	"golang.org/x/image/font"
)

// Command is one entry of a display list. A frame of a chart is a list of
// commands; playing it on a Surface draws the frame.
type Command interface {
	Execute(Surface)
	String() string
}

type ClearRect struct {
	rect *rect.Rect
}

func NewClearRect(rect *rect.Rect) *ClearRect {
	return &ClearRect{rect: rect}
}

func (c *ClearRect) Execute(surface Surface) {
	surface.ClearRect(c.rect)
}

func (c *ClearRect) String() string {
	return fmt.Sprint("ClearRect(rect=", c.rect, ")")
}

type DrawLine struct {
	x1, y1, x2, y2 float64
	color          string
	thickness      float64
}

func NewDrawLine(x1, y1, x2, y2 float64, color string, thickness float64) *DrawLine {
	return &DrawLine{
		x1: x1, y1: y1, x2: x2, y2: y2,
		color:     color,
		thickness: thickness,
	}
}

func (d *DrawLine) Execute(surface Surface) {
	surface.SetStrokeStyle(d.color)
	surface.SetLineWidth(d.thickness)
	surface.MoveTo(d.x1, d.y1)
	surface.LineTo(d.x2, d.y2)
	surface.Stroke()
}

func (d *DrawLine) String() string {
	return fmt.Sprintf("DrawLine(%.2f,%.2f -> %.2f,%.2f, color='%s', thickness=%g)", d.x1, d.y1, d.x2, d.y2, d.color, d.thickness)
}

type StrokePath struct {
	Path      *path.Path
	color     string
	thickness float64
}

func NewStrokePath(p *path.Path, color string, thickness float64) *StrokePath {
	return &StrokePath{
		Path:      p,
		color:     color,
		thickness: thickness,
	}
}

func (s *StrokePath) Execute(surface Surface) {
	surface.SetStrokeStyle(s.color)
	surface.SetLineWidth(s.thickness)
	surface.StrokePath(s.Path)
}

func (s *StrokePath) String() string {
	return fmt.Sprint("StrokePath(path='", s.Path, "', color='", s.color, "', thickness=", s.thickness, ")")
}

type FillPath struct {
	Path  *path.Path
	Color string
}

func NewFillPath(p *path.Path, color string) *FillPath {
	return &FillPath{Path: p, Color: color}
}

func (f *FillPath) Execute(surface Surface) {
	surface.SetFillStyle(f.Color)
	surface.FillPath(f.Path)
}

func (f *FillPath) String() string {
	return fmt.Sprint("FillPath(path='", f.Path, "', color='", f.Color, "')")
}

type DrawText struct {
	x, y  float64
	Text  string
	font  font.Face
	color string
}

func NewDrawText(x, y float64, text string, font font.Face, color string) *DrawText {
	return &DrawText{
		x:     x,
		y:     y,
		Text:  text,
		font:  font,
		color: color,
	}
}

func (d *DrawText) Execute(surface Surface) {
	surface.SetFillStyle(d.color)
	surface.DrawText(d.Text, d.x, d.y, d.font)
}

func (d *DrawText) String() string {
	return fmt.Sprintf("DrawText(%.2f,%.2f, text='%s', color='%s')", d.x, d.y, d.Text, d.color)
}

// Transform draws its children translated by (dx,dy). The translation is
// undone afterwards, so it never leaks into later commands.
type Transform struct {
	dx, dy   float64
	children []Command
}

func NewTransform(dx, dy float64, children []Command) *Transform {
	return &Transform{dx: dx, dy: dy, children: children}
}

func (t *Transform) Children() []Command {
	return t.children
}

func (t *Transform) Execute(surface Surface) {
	surface.Save()
	surface.Translate(t.dx, t.dy)
	for _, cmd := range t.children {
		cmd.Execute(surface)
	}
	surface.Restore()
}

func (t *Transform) String() string {
	return fmt.Sprintf("Transform(dx=%.2f, dy=%.2f)", t.dx, t.dy)
}

// Execute plays a display list on surface.
func Execute(list []Command, surface Surface) {
	for _, cmd := range list {
		cmd.Execute(surface)
	}
}

// Dump renders a display list one command per line, children indented.
func Dump(list []Command, indent int) string {
	var sb strings.Builder
	for _, cmd := range list {
		sb.WriteString(strings.Repeat(" ", indent))
		sb.WriteString(cmd.String())
		sb.WriteByte('\n')
		if t, ok := cmd.(*Transform); ok {
			sb.WriteString(Dump(t.children, indent+2))
		}
	}
	return sb.String()
}

func PrintCommands(list []Command, indent int) {
	fmt.Print(Dump(list, indent))
}
