package display

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"animcharts/path"
	"animcharts/rect"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x, y, size float64) *path.Path {
	return path.New().MoveTo(x, y).LineTo(x+size, y).LineTo(x+size, y+size).LineTo(x, y+size).Close()
}

func TestCanvasBackingStoreFollowsPixelRatio(t *testing.T) {
	c := NewCanvas(100, 50, 2)
	bounds := c.Image().Bounds()
	assert.Equal(t, 200, bounds.Dx())
	assert.Equal(t, 100, bounds.Dy())
	w, h := c.Size()
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)

	// drawing stays in logical units
	c.SetFillStyle("red")
	c.FillPath(square(10, 10, 10))
	r, _, _, a := c.Image().At(30, 30).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = c.Image().At(50, 50).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestCanvasClearRectHonoursTranslation(t *testing.T) {
	c := NewCanvas(40, 40, 1)
	c.SetFillStyle("blue")
	c.FillPath(square(0, 0, 40))

	c.Save()
	c.Translate(20, 20)
	c.ClearRect(rect.NewRect(-5, -5, 5, 5))
	c.Restore()

	_, _, _, a := c.Image().At(20, 20).RGBA()
	assert.Equal(t, uint32(0), a)
	_, _, _, a = c.Image().At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), a)

	// clearing outside the surface is ignored
	c.ClearRect(rect.NewRect(100, 100, 200, 200))
}

func TestCanvasResizeDropsContent(t *testing.T) {
	c := NewCanvas(10, 10, 1)
	c.SetFillStyle("black")
	c.FillPath(square(0, 0, 10))
	c.Resize(20, 10, 1.5)
	assert.Equal(t, 30, c.Image().Bounds().Dx())
	_, _, _, a := c.Image().At(1, 1).RGBA()
	assert.Equal(t, uint32(0), a)
	assert.Equal(t, 1.5, c.PixelRatio())
}

func TestCanvasEncodePNG(t *testing.T) {
	c := NewCanvas(8, 8, 1)
	c.SetStrokeStyle("#3366ff")
	c.SetLineWidth(2)
	c.MoveTo(0, 4)
	c.LineTo(8, 4)
	c.Stroke()
	var buf bytes.Buffer
	require.NoError(t, c.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestTransformRestoresState(t *testing.T) {
	rec := NewRecorder(100, 100, 1)
	rec.Reset()
	list := []Command{
		NewClearRect(rect.NewRect(0, 0, 100, 100)),
		NewTransform(50, 50, []Command{
			NewFillPath(square(0, 0, 1), "green"),
			NewDrawText(0, 0, "70", nil, "#434343"),
		}),
		NewDrawLine(0, 1, 100, 1, "#ddd", 1),
	}
	Execute(list, rec)

	assert.Equal(t, 0, rec.Depth())
	dx, dy := rec.Offset()
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
	assert.Contains(t, rec.Calls, "DrawText(70, 50, 50)")
	assert.Equal(t, "ClearRect(0, 0, 100, 100)", rec.Calls[0])
	assert.Equal(t, "Stroke", rec.Calls[len(rec.Calls)-1])
}

func TestDumpIndentsChildren(t *testing.T) {
	list := []Command{
		NewTransform(1, 2, []Command{NewFillPath(square(0, 0, 1), "red")}),
		NewStrokePath(path.New().MoveTo(0, 0).LineTo(1, 1), "#3366ff", 3),
	}
	lines := strings.Split(strings.TrimSpace(Dump(list, 0)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Transform(dx=1.00, dy=2.00)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "  FillPath(path='M0,0L1,0"))
	assert.Equal(t, "StrokePath(path='M0,0L1,1', color='#3366ff', thickness=3)", lines[2])
}

func TestLayerComposite(t *testing.T) {
	c := NewCanvas(4, 4, 2)
	c.SetFillStyle("red")
	c.FillPath(square(0, 0, 4))
	root := gg.NewContext(20, 20)
	NewLayer(c, 2, 3).Composite(root)
	_, _, _, a := root.Image().At(5, 7).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = root.Image().At(1, 1).RGBA()
	assert.Equal(t, uint32(0), a)
}
