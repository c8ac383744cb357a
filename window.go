package main

import (
	"math"
	"unsafe"

	"animcharts/viewer"

	"github.com/veandco/go-sdl2/sdl"
)

// Window shows a viewer's root surface in an SDL window.
type Window struct {
	viewer     *viewer.Viewer
	sdl_window *sdl.Window
	ratio      float64
	width      int32
	height     int32
	RED_MASK   uint32
	GREEN_MASK uint32
	BLUE_MASK  uint32
	ALPHA_MASK uint32
}

func NewWindow(v *viewer.Viewer, ratio float64) *Window {
	w, h := v.Size()
	win := &Window{
		viewer: v,
		ratio:  ratio,
		width:  int32(math.Ceil(w * ratio)),
		height: int32(math.Ceil(h * ratio)),
	}

	window, err := sdl.CreateWindow("Animated charts", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		win.width, win.height, sdl.WINDOW_SHOWN)
	if err != nil {
		panic("Could not create sdl window")
	}
	win.sdl_window = window

	if sdl.BYTEORDER == sdl.BIG_ENDIAN {
		win.RED_MASK = 0xff000000
		win.GREEN_MASK = 0x00ff0000
		win.BLUE_MASK = 0x0000ff00
		win.ALPHA_MASK = 0x000000ff
	} else {
		win.RED_MASK = 0x000000ff
		win.GREEN_MASK = 0x0000ff00
		win.BLUE_MASK = 0x00ff0000
		win.ALPHA_MASK = 0xff000000
	}
	return win
}

// Draw blits the viewer's composited image to the window.
func (w *Window) Draw() {
	img := w.viewer.Image()

	depth := 32
	pitch := img.Stride
	sdl_surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&img.Pix[0]),
		w.width, w.height, depth, pitch,
		w.RED_MASK, w.GREEN_MASK, w.BLUE_MASK, w.ALPHA_MASK,
	)
	if err != nil {
		panic("Cannot create rgb surface")
	}
	defer sdl_surface.Free()

	rect := &sdl.Rect{X: 0, Y: 0, W: w.width, H: w.height}
	window_surface, err := w.sdl_window.GetSurface()
	if err != nil {
		panic("Cannot get window surface")
	}
	sdl_surface.Blit(rect, window_surface, rect)
	w.sdl_window.UpdateSurface()
}

// HandleClick forwards a button press in window pixels to the viewer.
func (w *Window) HandleClick(e *sdl.MouseButtonEvent) {
	if w.viewer.Click(float64(e.X)/w.ratio, float64(e.Y)/w.ratio) {
		w.Draw()
	}
}

func (w *Window) HandleRefresh() {
	w.viewer.Refresh()
}

func (w *Window) HandleQuit() {
	w.sdl_window.Destroy()
}
