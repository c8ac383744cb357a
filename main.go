package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"animcharts/config"
	"animcharts/viewer"

	"github.com/spf13/afero"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	config_file := flag.String("config", "charts.yaml", "chart configuration (YAML)")
	png_file := flag.String("png", "", "render headless at 60fps and write the final frame to this PNG")
	flag.Parse()

	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, *config_file)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		os.Exit(1)
	}
	if *png_file != "" {
		if err := headless(fs, cfg, *png_file); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		return
	}

	err = sdl.Init(sdl.INIT_EVENTS)
	if err != nil {
		panic("Could not init sdl")
	}
	v, err := viewer.NewViewer(cfg, fs)
	if err != nil {
		panic("Could not create viewer: " + err.Error())
	}
	window := NewWindow(v, cfg.PixelRatio)
	v.Show()
	mainloop(window, v)
}

// headless runs both transitions to completion on a synthetic 60fps clock.
func headless(fs afero.Fs, cfg *config.Config, filename string) error {
	now := time.Now()
	v, err := viewer.NewViewer(cfg, fs)
	if err != nil {
		return err
	}
	v.WithClock(func() time.Time { return now })
	v.Show()
	for frames := 0; !v.Idle(); frames++ {
		if frames > 60*60 {
			return fmt.Errorf("animation did not finish after %d frames", frames)
		}
		now = now.Add(time.Second / 60)
		v.Step(now)
	}
	if err := v.Err(); err != nil {
		return err
	}
	if err := v.Snapshot(fs, filename); err != nil {
		return err
	}
	fmt.Println("Wrote", filename)
	return v.Close()
}

func mainloop(window *Window, v *viewer.Viewer) {
	quit := func() {
		window.HandleQuit()
		if err := v.Close(); err != nil {
			fmt.Println("Error writing trace:", err)
		}
		sdl.Quit()
		os.Exit(0)
	}
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				quit()
			case *sdl.MouseButtonEvent:
				if e.State == sdl.RELEASED {
					window.HandleClick(e)
				}
			case *sdl.KeyboardEvent:
				if e.State != sdl.PRESSED {
					continue
				}
				if e.Keysym.Sym == sdl.K_q {
					quit()
				} else if e.Keysym.Sym == sdl.K_r {
					window.HandleRefresh()
				}
			}
		}
		if !v.Idle() {
			v.Step(time.Now())
			window.Draw()
		}

		sdl.Delay(1)
	}
}
