// Package font finds and caches font faces for chart labels.
package font

import (
	"math"
	"strings"
	"sync"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/npillmayer/schuko/tracing"
	fnt "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// tracer writes to trace with key 'animcharts.font'
func tracer() tracing.Trace {
	return tracing.Select("animcharts.font")
}

type FontKey struct {
	Family string
	Size   float64
	Weight string
}

type FontItem struct {
	Font  fnt.Face
	Label string
}

var (
	font_cache = map[FontKey]FontItem{}
	cache_lock sync.Mutex
	finder     *sysfont.Finder
	// SystemLookup may be switched off to always use the embedded Go fonts,
	// which keeps rendering identical across machines.
	SystemLookup = true
)

// Get returns a face for family at size pixels. Weight is "normal" or "bold".
// Families missing from the system fall back to the embedded Go fonts.
func Get(family string, size float64, weight string) fnt.Face {
	key := FontKey{Family: family, Size: size, Weight: weight}
	cache_lock.Lock()
	defer cache_lock.Unlock()
	if item, exists := font_cache[key]; exists {
		return item.Font
	}

	item, ok := FontItem{}, false
	if SystemLookup && family != "" {
		item, ok = system_font(family, size, weight)
	}
	if !ok {
		item = embedded_font(size, weight)
	}
	tracer().Debugf("loaded font %s at size %.1f", item.Label, size)
	font_cache[key] = item
	return item.Font
}

// Label names the font actually serving key, after fallback.
func Label(family string, size float64, weight string) string {
	Get(family, size, weight)
	cache_lock.Lock()
	defer cache_lock.Unlock()
	return font_cache[FontKey{Family: family, Size: size, Weight: weight}].Label
}

func system_font(family string, size float64, weight string) (FontItem, bool) {
	if finder == nil {
		finder = sysfont.NewFinder(nil)
	}
	query := family
	if weight != "" && weight != "normal" {
		query += " " + weight
	}
	match := finder.Match(query)
	if match == nil || !strings.EqualFold(match.Family, family) {
		return FontItem{}, false
	}
	face, err := gg.LoadFontFace(match.Filename, size)
	if err != nil {
		tracer().Errorf("error loading font %s: %v", match.Filename, err)
		return FontItem{}, false
	}
	return FontItem{Font: face, Label: match.Name}, true
}

func embedded_font(size float64, weight string) FontItem {
	data, label := goregular.TTF, "Go Regular"
	if weight == "bold" || weight == "700" {
		data, label = gobold.TTF, "Go Bold"
	}
	parsed, err := truetype.Parse(data)
	if err != nil {
		// the embedded fonts are known good
		panic("Error parsing embedded font: " + err.Error())
	}
	return FontItem{
		Font:  truetype.NewFace(parsed, &truetype.Options{Size: size}),
		Label: label,
	}
}

func Measure(font fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(font, text)) / 64.0)
}

func Linespace(font fnt.Face) float64 {
	return math.Ceil(float64(font.Metrics().Height) / 64.0)
}

func Ascent(font fnt.Face) float64 {
	return float64(font.Metrics().Ascent) / 64.0
}

func Descent(font fnt.Face) float64 {
	return float64(font.Metrics().Descent) / 64.0
}
