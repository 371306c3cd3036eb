package chart

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fontSource parses the embedded Go Regular font once per process.
var fontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

func loadFace(size float64) (text.Face, error) {
	src, err := fontSource()
	if err != nil {
		return nil, fmt.Errorf("chart: load font: %w", err)
	}
	return src.Face(size), nil
}

// EnableTextShaping switches gg's global text shaper to the HarfBuzz
// shaper from go-text/typesetting, which applies kerning and ligatures to
// chart labels. Call it with false to restore gg's built-in shaper.
func EnableTextShaping(on bool) {
	if on {
		text.SetShaper(text.NewGoTextShaper())
		return
	}
	text.SetShaper(nil)
}
