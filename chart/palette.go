package chart

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/abg"
)

// palette maps symbolic classification colors to the named web colors of
// the classic acid-base map.
var palette = map[abg.Color]gg.RGBA{
	abg.Yellow: gg.Hex("#FFFF00"),
	abg.Red:    gg.Hex("#FF0000"),
	abg.Orange: gg.Hex("#FFA500"),
	abg.Gray:   gg.Hex("#808080"),
	abg.Cyan:   gg.Hex("#00FFFF"),
	abg.Purple: gg.Hex("#800080"),
	abg.Blue:   gg.Hex("#0000FF"),
	abg.Green:  gg.Hex("#008000"),
}

// ColorOf returns the display color for c. Unknown colors render gray.
func ColorOf(c abg.Color) gg.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[abg.Gray]
}

// tint returns c drawn at alpha a over white, as an opaque color.
func tint(c gg.RGBA, a float64) gg.RGBA {
	return gg.White.Lerp(c, a)
}
