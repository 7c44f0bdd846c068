// Package gotext implements the textrender shaping interfaces on top of
// go-text/typesetting's HarfBuzz shaper.
//
// A Font is opened once from TTF or OTF data and carries both the
// shaping tables and the metrics and outlines needed elsewhere: a Shaper
// wraps it for textrender.RendererCore, and RasterizeGlyph produces the
// alpha masks an atlas.Cache stores.
//
//	font, err := gotext.OpenFont(goregular.TTF, 16)
//	if err != nil {
//		...
//	}
//	shaper := gotext.NewShaper(font)
//	core.Add(shaper, 16, text, 0, len(text), nil)
package gotext
