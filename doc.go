// Package textrender is an incremental text layout and glyph-quad
// rendering engine.
//
// The engine turns shaped glyph runs into positioned, aligned glyph data
// and, optionally, into vertex and index buffers ready for GPU
// consumption. Shaping itself, glyph rasterization and GPU resource
// management stay outside: they enter through the Shaper, Font and
// GlyphCache interfaces, with production implementations in the gotext
// and atlas subpackages and buffer upload in the mesh subpackage.
//
// The central type is RendererCore. Text is added incrementally:
//
//	core := textrender.NewRendererCore(cache, 0)
//	core.SetAlignment(textrender.AlignmentTopLeft)
//	core.Add(shaper, 16, text, 0, len(text), nil)
//	rect, runs := core.Render()
//
// Each Add shapes a byte range, splits it on newlines and lays the
// glyphs out line by line; several Add calls with different shapers,
// fonts or sizes can contribute to a single block, even to a single
// line. Render aligns the accumulated block, places it at the cursor and
// commits the glyph and run data, which is then readable through the
// accessors until the next Clear.
//
// Renderer adds quad expansion on top, producing four vertices and six
// indices per glyph for textured-quad drawing.
package textrender
