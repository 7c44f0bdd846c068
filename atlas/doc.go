// Package atlas provides a shelf-packed glyph atlas implementing
// textrender.GlyphCache.
//
// A Cache owns one or more equally sized alpha pages and a global glyph
// namespace spanning every font added to it. Glyph masks, typically
// produced by gotext.Font.RasterizeGlyph, are packed into the pages with
// a shelf packer; when a page fills up the cache grows by another layer,
// matching array-texture uploads on the GPU side.
//
// Pages store rows bottom-up: the texture V coordinate grows together
// with the Y-up quad corners the renderer emits, so the pages can be
// uploaded to a texture without any coordinate fixups.
package atlas
