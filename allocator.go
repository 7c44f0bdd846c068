package textrender

// GlyphArrays are the parallel per-glyph arrays backing a renderer. The
// arrays are kept in lock-step: the usable capacity is the minimum length
// across all of them (ignoring Clusters when cluster tracking is off).
//
// Positions start as font-relative offsets written by the shaper and are
// converted in place to absolute, then aligned, positions. Advances is
// scratch storage with write-then-read-once semantics: contents never
// survive across calls, so allocators are free to hand out a fresh slice
// every time. Keeping it a distinct slice instead of aliasing the tail of
// IDs costs a little peak memory but avoids any read/write ordering
// hazards between the arrays.
type GlyphArrays struct {
	Positions []Vec2
	IDs       []uint32
	Clusters  []uint32
	Advances  []Vec2
}

// RunArrays are the parallel per-run arrays backing a renderer.
type RunArrays struct {
	Scales []float32
	Ends   []uint32
}

// Allocator supplies backing storage for the renderer's growable arrays.
// Implement it to place glyph data into arena- or frame-scoped memory; if
// no allocator is given the renderer grows slices geometrically.
//
// An allocation call receives the count of elements whose contents must
// survive the reallocation — committed data plus everything of the
// in-progress block — and the total element count needed, and must leave
// every array with length of at least total (except scratch, see
// GlyphArrays). Growing beyond the request is encouraged; returning less
// breaks the allocator contract and makes the renderer panic. A total of
// zero signals Clear: the allocator may reset internal bookkeeping and is
// allowed to keep or drop capacity as it sees fit.
type Allocator interface {
	// AllocateGlyphs grows the per-glyph arrays to at least total
	// elements, preserving the first preserve elements of Positions,
	// IDs and Clusters. Clusters is only required when the renderer was
	// created with FlagGlyphClusters; otherwise it may stay nil.
	AllocateGlyphs(preserve, total int, arrays *GlyphArrays, clusters bool)

	// AllocateRuns grows the per-run arrays to at least total elements,
	// preserving the first preserve elements.
	AllocateRuns(preserve, total int, arrays *RunArrays)
}

// builtinAllocator grows slices with append-style geometric doubling,
// bounding the number of reallocations over repeated Add calls.
type builtinAllocator struct{}

// growCap returns the new capacity for a grow request, at least doubling.
func growCap(have, need int) int {
	if have == 0 {
		have = 1
	}
	for have < need {
		have *= 2
	}
	return have
}

func growVec2(s []Vec2, keep, total int) []Vec2 {
	if len(s) >= total {
		return s
	}
	grown := make([]Vec2, growCap(len(s), total))
	copy(grown, s[:min(keep, len(s))])
	return grown
}

func growUint32(s []uint32, keep, total int) []uint32 {
	if len(s) >= total {
		return s
	}
	grown := make([]uint32, growCap(len(s), total))
	copy(grown, s[:min(keep, len(s))])
	return grown
}

func (builtinAllocator) AllocateGlyphs(preserve, total int, arrays *GlyphArrays, clusters bool) {
	if total == 0 {
		return
	}
	arrays.Positions = growVec2(arrays.Positions, preserve, total)
	arrays.IDs = growUint32(arrays.IDs, preserve, total)
	if clusters {
		arrays.Clusters = growUint32(arrays.Clusters, preserve, total)
	}
	// Scratch, nothing to preserve.
	if len(arrays.Advances) < total {
		arrays.Advances = make([]Vec2, growCap(len(arrays.Advances), total))
	}
}

func (builtinAllocator) AllocateRuns(preserve, total int, arrays *RunArrays) {
	if total == 0 {
		return
	}
	if len(arrays.Scales) < total {
		grown := make([]float32, growCap(len(arrays.Scales), total))
		copy(grown, arrays.Scales[:min(preserve, len(arrays.Scales))])
		arrays.Scales = grown
	}
	arrays.Ends = growUint32(arrays.Ends, preserve, total)
}

// glyphBuffer tracks the per-glyph arrays together with their lock-step
// capacity.
type glyphBuffer struct {
	arrays   GlyphArrays
	capacity int
}

// ensure grows the arrays so that total glyphs fit, preserving the
// first preserve elements. Panics when the allocator under-delivers.
func (b *glyphBuffer) ensure(alloc Allocator, preserve, total int, clusters bool) {
	if b.capacity >= total {
		return
	}
	alloc.AllocateGlyphs(preserve, total, &b.arrays, clusters)
	capacity := min(len(b.arrays.Positions), len(b.arrays.IDs), len(b.arrays.Advances))
	if clusters {
		capacity = min(capacity, len(b.arrays.Clusters))
	}
	if capacity < total {
		panic("textrender: allocator returned less glyph capacity than requested")
	}
	b.capacity = capacity
}

// clear re-invokes the allocator with a zero-size request so custom
// allocators can reset bookkeeping, then re-derives capacity from
// whatever arrays remain.
func (b *glyphBuffer) clear(alloc Allocator, clusters bool) {
	alloc.AllocateGlyphs(0, 0, &b.arrays, clusters)
	b.capacity = min(len(b.arrays.Positions), len(b.arrays.IDs), len(b.arrays.Advances))
	if clusters {
		b.capacity = min(b.capacity, len(b.arrays.Clusters))
	}
}

// runBuffer tracks the per-run arrays together with their capacity.
type runBuffer struct {
	arrays   RunArrays
	capacity int
}

func (b *runBuffer) ensure(alloc Allocator, preserve, total int) {
	if b.capacity >= total {
		return
	}
	alloc.AllocateRuns(preserve, total, &b.arrays)
	capacity := min(len(b.arrays.Scales), len(b.arrays.Ends))
	if capacity < total {
		panic("textrender: allocator returned less run capacity than requested")
	}
	b.capacity = capacity
}

func (b *runBuffer) clear(alloc Allocator) {
	alloc.AllocateRuns(0, 0, &b.arrays)
	b.capacity = min(len(b.arrays.Scales), len(b.arrays.Ends))
}
