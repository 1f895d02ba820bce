package window

import (
	"sort"
)

// SizeFunc returns the extent of the row at an index
type SizeFunc func(index int) int

// Engine computes the visible slice of a large row list.
// It never touches rows outside the rendered set except to sum extents,
// and those sums are cached until SetRows is called again.
type Engine struct {
	cfg Config

	count   int
	sizeOf  SizeFunc
	headers []int

	sizes    []int // cached extents
	starts   []int // cached start offsets
	measured bool

	scroll   int
	viewport int
}

// NewEngine creates an engine with no rows
func NewEngine(cfg Config) *Engine {
	if cfg.Gap < 0 {
		cfg.Gap = 0
	}
	if cfg.Overscan < 0 {
		cfg.Overscan = 0
	}
	return &Engine{cfg: cfg}
}

// Config returns the engine parameters
func (e *Engine) Config() Config {
	return e.cfg
}

// SetRows installs a new row sequence and drops every cached measurement.
// headerIndexes must be ascending.
func (e *Engine) SetRows(count int, sizeOf SizeFunc, headerIndexes []int) {
	if count < 0 {
		count = 0
	}
	e.count = count
	e.sizeOf = sizeOf
	e.headers = headerIndexes
	e.invalidate()
	e.scroll = e.clampScroll(e.scroll)
}

// Count returns the number of rows
func (e *Engine) Count() int {
	return e.count
}

// SetViewport sets the visible extent in lines
func (e *Engine) SetViewport(extent int) {
	if extent < 0 {
		extent = 0
	}
	e.viewport = extent
	e.scroll = e.clampScroll(e.scroll)
}

// Viewport returns the visible extent
func (e *Engine) Viewport() int {
	return e.viewport
}

// ScrollOffset returns the current scroll position
func (e *Engine) ScrollOffset() int {
	return e.scroll
}

// SetScrollOffset moves the scroll position, clamped to the content
func (e *Engine) SetScrollOffset(offset int) bool {
	next := e.clampScroll(offset)
	changed := next != e.scroll
	e.scroll = next
	return changed
}

// ScrollBy moves the scroll position by delta lines
func (e *Engine) ScrollBy(delta int) bool {
	return e.SetScrollOffset(e.scroll + delta)
}

// TotalExtent is the sum of all row extents plus the gaps between them
func (e *Engine) TotalExtent() int {
	if e.count == 0 {
		return 0
	}
	e.measure()
	last := e.count - 1
	return e.starts[last] + e.sizes[last]
}

// Offset returns the start offset of row i (clamped)
func (e *Engine) Offset(i int) int {
	if e.count == 0 {
		return 0
	}
	e.measure()
	return e.starts[e.clampIndex(i)]
}

// SizeAt returns the extent of row i (clamped)
func (e *Engine) SizeAt(i int) int {
	if e.count == 0 {
		return 0
	}
	e.measure()
	return e.sizes[e.clampIndex(i)]
}

// IndexAtOffset returns the row covering an absolute offset, or -1 for gaps
// and offsets outside the content
func (e *Engine) IndexAtOffset(offset int) int {
	if e.count == 0 || offset < 0 {
		return -1
	}
	e.measure()
	i := sort.Search(e.count, func(k int) bool {
		return e.starts[k]+e.sizes[k] > offset
	})
	if i >= e.count || e.starts[i] > offset {
		return -1
	}
	return i
}

// ActiveHeaderFor returns the greatest header index <= i, falling back to
// the first header, or -1 when there are no headers
func (e *Engine) ActiveHeaderFor(i int) int {
	if len(e.headers) == 0 {
		return -1
	}
	k := sort.Search(len(e.headers), func(k int) bool {
		return e.headers[k] > i
	}) - 1
	if k < 0 {
		return e.headers[0]
	}
	return e.headers[k]
}

// ScrollToIndex positions the viewport so that row i is visible.
// Rows already fully visible do not move the viewport.
func (e *Engine) ScrollToIndex(i int) bool {
	if e.count == 0 {
		return false
	}
	e.measure()
	i = e.clampIndex(i)

	start := e.starts[i]
	end := start + e.sizes[i]

	// A pinned header covers the top of the viewport for non-header rows
	occluded := 0
	if e.cfg.Sticky && !e.isHeader(i) {
		if h := e.ActiveHeaderFor(i); h >= 0 && h < i {
			occluded = e.sizes[h]
		}
	}

	next := e.scroll
	switch {
	case start-occluded < e.scroll:
		next = start - occluded
	case end > e.scroll+e.viewport:
		next = end - e.viewport
		if start-occluded < next {
			next = start - occluded
		}
	}

	return e.SetScrollOffset(next)
}

// Compute derives the window for the current scroll position
func (e *Engine) Compute() State {
	st := State{
		ScrollOffset:   e.scroll,
		ViewportExtent: e.viewport,
		Visible:        emptyRange,
		Overscanned:    emptyRange,
		ActiveHeader:   -1,
	}
	if e.count == 0 {
		return st
	}
	e.measure()
	st.TotalExtent = e.TotalExtent()

	first := sort.Search(e.count, func(k int) bool {
		return e.starts[k]+e.sizes[k] > e.scroll
	})
	if first >= e.count {
		first = e.count - 1
	}
	last := sort.Search(e.count, func(k int) bool {
		return e.starts[k] >= e.scroll+e.viewport
	}) - 1
	if last < first {
		last = first
	}
	st.Visible = Range{Start: first, End: last}
	st.Overscanned = Range{
		Start: max(0, first-e.cfg.Overscan),
		End:   min(e.count-1, last+e.cfg.Overscan),
	}

	if e.cfg.Sticky {
		st.ActiveHeader = e.ActiveHeaderFor(st.Visible.Start)
	}

	st.Rendered = make([]int, 0, st.Overscanned.End-st.Overscanned.Start+2)
	if st.ActiveHeader >= 0 && st.ActiveHeader < st.Overscanned.Start {
		st.Rendered = append(st.Rendered, st.ActiveHeader)
	}
	for i := st.Overscanned.Start; i <= st.Overscanned.End; i++ {
		st.Rendered = append(st.Rendered, i)
	}

	st.Items = make([]Item, len(st.Rendered))
	for k, i := range st.Rendered {
		st.Items[k] = Item{
			Index:  i,
			Start:  e.starts[i],
			Size:   e.sizes[i],
			Sticky: i == st.ActiveHeader,
		}
	}

	return st
}

func (e *Engine) invalidate() {
	e.measured = false
	e.sizes = e.sizes[:0]
	e.starts = e.starts[:0]
}

// measure fills the size cache and the start offsets once per row set
func (e *Engine) measure() {
	if e.measured {
		return
	}
	if cap(e.sizes) < e.count {
		e.sizes = make([]int, e.count)
		e.starts = make([]int, e.count)
	} else {
		e.sizes = e.sizes[:e.count]
		e.starts = e.starts[:e.count]
	}

	offset := 0
	for i := 0; i < e.count; i++ {
		size := 0
		if e.sizeOf != nil {
			size = e.sizeOf(i)
		}
		if size < 0 {
			size = 0
		}
		e.sizes[i] = size
		e.starts[i] = offset
		offset += size + e.cfg.Gap
	}
	e.measured = true
}

func (e *Engine) isHeader(i int) bool {
	k := sort.SearchInts(e.headers, i)
	return k < len(e.headers) && e.headers[k] == i
}

func (e *Engine) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= e.count {
		return e.count - 1
	}
	return i
}

func (e *Engine) clampScroll(offset int) int {
	maxScroll := e.TotalExtent() - e.viewport
	if offset > maxScroll {
		offset = maxScroll
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
