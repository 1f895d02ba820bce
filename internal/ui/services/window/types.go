package window

// Config holds the window engine parameters
type Config struct {
	Gap      int  // lines between rows
	Overscan int  // extra rows materialised on each side
	Sticky   bool // pin the governing group header
}

// Range is an inclusive index interval; Start > End means empty
type Range struct {
	Start int
	End   int
}

// Empty reports whether the range holds no index
func (r Range) Empty() bool {
	return r.Start > r.End
}

// Contains reports whether index i is inside the range
func (r Range) Contains(i int) bool {
	return !r.Empty() && i >= r.Start && i <= r.End
}

var emptyRange = Range{Start: 0, End: -1}

// Item is one materialised row with its geometry
type Item struct {
	Index  int
	Start  int // offset of the row's first line
	Size   int
	Sticky bool // rendered pinned at the top of the viewport
}

// State is the derived window for one scroll position
type State struct {
	TotalExtent    int
	ScrollOffset   int
	ViewportExtent int
	Visible        Range // rows intersecting the viewport
	Overscanned    Range // Visible expanded by overscan
	ActiveHeader   int   // -1 when sticky mode is off or there are no headers
	Rendered       []int // ascending, deduplicated
	Items          []Item
}
