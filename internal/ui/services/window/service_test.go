package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniform(size int) SizeFunc {
	return func(int) int { return size }
}

// groupedRows lays out groups of n options, each preceded by a header
func groupedRows(groups, n int) (int, []int) {
	headers := make([]int, 0, groups)
	count := 0
	for g := 0; g < groups; g++ {
		headers = append(headers, count)
		count += n + 1
	}
	return count, headers
}

func TestTotalExtent(t *testing.T) {
	e := NewEngine(Config{Gap: 1})
	e.SetRows(5, uniform(2), nil)
	assert.Equal(t, 5*2+1*4, e.TotalExtent())

	e.SetRows(1, uniform(3), nil)
	assert.Equal(t, 3, e.TotalExtent(), "a single row has no gap")

	e.SetRows(0, uniform(3), nil)
	assert.Equal(t, 0, e.TotalExtent())
}

func TestComputeVisibleRangeWithOverscan(t *testing.T) {
	e := NewEngine(Config{Overscan: 2})
	e.SetRows(100, uniform(1), nil)
	e.SetViewport(10)

	st := e.Compute()
	assert.Equal(t, Range{Start: 0, End: 9}, st.Visible)
	assert.Equal(t, Range{Start: 0, End: 11}, st.Overscanned)
	assert.Len(t, st.Rendered, 12)
	assert.Equal(t, -1, st.ActiveHeader)

	require.True(t, e.SetScrollOffset(50))
	st = e.Compute()
	assert.Equal(t, Range{Start: 50, End: 59}, st.Visible)
	assert.Equal(t, Range{Start: 48, End: 61}, st.Overscanned)
	assert.Equal(t, 48, st.Rendered[0])
	assert.Equal(t, 61, st.Rendered[len(st.Rendered)-1])
}

func TestOverscanClampsAtEnd(t *testing.T) {
	e := NewEngine(Config{Overscan: 2})
	e.SetRows(100, uniform(1), nil)
	e.SetViewport(10)

	e.SetScrollOffset(1000)
	assert.Equal(t, 90, e.ScrollOffset(), "scroll is clamped to total minus viewport")

	st := e.Compute()
	assert.Equal(t, Range{Start: 90, End: 99}, st.Visible)
	assert.Equal(t, Range{Start: 88, End: 99}, st.Overscanned)
}

func TestStickyHeaderIsRendered(t *testing.T) {
	count, headers := groupedRows(3, 10) // headers at 0, 11, 22
	e := NewEngine(Config{Overscan: 2, Sticky: true})
	e.SetRows(count, uniform(1), headers)
	e.SetViewport(5)

	e.SetScrollOffset(15)
	st := e.Compute()
	assert.Equal(t, Range{Start: 15, End: 19}, st.Visible)
	assert.Equal(t, 11, st.ActiveHeader)
	assert.Equal(t, []int{11, 13, 14, 15, 16, 17, 18, 19, 20, 21}, st.Rendered)
	assert.True(t, st.Items[0].Sticky)
	assert.False(t, st.Items[1].Sticky)

	// header inside the overscan window is not duplicated
	e.SetScrollOffset(12)
	st = e.Compute()
	assert.Equal(t, 11, st.ActiveHeader)
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18}, st.Rendered)
}

func TestStickyDisabledHasNoActiveHeader(t *testing.T) {
	count, headers := groupedRows(2, 5)
	e := NewEngine(Config{})
	e.SetRows(count, uniform(1), headers)
	e.SetViewport(3)
	e.SetScrollOffset(8)

	st := e.Compute()
	assert.Equal(t, -1, st.ActiveHeader)
	for _, it := range st.Items {
		assert.False(t, it.Sticky)
	}
}

func TestActiveHeaderNeverPrecededByLaterHeader(t *testing.T) {
	count, headers := groupedRows(6, 7)
	sizeOf := func(i int) int {
		if i%3 == 0 {
			return 2
		}
		return 1
	}
	e := NewEngine(Config{Sticky: true, Gap: 1})
	e.SetRows(count, sizeOf, headers)
	e.SetViewport(6)

	for off := 0; off <= e.TotalExtent(); off++ {
		e.SetScrollOffset(off)
		st := e.Compute()
		require.GreaterOrEqual(t, st.ActiveHeader, 0)
		assert.LessOrEqual(t, st.ActiveHeader, st.Visible.Start)
		assert.Contains(t, st.Rendered, st.ActiveHeader)
		for _, h := range headers {
			if h > st.ActiveHeader {
				assert.Greater(t, h, st.Visible.Start, "a later header would have governed the window")
			}
		}
		for k := 1; k < len(st.Rendered); k++ {
			assert.Less(t, st.Rendered[k-1], st.Rendered[k])
		}
	}
}

func TestEmptyRows(t *testing.T) {
	e := NewEngine(Config{Sticky: true, Overscan: 3})
	e.SetRows(0, uniform(1), nil)
	e.SetViewport(10)

	st := e.Compute()
	assert.Equal(t, 0, st.TotalExtent)
	assert.True(t, st.Visible.Empty())
	assert.Empty(t, st.Rendered)
	assert.Equal(t, -1, st.ActiveHeader)
	assert.False(t, e.ScrollToIndex(3))
	assert.Equal(t, -1, e.IndexAtOffset(0))
}

func TestScrollToIndexAuto(t *testing.T) {
	e := NewEngine(Config{})
	e.SetRows(100, uniform(1), nil)
	e.SetViewport(10)

	assert.False(t, e.ScrollToIndex(5), "visible rows do not move the viewport")
	assert.Equal(t, 0, e.ScrollOffset())

	assert.True(t, e.ScrollToIndex(20))
	assert.Equal(t, 11, e.ScrollOffset(), "row below aligns to the viewport end")

	assert.True(t, e.ScrollToIndex(3))
	assert.Equal(t, 3, e.ScrollOffset(), "row above aligns to the viewport start")

	e.ScrollToIndex(500)
	assert.Equal(t, 90, e.ScrollOffset(), "out of range index is clamped to the last row")

	e.ScrollToIndex(-4)
	assert.Equal(t, 0, e.ScrollOffset())
}

func TestScrollToIndexAccountsForStickyHeader(t *testing.T) {
	count, headers := groupedRows(3, 10)
	e := NewEngine(Config{Sticky: true})
	e.SetRows(count, uniform(1), headers)
	e.SetViewport(5)
	e.SetScrollOffset(15)

	assert.True(t, e.ScrollToIndex(15))
	assert.Equal(t, 14, e.ScrollOffset(), "row must clear the pinned header")

	assert.True(t, e.ScrollToIndex(11))
	assert.Equal(t, 11, e.ScrollOffset(), "headers are not occluded by themselves")
}

func TestScrollToIndexTallRowAlignsStart(t *testing.T) {
	e := NewEngine(Config{})
	e.SetRows(10, func(i int) int {
		if i == 4 {
			return 8
		}
		return 1
	}, nil)
	e.SetViewport(3)

	e.ScrollToIndex(4)
	assert.Equal(t, e.Offset(4), e.ScrollOffset())
}

func TestScrollBy(t *testing.T) {
	e := NewEngine(Config{})
	e.SetRows(20, uniform(1), nil)
	e.SetViewport(5)

	assert.False(t, e.ScrollBy(-5))
	assert.Equal(t, 0, e.ScrollOffset())
	assert.True(t, e.ScrollBy(3))
	assert.Equal(t, 3, e.ScrollOffset())
	e.ScrollBy(100)
	assert.Equal(t, 15, e.ScrollOffset())
}

func TestIndexAtOffsetWithGaps(t *testing.T) {
	e := NewEngine(Config{Gap: 1})
	e.SetRows(3, uniform(2), nil) // rows at 0-1, 3-4, 6-7

	assert.Equal(t, 0, e.IndexAtOffset(1))
	assert.Equal(t, -1, e.IndexAtOffset(2), "gap line")
	assert.Equal(t, 1, e.IndexAtOffset(4))
	assert.Equal(t, 2, e.IndexAtOffset(6))
	assert.Equal(t, -1, e.IndexAtOffset(100))
	assert.Equal(t, -1, e.IndexAtOffset(-1))
}

func TestSizesAreCachedUntilSetRows(t *testing.T) {
	calls := 0
	sizeOf := func(int) int {
		calls++
		return 1
	}
	e := NewEngine(Config{})
	e.SetRows(50, sizeOf, nil)
	e.SetViewport(10)

	e.Compute()
	e.Compute()
	e.ScrollToIndex(40)
	e.Compute()
	assert.Equal(t, 50, calls)

	e.SetRows(50, func(int) int { return 2 }, nil)
	assert.Equal(t, 100, e.TotalExtent(), "new rows are measured again")
}

func TestSetRowsClampsScroll(t *testing.T) {
	e := NewEngine(Config{})
	e.SetRows(100, uniform(1), nil)
	e.SetViewport(10)
	e.SetScrollOffset(80)

	e.SetRows(12, uniform(1), nil)
	assert.Equal(t, 2, e.ScrollOffset())
}
