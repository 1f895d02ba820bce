package config

import (
	"time"

	"vselect/internal/ui"
)

// Apply copies the widget settings onto opts.
// Zero extents and empty messages leave the widget defaults in place.
func Apply[T any](cfg *Config, opts *ui.Options[T]) {
	if cfg == nil || opts == nil {
		return
	}
	w := cfg.Widget

	opts.IsMulti = w.Multi
	opts.EnableSearch = w.Search
	opts.StickyGroups = w.Sticky
	opts.Loop = w.Loop
	opts.CloseOnChange = w.CloseOnChange
	opts.ForceSelection = w.ForceSelection
	opts.EnableSelectionOptions = w.SelectionOptions
	opts.InitialFocusOnFirstOption = w.InitialFocusFirst
	opts.SearchDebounce = ui.Debounce(time.Duration(max(w.DebounceMS, 0)) * time.Millisecond)

	setIfPositive(&opts.DefaultOptionSize, w.OptionSize)
	setIfPositive(&opts.DefaultOptionGroupSize, w.GroupSize)
	setIfPositive(&opts.Gap, w.Gap)
	setIfPositive(&opts.Overscan, w.Overscan)
	setIfPositive(&opts.MinHeight, w.MinHeight)
	setIfPositive(&opts.MaxHeight, w.MaxHeight)
	setIfPositive(&opts.Width, w.Width)

	if w.Placeholder != "" {
		opts.SearchPlaceholder = w.Placeholder
	}
	if w.NoOptionsMessage != "" {
		opts.NoOptionsMessage = w.NoOptionsMessage
	}
}

func setIfPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
