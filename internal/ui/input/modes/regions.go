package modes

import "vselect/internal/ui/input/types"

// Regions lists the focusable regions of an open widget in tab order
func Regions(ctx types.Context) []types.Mode {
	regions := make([]types.Mode, 0, 3)
	if ctx.SearchEnabled() && ctx.SearchAvailable() {
		regions = append(regions, types.ModeSearch)
	}
	regions = append(regions, types.ModeList)
	if ctx.ButtonsEnabled() {
		regions = append(regions, types.ModeButtons)
	}
	return regions
}

// EntryRegion is the region focused when the widget opens
func EntryRegion(ctx types.Context) types.Mode {
	return Regions(ctx)[0]
}

// Cycle returns the region step places after current, wrapping
func Cycle(ctx types.Context, current types.Mode, step int) types.Mode {
	regions := Regions(ctx)
	at := 0
	for i, r := range regions {
		if r == current {
			at = i
			break
		}
	}
	n := len(regions)
	return regions[((at+step)%n+n)%n]
}

func closeActions() []types.Action {
	return []types.Action{
		types.CloseAction{},
		types.ChangeModeAction{Mode: types.ModeTrigger},
	}
}

func changeMode(mode types.Mode) []types.Action {
	return []types.Action{types.ChangeModeAction{Mode: mode}}
}

func navigate(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
