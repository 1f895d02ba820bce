package input

// Snapshot implements the Context interface from plain widget facts
type Snapshot struct {
	Open            bool
	Disabled        bool
	Cursor          int
	Rows            int
	Search          bool
	HasOptions      bool
	SelectionButton bool
	IsMulti         bool
}

func (s Snapshot) IsOpen() bool { return s.Open }
func (s Snapshot) IsDisabled() bool { return s.Disabled }
func (s Snapshot) CurrentIndex() int { return s.Cursor }
func (s Snapshot) TotalItems() int { return s.Rows }
func (s Snapshot) SearchEnabled() bool { return s.Search }
func (s Snapshot) SearchAvailable() bool { return s.HasOptions }
func (s Snapshot) ButtonsEnabled() bool { return s.SelectionButton }
func (s Snapshot) Multi() bool { return s.IsMulti }
