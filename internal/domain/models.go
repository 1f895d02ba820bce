package domain

// Option is a single selectable entry as read from a catalogue file.
// Group is "" for ungrouped options; Size is in lines, 0 meaning the
// configured default.
type Option struct {
	Value    string `toml:"value" yaml:"value"`
	Label    string `toml:"label,omitempty" yaml:"label,omitempty"`
	Group    string `toml:"group,omitempty" yaml:"group,omitempty"`
	Disabled bool   `toml:"disabled,omitempty" yaml:"disabled,omitempty"`
	Size     int    `toml:"size,omitempty" yaml:"size,omitempty"`
}

// DisplayLabel returns the label shown in the UI, falling back to the value
func (o Option) DisplayLabel() string {
	if o.Label == "" {
		return o.Value
	}
	return o.Label
}

// Catalogue is an ordered list of options
type Catalogue struct {
	Options []Option `toml:"option" yaml:"options"`
}

// HasGroups reports whether any option carries a group key
func (c *Catalogue) HasGroups() bool {
	for _, o := range c.Options {
		if o.Group != "" {
			return true
		}
	}
	return false
}

// HasSizes reports whether any option overrides the default size
func (c *Catalogue) HasSizes() bool {
	for _, o := range c.Options {
		if o.Size > 0 {
			return true
		}
	}
	return false
}
