// Package colors holds the theme presets for the terminal board.
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles)
	Accent string `yaml:"accent"`
	Delete string `yaml:"delete"`

	// Board elements
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"` // item being dragged
	DropTarget     string `yaml:"drop_target"` // column under the pointer
	OrphanBorder   string `yaml:"orphan_border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	fillEmpty(c, preset)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for dst, src := range c.pairs(&other) {
		if *src != "" {
			*dst = *src
		}
	}
}

// fillEmpty copies preset values into every empty field of c
func fillEmpty(c, preset *ColorScheme) {
	for dst, src := range c.pairs(preset) {
		if *dst == "" {
			*dst = *src
		}
	}
}

// pairs maps each field of c to the same field of other
func (c *ColorScheme) pairs(other *ColorScheme) map[*string]*string {
	return map[*string]*string{
		&c.Accent:         &other.Accent,
		&c.Delete:         &other.Delete,
		&c.ColumnBorder:   &other.ColumnBorder,
		&c.CardBorder:     &other.CardBorder,
		&c.SelectedBorder: &other.SelectedBorder,
		&c.DragBorder:     &other.DragBorder,
		&c.DropTarget:     &other.DropTarget,
		&c.OrphanBorder:   &other.OrphanBorder,
		&c.Title:          &other.Title,
		&c.Subtle:         &other.Subtle,
		&c.Normal:         &other.Normal,
		&c.Error:          &other.Error,
	}
}
