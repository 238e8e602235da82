package config

// KeyMappings defines all configurable key bindings.
// Reordering is done with the mouse; keys only select, create, edit and delete.
type KeyMappings struct {
	// Cards
	AddCard    string `yaml:"add_card"`
	EditCard   string `yaml:"edit_card"`
	DeleteCard string `yaml:"delete_card"`

	// Columns
	CreateColumn string `yaml:"create_column"`
	RenameColumn string `yaml:"rename_column"`
	DeleteColumn string `yaml:"delete_column"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Search     string `yaml:"search"`
	CancelDrag string `yaml:"cancel_drag"`
	ShowHelp   string `yaml:"show_help"`
	Quit       string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:    "a",
		EditCard:   "e",
		DeleteCard: "d",

		// Columns
		CreateColumn: "C",
		RenameColumn: "R",
		DeleteColumn: "X",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		Search:     "/",
		CancelDrag: "esc",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.AddCard, defaults.AddCard)
	fill(&k.EditCard, defaults.EditCard)
	fill(&k.DeleteCard, defaults.DeleteCard)
	fill(&k.CreateColumn, defaults.CreateColumn)
	fill(&k.RenameColumn, defaults.RenameColumn)
	fill(&k.DeleteColumn, defaults.DeleteColumn)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.Search, defaults.Search)
	fill(&k.CancelDrag, defaults.CancelDrag)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
