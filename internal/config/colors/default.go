package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#874BFD",
		Delete: "#FF0000",

		// Board elements
		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",
		DropTarget:     "#5FD75F",
		OrphanBorder:   "#FF5F5F",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",
		Error:  "#FF0000",
	}
}
