package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	showButtons := true
	submitOnBlur := true
	return Config{
		Editing: Editing{
			BlurGrace:     "150ms",
			ShowButtons:   &showButtons,
			SubmitOnBlur:  &submitOnBlur,
			FailurePolicy: "editing",
		},
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:         Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			Field:          Styling{Fg: "#ccebff", Bg: "#000000", Style: &FontStyle{Underlined: true}},
			FieldActive:    Styling{Fg: "#ffffff", Bg: "#202020", Style: &FontStyle{}},
			Form:           Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
			Input:          Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{}},
			InputFocussed:  Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
			Button:         Styling{Fg: "#f0f0f0", Bg: "#404040", Style: &FontStyle{}},
			ButtonFocussed: Styling{Fg: "#000000", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
			Error:          Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			Status:         Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},

			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:         Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		Field:          Styling{Fg: "#0067ab", Bg: "#ffffff", Style: &FontStyle{Underlined: true}},
		FieldActive:    Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		Form:           Styling{Fg: "#000000", Bg: "#e0e0e0", Style: &FontStyle{}},
		Input:          Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		InputFocussed:  Styling{Fg: "#000000", Bg: "#ccebff", Style: &FontStyle{}},
		Button:         Styling{Fg: "#000000", Bg: "#d0d0d0", Style: &FontStyle{}},
		ButtonFocussed: Styling{Fg: "#000000", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		Error:          Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		Status:         Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},

		LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#cccccc", Bg: "#ffffff", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#f0f0f0", Bg: "#ffffff", Style: &FontStyle{}},
	}
}
