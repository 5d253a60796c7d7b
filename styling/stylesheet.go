package styling

import (
	"fmt"

	"github.com/ja-he/inplace/config"
)

// Stylesheet represents all styles used by the library for rendering.
type Stylesheet struct {
	Normal DrawStyling

	Field       DrawStyling
	FieldActive DrawStyling

	Form          DrawStyling
	Input         DrawStyling
	InputFocussed DrawStyling

	Button         DrawStyling
	ButtonFocussed DrawStyling

	Error DrawStyling

	Status DrawStyling

	LogDefault        DrawStyling
	LogTitleBox       DrawStyling
	LogEntryTypeError DrawStyling
	LogEntryTypeWarn  DrawStyling
	LogEntryTypeInfo  DrawStyling
	LogEntryTypeDebug DrawStyling
	LogEntryTypeTrace DrawStyling
	LogEntryLocation  DrawStyling
	LogEntryTime      DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
// An error is returned if any configured styling is invalid, e.g. due to a
// malformed color string.
func NewStylesheetFromConfig(cfg config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, styled := range []struct {
		name string
		cfg  config.Styling
		dst  *DrawStyling
	}{
		{"normal", cfg.Normal, &stylesheet.Normal},
		{"field", cfg.Field, &stylesheet.Field},
		{"field-active", cfg.FieldActive, &stylesheet.FieldActive},
		{"form", cfg.Form, &stylesheet.Form},
		{"input", cfg.Input, &stylesheet.Input},
		{"input-focussed", cfg.InputFocussed, &stylesheet.InputFocussed},
		{"button", cfg.Button, &stylesheet.Button},
		{"button-focussed", cfg.ButtonFocussed, &stylesheet.ButtonFocussed},
		{"error", cfg.Error, &stylesheet.Error},
		{"status", cfg.Status, &stylesheet.Status},
		{"log-default", cfg.LogDefault, &stylesheet.LogDefault},
		{"log-title-box", cfg.LogTitleBox, &stylesheet.LogTitleBox},
		{"log-entry-type-error", cfg.LogEntryTypeError, &stylesheet.LogEntryTypeError},
		{"log-entry-type-warn", cfg.LogEntryTypeWarn, &stylesheet.LogEntryTypeWarn},
		{"log-entry-type-info", cfg.LogEntryTypeInfo, &stylesheet.LogEntryTypeInfo},
		{"log-entry-type-debug", cfg.LogEntryTypeDebug, &stylesheet.LogEntryTypeDebug},
		{"log-entry-type-trace", cfg.LogEntryTypeTrace, &stylesheet.LogEntryTypeTrace},
		{"log-entry-location", cfg.LogEntryLocation, &stylesheet.LogEntryLocation},
		{"log-entry-time", cfg.LogEntryTime, &stylesheet.LogEntryTime},
	} {
		style, err := StyleFromConfig(styled.cfg)
		if err != nil {
			return nil, fmt.Errorf("invalid styling for '%s' (%w)", styled.name, err)
		}
		*styled.dst = style
	}

	return &stylesheet, nil
}

// StyleFromConfig converts a config styling to a DrawStyling.
func StyleFromConfig(cfg config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(cfg.Fg, cfg.Bg)
	if err != nil {
		return nil, err
	}

	if cfg.Style != nil {
		style.bold = cfg.Style.Bold
		style.italic = cfg.Style.Italic
		style.underlined = cfg.Style.Underlined
	}

	return style, nil
}
