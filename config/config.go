// Package config defines the configuration of the library as read from a
// config file and merged over compiled-in defaults.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${INPLACE_HOME}/config.yaml'.
type Config struct {
	Editing    Editing    `yaml:"editing"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// Editing holds the behavioral defaults for edit sessions.
// Any of these can be overridden per field by the field's own attributes.
type Editing struct {
	// BlurGrace is the grace window between a blur on the primary input and
	// the deferred submit it triggers, in time.ParseDuration format.
	BlurGrace string `yaml:"blur-grace"`

	// ShowButtons controls whether edit forms show OK/Cancel buttons.
	ShowButtons *bool `yaml:"show-buttons"`

	// SubmitOnBlur controls whether a blur on the primary input triggers a
	// (deferred) submit.
	SubmitOnBlur *bool `yaml:"submit-on-blur"`

	// FailurePolicy is what happens to a session whose submit failed, either
	// 'editing' (form stays, input preserved) or 'idle' (form discarded).
	FailurePolicy string `yaml:"failure-policy"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal         Styling `yaml:"normal"`
	Field          Styling `yaml:"field"`
	FieldActive    Styling `yaml:"field-active"`
	Form           Styling `yaml:"form"`
	Input          Styling `yaml:"input"`
	InputFocussed  Styling `yaml:"input-focussed"`
	Button         Styling `yaml:"button"`
	ButtonFocussed Styling `yaml:"button-focussed"`
	Error          Styling `yaml:"error"`
	Status         Styling `yaml:"status"`

	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Editing = base.Editing.augmentWith(augment.Editing)
	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Editing) augmentWith(augment Editing) Editing {
	result := base

	if augment.BlurGrace != "" {
		result.BlurGrace = augment.BlurGrace
	}
	if augment.ShowButtons != nil {
		result.ShowButtons = augment.ShowButtons
	}
	if augment.SubmitOnBlur != nil {
		result.SubmitOnBlur = augment.SubmitOnBlur
	}
	if augment.FailurePolicy != "" {
		result.FailurePolicy = augment.FailurePolicy
	}

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Field.overwriteIfDefined(augment.Field)
	result.FieldActive.overwriteIfDefined(augment.FieldActive)
	result.Form.overwriteIfDefined(augment.Form)
	result.Input.overwriteIfDefined(augment.Input)
	result.InputFocussed.overwriteIfDefined(augment.InputFocussed)
	result.Button.overwriteIfDefined(augment.Button)
	result.ButtonFocussed.overwriteIfDefined(augment.ButtonFocussed)
	result.Error.overwriteIfDefined(augment.Error)
	result.Status.overwriteIfDefined(augment.Status)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
