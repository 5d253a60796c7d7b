package session

import (
	"fmt"
	"time"

	"github.com/ja-he/inplace/config"
	"github.com/ja-he/inplace/page"
)

// FailurePolicy is what happens to a session whose submit failed.
type FailurePolicy int

const (
	// FailureReturnsToEditing keeps the form live so the user's input is
	// preserved.
	FailureReturnsToEditing FailurePolicy = iota
	// FailureDiscards ends the session, discarding the form without mutating
	// the display.
	FailureDiscards
)

// Settings are the resolved behavioral options an edit session runs with.
type Settings struct {
	// BlurGrace is the grace window between a blur on the primary input and
	// the deferred submit it triggers.
	BlurGrace time.Duration

	// ShowButtons controls whether the edit form shows OK/Cancel buttons.
	ShowButtons bool

	// SubmitOnBlur controls whether a blur on the primary input may trigger
	// a submit at all (an editor additionally has to arm it on its form).
	SubmitOnBlur bool

	// FailurePolicy is what happens to the session when a submit fails.
	FailurePolicy FailurePolicy
}

// DefaultSettings returns the settings the library defaults to.
func DefaultSettings() Settings {
	return Settings{
		BlurGrace:     150 * time.Millisecond,
		ShowButtons:   true,
		SubmitOnBlur:  true,
		FailurePolicy: FailureReturnsToEditing,
	}
}

// SettingsFromConfig resolves settings from an editing config.
func SettingsFromConfig(cfg config.Editing) (Settings, error) {
	settings := DefaultSettings()

	if cfg.BlurGrace != "" {
		grace, err := time.ParseDuration(cfg.BlurGrace)
		if err != nil {
			return settings, fmt.Errorf("could not parse blur-grace '%s' (%w)", cfg.BlurGrace, err)
		}
		settings.BlurGrace = grace
	}
	if cfg.ShowButtons != nil {
		settings.ShowButtons = *cfg.ShowButtons
	}
	if cfg.SubmitOnBlur != nil {
		settings.SubmitOnBlur = *cfg.SubmitOnBlur
	}
	switch cfg.FailurePolicy {
	case "", "editing":
		settings.FailurePolicy = FailureReturnsToEditing
	case "idle":
		settings.FailurePolicy = FailureDiscards
	default:
		return settings, fmt.Errorf("unknown failure-policy '%s' (expect 'editing' or 'idle')", cfg.FailurePolicy)
	}

	return settings, nil
}

// overriddenBy returns a copy of these settings with the field's own
// overrides applied.
func (s Settings) overriddenBy(field *page.Field) Settings {
	result := s
	if field.ShowButtons != nil {
		result.ShowButtons = *field.ShowButtons
	}
	if field.SubmitOnBlur != nil {
		result.SubmitOnBlur = *field.SubmitOnBlur
	}
	return result
}
