package styling_test

import (
	"strings"
	"testing"

	"github.com/ja-he/inplace/config"
	"github.com/ja-he/inplace/styling"
)

func TestNewStylesheetFromConfig(t *testing.T) {
	t.Run("default config produces a full stylesheet", func(t *testing.T) {
		sheet, err := styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if sheet.Normal == nil || sheet.Form == nil || sheet.LogDefault == nil {
			t.Error("expected all stylings to be populated")
		}
	})

	t.Run("malformed color is an error, not a panic", func(t *testing.T) {
		cfg := config.Default(config.Dark).Stylesheet
		cfg.FieldActive.Fg = "not-a-color"
		sheet, err := styling.NewStylesheetFromConfig(cfg)
		if err == nil {
			t.Fatal("expected an error for a malformed color")
		}
		if sheet != nil {
			t.Error("expected no stylesheet alongside the error")
		}
		if !strings.Contains(err.Error(), "field-active") {
			t.Errorf("expected error to name the offending styling, got '%s'", err)
		}
	})
}

func TestStyleFromHex(t *testing.T) {
	t.Run("valid hex strings", func(t *testing.T) {
		if _, err := styling.StyleFromHex("#ff0000", "#000000"); err != nil {
			t.Errorf("unexpected error: %s", err)
		}
	})

	t.Run("invalid foreground", func(t *testing.T) {
		if _, err := styling.StyleFromHex("red", "#000000"); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("invalid background", func(t *testing.T) {
		if _, err := styling.StyleFromHex("#ff0000", ""); err == nil {
			t.Error("expected an error")
		}
	})
}
