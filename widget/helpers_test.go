package widget_test

import (
	"github.com/ja-he/inplace/config"
	"github.com/ja-he/inplace/styling"
)

// nopRenderer satisfies ui.Renderer without a terminal; widget draw calls
// only matter for the geometry they record.
type nopRenderer struct{}

func (nopRenderer) DrawBox(x, y, w, h int, style styling.DrawStyling)               {}
func (nopRenderer) DrawText(x, y, w, h int, style styling.DrawStyling, text string) {}

func testSheet() *styling.Stylesheet {
	sheet, err := styling.NewStylesheetFromConfig(config.Default(config.Dark).Stylesheet)
	if err != nil {
		panic(err)
	}
	return sheet
}
