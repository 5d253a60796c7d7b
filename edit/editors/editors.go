// Package editors provides the built-in editor variants: text, textarea,
// select, and checkbox.
//
// Importing the package registers them; host programs register their own
// variants with edit.Register before activating fields that use them.
package editors

import (
	"github.com/ja-he/inplace/edit"
)

func init() {
	edit.Register("text", func() edit.Editor { return &TextEditor{} })
	edit.Register("textarea", func() edit.Editor { return &TextareaEditor{} })
	edit.Register("select", func() edit.Editor { return &SelectEditor{} })
	edit.Register("checkbox", func() edit.Editor { return &CheckboxEditor{} })
}

// TextEditor is the plain single-line text editor, the default for fields
// that declare no type. It is exactly the default capability set.
type TextEditor struct {
	edit.Base
}
