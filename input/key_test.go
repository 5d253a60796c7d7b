package input_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/inplace/input"
)

func TestKeyFromTcellEvent(t *testing.T) {

	t.Run("rune keys keep their rune", func(t *testing.T) {
		e := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
		key := input.KeyFromTcellEvent(e)
		if (key != input.Key{Key: tcell.KeyRune, Ch: 'x'}) {
			t.Errorf("unexpected key %s", key.ToDebugString())
		}
	})

	t.Run("special keys drop the rune", func(t *testing.T) {
		e := tcell.NewEventKey(tcell.KeyCtrlA, 'a', tcell.ModCtrl)
		key := input.KeyFromTcellEvent(e)
		if (key != input.Key{Key: tcell.KeyCtrlA}) {
			t.Errorf("unexpected key %s", key.ToDebugString())
		}
	})
}
