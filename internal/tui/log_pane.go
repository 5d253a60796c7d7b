package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/inplace/internal/logbuf"
	"github.com/ja-he/inplace/styling"
	"github.com/ja-he/inplace/ui"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	renderer ui.ConstrainedRenderer
	sheet    *styling.Stylesheet

	condition   func() bool
	titleString func() string

	logReader logbuf.LogReader
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	sheet *styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader logbuf.LogReader,
) *LogPane {
	return &LogPane{
		renderer:    renderer,
		sheet:       sheet,
		condition:   condition,
		titleString: titleString,
		logReader:   logReader,
	}
}

// Draw draws the log view over top of all previously drawn contents, if it is
// currently active.
func (p *LogPane) Draw() {
	if !p.condition() {
		return
	}

	x, y, w, h := p.renderer.Dimensions()
	row := 2

	p.renderer.DrawBox(x, y, w, h, p.sheet.LogDefault)
	title := p.titleString()
	p.renderer.DrawBox(x, y, w, 1, p.sheet.LogTitleBox)
	p.renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.sheet.LogTitleBox, title)

	entries := p.logReader.Get()
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]

		level := entryString(entry, "level")
		levelLen := len(" error ")
		extraDataIndentWidth := levelLen + 1
		p.renderer.DrawText(x, y+row, levelLen, 1, p.levelStyling(level), padCenter(level, levelLen))
		col := x + extraDataIndentWidth

		message := entryString(entry, "message")
		p.renderer.DrawText(col, y+row, w, 1, p.sheet.LogDefault, message)
		col += len(message) + 1

		caller := entryString(entry, "caller")
		p.renderer.DrawText(col, y+row, w, 1, p.sheet.LogEntryLocation, caller)
		col += len(caller) + 1

		p.renderer.DrawText(col, y+row, w, 1, p.sheet.LogEntryTime, entryString(entry, "time"))

		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			if k != "caller" && k != "message" && k != "time" && k != "level" {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			col = x + extraDataIndentWidth
			p.renderer.DrawText(col, y+row, w, 1, p.sheet.LogEntryTime, k)
			p.renderer.DrawText(col+len(k)+2, y+row, w, 1, p.sheet.LogEntryLocation, entryString(entry, k))
			row++
		}
	}
}

func (p *LogPane) levelStyling(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.sheet.LogEntryTypeError
	case "warn":
		return p.sheet.LogEntryTypeWarn
	case "info":
		return p.sheet.LogEntryTypeInfo
	case "debug":
		return p.sheet.LogEntryTypeDebug
	case "trace":
		return p.sheet.LogEntryTypeTrace
	}
	return p.sheet.LogDefault
}

func entryString(entry logbuf.LogEntry, key string) string {
	value, ok := entry[key]
	if !ok {
		return ""
	}
	if s, isString := value.(string); isString {
		return s
	}
	return fmt.Sprint(value)
}

func padCenter(s string, length int) string {
	if len(s) >= length {
		return s
	}
	lpad := (length - len(s)) / 2
	return strings.Repeat(" ", lpad) + s + strings.Repeat(" ", length-len(s)-lpad)
}
