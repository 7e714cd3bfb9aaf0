package terminal

import "github.com/gdamore/tcell/v2"

// LineEditor accumulates typed runes into a single pending line and
// releases it on Enter. The driver feeds it key events and forwards
// each released line into the tick loop as one input event.
type LineEditor struct {
	buf []rune
}

// HandleKey consumes one key event. done is true when Enter released
// a completed line (possibly empty).
func (e *LineEditor) HandleKey(ev *tcell.EventKey) (line string, done bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		line = string(e.buf)
		e.buf = e.buf[:0]
		return line, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(e.buf) > 0 {
			e.buf = e.buf[:len(e.buf)-1]
		}
	case tcell.KeyRune:
		e.buf = append(e.buf, ev.Rune())
	}
	return "", false
}

// Pending returns the line typed so far
func (e *LineEditor) Pending() string {
	return string(e.buf)
}
