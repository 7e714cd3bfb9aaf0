package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Reserved rows below the surface: status line and input line
const chromeRows = 2

// Terminal wraps a tcell screen as the presentation collaborator: the
// character surface is fully rewritten each tick, and raw key events
// are forwarded to the driver, which owns line editing and command
// interpretation. The core never sees this package.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	stop   chan struct{}
}

// New creates a terminal on the default tcell screen
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	return &Terminal{
		screen: screen,
		events: make(chan tcell.Event, 100),
		stop:   make(chan struct{}),
	}, nil
}

// Init takes over the terminal and starts the event poll goroutine
func (t *Terminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init: %w", err)
	}
	t.screen.Clear()
	go t.poll()
	return nil
}

// Fini restores the terminal
func (t *Terminal) Fini() {
	close(t.stop)
	t.screen.Fini()
}

func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		select {
		case t.events <- ev:
		case <-t.stop:
			return
		}
	}
}

// Events is the raw tcell event stream consumed by the driver loop
func (t *Terminal) Events() <-chan tcell.Event {
	return t.events
}

// SurfaceSize returns the usable character surface dimensions,
// excluding the status and input rows
func (t *Terminal) SurfaceSize() (width, height int) {
	w, h := t.screen.Size()
	h -= chromeRows
	if h < 1 {
		h = 1
	}
	return w, h
}

// Present rewrites the whole screen: the surface lines in row order,
// a status row, and the input row with the cursor at the end of the
// pending input.
func (t *Terminal) Present(lines []string, status, input string) {
	width, height := t.screen.Size()
	surface := tcell.StyleDefault
	bar := tcell.StyleDefault.Reverse(true)

	for y := 0; y < height-chromeRows; y++ {
		var line string
		if y < len(lines) {
			line = lines[y]
		}
		t.drawRow(y, line, surface, width)
	}

	prompt := "> " + input
	t.drawRow(height-2, status, bar, width)
	t.drawRow(height-1, prompt, surface, width)
	t.screen.ShowCursor(len([]rune(prompt)), height-1)
	t.screen.Show()
}

func (t *Terminal) drawRow(y int, text string, style tcell.Style, width int) {
	x := 0
	for _, r := range text {
		if x >= width {
			break
		}
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// EmergencyReset writes raw escape codes to restore the terminal after
// a crash, bypassing tcell entirely: leave the alternate screen, show
// the cursor, reset attributes.
func EmergencyReset(w io.Writer) {
	fmt.Fprint(w, "\x1b[?1049l\x1b[?25h\x1b[0m\r\n")
}
