package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents with a single active press
// Terminals report key presses but not releases, so Space and Enter toggle between begin and end;
// the left mouse button reports both edges and maps to them directly
type Machine struct {
	pressed bool
	source  pressSource
}

type pressSource uint8

const (
	sourceNone pressSource = iota
	sourceKey
	sourceMouse
)

// NewMachine creates a machine with nothing pressed
func NewMachine() *Machine {
	return &Machine{}
}

// Process maps one event to an intent, IntentNone when the event is irrelevant
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(e)
	case *tcell.EventMouse:
		return m.processMouse(e)
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

// Pressed reports whether a press is currently held
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Reset forgets any held press
func (m *Machine) Reset() {
	m.pressed = false
	m.source = sourceNone
}

func (m *Machine) processKey(ev *tcell.EventKey) IntentType {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return IntentQuit
	case tcell.KeyEnter:
		return m.toggle()
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return m.toggle()
		case 'q', 'Q':
			return IntentQuit
		case 'p', 'P':
			return IntentPause
		}
	}
	return IntentNone
}

func (m *Machine) toggle() IntentType {
	if m.pressed {
		// A mouse press in flight is only released by the mouse
		if m.source != sourceKey {
			return IntentNone
		}
		m.Reset()
		return IntentEnd
	}
	m.pressed = true
	m.source = sourceKey
	return IntentBegin
}

func (m *Machine) processMouse(ev *tcell.EventMouse) IntentType {
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.pressed:
		m.pressed = true
		m.source = sourceMouse
		return IntentBegin
	case !down && m.pressed && m.source == sourceMouse:
		m.Reset()
		return IntentEnd
	}
	// Drag with the button held, motion without it, or other buttons
	return IntentNone
}
