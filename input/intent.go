package input

// IntentType discriminates semantic actions produced from terminal events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Gameplay
	IntentBegin // press: start growing the next block
	IntentEnd   // release: place the block, or restart after a failure

	// System-level intents
	IntentQuit   // q, Esc, Ctrl+C
	IntentPause  // p
	IntentResize // Terminal resize event
)

func (i IntentType) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentBegin:
		return "begin"
	case IntentEnd:
		return "end"
	case IntentQuit:
		return "quit"
	case IntentPause:
		return "pause"
	case IntentResize:
		return "resize"
	default:
		return "unknown"
	}
}
