package core

// Button is one of the four logical movement buttons.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonUp
	ButtonDown

	buttonCount
)

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Command is a discrete one-shot request polled once per frame.
type Command int

const (
	CommandNone    Command = iota
	CommandRestart         // R - reload the current level
	CommandAdvance         // N - go to the next level
	CommandSkip            // Enter - skip an intro slide
	CommandQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandRestart:
		return "Restart"
	case CommandAdvance:
		return "Advance"
	case CommandSkip:
		return "Skip"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state sampled for a single frame: which movement
// buttons are held and which commands were triggered.
type InputFrame struct {
	held     [buttonCount]bool
	commands map[Command]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{commands: make(map[Command]bool)}
}

// Hold marks a movement button as held for this frame.
func (f *InputFrame) Hold(b Button) {
	if b < 0 || b >= buttonCount {
		return
	}
	f.held[b] = true
}

// Pressed reports whether the button is held this frame.
func (f InputFrame) Pressed(b Button) bool {
	if b < 0 || b >= buttonCount {
		return false
	}
	return f.held[b]
}

// Set marks a command as triggered for this frame.
func (f *InputFrame) Set(c Command) {
	if f.commands == nil {
		f.commands = make(map[Command]bool)
	}
	f.commands[c] = true
}

// Has returns true if the given command was triggered this frame.
func (f InputFrame) Has(c Command) bool {
	if f.commands == nil {
		return false
	}
	return f.commands[c]
}

// Clear resets buttons and commands for the next frame.
func (f *InputFrame) Clear() {
	f.held = [buttonCount]bool{}
	for k := range f.commands {
		delete(f.commands, k)
	}
}
