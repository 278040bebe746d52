package input

// InputState tracks the parser state machine
type InputState uint8

const (
	StateIdle  InputState = iota // Awaiting initial key
	StateCount                   // Accumulating numeric prefix (1-9 start, 0 continues)
)
