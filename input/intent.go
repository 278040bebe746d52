package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Weapon intents
	IntentAimStart // a while lowered
	IntentAimStop  // a while raised
	IntentFire     // Space
	IntentReload   // [count]r

	// Turret intents
	IntentTurnLeft  // Left arrow, h
	IntentTurnRight // Right arrow, l
)

// String returns the intent name used in logs
func (t IntentType) String() string {
	switch t {
	case IntentQuit:
		return "quit"
	case IntentToggleMute:
		return "toggle_mute"
	case IntentResize:
		return "resize"
	case IntentAimStart:
		return "aim_start"
	case IntentAimStop:
		return "aim_stop"
	case IntentFire:
		return "fire"
	case IntentReload:
		return "reload"
	case IntentTurnLeft:
		return "turn_left"
	case IntentTurnRight:
		return "turn_right"
	default:
		return "none"
	}
}

// Intent is a parsed user action
type Intent struct {
	Type  IntentType
	Count int // Numeric prefix; 0 when none was typed
}
