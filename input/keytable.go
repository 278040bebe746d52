package input

import "github.com/gdamore/tcell/v2"

// KeyBehavior classifies how a key is processed
type KeyBehavior uint8

const (
	BehaviorNone   KeyBehavior = iota
	BehaviorSystem             // Acts immediately and clears any count
	BehaviorAction             // Consumes the pending count
	BehaviorAim                // Toggles aim; the machine picks start or stop
)

// KeyEntry describes a key's behavior without function pointers
type KeyEntry struct {
	Behavior   KeyBehavior
	IntentType IntentType
}

// KeyTable maps keys to behaviors
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC:  {BehaviorSystem, IntentQuit},
			tcell.KeyEscape: {BehaviorSystem, IntentQuit},
			tcell.KeyLeft:   {BehaviorAction, IntentTurnLeft},
			tcell.KeyRight:  {BehaviorAction, IntentTurnRight},
		},

		Runes: map[rune]KeyEntry{
			'q': {BehaviorSystem, IntentQuit},
			'm': {BehaviorSystem, IntentToggleMute},
			'a': {BehaviorAim, IntentNone},
			' ': {BehaviorAction, IntentFire},
			'r': {BehaviorAction, IntentReload},
			'h': {BehaviorAction, IntentTurnLeft},
			'l': {BehaviorAction, IntentTurnRight},
		},
	}
}
