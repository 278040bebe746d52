package input

import (
	"github.com/gdamore/tcell/v2"
)

// maxCount caps the numeric prefix
const maxCount = 9999

// Machine is the input state machine
// Parses tcell events into semantic Intent
type Machine struct {
	state    InputState
	keyTable *KeyTable

	count  int
	aiming bool
}

// NewMachine creates a machine with the default bindings; nil table selects them too
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{
		state:    StateIdle,
		keyTable: table,
	}
}

// Reset clears all pending state
func (m *Machine) Reset() {
	m.state = StateIdle
	m.count = 0
}

// Aiming reports the aim state implied by the intents emitted so far
func (m *Machine) Aiming() bool {
	return m.aiming
}

// PendingCount returns the numeric prefix typed so far
func (m *Machine) PendingCount() int {
	return m.count
}

// Process parses an event and returns an Intent
// Returns nil if input is incomplete or unbound
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case nil:
		return &Intent{Type: IntentQuit}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// Some terminals report Ctrl+C as a modified rune rather than KeyCtrlC
		if ev.Modifiers()&tcell.ModCtrl != 0 && (r == 'c' || r == 'C') {
			m.Reset()
			return &Intent{Type: IntentQuit}
		}
		if r >= '1' && r <= '9' || (r == '0' && m.state == StateCount) {
			m.state = StateCount
			m.count = min(m.count*10+int(r-'0'), maxCount)
			return nil
		}
		if entry, ok := m.keyTable.Runes[r]; ok {
			return m.dispatch(entry)
		}
		m.Reset()
		return nil
	}

	if entry, ok := m.keyTable.SpecialKeys[ev.Key()]; ok {
		return m.dispatch(entry)
	}
	m.Reset()
	return nil
}

func (m *Machine) dispatch(entry KeyEntry) *Intent {
	count := m.count
	m.Reset()

	switch entry.Behavior {
	case BehaviorSystem:
		return &Intent{Type: entry.IntentType}
	case BehaviorAction:
		return &Intent{Type: entry.IntentType, Count: count}
	case BehaviorAim:
		m.aiming = !m.aiming
		if m.aiming {
			return &Intent{Type: IntentAimStart}
		}
		return &Intent{Type: IntentAimStop}
	}
	return nil
}
