package parameter

import "time"

// Simulation timing
const (
	// TickInterval is the fixed simulation step
	TickInterval = 16 * time.Millisecond

	// MaxTickDelta caps a single step after stalls (seconds)
	MaxTickDelta = 0.1

	// MaxTicksBehind is how far the loop may lag before resynchronizing
	MaxTicksBehind = 2
)

// Queue limits
const (
	// CommandQueueSize is the weapon system command capacity; rounded up to a power of two
	CommandQueueSize = 256
)

// Shooting range sandbox
const (
	// SandboxTPS is the sandbox simulation rate
	SandboxTPS = 60

	// SandboxTargets is the number of target dummies spawned downrange
	SandboxTargets = 6

	// SandboxDepth is the range length in world units shown on screen
	SandboxDepth = 4000.0

	// SandboxTargetHP is the health of each target dummy
	SandboxTargetHP = 50.0

	// SandboxJournalFlush is how often buffered shot records are written
	SandboxJournalFlush = time.Second
)
