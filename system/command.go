package system

// CommandType identifies an input routed to a weapon
type CommandType int

const (
	CommandAimStart CommandType = iota
	CommandAimStop
	CommandFire
	CommandReload  // Amount rounds
	CommandDestroy // Tears down the weapon and removes it from the system
	CommandEnable  // Amount != 0 enables, 0 disables command handling
)

// String returns the command name used in logs
func (c CommandType) String() string {
	switch c {
	case CommandAimStart:
		return "aim_start"
	case CommandAimStop:
		return "aim_stop"
	case CommandFire:
		return "fire"
	case CommandReload:
		return "reload"
	case CommandDestroy:
		return "destroy"
	case CommandEnable:
		return "enable"
	default:
		return "unknown"
	}
}

// Command is an input for a named weapon; empty Weapon targets every weapon
type Command struct {
	Type   CommandType
	Weapon string
	Amount int
}
