package viewer

// State is the run state of the frame loop.
type State int

const (
	Running State = iota
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Signal is a discrete request from the input source.
type Signal int

const (
	SignalNone Signal = iota
	Terminate
	TogglePause
	Close
)

func (s Signal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case Terminate:
		return "terminate"
	case TogglePause:
		return "toggle-pause"
	case Close:
		return "close"
	default:
		return "unknown"
	}
}

// Next returns the state after sig is applied to s. Stopped is terminal and
// unrecognized signals leave the state unchanged.
func Next(s State, sig Signal) State {
	if s == Stopped {
		return Stopped
	}
	switch sig {
	case Terminate, Close:
		return Stopped
	case TogglePause:
		if s == Paused {
			return Running
		}
		return Paused
	default:
		return s
	}
}
