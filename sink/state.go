package sink

// State is the lifecycle position of a Sink
type State int32

const (
	// StateCreated is held only while New is building the sink
	StateCreated State = iota
	// StateRunning accepts entries
	StateRunning
	// StateShuttingDown refuses entries; the worker is draining towards
	// the sentinel
	StateShuttingDown
	// StateTerminated means the worker has exited. It is never restarted.
	StateTerminated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateCreated:
		return "CREATED"
	case StateRunning:
		return "RUNNING"
	case StateShuttingDown:
		return "SHUTTING_DOWN"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}
