package job

// State is the lifecycle phase of one conversion job.
type State int32

const (
	// StateIdle means Serve was not invoked, yet.
	StateIdle = State(iota)
	// StateOpened means the source and the sink are being opened.
	StateOpened
	// StateStreaming means frames are being read, transformed and written.
	StateStreaming
	// StateFinalized means the whole stream was processed and the
	// resources were released.
	StateFinalized
	// StateAborted means the job failed and whatever resources were
	// acquired were released.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateOpened:
		return "opened"
	case StateStreaming:
		return "streaming"
	case StateFinalized:
		return "finalized"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}
