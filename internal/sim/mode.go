package sim

// Mode tells the simulator what drives the chain.
type Mode int

const (
	// CapturingUserInput runs hand-edited arms on a real-time clock.
	CapturingUserInput Mode = iota
	// ReplayingTransform runs the arms of a transform, one revolution
	// per traced period.
	ReplayingTransform
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ReplayingTransform:
		return "fourier"
	default:
		return "user"
	}
}
