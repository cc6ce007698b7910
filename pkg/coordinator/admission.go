package coordinator

// AdmissionState guards whether a new move goal may be admitted.
type AdmissionState uint8

const (
	AdmissionIdle AdmissionState = iota
	AdmissionActive
)

func (s AdmissionState) String() string {
	switch s {
	case AdmissionIdle:
		return "idle"
	case AdmissionActive:
		return "active"
	default:
		return "unknown"
	}
}

// admission is owned by the dispatcher goroutine and has no locking of its own.
type admission struct {
	state AdmissionState
}

// tryAdmit moves idle to active. It reports false and changes nothing when a
// goal is already active.
func (a *admission) tryAdmit() bool {
	if a.state == AdmissionActive {
		return false
	}
	a.state = AdmissionActive
	return true
}

func (a *admission) reset() {
	a.state = AdmissionIdle
}
