package rebound

// SleepState is the per body half of the sleep bookkeeping. A sleeping body
// is excluded from integration and does not accumulate forces until woken.
type SleepState uint8

const (
	Awake SleepState = iota
	Sleeping
)

func (s SleepState) String() string {
	if s == Sleeping {
		return "sleeping"
	}

	return "awake"
}

// NextSleepState applies the wakeUp flag that callers pass alongside a
// mutation. It is the only transition out of Sleeping besides an explicit
// wake-up call; the transition into Sleeping happens in Activation.Advance.
func NextSleepState(current SleepState, wakeUp bool) SleepState {
	if wakeUp {
		return Awake
	}

	return current
}

// Activation tracks the sleep state of a single body together with the
// time the body has spent below the sleep velocity thresholds.
type Activation struct {
	State    SleepState
	IdleTime float64
}

// WakeUp forces the body awake and restarts the idle timer.
// Calling it on an awake body is a no-op apart from the timer reset.
func (a *Activation) WakeUp() {
	a.State = Awake
	a.IdleTime = 0
}

// Apply transitions the state for a mutation carrying a wakeUp flag.
func (a *Activation) Apply(wakeUp bool) {
	a.State = NextSleepState(a.State, wakeUp)
	if wakeUp {
		a.IdleTime = 0
	}
}

// Sleeping returns true if the body is currently asleep.
func (a *Activation) Sleeping() bool {
	return a.State == Sleeping
}

// Advance accumulates idle time while the body stays below the sleep
// thresholds and puts it to sleep once timeUntilSleep is reached.
// Any fast frame resets the timer.
func (a *Activation) Advance(belowThreshold bool, dt, timeUntilSleep float64) {
	if !belowThreshold {
		a.IdleTime = 0
		return
	}

	a.IdleTime += dt

	if a.IdleTime >= timeUntilSleep {
		a.State = Sleeping
	}
}
