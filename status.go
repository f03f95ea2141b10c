package rebound

// BodyStatus describes how a rigid-body is simulated.
type BodyStatus uint8

const (
	// BodyStatusDynamic bodies are moved by the integrator under
	// forces and impulses.
	BodyStatusDynamic BodyStatus = iota

	// BodyStatusStatic bodies never move and ignore forces.
	BodyStatusStatic

	// BodyStatusKinematic bodies are driven by user supplied target
	// poses and ignore forces.
	BodyStatusKinematic
)

func (s BodyStatus) String() string {
	switch s {
	case BodyStatusDynamic:
		return "dynamic"
	case BodyStatusStatic:
		return "static"
	case BodyStatusKinematic:
		return "kinematic"
	default:
		return "invalid"
	}
}
