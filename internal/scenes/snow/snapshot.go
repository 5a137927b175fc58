package snow

// Snapshot captures the complete simulation state for determinism testing.
type Snapshot struct {
	TimePassed   int64
	TimeSince    int64
	DriftChanges int
	Flakes       []Flake
}

// Snapshot returns a deep copy of the current simulation state.
func (s *Simulator) Snapshot() Snapshot {
	flakes := make([]Flake, len(s.flakes))
	copy(flakes, s.flakes)

	return Snapshot{
		TimePassed:   s.timePassed,
		TimeSince:    s.timeSince,
		DriftChanges: s.driftChanges,
		Flakes:       flakes,
	}
}
