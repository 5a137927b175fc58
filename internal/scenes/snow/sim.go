// Package snow implements the snowfall simulation and its scene adapter.
// The simulator is UI-agnostic and deterministic: all randomness comes from
// an injected seeded RNG, and time is supplied by the caller.
package snow

import (
	"math/rand"
)

// Canvas exit margin and respawn bands, in canvas units.
// A flake is recycled once it drifts more than exitMargin past an edge, and
// respawns just outside the opposite edge so it drifts back into view.
const (
	exitMargin   = 3
	respawnNear  = -50
	respawnFar   = -10
	respawnInset = 50
)

// Vec is a drift vector in canvas units per frame.
type Vec struct {
	X, Y float64
}

// Flake is a single snowflake: position, size, shade, and its drift vector.
// Radius and Shade are fixed at creation and never mutated afterwards.
type Flake struct {
	X, Y   float64
	Radius int     // Cell radius in canvas units, in {2,3,4}
	Shade  uint8   // Gray intensity, in [30,255]; rendered with r=g=b
	Drift  Vec
}

// Params configures a Simulator.
type Params struct {
	CanvasW, CanvasH int     // Virtual canvas size in canvas units
	Flakes           int     // Population size; flakes are recycled, never destroyed
	NearDrift        Vec     // Drift for the first half of the population
	FarDrift         Vec     // Drift for the second half
	GustIntervalMS   int64   // Wind-change interval; <= 0 disables gusts
	GustSpeed        float64 // Horizontal drift a gust locks a flake to
}

// Simulator owns the flake population and the wind-change schedule.
// It is advanced once per frame with the elapsed time since start.
type Simulator struct {
	params       Params
	rng          *rand.Rand
	flakes       []Flake
	timePassed   int64 // Last elapsed time seen by Advance, ms
	timeSince    int64 // Last gust threshold crossed; always a multiple of the interval
	driftChanges int   // Number of gust thresholds crossed
}

// NewSimulator creates a population of flakes scattered across the canvas.
// The first half drifts with NearDrift, the second half with FarDrift; the
// two speeds give the scene visual depth.
func NewSimulator(p Params, rng *rand.Rand) *Simulator {
	s := &Simulator{
		params: p,
		rng:    rng,
		flakes: make([]Flake, p.Flakes),
	}

	half := p.Flakes / 2
	for i := range s.flakes {
		drift := p.NearDrift
		if i >= half {
			drift = p.FarDrift
		}
		s.flakes[i] = Flake{
			Radius: 2 + rng.Intn(3),
			X:      float64(rng.Intn(p.CanvasW)),
			Y:      float64(rng.Intn(p.CanvasH)),
			Shade:  uint8(30 + rng.Intn(226)),
			Drift:  drift,
		}
	}
	return s
}

// Advance moves the simulation to the given elapsed time in milliseconds.
// Called once per frame; now must be non-decreasing across calls.
func (s *Simulator) Advance(now int64) {
	s.timePassed = now

	gusts := s.params.GustIntervalMS > 0
	if gusts && now-s.timeSince >= s.params.GustIntervalMS {
		// At most one threshold crossing per frame: a single very long
		// frame does not catch the counter up, it lags and recovers on
		// later frames. Keep in sync with TestDriftChangeStarvation.
		s.timeSince += s.params.GustIntervalMS
		s.driftChanges++
	}

	// One-shot gust lock threshold. Only reachable while the counter lags
	// behind elapsed time, i.e. right after a multi-interval stall.
	gustAt := s.params.GustIntervalMS * int64(1+s.driftChanges)

	for i := range s.flakes {
		f := &s.flakes[i]

		if gusts && now > gustAt {
			f.Drift.X = s.params.GustSpeed
		}

		f.X += f.Drift.X
		f.Y += f.Drift.Y

		// Recycle off-screen flakes, vertical check first. Both checks run
		// every frame; a vertical respawn never lands in the horizontal
		// band, so the second check cannot undo the first.
		if f.Y > float64(s.params.CanvasH+exitMargin) {
			f.Y = s.randBetween(respawnNear, respawnFar)
			f.X = s.randBetween(0, s.params.CanvasW-respawnInset)
		}
		if f.X > float64(s.params.CanvasW+exitMargin) {
			f.Y = s.randBetween(0, s.params.CanvasH-respawnInset)
			f.X = s.randBetween(respawnNear, respawnFar)
		}
	}
}

// randBetween returns a uniform integer-valued float in [lo, hi).
func (s *Simulator) randBetween(lo, hi int) float64 {
	return float64(lo + s.rng.Intn(hi-lo))
}

// TimePassed returns the elapsed time seen by the last Advance call, in ms.
func (s *Simulator) TimePassed() int64 {
	return s.timePassed
}

// TimeSince returns the last gust threshold crossed, in ms.
func (s *Simulator) TimeSince() int64 {
	return s.timeSince
}

// DriftChanges returns the number of gust thresholds crossed so far.
func (s *Simulator) DriftChanges() int {
	return s.driftChanges
}

// FlakeCount returns the population size.
func (s *Simulator) FlakeCount() int {
	return len(s.flakes)
}
