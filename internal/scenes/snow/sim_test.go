package snow

import (
	"math/rand"
	"reflect"
	"testing"
)

// testParams returns the stock simulation parameters used across tests.
func testParams() Params {
	return Params{
		CanvasW:        700,
		CanvasH:        500,
		Flakes:         10,
		NearDrift:      Vec{X: 1, Y: 2},
		FarDrift:       Vec{X: 4, Y: 4},
		GustIntervalMS: 10000,
		GustSpeed:      100,
	}
}

func newTestSim(t *testing.T, p Params, seed int64) *Simulator {
	t.Helper()
	return NewSimulator(p, rand.New(rand.NewSource(seed)))
}

func TestNewSimulatorPopulation(t *testing.T) {
	p := testParams()
	sim := newTestSim(t, p, 1)

	if sim.FlakeCount() != p.Flakes {
		t.Fatalf("FlakeCount() = %d, want %d", sim.FlakeCount(), p.Flakes)
	}

	half := p.Flakes / 2
	for i, f := range sim.flakes {
		if f.Radius < 2 || f.Radius > 4 {
			t.Errorf("flake %d: radius %d out of [2,4]", i, f.Radius)
		}
		if f.Shade < 30 {
			t.Errorf("flake %d: shade %d below 30", i, f.Shade)
		}
		if f.X < 0 || f.X >= float64(p.CanvasW) {
			t.Errorf("flake %d: x %.0f outside canvas", i, f.X)
		}
		if f.Y < 0 || f.Y >= float64(p.CanvasH) {
			t.Errorf("flake %d: y %.0f outside canvas", i, f.Y)
		}

		want := p.NearDrift
		if i >= half {
			want = p.FarDrift
		}
		if f.Drift != want {
			t.Errorf("flake %d: drift %+v, want %+v", i, f.Drift, want)
		}
	}
}

func TestDeterminism(t *testing.T) {
	p := testParams()
	a := newTestSim(t, p, 42)
	b := newTestSim(t, p, 42)

	// Same seed, same advance schedule, same trajectories.
	for now := int64(0); now <= 30000; now += 41 {
		a.Advance(now)
		b.Advance(now)
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Fatal("same-seed simulations diverged")
	}

	c := newTestSim(t, p, 43)
	for now := int64(0); now <= 30000; now += 41 {
		c.Advance(now)
	}
	if reflect.DeepEqual(a.Snapshot(), c.Snapshot()) {
		t.Fatal("different seeds produced identical state")
	}
}

func TestAdvanceAppliesDrift(t *testing.T) {
	p := testParams()
	p.Flakes = 1
	sim := newTestSim(t, p, 1)

	sim.flakes[0] = Flake{X: 698, Y: 100, Radius: 2, Shade: 128, Drift: Vec{X: 1, Y: 2}}
	sim.Advance(0)

	f := sim.flakes[0]
	if f.X != 699 || f.Y != 102 {
		t.Fatalf("flake at (%.0f, %.0f), want (699, 102)", f.X, f.Y)
	}
}

func TestVerticalRecycle(t *testing.T) {
	p := testParams()
	p.Flakes = 1
	sim := newTestSim(t, p, 1)

	// 502 + 2 = 504, past the bottom margin of 503.
	sim.flakes[0] = Flake{X: 100, Y: 502, Radius: 2, Shade: 128, Drift: Vec{X: 1, Y: 2}}
	sim.Advance(0)

	f := sim.flakes[0]
	if f.Y < -50 || f.Y >= -10 {
		t.Errorf("respawn y = %.0f, want in [-50, -10)", f.Y)
	}
	if f.X < 0 || f.X >= float64(p.CanvasW-respawnInset) {
		t.Errorf("respawn x = %.0f, want in [0, %d)", f.X, p.CanvasW-respawnInset)
	}
	if f.Drift != (Vec{X: 1, Y: 2}) {
		t.Errorf("recycling changed drift to %+v", f.Drift)
	}
}

func TestHorizontalRecycle(t *testing.T) {
	p := testParams()
	p.Flakes = 1
	sim := newTestSim(t, p, 1)

	// 700 + 4 = 704, past the right margin of 703.
	sim.flakes[0] = Flake{X: 700, Y: 100, Radius: 3, Shade: 200, Drift: Vec{X: 4, Y: 4}}
	sim.Advance(0)

	f := sim.flakes[0]
	if f.X < -50 || f.X >= -10 {
		t.Errorf("respawn x = %.0f, want in [-50, -10)", f.X)
	}
	if f.Y < 0 || f.Y >= float64(p.CanvasH-respawnInset) {
		t.Errorf("respawn y = %.0f, want in [0, %d)", f.Y, p.CanvasH-respawnInset)
	}
}

func TestExitMarginKeepsFlakes(t *testing.T) {
	p := testParams()
	p.Flakes = 1
	sim := newTestSim(t, p, 1)

	// 702 + 1 = 703, exactly on the margin: not recycled.
	sim.flakes[0] = Flake{X: 702, Y: 100, Radius: 2, Shade: 128, Drift: Vec{X: 1, Y: 2}}
	sim.Advance(0)

	f := sim.flakes[0]
	if f.X != 703 || f.Y != 102 {
		t.Fatalf("flake recycled at the margin: (%.0f, %.0f)", f.X, f.Y)
	}
}

func TestGustCounterCrossings(t *testing.T) {
	p := testParams()
	sim := newTestSim(t, p, 7)

	sim.Advance(9999)
	if got := sim.DriftChanges(); got != 0 {
		t.Fatalf("DriftChanges() = %d before first interval, want 0", got)
	}
	if got := sim.TimeSince(); got != 0 {
		t.Fatalf("TimeSince() = %d before first interval, want 0", got)
	}

	sim.Advance(10001)
	if got := sim.DriftChanges(); got != 1 {
		t.Fatalf("DriftChanges() = %d after first interval, want 1", got)
	}
	if got := sim.TimeSince(); got != 10000 {
		t.Fatalf("TimeSince() = %d after first interval, want 10000", got)
	}

	// Counter crossed but the lock threshold moved to 20000: drift untouched.
	for i, f := range sim.flakes {
		wantX := p.NearDrift.X
		if i >= p.Flakes/2 {
			wantX = p.FarDrift.X
		}
		if f.Drift.X != wantX {
			t.Fatalf("flake %d drift.x = %.0f after on-time crossing, want %.0f", i, f.Drift.X, wantX)
		}
	}
}

func TestRegularCadenceNeverLocks(t *testing.T) {
	p := testParams()
	sim := newTestSim(t, p, 7)

	// Steady ~24fps frames: the counter keeps pace with elapsed time, so the
	// lock threshold always stays ahead and the wind never actually changes.
	for now := int64(0); now <= 60000; now += 41 {
		sim.Advance(now)

		if since := sim.TimeSince(); since%p.GustIntervalMS != 0 {
			t.Fatalf("TimeSince() = %d, not a multiple of the interval", since)
		}
		if sim.TimeSince() > sim.TimePassed() {
			t.Fatalf("TimeSince() %d ahead of TimePassed() %d", sim.TimeSince(), sim.TimePassed())
		}
	}

	// 41ms frames never land exactly on 60000, so the sixth threshold is
	// still ahead when the loop ends.
	if got := sim.DriftChanges(); got != 5 {
		t.Fatalf("DriftChanges() = %d after 60s, want 5", got)
	}
	if x := sim.flakes[0].Drift.X; x != p.NearDrift.X {
		t.Fatalf("drift.x = %.0f after steady run, want %.0f", x, p.NearDrift.X)
	}
}

func TestDriftChangeStarvation(t *testing.T) {
	p := testParams()
	sim := newTestSim(t, p, 7)

	// One giant frame covering 3.5 intervals: the counter advances a single
	// step, and the lagging lock threshold (20000 < 35000) fires the gust.
	sim.Advance(35000)

	if got := sim.DriftChanges(); got != 1 {
		t.Fatalf("DriftChanges() = %d after stall, want 1", got)
	}
	if got := sim.TimeSince(); got != 10000 {
		t.Fatalf("TimeSince() = %d after stall, want 10000", got)
	}
	for i, f := range sim.flakes {
		if f.Drift.X != p.GustSpeed {
			t.Fatalf("flake %d drift.x = %.0f after stall, want gust speed %.0f", i, f.Drift.X, p.GustSpeed)
		}
	}

	// The counter recovers one interval per subsequent frame.
	sim.Advance(35001)
	sim.Advance(35002)
	if got := sim.DriftChanges(); got != 3 {
		t.Fatalf("DriftChanges() = %d after recovery frames, want 3", got)
	}
}

func TestGustsDisabled(t *testing.T) {
	p := testParams()
	p.GustIntervalMS = 0
	sim := newTestSim(t, p, 7)

	sim.Advance(100000)

	if got := sim.DriftChanges(); got != 0 {
		t.Fatalf("DriftChanges() = %d with gusts disabled, want 0", got)
	}
	if x := sim.flakes[0].Drift.X; x != p.NearDrift.X {
		t.Fatalf("drift.x = %.0f with gusts disabled, want %.0f", x, p.NearDrift.X)
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	p := testParams()
	sim := newTestSim(t, p, 1)

	snap := sim.Snapshot()
	snap.Flakes[0].X = -9999

	if sim.flakes[0].X == -9999 {
		t.Fatal("mutating a snapshot leaked into the simulator")
	}
}
