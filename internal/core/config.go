package core

// RuntimeConfig contains configuration passed to scenes at initialization.
// Scenes use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 24)
	Seed     int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 24,
		Seed:     0,
	}
}

// SceneStats describes the observable state of a running scene.
// Returned by Scene.Stats() to communicate status to the platform.
type SceneStats struct {
	Frames       uint64 // Simulation frames advanced so far
	DriftChanges int    // Scripted wind-change events fired so far
	Paused       bool   // Whether the animation is frozen
}

// StepResult is returned by Scene.Step() after each simulation tick.
type StepResult struct {
	Stats SceneStats
}
