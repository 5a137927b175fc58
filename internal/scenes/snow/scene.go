package snow

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/termsnow/internal/config"
	"github.com/vovakirdan/termsnow/internal/core"
	"github.com/vovakirdan/termsnow/internal/registry"
)

// Variant selects the scene flavor.
type Variant string

const (
	VariantClassic  Variant = "classic"
	VariantBlizzard Variant = "blizzard"
)

// Package-level knobs set by the CLI before scene creation (platform pattern:
// the registry factory takes no arguments).
var (
	configPath string
	presetName string
)

// SetConfigPath sets a custom config file path for subsequently created scenes.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset sets the preset applied to subsequently created classic scenes.
func SetPreset(preset string) {
	presetName = preset
}

// Scene adapts the Simulator to the platform's Scene interface.
type Scene struct {
	variant Variant
	cfg     config.SnowConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	sim     *Simulator
	tick    uint64
	paused  bool
	debug   bool
}

// New creates the classic snowfall scene.
func New() *Scene {
	return &Scene{variant: VariantClassic}
}

// NewBlizzard creates the dense, fast variant.
func NewBlizzard() *Scene {
	return &Scene{variant: VariantBlizzard}
}

func init() {
	registry.Register("classic", func() registry.Scene {
		return New()
	})
	registry.Register("blizzard", func() registry.Scene {
		return NewBlizzard()
	})
}

// ID returns the scene identifier.
func (sc *Scene) ID() string {
	return string(sc.variant)
}

// Title returns the display name.
func (sc *Scene) Title() string {
	if sc.variant == VariantBlizzard {
		return "Snowfall (Blizzard)"
	}
	return "Snowfall"
}

// Caption returns the decorative window title from the scene config.
func (sc *Scene) Caption() string {
	if sc.cfg.Display.Caption != "" {
		return sc.cfg.Display.Caption
	}
	return config.DefaultSnowConfig().Display.Caption
}

// Reset initializes/restarts the scene.
func (sc *Scene) Reset(cfg core.RuntimeConfig) {
	// Loader falls back to embedded defaults; a broken --config path is
	// rejected by the CLI before the scene is created.
	loaded, err := config.LoadSnow(configPath)
	if err != nil {
		loaded = config.DefaultSnowConfig()
	}

	switch sc.variant {
	case VariantBlizzard:
		config.ApplyPreset(&loaded, config.PresetBlizzard)
	default:
		if preset, ok := config.ParsePreset(presetName); ok {
			config.ApplyPreset(&loaded, preset)
		}
	}

	sc.cfg = loaded
	sc.runtime = cfg
	sc.tick = 0
	sc.paused = false
	sc.rng = rand.New(rand.NewSource(cfg.Seed))
	sc.sim = NewSimulator(Params{
		CanvasW:        loaded.Canvas.Width,
		CanvasH:        loaded.Canvas.Height,
		Flakes:         loaded.Flakes,
		NearDrift:      Vec{X: loaded.Drift.Near.X, Y: loaded.Drift.Near.Y},
		FarDrift:       Vec{X: loaded.Drift.Far.X, Y: loaded.Drift.Far.Y},
		GustIntervalMS: loaded.Drift.GustIntervalMS,
		GustSpeed:      loaded.Drift.GustSpeed,
	}, sc.rng)
}

// Step advances the scene by one tick.
func (sc *Scene) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) {
		sc.Reset(core.RuntimeConfig{
			Seed:     sc.rng.Int63(),
			ScreenW:  sc.runtime.ScreenW,
			ScreenH:  sc.runtime.ScreenH,
			TickRate: sc.runtime.TickRate,
		})
		return core.StepResult{Stats: sc.Stats()}
	}

	if input.Has(core.ActionPause) {
		sc.paused = !sc.paused
	}
	if input.Has(core.ActionDebug) {
		sc.debug = !sc.debug
	}

	if !sc.paused {
		sc.tick++
		sc.sim.Advance(sc.elapsedMS())
	}

	return core.StepResult{Stats: sc.Stats()}
}

// elapsedMS derives simulation time from the tick counter. Tick-derived time
// keeps two same-seed runs identical regardless of wall-clock jitter.
func (sc *Scene) elapsedMS() int64 {
	rate := sc.runtime.TickRate
	if rate <= 0 {
		rate = sc.cfg.Display.FrameRate
	}
	return int64(sc.tick) * 1000 / int64(rate)
}

// Render draws the scene to the screen.
func (sc *Scene) Render(dst *core.Screen) {
	dst.Clear()
	if bg, ok := core.ParseHex(sc.cfg.Display.Background); ok {
		dst.SetBackground(bg)
	}

	w, h := dst.Width(), dst.Height()
	canvasW, canvasH := sc.cfg.Canvas.Width, sc.cfg.Canvas.Height
	if canvasW <= 0 || canvasH <= 0 {
		return
	}

	for i := range sc.sim.flakes {
		f := &sc.sim.flakes[i]
		sx := int(f.X) * w / canvasW
		sy := int(f.Y) * h / canvasH
		radius := f.Radius * h / canvasH
		dst.DrawCircle(sx, sy, radius, glyphFor(f.Radius), core.Gray(f.Shade))
	}

	if sc.debug {
		sc.renderDebug(dst)
	}
	if sc.paused {
		dst.DrawTextCentered(h/2, " Paused - press P to resume ")
	}
}

// glyphFor picks a flake glyph by canvas radius; bigger flakes read as closer.
func glyphFor(radius int) rune {
	switch radius {
	case 2:
		return '·'
	case 3:
		return '•'
	default:
		return '❄'
	}
}

// renderDebug draws the timing overlay, replacing the per-frame counter dump
// a simulator like this would otherwise log.
func (sc *Scene) renderDebug(dst *core.Screen) {
	box := core.NewRect(1, 1, 26, 6)
	dst.DrawBox(box)
	dst.DrawText(box.X+2, box.Y+1, fmt.Sprintf("passed %8dms", sc.sim.TimePassed()))
	dst.DrawText(box.X+2, box.Y+2, fmt.Sprintf("since  %8dms", sc.sim.TimeSince()))
	dst.DrawText(box.X+2, box.Y+3, fmt.Sprintf("gusts  %8d", sc.sim.DriftChanges()))
	dst.DrawText(box.X+2, box.Y+4, fmt.Sprintf("flakes %8d", sc.sim.FlakeCount()))
}

// Stats returns the current scene statistics.
func (sc *Scene) Stats() core.SceneStats {
	return core.SceneStats{
		Frames:       sc.tick,
		DriftChanges: sc.sim.DriftChanges(),
		Paused:       sc.paused,
	}
}
