package registry

import (
	"testing"

	"github.com/vovakirdan/termsnow/internal/core"
)

// stubScene is a minimal Scene for registry tests.
type stubScene struct {
	id string
}

func (s *stubScene) ID() string                              { return s.id }
func (s *stubScene) Title() string                           { return "Stub" }
func (s *stubScene) Caption() string                         { return "stub" }
func (s *stubScene) Reset(cfg core.RuntimeConfig)            {}
func (s *stubScene) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubScene) Render(dst *core.Screen)                 {}
func (s *stubScene) Stats() core.SceneStats                  { return core.SceneStats{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Scene { return &stubScene{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("registered scene not found")
	}

	scene, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if scene.ID() != "stub-a" {
		t.Errorf("ID() = %q, want stub-a", scene.ID())
	}

	// Each Create returns a fresh instance.
	other, err := Create("stub-a")
	if err != nil {
		t.Fatal(err)
	}
	if scene == other {
		t.Error("Create returned a shared instance")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-scene"); err == nil {
		t.Fatal("expected error for unknown scene")
	}
	if Exists("no-such-scene") {
		t.Fatal("Exists reported an unregistered scene")
	}
}

func TestListSorted(t *testing.T) {
	Register("stub-c", func() Scene { return &stubScene{id: "stub-c"} })
	Register("stub-b", func() Scene { return &stubScene{id: "stub-b"} })

	scenes := List()
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].ID > scenes[i].ID {
			t.Fatalf("List not sorted: %q before %q", scenes[i-1].ID, scenes[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration did not panic")
		}
	}()

	Register("stub-dup", func() Scene { return &stubScene{id: "stub-dup"} })
	Register("stub-dup", func() Scene { return &stubScene{id: "stub-dup"} })
}
