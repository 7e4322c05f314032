package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/drop-catch/internal/core"
)

type fakeGame struct{ id string }

func (g fakeGame) ID() string { return g.id }
func (g fakeGame) Title() string { return strings.ToUpper(g.id) }
func (g fakeGame) Reset(core.RuntimeConfig) {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen) {}
func (g fakeGame) State() core.GameState { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz_test_b", func() Game { return fakeGame{"zz_test_b"} })
	Register("zz_test_a", func() Game { return fakeGame{"zz_test_a"} })

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_test_") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("Title = %q for %q", info.Title, info.ID)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz_test_a" || ids[1] != "zz_test_b" {
		t.Errorf("List() ids = %v, expected sorted [zz_test_a zz_test_b]", ids)
	}

	g, err := Create("zz_test_a")
	if err != nil || g.ID() != "zz_test_a" {
		t.Errorf("Create() = %v, %v", g, err)
	}
	if !Exists("zz_test_b") || Exists("zz_test_missing") {
		t.Error("Exists() mismatch")
	}
	if _, err := Create("zz_test_missing"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_test_dup", func() Game { return fakeGame{"zz_test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_test_dup", func() Game { return fakeGame{"zz_test_dup"} })
}
