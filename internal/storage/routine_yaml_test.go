package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kegeltimer/internal/core/model"
)

const testApp = "KegelTimerTest"

func useTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	original := userConfigDir
	userConfigDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userConfigDir = original })
	return dir
}

func writeRoutineFile(t *testing.T, dir, content string) {
	t.Helper()
	appDir := filepath.Join(dir, testApp)
	if err := os.MkdirAll(appDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(appDir, routineFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// TestSaveLoadRoundTrip verifies a saved routine loads back with block
// and phase order intact.
func TestSaveLoadRoundTrip(t *testing.T) {
	useTempConfigDir(t)

	routine := model.Routine{Blocks: []model.Block{
		{Repeats: 2, Phases: []model.PhaseTemplate{
			{Type: model.PhaseHold, Seconds: 3},
			{Type: model.PhaseRest, Seconds: 2},
		}},
		{Repeats: 4, Phases: []model.PhaseTemplate{
			{Type: model.PhaseHold, Seconds: 10},
		}},
	}}

	if err := SaveRoutine(testApp, routine); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadRoutine(testApp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Blocks) != 2 {
		t.Fatalf("loaded %d blocks, want 2", len(loaded.Blocks))
	}
	if loaded.Blocks[0].Repeats != 2 || loaded.Blocks[1].Repeats != 4 {
		t.Errorf("repeats = %d/%d, want 2/4", loaded.Blocks[0].Repeats, loaded.Blocks[1].Repeats)
	}
	if loaded.Blocks[0].Phases[0].Type != model.PhaseHold || loaded.Blocks[0].Phases[1].Type != model.PhaseRest {
		t.Errorf("phase order not preserved: %+v", loaded.Blocks[0].Phases)
	}
	if loaded.Blocks[1].Phases[0].Seconds != 10 {
		t.Errorf("second block duration = %d, want 10", loaded.Blocks[1].Phases[0].Seconds)
	}
}

// TestSaveWritesReadableKeys verifies the persisted document uses the
// documented key names.
func TestSaveWritesReadableKeys(t *testing.T) {
	dir := useTempConfigDir(t)

	routine := model.Routine{Blocks: []model.Block{
		{Repeats: 3, Phases: []model.PhaseTemplate{{Type: model.PhaseHold, Seconds: 5}}},
	}}
	if err := SaveRoutine(testApp, routine); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, testApp, routineFileName))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"repeat_count: 3", "type: hold", "duration: 5"} {
		if !strings.Contains(string(raw), key) {
			t.Errorf("saved document missing %q:\n%s", key, raw)
		}
	}
}

// TestLoadMissingFallsBackToBundled verifies a missing user file yields
// the bundled default routine with no error.
func TestLoadMissingFallsBackToBundled(t *testing.T) {
	useTempConfigDir(t)

	routine, err := LoadRoutine(testApp)
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(routine.Blocks) == 0 {
		t.Fatal("fallback routine is empty")
	}
	if routine.Blocks[0].Repeats != 10 {
		t.Errorf("bundled default first block repeats = %d, want 10", routine.Blocks[0].Repeats)
	}
}

// TestLoadMalformedFallsBack verifies a file that fails to parse is
// reported but still yields a usable routine.
func TestLoadMalformedFallsBack(t *testing.T) {
	dir := useTempConfigDir(t)
	writeRoutineFile(t, dir, "blocks: [not: {valid")

	routine, err := LoadRoutine(testApp)
	if err == nil {
		t.Error("malformed file produced no advisory error")
	}
	if len(routine.Blocks) == 0 {
		t.Fatal("fallback routine is empty")
	}
}

// TestLoadClampsValues verifies out-of-range persisted values are
// clamped rather than rejected: negative repeats to zero, non-positive
// durations to one, unknown phase kinds to rest.
func TestLoadClampsValues(t *testing.T) {
	dir := useTempConfigDir(t)
	writeRoutineFile(t, dir, `
blocks:
  - repeat_count: -2
    phases:
      - type: squeeze
        duration: 0
`)

	routine, err := LoadRoutine(testApp)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	block := routine.Blocks[0]
	if block.Repeats != 0 {
		t.Errorf("repeats = %d, want 0", block.Repeats)
	}
	if block.Phases[0].Seconds != 1 {
		t.Errorf("duration = %d, want 1", block.Phases[0].Seconds)
	}
	if block.Phases[0].Type != model.PhaseRest {
		t.Errorf("unknown phase type mapped to %q, want rest", block.Phases[0].Type)
	}
}
