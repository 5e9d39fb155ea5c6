package ranker

import (
	"testing"

	"github.com/tryangle/coach-controller/internal/rules"
)

// #region helpers

func action(c rules.Category, priority int, magnitude float64, reason string) rules.Action {
	return rules.Action{Category: c, Priority: priority, Magnitude: magnitude, ReasonCode: reason}
}

// #endregion helpers

// #region select-tests

func TestSelect_Empty(t *testing.T) {
	if got := Select(nil, DefaultConfig()); got != nil {
		t.Errorf("expected nil for no candidates, got %v", got)
	}
}

func TestSelect_CriticalSuppressesEverything(t *testing.T) {
	candidates := []rules.Action{
		action(rules.CategoryPose, 1, 18, "shoulder_tilt"),
		action(rules.CategoryCritical, 0, 0, "no_subject_detected"),
		action(rules.CategoryCamera, 2, 800, "iso_deviation"),
	}
	got := Select(candidates, DefaultConfig())
	if len(got) != 1 {
		t.Fatalf("expected single action, got %d", len(got))
	}
	if got[0].Category != rules.CategoryCritical {
		t.Errorf("expected critical, got %s", got[0].Category)
	}
}

func TestSelect_OneActionPerCategory(t *testing.T) {
	candidates := []rules.Action{
		action(rules.CategoryPose, 1, 12, "shoulder_tilt"),
		action(rules.CategoryPose, 1, 25, "joint_offset"),
		action(rules.CategoryCamera, 2, 800, "iso_deviation"),
	}
	got := Select(candidates, DefaultConfig())
	if len(got) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(got))
	}
	seen := map[rules.Category]int{}
	for _, a := range got {
		seen[a.Category]++
	}
	for c, n := range seen {
		if n > 1 {
			t.Errorf("category %s appears %d times", c, n)
		}
	}
	// The more severe pose candidate survives.
	if got[0].ReasonCode != "joint_offset" {
		t.Errorf("expected most severe pose action first, got %+v", got[0])
	}
}

func TestSelect_PriorityThenSeverity(t *testing.T) {
	candidates := []rules.Action{
		action(rules.CategoryQuality, 5, 99, "sharpness_deviation"),
		action(rules.CategoryPose, 1, 11, "shoulder_tilt"),
		action(rules.CategoryCamera, 2, 800, "iso_deviation"),
	}
	got := Select(candidates, DefaultConfig())
	wantOrder := []rules.Category{rules.CategoryPose, rules.CategoryCamera, rules.CategoryQuality}
	for i, w := range wantOrder {
		if got[i].Category != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].Category)
		}
	}
}

func TestSelect_TopKTruncation(t *testing.T) {
	candidates := []rules.Action{
		action(rules.CategoryPose, 1, 11, "shoulder_tilt"),
		action(rules.CategoryCamera, 2, 800, "iso_deviation"),
		action(rules.CategoryComposition, 3, 0.2, "subject_offset"),
		action(rules.CategoryLighting, 4, 0.3, "brightness_deviation"),
		action(rules.CategoryQuality, 5, 0.4, "sharpness_deviation"),
	}
	got := Select(candidates, Config{TopK: 3})
	if len(got) != 3 {
		t.Fatalf("expected top 3, got %d", len(got))
	}
	if got[2].Category != rules.CategoryComposition {
		t.Errorf("expected composition last, got %s", got[2].Category)
	}
}

func TestSelect_DeterministicTieBreak(t *testing.T) {
	// Same priority, same severity: insertion order decides, every run.
	candidates := []rules.Action{
		action(rules.CategoryLighting, 4, 0.5, "brightness_deviation"),
		action(rules.CategoryQuality, 4, 0.5, "noise_deviation"),
	}
	for run := 0; run < 20; run++ {
		got := Select(candidates, DefaultConfig())
		if got[0].ReasonCode != "brightness_deviation" || got[1].ReasonCode != "noise_deviation" {
			t.Fatalf("run %d: tie-break not stable: %+v", run, got)
		}
	}
}

// #endregion select-tests
