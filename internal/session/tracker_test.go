package session

import (
	"testing"

	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region helpers

func newTestTracker(t *testing.T) *Tracker {
	t.Helper()
	ref := &snapshot.Snapshot{SubjectDetected: true}
	return NewTracker(ref, DefaultConfig())
}

func fire(categories ...rules.Category) []rules.Action {
	actions := make([]rules.Action, len(categories))
	for i, c := range categories {
		actions[i] = rules.Action{Category: c, Priority: rules.Rank(c)}
	}
	return actions
}

func frame(t *Tracker, candidates []rules.Action) {
	t.BeginFrame(&snapshot.Snapshot{SubjectDetected: true})
	t.CompleteFrame(candidates)
}

// #endregion helpers

// #region lifecycle-tests

func TestTracker_InitialState(t *testing.T) {
	tr := newTestTracker(t)
	if tr.ID() == "" {
		t.Error("expected non-empty session ID")
	}
	if tr.Score() != 100 {
		t.Errorf("expected starting score 100, got %v", tr.Score())
	}
	if tr.Live() != nil {
		t.Error("expected nil live before first frame")
	}
	if tr.Reference() == nil {
		t.Error("expected reference present")
	}
}

func TestTracker_WindowEviction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WindowCapacity = 3
	tr := NewTracker(&snapshot.Snapshot{}, cfg)

	for seq := uint64(1); seq <= 5; seq++ {
		tr.BeginFrame(&snapshot.Snapshot{Seq: seq})
		tr.CompleteFrame(nil)
	}
	if tr.Frames() != 5 {
		t.Errorf("expected 5 frames observed, got %d", tr.Frames())
	}
	if tr.Live().Seq != 5 {
		t.Errorf("expected live seq 5, got %d", tr.Live().Seq)
	}
}

// #endregion lifecycle-tests

// #region resolve-tests

func TestTracker_ResolveDebounce(t *testing.T) {
	tr := newTestTracker(t) // resolve streak 3

	frame(tr, fire(rules.CategoryPose))
	if tr.Resolved(rules.CategoryPose) {
		t.Fatal("firing category must not be resolved")
	}

	// Two clean frames: still not resolved.
	frame(tr, nil)
	frame(tr, nil)
	if tr.Resolved(rules.CategoryPose) {
		t.Fatal("resolved before full streak")
	}

	// Third clean frame completes the streak.
	frame(tr, nil)
	if !tr.Resolved(rules.CategoryPose) {
		t.Fatal("expected resolved after 3 clean frames")
	}
}

func TestTracker_RefireResetsStreak(t *testing.T) {
	tr := newTestTracker(t)

	frame(tr, fire(rules.CategoryCamera))
	frame(tr, nil)
	frame(tr, nil)
	// Refire just before the streak completes.
	frame(tr, fire(rules.CategoryCamera))
	frame(tr, nil)
	frame(tr, nil)
	if tr.Resolved(rules.CategoryCamera) {
		t.Fatal("refire must reset the streak")
	}
	frame(tr, nil)
	if !tr.Resolved(rules.CategoryCamera) {
		t.Fatal("expected resolved after fresh full streak")
	}
}

func TestTracker_ResolvedClearsOnRefire(t *testing.T) {
	tr := newTestTracker(t)

	frame(tr, fire(rules.CategoryPose))
	frame(tr, nil)
	frame(tr, nil)
	frame(tr, nil)
	if !tr.Resolved(rules.CategoryPose) {
		t.Fatal("setup: expected resolved")
	}

	frame(tr, fire(rules.CategoryPose))
	if tr.Resolved(rules.CategoryPose) {
		t.Fatal("resolved flag must clear when the category fires again")
	}
}

func TestTracker_NeverFiredIsNotResolved(t *testing.T) {
	tr := newTestTracker(t)
	frame(tr, nil)
	if tr.Resolved(rules.CategoryLighting) {
		t.Error("a category that never fired is not resolved, only absent")
	}
}

// #endregion resolve-tests

// #region score-tests

func TestTracker_ScoreDeductions(t *testing.T) {
	tr := newTestTracker(t)

	frame(tr, fire(rules.CategoryPose, rules.CategoryCamera))
	// 100 - 15 (pose) - 10 (camera).
	if tr.Score() != 75 {
		t.Errorf("expected score 75, got %v", tr.Score())
	}

	// Resolving pose restores its weight; camera still deducts.
	frame(tr, fire(rules.CategoryCamera))
	frame(tr, fire(rules.CategoryCamera))
	frame(tr, fire(rules.CategoryCamera))
	if tr.Score() != 90 {
		t.Errorf("expected score 90 after pose resolved, got %v", tr.Score())
	}
}

func TestTracker_ScoreClampedAtZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights = map[rules.Category]float64{
		rules.CategoryCritical: 80,
		rules.CategoryPose:     50,
	}
	tr := NewTracker(&snapshot.Snapshot{}, cfg)
	frame(tr, fire(rules.CategoryCritical, rules.CategoryPose))
	if tr.Score() != 0 {
		t.Errorf("expected score clamped to 0, got %v", tr.Score())
	}
}

func TestTracker_InfoCategoryFree(t *testing.T) {
	tr := newTestTracker(t)
	frame(tr, fire(rules.CategoryInfo))
	if tr.Score() != 100 {
		t.Errorf("info category carries no weight, got score %v", tr.Score())
	}
}

// #endregion score-tests

// #region progress-tests

func TestTracker_ProgressBreakdown(t *testing.T) {
	tr := newTestTracker(t)

	// First frame: pose and camera issues.
	frame(tr, fire(rules.CategoryPose, rules.CategoryCamera))
	// Pose resolves over the next three frames; camera persists, and
	// lighting appears as a new issue on the way.
	frame(tr, fire(rules.CategoryCamera))
	frame(tr, fire(rules.CategoryCamera, rules.CategoryLighting))
	frame(tr, fire(rules.CategoryCamera))

	p := tr.Progress()
	if p.FramesObserved != 4 {
		t.Errorf("expected 4 frames, got %d", p.FramesObserved)
	}
	if len(p.Improved) != 1 || p.Improved[0] != rules.CategoryPose {
		t.Errorf("expected pose improved, got %v", p.Improved)
	}
	wantRemaining := map[rules.Category]bool{rules.CategoryCamera: true, rules.CategoryLighting: true}
	if len(p.Remaining) != 2 {
		t.Fatalf("expected 2 remaining, got %v", p.Remaining)
	}
	for _, c := range p.Remaining {
		if !wantRemaining[c] {
			t.Errorf("unexpected remaining category %s", c)
		}
	}
	if len(p.NewIssues) != 1 || p.NewIssues[0] != rules.CategoryLighting {
		t.Errorf("expected lighting as new issue, got %v", p.NewIssues)
	}
	if !p.Resolved[rules.CategoryPose] {
		t.Error("expected pose marked resolved in progress")
	}
}

// #endregion progress-tests
