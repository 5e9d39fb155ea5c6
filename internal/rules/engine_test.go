package rules

import (
	"testing"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region stubs

type stubHistory struct {
	ref  *snapshot.Snapshot
	live *snapshot.Snapshot
}

func (h *stubHistory) Reference() *snapshot.Snapshot { return h.ref }
func (h *stubHistory) Live() *snapshot.Snapshot      { return h.live }
func (h *stubHistory) Resolved(Category) bool        { return false }

type stubRule struct {
	name     string
	category Category
	priority int
	action   *Action
	panics   bool
	calls    int
}

func (r *stubRule) Name() string       { return r.name }
func (r *stubRule) Category() Category { return r.category }
func (r *stubRule) Priority() int      { return r.priority }

func (r *stubRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	r.calls++
	if r.panics {
		panic("rule blew up")
	}
	return r.action
}

// #endregion stubs

// #region engine-tests

func TestEngine_EvaluationOrder(t *testing.T) {
	a := &stubRule{name: "b-rule", category: CategoryCamera, priority: 2}
	b := &stubRule{name: "a-rule", category: CategoryPose, priority: 1}
	c := &stubRule{name: "a-first", category: CategoryCamera, priority: 2}

	e := NewEngine([]Rule{a, b, c})
	got := e.Rules()
	wantNames := []string{"a-rule", "a-first", "b-rule"}
	for i, w := range wantNames {
		if got[i].Name() != w {
			t.Errorf("position %d: expected %s, got %s", i, w, got[i].Name())
		}
	}
}

func TestEngine_CollectsCandidates(t *testing.T) {
	poseAction := &Action{Category: CategoryPose, Priority: 1, Direction: DirLevel, ReasonCode: ReasonShoulderTilt}
	camAction := &Action{Category: CategoryCamera, Priority: 2, Direction: DirDecrease, ReasonCode: ReasonISO}

	e := NewEngine([]Rule{
		&stubRule{name: "pose", category: CategoryPose, priority: 1, action: poseAction},
		&stubRule{name: "camera", category: CategoryCamera, priority: 2, action: camAction},
		&stubRule{name: "quiet", category: CategoryQuality, priority: 5},
	})

	got := e.Evaluate(nil, &stubHistory{})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].ReasonCode != ReasonShoulderTilt || got[1].ReasonCode != ReasonISO {
		t.Errorf("unexpected candidates: %+v", got)
	}
}

func TestEngine_CriticalShortCircuits(t *testing.T) {
	critical := &Action{Category: CategoryCritical, Priority: 0, Direction: DirRetake, ReasonCode: ReasonNoSubject}
	later := &stubRule{name: "pose", category: CategoryPose, priority: 1,
		action: &Action{Category: CategoryPose, Priority: 1}}

	e := NewEngine([]Rule{
		&stubRule{name: "critical", category: CategoryCritical, priority: 0, action: critical},
		later,
	})

	got := e.Evaluate(nil, &stubHistory{})
	if len(got) != 1 {
		t.Fatalf("expected single critical action, got %d", len(got))
	}
	if got[0].Category != CategoryCritical {
		t.Errorf("expected critical, got %s", got[0].Category)
	}
	if later.calls != 0 {
		t.Errorf("rules after critical must not run, got %d calls", later.calls)
	}
}

func TestEngine_PanicIsolated(t *testing.T) {
	after := &stubRule{name: "camera", category: CategoryCamera, priority: 2,
		action: &Action{Category: CategoryCamera, Priority: 2, ReasonCode: ReasonISO}}

	e := NewEngine([]Rule{
		&stubRule{name: "broken", category: CategoryPose, priority: 1, panics: true},
		after,
	})

	got := e.Evaluate(nil, &stubHistory{})
	if len(got) != 1 || got[0].ReasonCode != ReasonISO {
		t.Fatalf("expected pass to continue past panic, got %+v", got)
	}
	if e.Failures() != 1 {
		t.Errorf("expected 1 failure counted, got %d", e.Failures())
	}
}

// #endregion engine-tests
