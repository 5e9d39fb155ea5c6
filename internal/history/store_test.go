package history

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region helpers

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "coach.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testReference() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Seq:             0,
		SubjectDetected: true,
		Pose: &snapshot.Pose{
			ShoulderTilt: snapshot.Measure{Value: 2, Confidence: 0.9, Valid: true},
		},
	}
}

// #endregion helpers

// #region session-tests

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	started := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	if err := store.CreateSession("sess-1", started, testReference()); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := store.GetSession("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.SessionID != "sess-1" || !rec.StartedAt.Equal(started) {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Ended {
		t.Error("fresh session must not be marked ended")
	}
	if rec.Reference == nil || !rec.Reference.SubjectDetected {
		t.Errorf("reference not restored: %+v", rec.Reference)
	}
	if rec.Reference.Pose == nil || rec.Reference.Pose.ShoulderTilt.Value != 2 {
		t.Errorf("reference tilt lost: %+v", rec.Reference.Pose)
	}
}

func TestEndSession(t *testing.T) {
	store := newTestStore(t)
	started := time.Now().UTC()
	if err := store.CreateSession("sess-1", started, testReference()); err != nil {
		t.Fatalf("create: %v", err)
	}

	ended := started.Add(time.Minute)
	if err := store.EndSession("sess-1", ended, 92.5); err != nil {
		t.Fatalf("end: %v", err)
	}

	rec, err := store.GetSession("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !rec.Ended || !rec.EndedAt.Equal(ended) {
		t.Errorf("session not marked ended: %+v", rec)
	}
	if rec.FinalScore != 92.5 {
		t.Errorf("expected final score 92.5, got %v", rec.FinalScore)
	}
}

func TestEndUnknownSession(t *testing.T) {
	store := newTestStore(t)
	err := store.EndSession("missing", time.Now().UTC(), 0)
	if err == nil {
		t.Fatal("expected error for unknown session")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		if err := store.CreateSession(id, base.Add(time.Duration(i)*time.Hour), testReference()); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	recs, err := store.ListSessions(2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(recs))
	}
	if recs[0].SessionID != "c" || recs[1].SessionID != "b" {
		t.Errorf("expected newest first, got %s then %s", recs[0].SessionID, recs[1].SessionID)
	}
}

// #endregion session-tests

// #region frame-tests

func TestRecordAndListFrames(t *testing.T) {
	store := newTestStore(t)
	if err := store.CreateSession("sess-1", time.Now().UTC(), testReference()); err != nil {
		t.Fatalf("create: %v", err)
	}

	poseAction := rules.Action{
		Category:   rules.CategoryPose,
		Priority:   rules.Rank(rules.CategoryPose),
		Actor:      rules.ActorSubject,
		Direction:  rules.DirLevel,
		Magnitude:  18,
		Unit:       "deg",
		ReasonCode: rules.ReasonShoulderTilt,
	}
	if err := store.RecordFrame("sess-1", 1, 85, 12*time.Millisecond, []rules.Action{poseAction}); err != nil {
		t.Fatalf("record frame 1: %v", err)
	}
	if err := store.RecordFrame("sess-1", 2, 100, 9*time.Millisecond, nil); err != nil {
		t.Fatalf("record frame 2: %v", err)
	}

	frames, err := store.ListFrames("sess-1", 10)
	if err != nil {
		t.Fatalf("list frames: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Seq != 1 || frames[1].Seq != 2 {
		t.Errorf("frames out of order: %d, %d", frames[0].Seq, frames[1].Seq)
	}
	if frames[0].Score != 85 || frames[0].Elapsed != 12*time.Millisecond {
		t.Errorf("unexpected frame record: %+v", frames[0])
	}

	if len(frames[0].Actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(frames[0].Actions))
	}
	got := frames[0].Actions[0]
	if got.Category != rules.CategoryPose || got.ReasonCode != rules.ReasonShoulderTilt {
		t.Errorf("action not restored: %+v", got)
	}
	if got.Direction != rules.DirLevel || got.Magnitude != 18 {
		t.Errorf("action fields lost: %+v", got)
	}
	if got.Priority != rules.Rank(rules.CategoryPose) {
		t.Errorf("priority not recovered from category: %+v", got)
	}
	if len(frames[1].Actions) != 0 {
		t.Errorf("clean frame must have no actions, got %+v", frames[1].Actions)
	}

	rec, err := store.GetSession("sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Frames != 2 {
		t.Errorf("expected frame counter 2, got %d", rec.Frames)
	}
}

// #endregion frame-tests
