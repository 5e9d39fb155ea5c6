package replay

import (
	"testing"
	"time"

	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region helpers

// helper: subject with level shoulders and a centered box.
func levelBundle() snapshot.Bundle {
	return snapshot.Bundle{
		ImageW: 1000,
		ImageH: 1000,
		Keypoints: map[snapshot.JointName]snapshot.RawKeypoint{
			snapshot.JointLeftShoulder:  {XPx: 400, YPx: 400, Confidence: 0.9},
			snapshot.JointRightShoulder: {XPx: 600, YPx: 400, Confidence: 0.9},
		},
		SubjectBox: &snapshot.RawBox{X1Px: 300, Y1Px: 200, X2Px: 700, Y2Px: 900, Confidence: 0.9},
	}
}

// helper: same subject with the right shoulder dropped past the pose threshold.
func tiltedBundle() snapshot.Bundle {
	b := levelBundle()
	b.Keypoints = map[snapshot.JointName]snapshot.RawKeypoint{
		snapshot.JointLeftShoulder:  {XPx: 400, YPx: 400, Confidence: 0.9},
		snapshot.JointRightShoulder: {XPx: 600, YPx: 480, Confidence: 0.9},
	}
	return b
}

func frames(bundles []snapshot.Bundle, elapsed time.Duration) []Frame {
	out := make([]Frame, len(bundles))
	for i, b := range bundles {
		out[i] = Frame{Seq: uint64(i + 1), Elapsed: elapsed, Bundle: b}
	}
	return out
}

// #endregion helpers

// #region replay-tests

// 1. Tilt then correct: the pose issue fires, persists unresolved, and
// resolves after the full clean streak.
func TestReplay_TiltResolves(t *testing.T) {
	seq := frames([]snapshot.Bundle{
		tiltedBundle(), levelBundle(), levelBundle(), levelBundle(),
	}, 10*time.Millisecond)

	results, progress := Replay(levelBundle(), seq, DefaultReplayConfig())

	if len(results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(results))
	}
	first := results[0]
	if !first.Admitted || len(first.Actions) != 1 {
		t.Fatalf("frame 1: expected single action, got %+v", first)
	}
	if first.Actions[0].ReasonCode != rules.ReasonShoulderTilt {
		t.Errorf("frame 1: expected shoulder_tilt, got %+v", first.Actions[0])
	}
	if first.Score != 85 {
		t.Errorf("frame 1: expected score 85, got %v", first.Score)
	}

	// Clean frames before the streak completes keep the deduction.
	if results[2].Score != 85 {
		t.Errorf("frame 3: expected score still 85, got %v", results[2].Score)
	}
	if results[3].Score != 100 {
		t.Errorf("frame 4: expected score 100 after resolve, got %v", results[3].Score)
	}
	if !progress.Resolved[rules.CategoryPose] {
		t.Errorf("expected pose resolved in progress, got %+v", progress)
	}
}

// 2. Slow frames: recorded durations over budget drive the skip level
// up and later frames are thinned by the modulo rule.
func TestReplay_SlowFramesThin(t *testing.T) {
	var seq []Frame
	for s := uint64(1); s <= 8; s++ {
		seq = append(seq, Frame{Seq: s, Elapsed: 100 * time.Millisecond, Bundle: levelBundle()})
	}

	results, progress := Replay(levelBundle(), seq, DefaultReplayConfig())

	wantAdmitted := map[uint64]bool{1: true, 2: true, 3: true, 4: true, 6: true, 8: true}
	for _, r := range results {
		if r.Admitted != wantAdmitted[r.Seq] {
			t.Errorf("seq %d: expected admitted=%v, got %v", r.Seq, wantAdmitted[r.Seq], r.Admitted)
		}
	}

	s := Summarize(results, progress)
	if s.Admitted != 6 || s.Skipped != 2 {
		t.Errorf("expected 6 admitted / 2 skipped, got %d / %d", s.Admitted, s.Skipped)
	}
}

// 3. Deterministic: same inputs produce identical outputs.
func TestReplay_Deterministic(t *testing.T) {
	seq := frames([]snapshot.Bundle{
		tiltedBundle(), tiltedBundle(), levelBundle(),
	}, 10*time.Millisecond)
	cfg := DefaultReplayConfig()

	r1, p1 := Replay(levelBundle(), seq, cfg)
	r2, p2 := Replay(levelBundle(), seq, cfg)

	if len(r1) != len(r2) {
		t.Fatalf("result lengths differ: %d vs %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i].Score != r2[i].Score || len(r1[i].Actions) != len(r2[i].Actions) {
			t.Errorf("frame %d differs between runs: %+v vs %+v", i, r1[i], r2[i])
		}
		for j := range r1[i].Actions {
			if r1[i].Actions[j].ReasonCode != r2[i].Actions[j].ReasonCode {
				t.Errorf("frame %d action %d differs: %s vs %s",
					i, j, r1[i].Actions[j].ReasonCode, r2[i].Actions[j].ReasonCode)
			}
		}
	}
	if p1.Score != p2.Score {
		t.Errorf("final scores differ: %v vs %v", p1.Score, p2.Score)
	}
}

// 4. Summarize: counts match the per-frame admissions.
func TestReplay_Summarize(t *testing.T) {
	seq := frames([]snapshot.Bundle{
		tiltedBundle(), levelBundle(), levelBundle(),
	}, 10*time.Millisecond)

	results, progress := Replay(levelBundle(), seq, DefaultReplayConfig())
	s := Summarize(results, progress)

	if s.TotalFrames != 3 {
		t.Errorf("expected 3 total frames, got %d", s.TotalFrames)
	}
	if s.Admitted != 3 || s.Skipped != 0 {
		t.Errorf("expected all admitted, got %d / %d", s.Admitted, s.Skipped)
	}
	if s.FinalScore != progress.Score {
		t.Errorf("summary score %v does not match progress %v", s.FinalScore, progress.Score)
	}
}

// #endregion replay-tests
