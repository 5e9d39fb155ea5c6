package replay

import (
	"time"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/ranker"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/sched"
	"github.com/tryangle/coach-controller/internal/session"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region types

// Frame is a single recorded live frame for replay.
type Frame struct {
	Seq     uint64
	Elapsed time.Duration // recorded processing duration, fed to the scheduler
	Bundle  snapshot.Bundle
}

// Result captures the outcome of replaying one frame.
type Result struct {
	Seq      uint64
	Admitted bool

	// Populated only for admitted frames.
	Gaps      []gap.Gap
	Actions   []rules.Action
	Score     float64
	SkipLevel int // level after this frame's duration was observed
}

// Summary provides aggregate stats from a replay run.
type Summary struct {
	TotalFrames int
	Admitted    int
	Skipped     int
	FinalScore  float64
	Progress    session.Progress
}

// #endregion types

// #region replay

// Replay runs a recorded frame sequence through the full per-frame
// stage chain: admission, normalization, gap computation, rule
// evaluation, ranking, session bookkeeping. Operates entirely
// in-memory; the recorded durations drive the scheduler in place of
// wall-clock timing, so a fixture replays identically every run.
func Replay(reference snapshot.Bundle, frames []Frame, config ReplayConfig) ([]Result, session.Progress) {
	intake := snapshot.NewIntake(config.Intake)
	engine := rules.NewEngine(rules.Builtin(config.Rules))
	scheduler := sched.New(config.Sched)

	ref := intake.Normalize(reference, 0, time.Time{})
	tracker := session.NewTracker(&ref, config.Session)

	results := make([]Result, 0, len(frames))
	for _, fr := range frames {
		if !scheduler.Admit(fr.Seq) {
			results = append(results, Result{Seq: fr.Seq, SkipLevel: scheduler.Level()})
			continue
		}

		live := intake.Normalize(fr.Bundle, fr.Seq, time.Time{})
		tracker.BeginFrame(&live)

		gaps := gap.Compute(tracker.Reference(), &live, config.Gap)
		candidates := engine.Evaluate(gaps, tracker)
		actions := ranker.Select(candidates, config.Ranker)
		tracker.CompleteFrame(candidates)

		scheduler.Observe(fr.Elapsed)

		results = append(results, Result{
			Seq:       fr.Seq,
			Admitted:  true,
			Gaps:      gaps,
			Actions:   actions,
			Score:     tracker.Score(),
			SkipLevel: scheduler.Level(),
		})
	}

	return results, tracker.Progress()
}

// ReplayFixture runs a loaded fixture and returns per-frame results.
func ReplayFixture(f *Fixture) ([]Result, session.Progress) {
	config := f.Config.ToReplayConfig()
	frames := make([]Frame, len(f.Frames))
	for i, ff := range f.Frames {
		frames[i] = Frame{
			Seq:     ff.Seq,
			Elapsed: time.Duration(ff.ElapsedMS * float64(time.Millisecond)),
			Bundle:  ff.Bundle.ToBundle(),
		}
	}
	return Replay(f.Reference.ToBundle(), frames, config)
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []Result, progress session.Progress) Summary {
	s := Summary{
		TotalFrames: len(results),
		FinalScore:  progress.Score,
		Progress:    progress,
	}
	for _, r := range results {
		if r.Admitted {
			s.Admitted++
		} else {
			s.Skipped++
		}
	}
	return s
}

// #endregion replay
