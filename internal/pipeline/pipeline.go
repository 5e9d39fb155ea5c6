// Package pipeline wires the per-frame stages together and owns the
// session lifecycle. A single worker goroutine processes at most one
// frame at a time; callers hand frames in through a latest-wins slot so
// submission never blocks on evaluation.
package pipeline

// #region imports
import (
	"log"
	"sync"
	"time"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/ranker"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/sched"
	"github.com/tryangle/coach-controller/internal/session"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #endregion imports

// #region config

// Config aggregates the stage configurations.
type Config struct {
	Intake  snapshot.IntakeConfig
	Gap     gap.Config
	Rules   rules.Config
	Ranker  ranker.Config
	Session session.Config
	Sched   sched.Config

	// ResultBuffer sizes the Results channel. When the consumer falls
	// behind, the oldest unread result is discarded, not the newest.
	ResultBuffer int
}

// DefaultConfig returns the standard pipeline settings.
func DefaultConfig() Config {
	return Config{
		Intake:       snapshot.DefaultIntakeConfig(),
		Gap:          gap.DefaultConfig(),
		Rules:        rules.DefaultConfig(),
		Ranker:       ranker.DefaultConfig(),
		Session:      session.DefaultConfig(),
		Sched:        sched.DefaultConfig(),
		ResultBuffer: 16,
	}
}

// #endregion config

// #region result

// Result is the outcome of one admitted, evaluated frame.
type Result struct {
	SessionID string
	Seq       uint64
	Actions   []rules.Action
	Gaps      []gap.Gap
	Score     float64
	Elapsed   time.Duration
}

// Stats summarizes pipeline throughput since construction.
type Stats struct {
	Submitted      uint64      `json:"submitted"`
	Admitted       uint64      `json:"admitted"`
	SchedDropped   uint64      `json:"sched_dropped"` // not admitted by the scheduler
	SlotDropped    uint64      `json:"slot_dropped"`  // overwritten in the inbox before processing
	Stale          uint64      `json:"stale"`
	ResultsDropped uint64      `json:"results_dropped"` // unread results evicted from the channel
	Sched          sched.Stats `json:"scheduler"`
}

// #endregion result

// #region inbox

// slotEntry is one pending frame. The epoch ties it to the session it
// was submitted under so a reset acts as a barrier: entries from an
// earlier epoch are discarded unprocessed.
type slotEntry struct {
	bundle     snapshot.Bundle
	seq        uint64
	capturedAt time.Time
	epoch      uint64
}

// #endregion inbox

// #region pipeline

// Pipeline is safe for concurrent use. StartSession, SubmitFrame,
// EndSession, Progress and Stats may be called from any goroutine.
type Pipeline struct {
	config Config
	intake *snapshot.Intake
	engine *rules.Engine
	sched  *sched.Scheduler

	results chan Result

	mu      sync.Mutex
	cond    *sync.Cond
	slot    *slotEntry
	tracker *session.Tracker
	ended   bool
	closed  bool
	epoch   uint64
	lastSeq uint64
	haveSeq bool

	submitted      uint64
	slotDropped    uint64
	stale          uint64
	resultsDropped uint64

	done chan struct{}
}

// New creates a pipeline and starts its worker.
func New(config Config) *Pipeline {
	if config.ResultBuffer <= 0 {
		config.ResultBuffer = DefaultConfig().ResultBuffer
	}
	p := &Pipeline{
		config:  config,
		intake:  snapshot.NewIntake(config.Intake),
		engine:  rules.NewEngine(rules.Builtin(config.Rules)),
		sched:   sched.New(config.Sched),
		results: make(chan Result, config.ResultBuffer),
		done:    make(chan struct{}),
	}
	p.cond = sync.NewCond(&p.mu)
	go p.run()
	return p
}

// Results delivers evaluated frames in order. The channel is closed on
// Close.
func (p *Pipeline) Results() <-chan Result { return p.results }

// #endregion pipeline

// #region lifecycle

// StartSession normalizes the reference bundle, creates a fresh session
// and resets all per-session state. It is a barrier: any frame pending
// from a previous session is discarded, and no stale result crosses the
// boundary. Returns the new session ID.
func (p *Pipeline) StartSession(reference snapshot.Bundle) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return "", ErrClosed
	}

	ref := p.intake.Normalize(reference, 0, time.Now().UTC())
	p.tracker = session.NewTracker(&ref, p.config.Session)
	p.ended = false
	p.epoch++
	p.slot = nil
	p.haveSeq = false
	p.lastSeq = 0
	p.sched = sched.New(p.config.Sched)

	log.Printf("[PIPE] session %s started (epoch %d)", p.tracker.ID(), p.epoch)
	return p.tracker.ID(), nil
}

// EndSession stops accepting frames and returns the final progress.
// Like StartSession it is a barrier for any pending frame.
func (p *Pipeline) EndSession() (session.Progress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return session.Progress{}, ErrClosed
	}
	if p.tracker == nil {
		return session.Progress{}, ErrNoReference
	}
	if p.ended {
		return session.Progress{}, ErrSessionEnded
	}

	p.ended = true
	p.epoch++
	p.slot = nil

	prog := p.tracker.Progress()
	log.Printf("[PIPE] session %s ended: frames=%d score=%.1f", prog.SessionID, prog.FramesObserved, prog.Score)
	return prog, nil
}

// Progress returns the current session's progress.
func (p *Pipeline) Progress() (session.Progress, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tracker == nil {
		return session.Progress{}, ErrNoReference
	}
	return p.tracker.Progress(), nil
}

// Reference returns the current session's normalized reference snapshot.
func (p *Pipeline) Reference() (*snapshot.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.tracker == nil {
		return nil, ErrNoReference
	}
	return p.tracker.Reference(), nil
}

// Close shuts the worker down and closes the Results channel.
func (p *Pipeline) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.slot = nil
	p.cond.Signal()
	p.mu.Unlock()
	<-p.done
	close(p.results)
}

// #endregion lifecycle

// #region submit

// SubmitFrame offers a live frame to the pipeline and reports whether
// it was admitted. A false return with a nil error means the scheduler
// thinned the frame; no result will follow. Sequence numbers must be
// strictly increasing within a session. A frame that lands while
// another is pending replaces it (latest wins). SubmitFrame never
// blocks on frame evaluation.
func (p *Pipeline) SubmitFrame(seq uint64, capturedAt time.Time, b snapshot.Bundle) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, ErrClosed
	}
	if p.tracker == nil {
		return false, ErrNoReference
	}
	if p.ended {
		return false, ErrSessionEnded
	}
	p.submitted++

	if p.haveSeq && seq <= p.lastSeq {
		p.stale++
		return false, ErrStaleFrame
	}
	p.lastSeq = seq
	p.haveSeq = true

	if !p.sched.Admit(seq) {
		return false, nil
	}

	if p.slot != nil {
		p.slotDropped++
	}
	p.slot = &slotEntry{bundle: b, seq: seq, capturedAt: capturedAt, epoch: p.epoch}
	p.cond.Signal()
	return true, nil
}

// Stats returns throughput counters.
func (p *Pipeline) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	ss := p.sched.Stats()
	return Stats{
		Submitted:      p.submitted,
		Admitted:       ss.Admitted,
		SchedDropped:   ss.Dropped,
		SlotDropped:    p.slotDropped,
		Stale:          p.stale,
		ResultsDropped: p.resultsDropped,
		Sched:          ss,
	}
}

// #endregion submit

// #region worker

func (p *Pipeline) run() {
	defer close(p.done)
	for {
		p.mu.Lock()
		for p.slot == nil && !p.closed {
			p.cond.Wait()
		}
		if p.closed {
			p.mu.Unlock()
			return
		}
		entry := p.slot
		p.slot = nil
		tracker := p.tracker
		p.mu.Unlock()

		if tracker == nil {
			continue
		}
		res, ok := p.process(tracker, entry)
		if ok {
			p.emit(res)
		}
	}
}

// process runs the per-frame stage chain. The evaluation stages run
// without the pipeline lock so SubmitFrame never waits on them; the
// tracker has its own internal lock for concurrent Progress reads. The
// commit re-checks the epoch under the pipeline lock, so a session
// boundary crossed mid-flight discards the frame without a result.
func (p *Pipeline) process(tracker *session.Tracker, entry *slotEntry) (Result, bool) {
	start := time.Now()
	live := p.intake.Normalize(entry.bundle, entry.seq, entry.capturedAt)
	tracker.BeginFrame(&live)

	gaps := gap.Compute(tracker.Reference(), &live, p.config.Gap)
	candidates := p.engine.Evaluate(gaps, tracker)
	actions := ranker.Select(candidates, p.config.Ranker)
	elapsed := time.Since(start)

	p.mu.Lock()
	defer p.mu.Unlock()
	if entry.epoch != p.epoch || p.ended {
		return Result{}, false
	}
	// Bookkeeping uses the full candidate set, not the ranked cut, so a
	// category squeezed out of the top K does not look resolved.
	tracker.CompleteFrame(candidates)
	p.sched.Observe(elapsed)

	return Result{
		SessionID: tracker.ID(),
		Seq:       entry.seq,
		Actions:   actions,
		Gaps:      gaps,
		Score:     tracker.Score(),
		Elapsed:   elapsed,
	}, true
}

// emit delivers a result, evicting the oldest unread one if the
// consumer is behind.
func (p *Pipeline) emit(res Result) {
	for {
		select {
		case p.results <- res:
			return
		default:
		}
		select {
		case <-p.results:
			p.mu.Lock()
			p.resultsDropped++
			p.mu.Unlock()
		default:
		}
	}
}

// #endregion worker
