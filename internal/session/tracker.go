// Package session tracks cross-frame coaching state: the owned reference
// snapshot, a rolling window of recent live snapshots, debounced
// per-category resolved flags, and the completion score.
package session

// #region imports
import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #endregion imports

// #region config

// Config controls session bookkeeping.
type Config struct {
	// WindowCapacity bounds the rolling live-snapshot window; the oldest
	// entry is evicted when full.
	WindowCapacity int
	// ResolveStreak is how many consecutive admitted frames a category
	// must stay within tolerance before it flips to resolved. Debounces
	// single-frame noise.
	ResolveStreak int
	// Weights are the per-category completion-score deductions while a
	// category is unresolved.
	Weights map[rules.Category]float64
}

// DefaultConfig returns the standard session settings.
func DefaultConfig() Config {
	return Config{
		WindowCapacity: 30,
		ResolveStreak:  3,
		Weights: map[rules.Category]float64{
			rules.CategoryCritical:    40,
			rules.CategoryPose:        15,
			rules.CategoryCamera:      10,
			rules.CategoryComposition: 10,
			rules.CategoryLighting:    10,
			rules.CategoryQuality:     5,
			rules.CategoryInfo:        0,
		},
	}
}

// #endregion config

// #region progress

// Progress is the session's externally visible completion state.
type Progress struct {
	SessionID      string                  `json:"session_id"`
	FramesObserved uint64                  `json:"frames_observed"`
	Score          float64                 `json:"score"`
	Resolved       map[rules.Category]bool `json:"resolved"`
	Improved       []rules.Category        `json:"improved,omitempty"`   // present on the first frame, now resolved
	Remaining      []rules.Category        `json:"remaining,omitempty"`  // currently unresolved
	NewIssues      []rules.Category        `json:"new_issues,omitempty"` // unresolved now but absent on the first frame
}

// #endregion progress

// #region tracker

type categoryState struct {
	everFired    bool
	unresolved   bool
	withinStreak int
}

// Tracker is the per-session state machine. Only the pipeline worker
// mutates it; the internal lock makes concurrent progress reads safe
// while a frame is being folded in.
type Tracker struct {
	id        string
	config    Config
	reference *snapshot.Snapshot
	createdAt time.Time

	mu     sync.Mutex
	window []*snapshot.Snapshot // rolling, newest last
	frames uint64

	cats       map[rules.Category]*categoryState
	firstFrame map[rules.Category]bool // categories that fired on frame 1
	score      float64
}

// NewTracker creates a tracker owning the given reference snapshot.
func NewTracker(reference *snapshot.Snapshot, config Config) *Tracker {
	if config.WindowCapacity <= 0 {
		config.WindowCapacity = DefaultConfig().WindowCapacity
	}
	if config.ResolveStreak <= 0 {
		config.ResolveStreak = DefaultConfig().ResolveStreak
	}
	if config.Weights == nil {
		config.Weights = DefaultConfig().Weights
	}
	return &Tracker{
		id:        uuid.New().String(),
		config:    config,
		reference: reference,
		createdAt: time.Now().UTC(),
		cats:      make(map[rules.Category]*categoryState),
		score:     100,
	}
}

// ID returns the session identifier.
func (t *Tracker) ID() string { return t.id }

// CreatedAt returns when the session started.
func (t *Tracker) CreatedAt() time.Time { return t.createdAt }

// #endregion tracker

// #region history-view

// Reference implements rules.History.
func (t *Tracker) Reference() *snapshot.Snapshot { return t.reference }

// Live implements rules.History: the most recent observed live snapshot.
func (t *Tracker) Live() *snapshot.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.window) == 0 {
		return nil
	}
	return t.window[len(t.window)-1]
}

// Resolved implements rules.History: true once a category has fired and
// then stayed within tolerance for the full resolve streak.
func (t *Tracker) Resolved(c rules.Category) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	st, ok := t.cats[c]
	return ok && st.everFired && !st.unresolved
}

// #endregion history-view

// #region observe

// BeginFrame admits a live snapshot into the rolling window. Called
// before rule evaluation so rules can read the current frame. The frame
// is counted at CompleteFrame, so a frame abandoned between the two
// never shows in progress.
func (t *Tracker) BeginFrame(live *snapshot.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.window = append(t.window, live)
	if len(t.window) > t.config.WindowCapacity {
		t.window = t.window[1:]
	}
}

// CompleteFrame folds the frame's candidate actions into the resolved
// bookkeeping and recomputes the completion score. A category counts as
// within tolerance exactly when no rule of that category fired; a firing
// category immediately clears its resolved state and resets the streak.
func (t *Tracker) CompleteFrame(candidates []rules.Action) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames++

	fired := make(map[rules.Category]bool, len(candidates))
	for _, a := range candidates {
		fired[a.Category] = true
	}

	if t.firstFrame == nil {
		t.firstFrame = fired
	}

	for _, c := range rules.Categories {
		st := t.cats[c]
		if fired[c] {
			if st == nil {
				st = &categoryState{}
				t.cats[c] = st
			}
			st.everFired = true
			st.unresolved = true
			st.withinStreak = 0
			continue
		}
		if st != nil && st.unresolved {
			st.withinStreak++
			if st.withinStreak >= t.config.ResolveStreak {
				st.unresolved = false
			}
		}
	}

	t.score = t.computeScore()
}

// computeScore is 100 minus the weight of every unresolved category,
// clamped to [0,100]. Recomputed from scratch each frame so the score
// can never drift.
func (t *Tracker) computeScore() float64 {
	score := 100.0
	for c, st := range t.cats {
		if st.unresolved {
			score -= t.config.Weights[c]
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// #endregion observe

// #region progress-report

// Score returns the current completion score.
func (t *Tracker) Score() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.score
}

// Frames returns the number of completed frames observed.
func (t *Tracker) Frames() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.frames
}

// Progress assembles the externally visible session state.
func (t *Tracker) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	p := Progress{
		SessionID:      t.id,
		FramesObserved: t.frames,
		Score:          t.score,
		Resolved:       make(map[rules.Category]bool, len(rules.Categories)),
	}
	for _, c := range rules.Categories {
		st := t.cats[c]
		if st == nil {
			continue
		}
		p.Resolved[c] = st.everFired && !st.unresolved
		if st.unresolved {
			p.Remaining = append(p.Remaining, c)
			if t.firstFrame != nil && !t.firstFrame[c] {
				p.NewIssues = append(p.NewIssues, c)
			}
		} else if st.everFired && t.firstFrame != nil && t.firstFrame[c] {
			p.Improved = append(p.Improved, c)
		}
	}
	return p
}

// #endregion progress-report
