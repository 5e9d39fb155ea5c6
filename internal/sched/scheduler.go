// Package sched implements the adaptive admission scheduler that keeps
// pipeline latency near the frame budget by thinning live frames.
package sched

// #region imports
import (
	"sync"
	"time"
)

// #endregion imports

// #region config

// Config controls admission behavior. The hysteresis band keeps the
// skip level from oscillating when the average hovers near the budget.
type Config struct {
	FrameBudget  time.Duration // target per-frame processing time
	WindowSize   int           // rolling duration window capacity
	LowerRatio   float64       // decrement level when avg < LowerRatio*budget
	UpperRatio   float64       // increment level when avg > UpperRatio*budget
	MaxSkipLevel int
	MinSamples   int // no adjustment until this many samples observed
}

// DefaultConfig returns the standard scheduler settings (30fps budget).
func DefaultConfig() Config {
	return Config{
		FrameBudget:  time.Second / 30,
		WindowSize:   10,
		LowerRatio:   0.7,
		UpperRatio:   1.2,
		MaxSkipLevel: 3,
		MinSamples:   3,
	}
}

// #endregion config

// #region stats

// Stats is a point-in-time scheduler summary for observability.
type Stats struct {
	SkipLevel int           `json:"skip_level"`
	WindowAvg time.Duration `json:"window_avg_ns"`
	Samples   int           `json:"samples"`
	Dropped   uint64        `json:"dropped"`
	Admitted  uint64        `json:"admitted"`
}

// #endregion stats

// #region scheduler

// Scheduler owns its state exclusively; downstream components only ever
// observe admitted frames. The mutex exists solely so Stats can be read
// from other goroutines.
type Scheduler struct {
	mu       sync.Mutex
	config   Config
	level    int
	window   []time.Duration
	dropped  uint64
	admitted uint64
}

// New creates a scheduler at skip level 0.
func New(config Config) *Scheduler {
	if config.WindowSize <= 0 {
		config.WindowSize = DefaultConfig().WindowSize
	}
	if config.FrameBudget <= 0 {
		config.FrameBudget = DefaultConfig().FrameBudget
	}
	if config.MaxSkipLevel <= 0 {
		config.MaxSkipLevel = DefaultConfig().MaxSkipLevel
	}
	if config.MinSamples <= 0 {
		config.MinSamples = DefaultConfig().MinSamples
	}
	return &Scheduler{config: config}
}

// #endregion scheduler

// #region admit

// Admit decides whether the frame with the given arrival sequence enters
// the pipeline. At skip level L only sequences divisible by L+1 pass;
// level 0 admits everything. Non-admitted frames are counted, not erred.
func (s *Scheduler) Admit(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq%uint64(s.level+1) == 0 {
		s.admitted++
		return true
	}
	s.dropped++
	return false
}

// #endregion admit

// #region observe

// Observe records a completed frame's processing duration and adjusts
// the skip level. The window holds the most recent WindowSize samples;
// adjustment waits for MinSamples so a slow warm-up frame alone cannot
// raise the level.
func (s *Scheduler) Observe(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.window = append(s.window, d)
	if len(s.window) > s.config.WindowSize {
		s.window = s.window[1:]
	}
	if len(s.window) < s.config.MinSamples {
		return
	}

	avg := s.windowAvg()
	budget := float64(s.config.FrameBudget)
	switch {
	case float64(avg) < s.config.LowerRatio*budget:
		if s.level > 0 {
			s.level--
		}
	case float64(avg) > s.config.UpperRatio*budget:
		if s.level < s.config.MaxSkipLevel {
			s.level++
		}
	}
}

func (s *Scheduler) windowAvg() time.Duration {
	var sum time.Duration
	for _, d := range s.window {
		sum += d
	}
	return sum / time.Duration(len(s.window))
}

// #endregion observe

// #region accessors

// Level returns the current skip level.
func (s *Scheduler) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Stats returns a point-in-time summary.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Stats{
		SkipLevel: s.level,
		Samples:   len(s.window),
		Dropped:   s.dropped,
		Admitted:  s.admitted,
	}
	if len(s.window) > 0 {
		st.WindowAvg = s.windowAvg()
	}
	return st
}

// #endregion accessors
