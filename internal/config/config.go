// Package config loads controller configuration from YAML with
// environment overrides for deployment-specific values.
package config

// #region imports
import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/pipeline"
	"github.com/tryangle/coach-controller/internal/ranker"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/sched"
	"github.com/tryangle/coach-controller/internal/session"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #endregion imports

// #region env

// Environment variables recognized at load time. Each one overrides the
// corresponding file value when set.
const (
	EnvConfigPath   = "COACH_CONFIG"
	EnvDBPath       = "COACH_DB"
	EnvAnalyzerAddr = "ANALYZER_ADDR"
	EnvAPIAddr      = "COACH_API_ADDR"
)

// #endregion env

// #region types

// Config is the full controller configuration.
type Config struct {
	DBPath       string `yaml:"db_path"`
	AnalyzerAddr string `yaml:"analyzer_addr"`
	APIAddr      string `yaml:"api_addr"`

	Scheduler SchedulerConfig `yaml:"scheduler"`
	Gaps      GapConfig       `yaml:"gaps"`
	Rules     rules.Config    `yaml:"rules"`
	Ranker    RankerConfig    `yaml:"ranker"`
	Session   SessionConfig   `yaml:"session"`
	Intake    IntakeConfig    `yaml:"intake"`
}

// SchedulerConfig mirrors sched.Config with a millisecond budget for
// readable YAML.
type SchedulerConfig struct {
	FrameBudgetMS float64 `yaml:"frame_budget_ms"`
	WindowSize    int     `yaml:"window_size"`
	LowerRatio    float64 `yaml:"lower_ratio"`
	UpperRatio    float64 `yaml:"upper_ratio"`
	MaxSkipLevel  int     `yaml:"max_skip_level"`
	MinSamples    int     `yaml:"min_samples"`
}

// GapConfig mirrors gap.Config.
type GapConfig struct {
	ConfidenceFloor float64 `yaml:"confidence_floor"`
}

// RankerConfig mirrors ranker.Config.
type RankerConfig struct {
	TopK int `yaml:"top_k"`
}

// SessionConfig mirrors session.Config with string category keys.
type SessionConfig struct {
	WindowCapacity int                `yaml:"window_capacity"`
	ResolveStreak  int                `yaml:"resolve_streak"`
	Weights        map[string]float64 `yaml:"weights"`
}

// IntakeConfig mirrors snapshot.IntakeConfig.
type IntakeConfig struct {
	StyleThreshold float64 `yaml:"style_threshold"`
}

// #endregion types

// #region defaults

// Default returns the configuration the controller runs with when no
// file is supplied.
func Default() Config {
	sc := sched.DefaultConfig()
	sess := session.DefaultConfig()
	weights := make(map[string]float64, len(sess.Weights))
	for c, w := range sess.Weights {
		weights[string(c)] = w
	}
	return Config{
		DBPath:       "coach.db",
		AnalyzerAddr: "localhost:50051",
		APIAddr:      ":8080",
		Scheduler: SchedulerConfig{
			FrameBudgetMS: float64(sc.FrameBudget) / float64(time.Millisecond),
			WindowSize:    sc.WindowSize,
			LowerRatio:    sc.LowerRatio,
			UpperRatio:    sc.UpperRatio,
			MaxSkipLevel:  sc.MaxSkipLevel,
			MinSamples:    sc.MinSamples,
		},
		Gaps:   GapConfig{ConfidenceFloor: gap.DefaultConfig().ConfidenceFloor},
		Rules:  rules.DefaultConfig(),
		Ranker: RankerConfig{TopK: ranker.DefaultConfig().TopK},
		Session: SessionConfig{
			WindowCapacity: sess.WindowCapacity,
			ResolveStreak:  sess.ResolveStreak,
			Weights:        weights,
		},
		Intake: IntakeConfig{StyleThreshold: snapshot.DefaultIntakeConfig().StyleThreshold},
	}
}

// #endregion defaults

// #region load

// Load reads configuration in override order: defaults, then the YAML
// file (explicit path argument, or COACH_CONFIG when empty), then
// individual environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvAnalyzerAddr); v != "" {
		cfg.AnalyzerAddr = v
	}
	if v := os.Getenv(EnvAPIAddr); v != "" {
		cfg.APIAddr = v
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would misbehave silently.
func (c Config) Validate() error {
	if c.Scheduler.FrameBudgetMS <= 0 {
		return fmt.Errorf("config: scheduler frame_budget_ms must be positive, got %v", c.Scheduler.FrameBudgetMS)
	}
	if c.Scheduler.LowerRatio >= c.Scheduler.UpperRatio {
		return fmt.Errorf("config: scheduler lower_ratio %v must be below upper_ratio %v",
			c.Scheduler.LowerRatio, c.Scheduler.UpperRatio)
	}
	if c.Gaps.ConfidenceFloor < 0 || c.Gaps.ConfidenceFloor > 1 {
		return fmt.Errorf("config: gaps confidence_floor must be in [0,1], got %v", c.Gaps.ConfidenceFloor)
	}
	if c.Ranker.TopK <= 0 {
		return fmt.Errorf("config: ranker top_k must be positive, got %d", c.Ranker.TopK)
	}
	if c.Session.ResolveStreak <= 0 {
		return fmt.Errorf("config: session resolve_streak must be positive, got %d", c.Session.ResolveStreak)
	}
	for name := range c.Session.Weights {
		if !rules.Category(name).Known() {
			return fmt.Errorf("config: session weight for unknown category %q", name)
		}
	}
	return nil
}

// #endregion load

// #region pipeline

// Pipeline converts the loaded configuration into the runtime stage
// configuration.
func (c Config) Pipeline() pipeline.Config {
	weights := make(map[rules.Category]float64, len(c.Session.Weights))
	for name, w := range c.Session.Weights {
		weights[rules.Category(name)] = w
	}
	return pipeline.Config{
		Intake: snapshot.IntakeConfig{StyleThreshold: c.Intake.StyleThreshold},
		Gap:    gap.Config{ConfidenceFloor: c.Gaps.ConfidenceFloor},
		Rules:  c.Rules,
		Ranker: ranker.Config{TopK: c.Ranker.TopK},
		Session: session.Config{
			WindowCapacity: c.Session.WindowCapacity,
			ResolveStreak:  c.Session.ResolveStreak,
			Weights:        weights,
		},
		Sched: sched.Config{
			FrameBudget:  time.Duration(c.Scheduler.FrameBudgetMS * float64(time.Millisecond)),
			WindowSize:   c.Scheduler.WindowSize,
			LowerRatio:   c.Scheduler.LowerRatio,
			UpperRatio:   c.Scheduler.UpperRatio,
			MaxSkipLevel: c.Scheduler.MaxSkipLevel,
			MinSamples:   c.Scheduler.MinSamples,
		},
		ResultBuffer: pipeline.DefaultConfig().ResultBuffer,
	}
}

// #endregion pipeline
