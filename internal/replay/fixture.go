package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/ranker"
	"github.com/tryangle/coach-controller/internal/rules"
	"github.com/tryangle/coach-controller/internal/sched"
	"github.com/tryangle/coach-controller/internal/session"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture: one
// reference bundle, a frame sequence with scripted processing
// durations, and the expected per-frame outcomes.
type Fixture struct {
	Description     string                  `json:"description"`
	Config          FixtureConfig           `json:"config"`
	Reference       FixtureBundle           `json:"reference"`
	Frames          []FixtureFrame          `json:"frames"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureConfig carries the tunables a recorded session ran with.
// Omitted values fall back to defaults.
type FixtureConfig struct {
	ConfidenceFloor *float64 `json:"confidence_floor,omitempty"`
	TopK            *int     `json:"top_k,omitempty"`
	ResolveStreak   *int     `json:"resolve_streak,omitempty"`
	StyleThreshold  *float64 `json:"style_threshold,omitempty"`
	FrameBudgetMS   *float64 `json:"frame_budget_ms,omitempty"`
	WindowSize      *int     `json:"window_size,omitempty"`
	LowerRatio      *float64 `json:"lower_ratio,omitempty"`
	UpperRatio      *float64 `json:"upper_ratio,omitempty"`
}

// FixtureFrame is one recorded live frame. ElapsedMS is the processing
// duration observed at record time; replay feeds it to the scheduler so
// skip-level transitions reproduce exactly.
type FixtureFrame struct {
	Seq       uint64        `json:"seq"`
	ElapsedMS float64       `json:"elapsed_ms"`
	Bundle    FixtureBundle `json:"bundle"`
}

// FixtureExpectedResult captures the expected outcome for one frame.
// Frames the scheduler skipped carry admitted=false and no actions.
type FixtureExpectedResult struct {
	Seq      uint64          `json:"seq"`
	Admitted bool            `json:"admitted"`
	Actions  []FixtureAction `json:"actions"`
	Score    *float64        `json:"score,omitempty"`
}

// FixtureAction is the stable subset of an action checked by replay.
type FixtureAction struct {
	Category   string `json:"category"`
	ReasonCode string `json:"reason_code"`
	Direction  string `json:"direction"`
}

// #endregion fixture-types

// #region fixture-bundle

// FixtureBundle mirrors snapshot.Bundle with JSON tags.
type FixtureBundle struct {
	ImageW int `json:"image_w"`
	ImageH int `json:"image_h"`

	Keypoints   []FixtureKeypoint `json:"keypoints,omitempty"`
	SubjectBox  *FixtureBox       `json:"subject_box,omitempty"`
	HorizonTilt *FixtureScalar    `json:"horizon_tilt,omitempty"`

	ISO          *FixtureScalar `json:"iso,omitempty"`
	Aperture     *FixtureScalar `json:"aperture,omitempty"`
	ShutterSpeed *FixtureScalar `json:"shutter_speed,omitempty"`
	FocalLength  *FixtureScalar `json:"focal_length,omitempty"`
	ExposureEV   *FixtureScalar `json:"exposure_ev,omitempty"`

	Brightness *FixtureScalar `json:"brightness,omitempty"`
	ColorTemp  *FixtureScalar `json:"color_temp,omitempty"`
	Sharpness  *FixtureScalar `json:"sharpness,omitempty"`
	Noise      *FixtureScalar `json:"noise,omitempty"`

	DepthLayers     []FixtureDepthLayer `json:"depth_layers,omitempty"`
	DepthConfidence float64             `json:"depth_confidence,omitempty"`

	StyleCluster    string  `json:"style_cluster,omitempty"`
	StyleConfidence float64 `json:"style_confidence,omitempty"`
}

// FixtureKeypoint mirrors snapshot.RawKeypoint with its joint name.
type FixtureKeypoint struct {
	Joint      string  `json:"joint"`
	XPx        float64 `json:"x_px"`
	YPx        float64 `json:"y_px"`
	Confidence float64 `json:"confidence"`
}

// FixtureBox mirrors snapshot.RawBox.
type FixtureBox struct {
	X1Px       float64 `json:"x1_px"`
	Y1Px       float64 `json:"y1_px"`
	X2Px       float64 `json:"x2_px"`
	Y2Px       float64 `json:"y2_px"`
	Confidence float64 `json:"confidence"`
}

// FixtureScalar mirrors snapshot.RawScalar.
type FixtureScalar struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
}

// FixtureDepthLayer mirrors snapshot.DepthLayer.
type FixtureDepthLayer struct {
	Label string  `json:"label"`
	NearM float64 `json:"near_m"`
	FarM  float64 `json:"far_m"`
}

// #endregion fixture-bundle

// #region config-types

// ReplayConfig bundles the stage configs for a replay run.
type ReplayConfig struct {
	Intake  snapshot.IntakeConfig
	Gap     gap.Config
	Rules   rules.Config
	Ranker  ranker.Config
	Session session.Config
	Sched   sched.Config
}

// DefaultReplayConfig returns defaults for every stage.
func DefaultReplayConfig() ReplayConfig {
	return ReplayConfig{
		Intake:  snapshot.DefaultIntakeConfig(),
		Gap:     gap.DefaultConfig(),
		Rules:   rules.DefaultConfig(),
		Ranker:  ranker.DefaultConfig(),
		Session: session.DefaultConfig(),
		Sched:   sched.DefaultConfig(),
	}
}

// #endregion config-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToBundle converts a FixtureBundle to a domain Bundle.
func (fb *FixtureBundle) ToBundle() snapshot.Bundle {
	b := snapshot.Bundle{
		ImageW:          fb.ImageW,
		ImageH:          fb.ImageH,
		DepthConfidence: fb.DepthConfidence,
		StyleCluster:    fb.StyleCluster,
		StyleConfidence: fb.StyleConfidence,
	}
	if len(fb.Keypoints) > 0 {
		b.Keypoints = make(map[snapshot.JointName]snapshot.RawKeypoint, len(fb.Keypoints))
		for _, kp := range fb.Keypoints {
			b.Keypoints[snapshot.JointName(kp.Joint)] = snapshot.RawKeypoint{
				XPx:        kp.XPx,
				YPx:        kp.YPx,
				Confidence: kp.Confidence,
			}
		}
	}
	if fb.SubjectBox != nil {
		b.SubjectBox = &snapshot.RawBox{
			X1Px:       fb.SubjectBox.X1Px,
			Y1Px:       fb.SubjectBox.Y1Px,
			X2Px:       fb.SubjectBox.X2Px,
			Y2Px:       fb.SubjectBox.Y2Px,
			Confidence: fb.SubjectBox.Confidence,
		}
	}
	b.HorizonTilt = toScalar(fb.HorizonTilt)
	b.ISO = toScalar(fb.ISO)
	b.Aperture = toScalar(fb.Aperture)
	b.ShutterSpeed = toScalar(fb.ShutterSpeed)
	b.FocalLength = toScalar(fb.FocalLength)
	b.ExposureEV = toScalar(fb.ExposureEV)
	b.Brightness = toScalar(fb.Brightness)
	b.ColorTemp = toScalar(fb.ColorTemp)
	b.Sharpness = toScalar(fb.Sharpness)
	b.Noise = toScalar(fb.Noise)
	for _, l := range fb.DepthLayers {
		b.DepthLayers = append(b.DepthLayers, snapshot.DepthLayer{
			Label: l.Label,
			NearM: l.NearM,
			FarM:  l.FarM,
		})
	}
	return b
}

func toScalar(s *FixtureScalar) *snapshot.RawScalar {
	if s == nil {
		return nil
	}
	return &snapshot.RawScalar{Value: s.Value, Confidence: s.Confidence}
}

// ToReplayConfig converts a FixtureConfig to a domain ReplayConfig,
// filling omitted values with defaults.
func (fc *FixtureConfig) ToReplayConfig() ReplayConfig {
	cfg := DefaultReplayConfig()
	if fc.ConfidenceFloor != nil {
		cfg.Gap.ConfidenceFloor = *fc.ConfidenceFloor
	}
	if fc.TopK != nil {
		cfg.Ranker.TopK = *fc.TopK
	}
	if fc.ResolveStreak != nil {
		cfg.Session.ResolveStreak = *fc.ResolveStreak
	}
	if fc.StyleThreshold != nil {
		cfg.Intake.StyleThreshold = *fc.StyleThreshold
	}
	if fc.FrameBudgetMS != nil {
		cfg.Sched.FrameBudget = time.Duration(*fc.FrameBudgetMS * float64(time.Millisecond))
	}
	if fc.WindowSize != nil {
		cfg.Sched.WindowSize = *fc.WindowSize
	}
	if fc.LowerRatio != nil {
		cfg.Sched.LowerRatio = *fc.LowerRatio
	}
	if fc.UpperRatio != nil {
		cfg.Sched.UpperRatio = *fc.UpperRatio
	}
	return cfg
}

// #endregion fixture-loader
