package rules

// #region imports
import (
	"math"
	"strings"

	"github.com/tryangle/coach-controller/internal/gap"
)

// #endregion imports

// #region config

// Config carries every built-in rule threshold. Nothing here is compiled
// in; the session configuration supplies the values.
type Config struct {
	// Critical
	CriticalSharpnessFloor float64 `yaml:"critical_sharpness_floor"` // live sharpness below this forces a retake

	// Pose
	PoseAngleThresholdDeg float64 `yaml:"pose_angle_threshold_deg"`
	JointOffsetThreshold  float64 `yaml:"joint_offset_threshold"` // normalized coordinates

	// Camera
	ISOTolerance        float64 `yaml:"iso_tolerance"`
	ApertureTolerance   float64 `yaml:"aperture_tolerance"` // f-stops
	ShutterToleranceSec float64 `yaml:"shutter_tolerance_sec"`
	FocalToleranceMM    float64 `yaml:"focal_tolerance_mm"`

	// Composition
	OffsetThreshold     float64 `yaml:"offset_threshold"` // normalized coordinates
	SizeRatioThreshold  float64 `yaml:"size_ratio_threshold"`
	TiltThresholdDeg    float64 `yaml:"tilt_threshold_deg"`
	DepthRatioThreshold float64 `yaml:"depth_ratio_threshold"`

	// Lighting
	BrightnessTolerance float64 `yaml:"brightness_tolerance"`
	ColorTempToleranceK float64 `yaml:"color_temp_tolerance_k"`
	EVTolerance         float64 `yaml:"ev_tolerance"`

	// Quality
	SharpnessTolerance float64 `yaml:"sharpness_tolerance"`
	NoiseTolerance     float64 `yaml:"noise_tolerance"`
}

// DefaultConfig returns the tolerances the reference deployment ships with.
func DefaultConfig() Config {
	return Config{
		CriticalSharpnessFloor: 0.15,
		PoseAngleThresholdDeg:  10,
		JointOffsetThreshold:   0.05,
		ISOTolerance:           200,
		ApertureTolerance:      0.7,
		ShutterToleranceSec:    0.004,
		FocalToleranceMM:       10,
		OffsetThreshold:        0.05,
		SizeRatioThreshold:     0.10,
		TiltThresholdDeg:       5,
		DepthRatioThreshold:    0.25,
		BrightnessTolerance:    0.15,
		ColorTempToleranceK:    800,
		EVTolerance:            0.7,
		SharpnessTolerance:     0.2,
		NoiseTolerance:         0.25,
	}
}

// Builtin returns the complete built-in rule set for the given config,
// in category precedence order.
func Builtin(cfg Config) []Rule {
	return []Rule{
		&criticalRule{cfg: cfg},
		&poseRule{cfg: cfg},
		&cameraRule{cfg: cfg},
		&compositionRule{cfg: cfg},
		&lightingRule{cfg: cfg},
		&qualityRule{cfg: cfg},
		&styleInfoRule{},
	}
}

// #endregion config

// #region helpers

func findGap(gaps []gap.Gap, dim string) (gap.Gap, bool) {
	for _, g := range gaps {
		if g.Dimension == dim {
			return g, true
		}
	}
	return gap.Gap{}, false
}

// exceedance is how far a gap sits beyond its threshold, normalized so
// different units compete fairly when a rule picks its worst gap.
func exceedance(g gap.Gap, threshold float64) float64 {
	if threshold <= 0 {
		return 0
	}
	return g.Severity() / threshold
}

func horizontalDir(magnitude float64) string {
	// Positive offset means the live subject sits right of the reference,
	// so the correction points left.
	if magnitude > 0 {
		return DirLeft
	}
	return DirRight
}

func verticalDir(magnitude float64) string {
	// Image y grows downward.
	if magnitude > 0 {
		return DirUp
	}
	return DirDown
}

func scalarDir(magnitude float64) string {
	if magnitude > 0 {
		return DirDecrease
	}
	return DirIncrease
}

// #endregion helpers

// #region critical-rule

// criticalRule fires a single retake action when the frame is unusable:
// no subject detected, or sharpness below the critical floor. It reads
// the live snapshot directly since absence of data produces no gaps.
type criticalRule struct {
	cfg Config
}

func (r *criticalRule) Name() string       { return "critical" }
func (r *criticalRule) Category() Category { return CategoryCritical }
func (r *criticalRule) Priority() int      { return 0 }

func (r *criticalRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	live := hist.Live()
	if live == nil {
		return nil
	}
	if !live.SubjectDetected {
		return &Action{
			Category:   CategoryCritical,
			Priority:   r.Priority(),
			Actor:      ActorCamera,
			Direction:  DirRetake,
			ReasonCode: ReasonNoSubject,
		}
	}
	if live.Quality != nil && live.Quality.Sharpness.Valid &&
		live.Quality.Sharpness.Value < r.cfg.CriticalSharpnessFloor {
		return &Action{
			Category:   CategoryCritical,
			Priority:   r.Priority(),
			Actor:      ActorCamera,
			Direction:  DirRetake,
			Magnitude:  live.Quality.Sharpness.Value,
			Unit:       gap.UnitScore,
			ReasonCode: ReasonSevereBlur,
		}
	}
	return nil
}

// #endregion critical-rule

// #region pose-rule

// poseRule picks the worst pose deviation: shoulder tilt, torso lean, or
// a single joint displacement.
type poseRule struct {
	cfg Config
}

func (r *poseRule) Name() string       { return "pose" }
func (r *poseRule) Category() Category { return CategoryPose }
func (r *poseRule) Priority() int      { return 1 }

func (r *poseRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	var best *Action
	var bestScore float64

	consider := func(a Action, score float64) {
		if score > 1 && score > bestScore {
			best, bestScore = &a, score
		}
	}

	if g, ok := findGap(gaps, gap.DimShoulderTilt); ok {
		consider(Action{
			Category:   CategoryPose,
			Priority:   r.Priority(),
			Actor:      ActorSubject,
			Direction:  DirLevel,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitDegree,
			ReasonCode: ReasonShoulderTilt,
		}, exceedance(g, r.cfg.PoseAngleThresholdDeg))
	}
	if g, ok := findGap(gaps, gap.DimTorsoLean); ok {
		dir := DirLeft
		if g.Magnitude > 0 {
			dir = DirRight
		}
		consider(Action{
			Category:   CategoryPose,
			Priority:   r.Priority(),
			Actor:      ActorSubject,
			Direction:  dir,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitDegree,
			ReasonCode: ReasonTorsoLean,
		}, exceedance(g, r.cfg.PoseAngleThresholdDeg))
	}

	for _, g := range gaps {
		if !strings.HasPrefix(g.Dimension, gap.DimJointPrefix) {
			continue
		}
		joint := strings.TrimPrefix(g.Dimension, gap.DimJointPrefix)
		dir := horizontalDir(g.Magnitude)
		if strings.HasSuffix(joint, "_y") {
			dir = verticalDir(g.Magnitude)
		}
		joint = strings.TrimSuffix(strings.TrimSuffix(joint, "_y"), "_x")
		consider(Action{
			Category:   CategoryPose,
			Priority:   r.Priority(),
			Actor:      ActorSubject,
			Direction:  dir,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitNorm,
			ReasonCode: ReasonJointOffset,
			Detail:     joint,
		}, exceedance(g, r.cfg.JointOffsetThreshold))
	}

	return best
}

// #endregion pose-rule

// #region camera-rule

// cameraRule flags the capture setting furthest outside tolerance.
type cameraRule struct {
	cfg Config
}

func (r *cameraRule) Name() string       { return "camera" }
func (r *cameraRule) Category() Category { return CategoryCamera }
func (r *cameraRule) Priority() int      { return 2 }

func (r *cameraRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	checks := []struct {
		dim       string
		tolerance float64
		reason    string
	}{
		{gap.DimISO, r.cfg.ISOTolerance, ReasonISO},
		{gap.DimAperture, r.cfg.ApertureTolerance, ReasonAperture},
		{gap.DimShutterSpeed, r.cfg.ShutterToleranceSec, ReasonShutter},
		{gap.DimFocalLength, r.cfg.FocalToleranceMM, ReasonFocalLength},
	}

	var best *Action
	var bestScore float64
	for _, c := range checks {
		g, ok := findGap(gaps, c.dim)
		if !ok {
			continue
		}
		score := exceedance(g, c.tolerance)
		if score > 1 && score > bestScore {
			best = &Action{
				Category:   CategoryCamera,
				Priority:   r.Priority(),
				Actor:      ActorCamera,
				Direction:  scalarDir(g.Magnitude),
				Magnitude:  g.Severity(),
				Unit:       g.Unit,
				ReasonCode: c.reason,
			}
			bestScore = score
		}
	}
	return best
}

// #endregion camera-rule

// #region composition-rule

// compositionRule covers subject placement, framing size, horizon tilt
// and depth layout.
type compositionRule struct {
	cfg Config
}

func (r *compositionRule) Name() string       { return "composition" }
func (r *compositionRule) Category() Category { return CategoryComposition }
func (r *compositionRule) Priority() int      { return 3 }

func (r *compositionRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	var best *Action
	var bestScore float64

	consider := func(a Action, score float64) {
		if score > 1 && score > bestScore {
			best, bestScore = &a, score
		}
	}

	if g, ok := findGap(gaps, gap.DimSubjectOffsetX); ok {
		consider(Action{
			Category:   CategoryComposition,
			Priority:   r.Priority(),
			Actor:      ActorSubject,
			Direction:  horizontalDir(g.Magnitude),
			Magnitude:  g.Severity(),
			Unit:       gap.UnitNorm,
			ReasonCode: ReasonSubjectOffset,
			Detail:     "horizontal",
		}, exceedance(g, r.cfg.OffsetThreshold))
	}
	if g, ok := findGap(gaps, gap.DimSubjectOffsetY); ok {
		consider(Action{
			Category:   CategoryComposition,
			Priority:   r.Priority(),
			Actor:      ActorSubject,
			Direction:  verticalDir(g.Magnitude),
			Magnitude:  g.Severity(),
			Unit:       gap.UnitNorm,
			ReasonCode: ReasonSubjectOffset,
			Detail:     "vertical",
		}, exceedance(g, r.cfg.OffsetThreshold))
	}
	if g, ok := findGap(gaps, gap.DimSubjectSize); ok {
		dir := DirMoveBack // live subject larger than reference
		if g.Magnitude < 0 {
			dir = DirMoveCloser
		}
		consider(Action{
			Category:   CategoryComposition,
			Priority:   r.Priority(),
			Actor:      ActorCamera,
			Direction:  dir,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitRatio,
			ReasonCode: ReasonSubjectSize,
		}, exceedance(g, r.cfg.SizeRatioThreshold))
	}
	if g, ok := findGap(gaps, gap.DimHorizonTilt); ok {
		consider(Action{
			Category:   CategoryComposition,
			Priority:   r.Priority(),
			Actor:      ActorCamera,
			Direction:  DirLevel,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitDegree,
			ReasonCode: ReasonHorizonTilt,
		}, exceedance(g, r.cfg.TiltThresholdDeg))
	}
	for _, g := range gaps {
		if !strings.HasPrefix(g.Dimension, gap.DimDepthPrefix) {
			continue
		}
		dir := DirZoomOut // live layer sits farther than reference
		if g.Magnitude < 0 {
			dir = DirZoomIn
		}
		consider(Action{
			Category:   CategoryComposition,
			Priority:   r.Priority(),
			Actor:      ActorCamera,
			Direction:  dir,
			Magnitude:  g.Severity(),
			Unit:       gap.UnitRatio,
			ReasonCode: ReasonDepthLayout,
			Detail:     strings.TrimPrefix(g.Dimension, gap.DimDepthPrefix),
		}, exceedance(g, r.cfg.DepthRatioThreshold))
	}

	return best
}

// #endregion composition-rule

// #region lighting-rule

type lightingRule struct {
	cfg Config
}

func (r *lightingRule) Name() string       { return "lighting" }
func (r *lightingRule) Category() Category { return CategoryLighting }
func (r *lightingRule) Priority() int      { return 4 }

func (r *lightingRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	checks := []struct {
		dim       string
		tolerance float64
		reason    string
	}{
		{gap.DimBrightness, r.cfg.BrightnessTolerance, ReasonBrightness},
		{gap.DimExposureEV, r.cfg.EVTolerance, ReasonExposure},
		{gap.DimColorTemp, r.cfg.ColorTempToleranceK, ReasonColorTemp},
	}

	var best *Action
	var bestScore float64
	for _, c := range checks {
		g, ok := findGap(gaps, c.dim)
		if !ok {
			continue
		}
		score := exceedance(g, c.tolerance)
		if score > 1 && score > bestScore {
			best = &Action{
				Category:   CategoryLighting,
				Priority:   r.Priority(),
				Actor:      ActorCamera,
				Direction:  scalarDir(g.Magnitude),
				Magnitude:  g.Severity(),
				Unit:       g.Unit,
				ReasonCode: c.reason,
			}
			bestScore = score
		}
	}
	return best
}

// #endregion lighting-rule

// #region quality-rule

type qualityRule struct {
	cfg Config
}

func (r *qualityRule) Name() string       { return "quality" }
func (r *qualityRule) Category() Category { return CategoryQuality }
func (r *qualityRule) Priority() int      { return 5 }

func (r *qualityRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	var best *Action
	var bestScore float64

	// Only a live frame sharper-deficit matters; a frame sharper than the
	// reference is not a defect.
	if g, ok := findGap(gaps, gap.DimSharpness); ok && g.Magnitude < 0 {
		score := exceedance(g, r.cfg.SharpnessTolerance)
		if score > 1 {
			best = &Action{
				Category:   CategoryQuality,
				Priority:   r.Priority(),
				Actor:      ActorCamera,
				Direction:  DirStabilize,
				Magnitude:  g.Severity(),
				Unit:       gap.UnitScore,
				ReasonCode: ReasonSharpness,
			}
			bestScore = score
		}
	}
	if g, ok := findGap(gaps, gap.DimNoise); ok && g.Magnitude > 0 {
		score := exceedance(g, r.cfg.NoiseTolerance)
		if score > 1 && score > bestScore {
			best = &Action{
				Category:   CategoryQuality,
				Priority:   r.Priority(),
				Actor:      ActorCamera,
				Direction:  DirDecrease,
				Magnitude:  g.Severity(),
				Unit:       gap.UnitScore,
				ReasonCode: ReasonNoise,
			}
			bestScore = score
		}
	}
	return best
}

// #endregion quality-rule

// #region style-info-rule

// styleInfoRule emits a non-actionable notice when both snapshots carry
// a resolved style tag and the clusters differ. An unresolved tag on
// either side yields nothing; style resolution is never assumed.
type styleInfoRule struct{}

func (r *styleInfoRule) Name() string       { return "style_info" }
func (r *styleInfoRule) Category() Category { return CategoryInfo }
func (r *styleInfoRule) Priority() int      { return 6 }

func (r *styleInfoRule) Evaluate(gaps []gap.Gap, hist History) *Action {
	ref, live := hist.Reference(), hist.Live()
	if ref == nil || live == nil {
		return nil
	}
	if !ref.Style.Resolved || !live.Style.Resolved {
		return nil
	}
	if ref.Style.Cluster == live.Style.Cluster {
		return nil
	}
	return &Action{
		Category:   CategoryInfo,
		Priority:   r.Priority(),
		Actor:      ActorCamera,
		Direction:  DirNone,
		Magnitude:  math.Min(ref.Style.Confidence, live.Style.Confidence),
		Unit:       gap.UnitScore,
		ReasonCode: ReasonStyleMismatch,
		Detail:     live.Style.Cluster,
	}
}

// #endregion style-info-rule
