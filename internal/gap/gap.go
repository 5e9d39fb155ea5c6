// Package gap computes per-dimension deltas between a reference snapshot
// and a live snapshot. Everything here is pure: identical inputs always
// produce the identical gap set, in a fixed dimension order.
package gap

// #region imports
import (
	"math"

	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #endregion imports

// #region dimensions

// Unit names for gap magnitudes.
const (
	UnitDegree = "degree"
	UnitNorm   = "norm" // normalized image coordinates
	UnitRatio  = "ratio"
	UnitISO    = "iso"
	UnitFStop  = "fstop"
	UnitSecond = "second"
	UnitMM     = "mm"
	UnitEV     = "ev"
	UnitKelvin = "kelvin"
	UnitScore  = "score"
)

// Dimension names. Joint dimensions are "joint_<name>_x" / "joint_<name>_y".
const (
	DimShoulderTilt   = "shoulder_tilt"
	DimTorsoLean      = "torso_lean"
	DimHorizonTilt    = "horizon_tilt"
	DimSubjectOffsetX = "subject_offset_x"
	DimSubjectOffsetY = "subject_offset_y"
	DimSubjectSize    = "subject_size"
	DimISO            = "iso"
	DimAperture       = "aperture"
	DimShutterSpeed   = "shutter_speed"
	DimFocalLength    = "focal_length"
	DimExposureEV     = "exposure_ev"
	DimBrightness     = "brightness"
	DimColorTemp      = "color_temp"
	DimSharpness      = "sharpness"
	DimNoise          = "noise"
	DimDepthPrefix    = "depth_" // + layer label
	DimJointPrefix    = "joint_" // + joint name + _x/_y
)

// jointOrder fixes the emission order of per-joint dimensions.
var jointOrder = []snapshot.JointName{
	snapshot.JointNose,
	snapshot.JointLeftShoulder,
	snapshot.JointRightShoulder,
	snapshot.JointLeftElbow,
	snapshot.JointRightElbow,
	snapshot.JointLeftWrist,
	snapshot.JointRightWrist,
	snapshot.JointLeftHip,
	snapshot.JointRightHip,
	snapshot.JointLeftKnee,
	snapshot.JointRightKnee,
	snapshot.JointLeftAnkle,
	snapshot.JointRightAnkle,
}

// #endregion dimensions

// #region gap-type

// Gap is one signed deviation between the reference and a live frame.
// Magnitude is live minus reference (after metric-specific wrapping), so
// swapping the two snapshots negates it. Confidence is the min of the
// two contributing measurement confidences.
type Gap struct {
	Dimension  string
	Magnitude  float64
	Unit       string
	Confidence float64
}

// Severity is the absolute magnitude, used for ranking.
func (g Gap) Severity() float64 { return math.Abs(g.Magnitude) }

// #endregion gap-type

// #region config

// Config controls gap computation.
type Config struct {
	// ConfidenceFloor excludes a dimension when either side's measurement
	// confidence is below it. Excluded dimensions produce no Gap at all,
	// never a zero-magnitude placeholder.
	ConfidenceFloor float64
}

// DefaultConfig returns the standard gap engine settings.
func DefaultConfig() Config {
	return Config{ConfidenceFloor: 0.15}
}

// #endregion config

// #region compute

// Compute returns the gap set for a reference/live snapshot pair.
// Dimensions where either side lacks data, or where either confidence is
// below the floor, are omitted.
func Compute(ref, live *snapshot.Snapshot, cfg Config) []Gap {
	if ref == nil || live == nil {
		return nil
	}

	var gaps []Gap
	add := func(g Gap, ok bool) {
		if ok {
			gaps = append(gaps, g)
		}
	}

	// Pose angles and joints.
	if ref.Pose != nil && live.Pose != nil {
		add(angularGap(DimShoulderTilt, ref.Pose.ShoulderTilt, live.Pose.ShoulderTilt, cfg))
		add(angularGap(DimTorsoLean, ref.Pose.TorsoLean, live.Pose.TorsoLean, cfg))
		for _, name := range jointOrder {
			rj, okR := ref.Pose.Joints[name]
			lj, okL := live.Pose.Joints[name]
			if !okR || !okL {
				continue
			}
			conf := math.Min(rj.Confidence, lj.Confidence)
			if conf < cfg.ConfidenceFloor {
				continue
			}
			gaps = append(gaps,
				Gap{Dimension: DimJointPrefix + string(name) + "_x", Magnitude: lj.X - rj.X, Unit: UnitNorm, Confidence: conf},
				Gap{Dimension: DimJointPrefix + string(name) + "_y", Magnitude: lj.Y - rj.Y, Unit: UnitNorm, Confidence: conf},
			)
		}
	}

	// Composition.
	if ref.Composition != nil && live.Composition != nil {
		rc, lc := ref.Composition, live.Composition
		if rc.Valid && lc.Valid {
			conf := math.Min(rc.Confidence, lc.Confidence)
			if conf >= cfg.ConfidenceFloor {
				gaps = append(gaps,
					Gap{Dimension: DimSubjectOffsetX, Magnitude: lc.SubjectBox.CenterX() - rc.SubjectBox.CenterX(), Unit: UnitNorm, Confidence: conf},
					Gap{Dimension: DimSubjectOffsetY, Magnitude: lc.SubjectBox.CenterY() - rc.SubjectBox.CenterY(), Unit: UnitNorm, Confidence: conf},
					Gap{Dimension: DimSubjectSize, Magnitude: lc.SubjectRatio - rc.SubjectRatio, Unit: UnitRatio, Confidence: conf},
				)
			}
		}
		add(angularGap(DimHorizonTilt, rc.Tilt, lc.Tilt, cfg))
	}

	// Camera settings.
	if ref.Camera != nil && live.Camera != nil {
		add(scalarGap(DimISO, UnitISO, ref.Camera.ISO, live.Camera.ISO, cfg))
		add(scalarGap(DimAperture, UnitFStop, ref.Camera.Aperture, live.Camera.Aperture, cfg))
		add(scalarGap(DimShutterSpeed, UnitSecond, ref.Camera.ShutterSpeed, live.Camera.ShutterSpeed, cfg))
		add(scalarGap(DimFocalLength, UnitMM, ref.Camera.FocalLength, live.Camera.FocalLength, cfg))
		add(scalarGap(DimExposureEV, UnitEV, ref.Camera.ExposureEV, live.Camera.ExposureEV, cfg))
	}

	// Lighting.
	if ref.Lighting != nil && live.Lighting != nil {
		add(scalarGap(DimBrightness, UnitRatio, ref.Lighting.Brightness, live.Lighting.Brightness, cfg))
		add(scalarGap(DimColorTemp, UnitKelvin, ref.Lighting.ColorTemp, live.Lighting.ColorTemp, cfg))
	}

	// Quality.
	if ref.Quality != nil && live.Quality != nil {
		add(scalarGap(DimSharpness, UnitScore, ref.Quality.Sharpness, live.Quality.Sharpness, cfg))
		add(scalarGap(DimNoise, UnitScore, ref.Quality.Noise, live.Quality.Noise, cfg))
	}

	// Depth layers, matched by nearest center distance.
	gaps = append(gaps, depthGaps(ref.Depth, live.Depth, cfg)...)

	return gaps
}

// #endregion compute

// #region metrics

// WrapAngle folds a degree difference into (-180, 180].
func WrapAngle(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func angularGap(dim string, ref, live snapshot.Measure, cfg Config) (Gap, bool) {
	if !ref.Valid || !live.Valid {
		return Gap{}, false
	}
	conf := math.Min(ref.Confidence, live.Confidence)
	if conf < cfg.ConfidenceFloor {
		return Gap{}, false
	}
	return Gap{
		Dimension:  dim,
		Magnitude:  WrapAngle(live.Value - ref.Value),
		Unit:       UnitDegree,
		Confidence: conf,
	}, true
}

func scalarGap(dim, unit string, ref, live snapshot.Measure, cfg Config) (Gap, bool) {
	if !ref.Valid || !live.Valid {
		return Gap{}, false
	}
	conf := math.Min(ref.Confidence, live.Confidence)
	if conf < cfg.ConfidenceFloor {
		return Gap{}, false
	}
	return Gap{
		Dimension:  dim,
		Magnitude:  live.Value - ref.Value,
		Unit:       unit,
		Confidence: conf,
	}, true
}

// depthGaps compares depth layers by distance-ratio difference. Each
// reference layer is matched to the unused live layer whose center
// distance is nearest; unmatched layers on either side produce no gap.
func depthGaps(ref, live *snapshot.Depth, cfg Config) []Gap {
	if ref == nil || live == nil || !ref.Valid || !live.Valid {
		return nil
	}
	conf := math.Min(ref.Confidence, live.Confidence)
	if conf < cfg.ConfidenceFloor {
		return nil
	}

	used := make([]bool, len(live.Layers))
	var gaps []Gap
	for _, rl := range ref.Layers {
		best := -1
		bestDist := math.Inf(1)
		for i, ll := range live.Layers {
			if used[i] {
				continue
			}
			d := math.Abs(ll.Mid() - rl.Mid())
			if d < bestDist {
				best, bestDist = i, d
			}
		}
		if best < 0 {
			break
		}
		used[best] = true

		refMid := rl.Mid()
		if refMid == 0 {
			continue
		}
		gaps = append(gaps, Gap{
			Dimension:  DimDepthPrefix + rl.Label,
			Magnitude:  (live.Layers[best].Mid() - refMid) / refMid,
			Unit:       UnitRatio,
			Confidence: conf,
		})
	}
	return gaps
}

// #endregion metrics
