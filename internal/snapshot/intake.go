package snapshot

// #region imports
import (
	"math"
	"sort"
	"time"
)

// #endregion imports

// #region raw-types

// RawKeypoint is an analyzer keypoint in pixel coordinates.
type RawKeypoint struct {
	XPx        float64 `json:"x_px"`
	YPx        float64 `json:"y_px"`
	Confidence float64 `json:"confidence"`
}

// RawBox is an analyzer bounding box in pixel coordinates.
type RawBox struct {
	X1Px       float64 `json:"x1_px"`
	Y1Px       float64 `json:"y1_px"`
	X2Px       float64 `json:"x2_px"`
	Y2Px       float64 `json:"y2_px"`
	Confidence float64 `json:"confidence"`
}

// RawScalar is a single analyzer scalar with confidence.
type RawScalar struct {
	Value      float64 `json:"value"`
	Confidence float64 `json:"confidence"`
}

// #endregion raw-types

// #region bundle

// Bundle is the heterogeneous per-frame measurement set produced by the
// external analyzers. Every field is individually optional; intake must
// produce a usable Snapshot from any subset.
type Bundle struct {
	ImageW int `json:"image_w"`
	ImageH int `json:"image_h"`

	Keypoints   map[JointName]RawKeypoint `json:"keypoints,omitempty"`
	SubjectBox  *RawBox                   `json:"subject_box,omitempty"`
	HorizonTilt *RawScalar                `json:"horizon_tilt,omitempty"` // degrees

	ISO          *RawScalar `json:"iso,omitempty"`
	Aperture     *RawScalar `json:"aperture,omitempty"`
	ShutterSpeed *RawScalar `json:"shutter_speed,omitempty"`
	FocalLength  *RawScalar `json:"focal_length,omitempty"`
	ExposureEV   *RawScalar `json:"exposure_ev,omitempty"`

	Brightness *RawScalar `json:"brightness,omitempty"`
	ColorTemp  *RawScalar `json:"color_temp,omitempty"`
	Sharpness  *RawScalar `json:"sharpness,omitempty"`
	Noise      *RawScalar `json:"noise,omitempty"`

	DepthLayers     []DepthLayer `json:"depth_layers,omitempty"`
	DepthConfidence float64      `json:"depth_confidence,omitempty"`

	StyleCluster    string  `json:"style_cluster,omitempty"`
	StyleConfidence float64 `json:"style_confidence,omitempty"`
}

// #endregion bundle

// #region intake

// IntakeConfig controls bundle normalization.
type IntakeConfig struct {
	// StyleThreshold is the minimum cluster confidence for a StyleTag to
	// resolve. Below it the tag is kept but marked unresolved.
	StyleThreshold float64
}

// DefaultIntakeConfig returns the standard intake settings.
func DefaultIntakeConfig() IntakeConfig {
	return IntakeConfig{StyleThreshold: 0.3}
}

// Intake normalizes analyzer bundles into immutable Snapshots.
type Intake struct {
	config IntakeConfig
}

// NewIntake creates an Intake with the given configuration.
func NewIntake(config IntakeConfig) *Intake {
	return &Intake{config: config}
}

// #endregion intake

// #region normalize

// Normalize converts one analyzer bundle into a Snapshot. Pixel
// coordinates are scaled to [0,1], confidences clamped, and derived
// fields (margins, subject ratio, shoulder tilt, torso lean) computed.
// Absent bundle fields yield nil sub-records, never zero placeholders.
func (in *Intake) Normalize(b Bundle, seq uint64, capturedAt time.Time) Snapshot {
	snap := Snapshot{
		Seq:        seq,
		CapturedAt: capturedAt,
	}

	w, h := float64(b.ImageW), float64(b.ImageH)
	if w <= 0 {
		w = 1 // coordinates already normalized
	}
	if h <= 0 {
		h = 1
	}

	snap.Pose = normalizePose(b, w, h)
	snap.Composition = normalizeComposition(b, w, h)
	snap.Camera = normalizeCamera(b)
	snap.Lighting = normalizeLighting(b)
	snap.Quality = normalizeQuality(b)
	snap.Depth = normalizeDepth(b)

	if b.StyleCluster != "" {
		conf := clamp01(b.StyleConfidence)
		snap.Style = StyleTag{
			Cluster:    b.StyleCluster,
			Confidence: conf,
			Resolved:   conf >= in.config.StyleThreshold,
		}
	}

	snap.SubjectDetected = snap.Composition != nil ||
		(snap.Pose != nil && len(snap.Pose.Joints) > 0)

	return snap
}

// #endregion normalize

// #region pose-normalize

func normalizePose(b Bundle, w, h float64) *Pose {
	if len(b.Keypoints) == 0 {
		return nil
	}

	joints := make(map[JointName]Keypoint, len(b.Keypoints))
	for name, kp := range b.Keypoints {
		joints[name] = Keypoint{
			X:          kp.XPx / w,
			Y:          kp.YPx / h,
			Confidence: clamp01(kp.Confidence),
		}
	}

	pose := &Pose{Joints: joints}
	pose.ShoulderTilt = shoulderTilt(joints)
	pose.TorsoLean = torsoLean(joints)
	return pose
}

// shoulderTilt derives the shoulder line angle in degrees. Positive
// means the right shoulder sits lower in the frame (image y grows down).
func shoulderTilt(joints map[JointName]Keypoint) Measure {
	l, okL := joints[JointLeftShoulder]
	r, okR := joints[JointRightShoulder]
	if !okL || !okR {
		return Measure{}
	}
	deg := math.Atan2(r.Y-l.Y, r.X-l.X) * 180 / math.Pi
	// The shoulder line of an upright subject runs horizontal; fold the
	// atan2 result so a level line reads 0 regardless of left/right order.
	if deg > 90 {
		deg -= 180
	} else if deg < -90 {
		deg += 180
	}
	return Measure{
		Value:      deg,
		Confidence: math.Min(l.Confidence, r.Confidence),
		Valid:      true,
	}
}

// torsoLean derives the shoulder-midpoint to hip-midpoint angle from
// vertical, in degrees.
func torsoLean(joints map[JointName]Keypoint) Measure {
	ls, okLS := joints[JointLeftShoulder]
	rs, okRS := joints[JointRightShoulder]
	lh, okLH := joints[JointLeftHip]
	rh, okRH := joints[JointRightHip]
	if !okLS || !okRS || !okLH || !okRH {
		return Measure{}
	}
	shoulderMidX, shoulderMidY := (ls.X+rs.X)/2, (ls.Y+rs.Y)/2
	hipMidX, hipMidY := (lh.X+rh.X)/2, (lh.Y+rh.Y)/2

	deg := math.Atan2(shoulderMidX-hipMidX, hipMidY-shoulderMidY) * 180 / math.Pi
	conf := math.Min(math.Min(ls.Confidence, rs.Confidence), math.Min(lh.Confidence, rh.Confidence))
	return Measure{Value: deg, Confidence: conf, Valid: true}
}

// #endregion pose-normalize

// #region composition-normalize

func normalizeComposition(b Bundle, w, h float64) *Composition {
	if b.SubjectBox == nil && b.HorizonTilt == nil {
		return nil
	}

	comp := &Composition{}
	if b.SubjectBox != nil {
		box := Rect{
			X1: clamp01(b.SubjectBox.X1Px / w),
			Y1: clamp01(b.SubjectBox.Y1Px / h),
			X2: clamp01(b.SubjectBox.X2Px / w),
			Y2: clamp01(b.SubjectBox.Y2Px / h),
		}
		comp.Valid = true
		comp.Confidence = clamp01(b.SubjectBox.Confidence)
		comp.SubjectBox = box
		comp.Margins = [4]float64{box.Y1, 1 - box.X2, 1 - box.Y2, box.X1}
		comp.SubjectRatio = box.Width() * box.Height()
	}
	if b.HorizonTilt != nil {
		comp.Tilt = Measure{
			Value:      b.HorizonTilt.Value,
			Confidence: clamp01(b.HorizonTilt.Confidence),
			Valid:      true,
		}
	}
	return comp
}

// #endregion composition-normalize

// #region scalar-normalize

func normalizeCamera(b Bundle) *CameraSettings {
	if b.ISO == nil && b.Aperture == nil && b.ShutterSpeed == nil &&
		b.FocalLength == nil && b.ExposureEV == nil {
		return nil
	}
	return &CameraSettings{
		ISO:          toMeasure(b.ISO),
		Aperture:     toMeasure(b.Aperture),
		ShutterSpeed: toMeasure(b.ShutterSpeed),
		FocalLength:  toMeasure(b.FocalLength),
		ExposureEV:   toMeasure(b.ExposureEV),
	}
}

func normalizeLighting(b Bundle) *Lighting {
	if b.Brightness == nil && b.ColorTemp == nil {
		return nil
	}
	return &Lighting{
		Brightness: toMeasure(b.Brightness),
		ColorTemp:  toMeasure(b.ColorTemp),
	}
}

func normalizeQuality(b Bundle) *Quality {
	if b.Sharpness == nil && b.Noise == nil {
		return nil
	}
	return &Quality{
		Sharpness: toMeasure(b.Sharpness),
		Noise:     toMeasure(b.Noise),
	}
}

func normalizeDepth(b Bundle) *Depth {
	if len(b.DepthLayers) == 0 {
		return nil
	}
	layers := make([]DepthLayer, len(b.DepthLayers))
	copy(layers, b.DepthLayers)
	sort.Slice(layers, func(i, j int) bool { return layers[i].NearM < layers[j].NearM })
	return &Depth{
		Valid:      true,
		Confidence: clamp01(b.DepthConfidence),
		Layers:     layers,
	}
}

// #endregion scalar-normalize

// #region helpers

func toMeasure(s *RawScalar) Measure {
	if s == nil {
		return Measure{}
	}
	return Measure{Value: s.Value, Confidence: clamp01(s.Confidence), Valid: true}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
