package snapshot

// #region imports
import (
	"time"
)

// #endregion imports

// #region measure

// Measure is a single scalar measurement with an attached confidence.
// Valid is false when the analyzer did not produce the field at all.
type Measure struct {
	Value      float64
	Confidence float64
	Valid      bool
}

// #endregion measure

// #region joints

// JointName identifies a named pose keypoint.
type JointName string

const (
	JointNose          JointName = "nose"
	JointLeftShoulder  JointName = "left_shoulder"
	JointRightShoulder JointName = "right_shoulder"
	JointLeftElbow     JointName = "left_elbow"
	JointRightElbow    JointName = "right_elbow"
	JointLeftWrist     JointName = "left_wrist"
	JointRightWrist    JointName = "right_wrist"
	JointLeftHip       JointName = "left_hip"
	JointRightHip      JointName = "right_hip"
	JointLeftKnee      JointName = "left_knee"
	JointRightKnee     JointName = "right_knee"
	JointLeftAnkle     JointName = "left_ankle"
	JointRightAnkle    JointName = "right_ankle"
)

// Keypoint is a 2D joint position in normalized [0,1] image coordinates.
type Keypoint struct {
	X          float64
	Y          float64
	Confidence float64
}

// #endregion joints

// #region pose

// Pose holds the subject's keypoints plus angles derived from them.
// ShoulderTilt and TorsoLean carry the min confidence of their source joints.
type Pose struct {
	Joints       map[JointName]Keypoint
	ShoulderTilt Measure // degrees, positive = right shoulder lower
	TorsoLean    Measure // degrees from vertical
}

// #endregion pose

// #region composition

// Rect is a bounding box in normalized [0,1] image coordinates.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// Width returns the normalized box width.
func (r Rect) Width() float64 { return r.X2 - r.X1 }

// Height returns the normalized box height.
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// CenterX returns the normalized horizontal center.
func (r Rect) CenterX() float64 { return (r.X1 + r.X2) / 2 }

// CenterY returns the normalized vertical center.
func (r Rect) CenterY() float64 { return (r.Y1 + r.Y2) / 2 }

// Composition describes subject placement within the frame.
// Margins are derived from the bounding box and share its confidence.
type Composition struct {
	Valid        bool
	Confidence   float64
	SubjectBox   Rect
	Margins      [4]float64 // top, right, bottom, left
	SubjectRatio float64    // box area fraction of the frame
	Tilt         Measure    // horizon tilt, degrees
}

// #endregion composition

// #region camera

// CameraSettings holds EXIF-level capture parameters.
type CameraSettings struct {
	ISO          Measure
	Aperture     Measure // f-number
	ShutterSpeed Measure // seconds
	FocalLength  Measure // millimeters
	ExposureEV   Measure
}

// #endregion camera

// #region lighting-quality

// Lighting holds scene light measurements.
type Lighting struct {
	Brightness Measure // mean luminance, 0..1
	ColorTemp  Measure // kelvin
}

// Quality holds image quality scores.
// Sharpness is 0..1 where low values mean blur.
type Quality struct {
	Sharpness Measure
	Noise     Measure
}

// #endregion lighting-quality

// #region depth

// DepthLayer is one depth band with its dominant occupant label.
type DepthLayer struct {
	Label string  `json:"label"`  // e.g. "subject", "background"
	NearM float64 `json:"near_m"` // meters
	FarM  float64 `json:"far_m"`
}

// Mid returns the layer's center distance, used for layer matching.
func (l DepthLayer) Mid() float64 { return (l.NearM + l.FarM) / 2 }

// Depth is the ordered near-to-far layer decomposition of the scene.
type Depth struct {
	Valid      bool
	Confidence float64
	Layers     []DepthLayer
}

// #endregion depth

// #region style

// StyleTag is the embedding-derived style cluster for the image.
// Resolved is false when the cluster confidence fell below the intake
// threshold; consumers must not assume a tag always resolves.
type StyleTag struct {
	Cluster    string
	Confidence float64
	Resolved   bool
}

// #endregion style

// #region snapshot

// Snapshot is one point-in-time structured measurement of an image,
// either the session reference or a live frame. Sub-records are nil when
// the analyzer produced nothing for them. A Snapshot is never mutated
// after intake, so it may be read concurrently without synchronization.
type Snapshot struct {
	Seq        uint64
	CapturedAt time.Time

	Pose        *Pose
	Composition *Composition
	Camera      *CameraSettings
	Lighting    *Lighting
	Quality     *Quality
	Depth       *Depth
	Style       StyleTag

	// SubjectDetected is false when no subject box or pose was found.
	SubjectDetected bool
}

// #endregion snapshot
