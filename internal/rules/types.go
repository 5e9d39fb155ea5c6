package rules

// #region imports
import (
	"strings"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #endregion imports

// #region category

// Category is the feedback category ladder, most urgent first.
type Category string

const (
	CategoryCritical    Category = "critical"
	CategoryPose        Category = "pose"
	CategoryCamera      Category = "camera"
	CategoryComposition Category = "composition"
	CategoryLighting    Category = "lighting"
	CategoryQuality     Category = "quality"
	CategoryInfo        Category = "info"
)

// Categories lists every category in precedence order.
var Categories = []Category{
	CategoryCritical,
	CategoryPose,
	CategoryCamera,
	CategoryComposition,
	CategoryLighting,
	CategoryQuality,
	CategoryInfo,
}

var categoryRank = map[Category]int{
	CategoryCritical:    0,
	CategoryPose:        1,
	CategoryCamera:      2,
	CategoryComposition: 3,
	CategoryLighting:    4,
	CategoryQuality:     5,
	CategoryInfo:        6,
}

// Rank returns the category's precedence position (lower = more urgent).
// Unknown categories rank after Info.
func Rank(c Category) int {
	if r, ok := categoryRank[c]; ok {
		return r
	}
	return len(categoryRank)
}

// Known reports whether c is one of the defined categories.
func (c Category) Known() bool {
	_, ok := categoryRank[c]
	return ok
}

// #endregion category

// #region actor-direction

// Actor names who performs a corrective action.
type Actor string

const (
	ActorSubject Actor = "subject"
	ActorCamera  Actor = "camera"
)

// Direction vocabulary for Action payloads. The presentation layer maps
// these to localized text; the core never renders strings.
const (
	DirLeft       = "left"
	DirRight      = "right"
	DirUp         = "up"
	DirDown       = "down"
	DirLevel      = "level"
	DirIncrease   = "increase"
	DirDecrease   = "decrease"
	DirMoveBack   = "move_back"
	DirMoveCloser = "move_closer"
	DirZoomIn     = "zoom_in"
	DirZoomOut    = "zoom_out"
	DirRetake     = "retake"
	DirStabilize  = "stabilize"
	DirNone       = ""
)

// #endregion actor-direction

// #region reason-codes

// Reason codes attached to Actions for the presentation layer.
const (
	ReasonNoSubject     = "no_subject_detected"
	ReasonSevereBlur    = "severe_blur"
	ReasonShoulderTilt  = "shoulder_tilt"
	ReasonTorsoLean     = "torso_lean"
	ReasonJointOffset   = "joint_offset"
	ReasonISO           = "iso_deviation"
	ReasonAperture      = "aperture_deviation"
	ReasonShutter       = "shutter_deviation"
	ReasonFocalLength   = "focal_length_deviation"
	ReasonSubjectOffset = "subject_offset"
	ReasonSubjectSize   = "subject_size"
	ReasonHorizonTilt   = "horizon_tilt"
	ReasonDepthLayout   = "depth_layout"
	ReasonBrightness    = "brightness_deviation"
	ReasonColorTemp     = "color_temp_deviation"
	ReasonExposure      = "exposure_deviation"
	ReasonSharpness     = "sharpness_deviation"
	ReasonNoise         = "noise_deviation"
	ReasonStyleMismatch = "style_mismatch"
)

// #endregion reason-codes

// #region action

// Action is a structured, ranked corrective instruction. It carries no
// rendered text; formatting and localization happen downstream.
type Action struct {
	Category   Category `json:"category"`
	Priority   int      `json:"priority"` // rule priority, lower = more urgent
	Actor      Actor    `json:"actor"`
	Direction  string   `json:"direction"`
	Magnitude  float64  `json:"magnitude"`
	Unit       string   `json:"unit"`
	ReasonCode string   `json:"reason_code"`
	Detail     string   `json:"detail,omitempty"` // optional qualifier, e.g. the joint name
}

// #endregion action

// #region rule-interface

// History is the read-only session view rules may consult. Implemented
// by the session tracker; rules never mutate it.
type History interface {
	Reference() *snapshot.Snapshot
	Live() *snapshot.Snapshot
	Resolved(Category) bool
}

// Rule is a pure function of the gap set and session history. Rules are
// registered once at session start; the set never changes mid-session,
// which keeps ranking reproducible for identical inputs.
type Rule interface {
	Name() string
	Category() Category
	Priority() int
	Evaluate(gaps []gap.Gap, hist History) *Action
}

// #endregion rule-interface

// #region dimension-category

// DimensionCategory maps a gap dimension to the feedback category whose
// tolerance governs it.
func DimensionCategory(dim string) Category {
	switch {
	case dim == gap.DimShoulderTilt, dim == gap.DimTorsoLean,
		strings.HasPrefix(dim, gap.DimJointPrefix):
		return CategoryPose
	case dim == gap.DimISO, dim == gap.DimAperture,
		dim == gap.DimShutterSpeed, dim == gap.DimFocalLength:
		return CategoryCamera
	case dim == gap.DimSubjectOffsetX, dim == gap.DimSubjectOffsetY,
		dim == gap.DimSubjectSize, dim == gap.DimHorizonTilt,
		strings.HasPrefix(dim, gap.DimDepthPrefix):
		return CategoryComposition
	case dim == gap.DimBrightness, dim == gap.DimColorTemp, dim == gap.DimExposureEV:
		return CategoryLighting
	case dim == gap.DimSharpness, dim == gap.DimNoise:
		return CategoryQuality
	default:
		return CategoryInfo
	}
}

// #endregion dimension-category
