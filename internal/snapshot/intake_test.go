package snapshot

import (
	"math"
	"testing"
	"time"
)

// #region normalize-tests

func TestNormalize_PixelScaling(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	b := Bundle{
		ImageW: 1000,
		ImageH: 500,
		Keypoints: map[JointName]RawKeypoint{
			JointNose: {XPx: 500, YPx: 125, Confidence: 0.9},
		},
		SubjectBox: &RawBox{X1Px: 100, Y1Px: 50, X2Px: 900, Y2Px: 450, Confidence: 0.8},
	}

	snap := in.Normalize(b, 3, time.Now())
	if snap.Seq != 3 {
		t.Errorf("expected seq 3, got %d", snap.Seq)
	}

	kp := snap.Pose.Joints[JointNose]
	if math.Abs(kp.X-0.5) > 1e-9 || math.Abs(kp.Y-0.25) > 1e-9 {
		t.Errorf("nose not normalized: %+v", kp)
	}

	box := snap.Composition.SubjectBox
	if math.Abs(box.X1-0.1) > 1e-9 || math.Abs(box.Y2-0.9) > 1e-9 {
		t.Errorf("box not normalized: %+v", box)
	}
	if math.Abs(snap.Composition.SubjectRatio-0.8*0.8) > 1e-9 {
		t.Errorf("expected subject ratio 0.64, got %v", snap.Composition.SubjectRatio)
	}
	// Margins: top, right, bottom, left.
	wantMargins := [4]float64{0.1, 0.1, 0.1, 0.1}
	for i := range wantMargins {
		if math.Abs(snap.Composition.Margins[i]-wantMargins[i]) > 1e-9 {
			t.Errorf("margin %d: got %v, want %v", i, snap.Composition.Margins[i], wantMargins[i])
		}
	}
}

func TestNormalize_AbsentFieldsStayNil(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	snap := in.Normalize(Bundle{}, 1, time.Now())

	if snap.Pose != nil || snap.Composition != nil || snap.Camera != nil ||
		snap.Lighting != nil || snap.Quality != nil || snap.Depth != nil {
		t.Errorf("expected nil sub-records for empty bundle: %+v", snap)
	}
	if snap.SubjectDetected {
		t.Error("expected SubjectDetected=false for empty bundle")
	}
}

func TestNormalize_ConfidenceClamped(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	b := Bundle{
		ISO:       &RawScalar{Value: 400, Confidence: 1.7},
		Sharpness: &RawScalar{Value: 0.5, Confidence: -0.2},
	}
	snap := in.Normalize(b, 1, time.Now())
	if snap.Camera.ISO.Confidence != 1 {
		t.Errorf("expected ISO confidence clamped to 1, got %v", snap.Camera.ISO.Confidence)
	}
	if snap.Quality.Sharpness.Confidence != 0 {
		t.Errorf("expected sharpness confidence clamped to 0, got %v", snap.Quality.Sharpness.Confidence)
	}
}

// #endregion normalize-tests

// #region derived-tests

func TestNormalize_ShoulderTilt(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	b := Bundle{
		ImageW: 100,
		ImageH: 100,
		Keypoints: map[JointName]RawKeypoint{
			JointLeftShoulder:  {XPx: 30, YPx: 50, Confidence: 0.9},
			JointRightShoulder: {XPx: 70, YPx: 50, Confidence: 0.8},
		},
	}
	snap := in.Normalize(b, 1, time.Now())
	tilt := snap.Pose.ShoulderTilt
	if !tilt.Valid {
		t.Fatal("expected valid shoulder tilt")
	}
	if math.Abs(tilt.Value) > 1e-9 {
		t.Errorf("level shoulders should read 0 degrees, got %v", tilt.Value)
	}
	if math.Abs(tilt.Confidence-0.8) > 1e-9 {
		t.Errorf("expected min joint confidence 0.8, got %v", tilt.Confidence)
	}

	// Drop the right shoulder 40px: atan2(0.4, 0.4) = 45 degrees.
	b.Keypoints[JointRightShoulder] = RawKeypoint{XPx: 70, YPx: 90, Confidence: 0.8}
	snap = in.Normalize(b, 2, time.Now())
	if math.Abs(snap.Pose.ShoulderTilt.Value-45) > 1e-6 {
		t.Errorf("expected 45 degree tilt, got %v", snap.Pose.ShoulderTilt.Value)
	}
}

func TestNormalize_ShoulderTiltNeedsBothShoulders(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	b := Bundle{
		ImageW: 100,
		ImageH: 100,
		Keypoints: map[JointName]RawKeypoint{
			JointLeftShoulder: {XPx: 30, YPx: 50, Confidence: 0.9},
		},
	}
	snap := in.Normalize(b, 1, time.Now())
	if snap.Pose.ShoulderTilt.Valid {
		t.Error("expected invalid shoulder tilt with one shoulder")
	}
}

func TestNormalize_DepthLayersSorted(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())
	b := Bundle{
		DepthLayers: []DepthLayer{
			{Label: "background", NearM: 5, FarM: 9},
			{Label: "subject", NearM: 1, FarM: 2},
		},
		DepthConfidence: 0.7,
	}
	snap := in.Normalize(b, 1, time.Now())
	if snap.Depth.Layers[0].Label != "subject" {
		t.Errorf("expected layers sorted near-first, got %+v", snap.Depth.Layers)
	}
}

// #endregion derived-tests

// #region style-tests

func TestNormalize_StyleResolution(t *testing.T) {
	in := NewIntake(IntakeConfig{StyleThreshold: 0.3})

	snap := in.Normalize(Bundle{StyleCluster: "street_night", StyleConfidence: 0.5}, 1, time.Now())
	if !snap.Style.Resolved {
		t.Error("expected style resolved at 0.5 confidence")
	}

	snap = in.Normalize(Bundle{StyleCluster: "street_night", StyleConfidence: 0.2}, 2, time.Now())
	if snap.Style.Resolved {
		t.Error("expected style unresolved below threshold")
	}
	if snap.Style.Cluster != "street_night" {
		t.Error("unresolved style should still keep the cluster")
	}
}

// #endregion style-tests

// #region subject-detection

func TestNormalize_SubjectDetected(t *testing.T) {
	in := NewIntake(DefaultIntakeConfig())

	withBox := in.Normalize(Bundle{
		ImageW:     100,
		ImageH:     100,
		SubjectBox: &RawBox{X1Px: 10, Y1Px: 10, X2Px: 90, Y2Px: 90, Confidence: 0.9},
	}, 1, time.Now())
	if !withBox.SubjectDetected {
		t.Error("expected subject detected with box")
	}

	withJoints := in.Normalize(Bundle{
		ImageW: 100,
		ImageH: 100,
		Keypoints: map[JointName]RawKeypoint{
			JointNose: {XPx: 50, YPx: 20, Confidence: 0.9},
		},
	}, 2, time.Now())
	if !withJoints.SubjectDetected {
		t.Error("expected subject detected with joints")
	}

	scalarOnly := in.Normalize(Bundle{ISO: &RawScalar{Value: 200, Confidence: 1}}, 3, time.Now())
	if scalarOnly.SubjectDetected {
		t.Error("expected no subject with scalars only")
	}
}

// #endregion subject-detection
