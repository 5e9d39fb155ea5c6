package rules

import (
	"math"
	"testing"

	"github.com/tryangle/coach-controller/internal/gap"
	"github.com/tryangle/coach-controller/internal/snapshot"
)

// #region helpers

func detectedLive() *snapshot.Snapshot {
	return &snapshot.Snapshot{SubjectDetected: true}
}

func gapOf(dim string, magnitude float64, unit string) gap.Gap {
	return gap.Gap{Dimension: dim, Magnitude: magnitude, Unit: unit, Confidence: 0.9}
}

func evalBuiltin(t *testing.T, gaps []gap.Gap, hist History) []Action {
	t.Helper()
	e := NewEngine(Builtin(DefaultConfig()))
	return e.Evaluate(gaps, hist)
}

func singleCategory(t *testing.T, actions []Action, c Category) Action {
	t.Helper()
	var found []Action
	for _, a := range actions {
		if a.Category == c {
			found = append(found, a)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected exactly one %s action, got %d: %+v", c, len(found), actions)
	}
	return found[0]
}

// #endregion helpers

// #region critical-tests

func TestCritical_NoSubjectRetake(t *testing.T) {
	hist := &stubHistory{live: &snapshot.Snapshot{SubjectDetected: false}}
	got := evalBuiltin(t, nil, hist)

	if len(got) != 1 {
		t.Fatalf("expected single retake action, got %d", len(got))
	}
	a := got[0]
	if a.Category != CategoryCritical || a.Direction != DirRetake || a.ReasonCode != ReasonNoSubject {
		t.Errorf("unexpected action: %+v", a)
	}
}

func TestCritical_SevereBlurRetake(t *testing.T) {
	live := detectedLive()
	live.Quality = &snapshot.Quality{
		Sharpness: snapshot.Measure{Value: 0.05, Confidence: 0.9, Valid: true},
	}
	hist := &stubHistory{live: live}

	// Even with other gaps present, the frame yields only the retake.
	gaps := []gap.Gap{gapOf(gap.DimShoulderTilt, 20, gap.UnitDegree)}
	got := evalBuiltin(t, gaps, hist)

	if len(got) != 1 || got[0].ReasonCode != ReasonSevereBlur {
		t.Fatalf("expected single severe_blur action, got %+v", got)
	}
}

// #endregion critical-tests

// #region pose-tests

func TestPose_ShoulderTiltAction(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{gapOf(gap.DimShoulderTilt, 18, gap.UnitDegree)}
	got := evalBuiltin(t, gaps, hist)

	a := singleCategory(t, got, CategoryPose)
	if a.Direction != DirLevel || a.ReasonCode != ReasonShoulderTilt {
		t.Errorf("unexpected pose action: %+v", a)
	}
	if math.Abs(a.Magnitude-18) > 1e-9 {
		t.Errorf("expected magnitude 18, got %v", a.Magnitude)
	}
	if a.Actor != ActorSubject {
		t.Errorf("expected subject actor, got %s", a.Actor)
	}
}

func TestPose_BelowThresholdSilent(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{gapOf(gap.DimShoulderTilt, 8, gap.UnitDegree)}
	got := evalBuiltin(t, gaps, hist)

	for _, a := range got {
		if a.Category == CategoryPose {
			t.Errorf("expected no pose action at 8 degrees, got %+v", a)
		}
	}
}

func TestPose_WorstDeviationWins(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{
		gapOf(gap.DimShoulderTilt, 12, gap.UnitDegree),            // exceedance 1.2
		gapOf(gap.DimJointPrefix+"left_wrist_x", 0.2, gap.UnitNorm), // exceedance 4.0
	}
	got := evalBuiltin(t, gaps, hist)

	a := singleCategory(t, got, CategoryPose)
	if a.ReasonCode != ReasonJointOffset || a.Detail != "left_wrist" {
		t.Errorf("expected joint_offset for left_wrist, got %+v", a)
	}
	// Live wrist right of reference: correction points left.
	if a.Direction != DirLeft {
		t.Errorf("expected left direction, got %s", a.Direction)
	}
}

// #endregion pose-tests

// #region camera-tests

func TestCamera_ISOTooHigh(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	// Reference ISO 400, live 1200.
	gaps := []gap.Gap{gapOf(gap.DimISO, 800, gap.UnitISO)}
	got := evalBuiltin(t, gaps, hist)

	a := singleCategory(t, got, CategoryCamera)
	if a.Direction != DirDecrease || a.ReasonCode != ReasonISO {
		t.Errorf("expected decrease/iso_deviation, got %+v", a)
	}
	if a.Actor != ActorCamera {
		t.Errorf("expected camera actor, got %s", a.Actor)
	}
}

func TestCamera_WithinToleranceSilent(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{gapOf(gap.DimISO, 150, gap.UnitISO)}
	got := evalBuiltin(t, gaps, hist)

	for _, a := range got {
		if a.Category == CategoryCamera {
			t.Errorf("expected no camera action within tolerance, got %+v", a)
		}
	}
}

// #endregion camera-tests

// #region composition-tests

func TestComposition_SubjectOffsetDirection(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{gapOf(gap.DimSubjectOffsetX, 0.2, gap.UnitNorm)}
	got := evalBuiltin(t, gaps, hist)

	a := singleCategory(t, got, CategoryComposition)
	if a.Direction != DirLeft || a.ReasonCode != ReasonSubjectOffset {
		t.Errorf("unexpected composition action: %+v", a)
	}
}

func TestComposition_SubjectTooLarge(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}
	gaps := []gap.Gap{gapOf(gap.DimSubjectSize, 0.3, gap.UnitRatio)}
	got := evalBuiltin(t, gaps, hist)

	a := singleCategory(t, got, CategoryComposition)
	if a.Direction != DirMoveBack || a.ReasonCode != ReasonSubjectSize {
		t.Errorf("expected move_back for oversized subject, got %+v", a)
	}
}

// #endregion composition-tests

// #region quality-tests

func TestQuality_OnlyDeficitsFire(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}

	// Live sharper than reference: not a defect.
	got := evalBuiltin(t, []gap.Gap{gapOf(gap.DimSharpness, 0.5, gap.UnitScore)}, hist)
	for _, a := range got {
		if a.Category == CategoryQuality {
			t.Errorf("sharper-than-reference should not fire, got %+v", a)
		}
	}

	// Live blurrier: fires.
	got = evalBuiltin(t, []gap.Gap{gapOf(gap.DimSharpness, -0.5, gap.UnitScore)}, hist)
	a := singleCategory(t, got, CategoryQuality)
	if a.Direction != DirStabilize || a.ReasonCode != ReasonSharpness {
		t.Errorf("unexpected quality action: %+v", a)
	}
}

func TestQuality_WorstDeviationWins(t *testing.T) {
	hist := &stubHistory{live: detectedLive()}

	// Noise exceeds its tolerance harder than the sharpness deficit.
	got := evalBuiltin(t, []gap.Gap{
		gapOf(gap.DimSharpness, -0.3, gap.UnitScore),
		gapOf(gap.DimNoise, 0.6, gap.UnitScore),
	}, hist)
	a := singleCategory(t, got, CategoryQuality)
	if a.ReasonCode != ReasonNoise || a.Direction != DirDecrease {
		t.Errorf("expected noise to win, got %+v", a)
	}

	// Reversed: the sharpness deficit dominates.
	got = evalBuiltin(t, []gap.Gap{
		gapOf(gap.DimSharpness, -0.6, gap.UnitScore),
		gapOf(gap.DimNoise, 0.3, gap.UnitScore),
	}, hist)
	a = singleCategory(t, got, CategoryQuality)
	if a.ReasonCode != ReasonSharpness || a.Direction != DirStabilize {
		t.Errorf("expected sharpness to win, got %+v", a)
	}
}

// #endregion quality-tests

// #region style-tests

func TestStyleInfo_RequiresBothResolved(t *testing.T) {
	ref := &snapshot.Snapshot{Style: snapshot.StyleTag{Cluster: "portrait_warm", Confidence: 0.8, Resolved: true}}

	liveUnresolved := detectedLive()
	liveUnresolved.Style = snapshot.StyleTag{Cluster: "street_night", Confidence: 0.2, Resolved: false}
	got := evalBuiltin(t, nil, &stubHistory{ref: ref, live: liveUnresolved})
	for _, a := range got {
		if a.Category == CategoryInfo {
			t.Errorf("unresolved live style must not fire, got %+v", a)
		}
	}

	liveResolved := detectedLive()
	liveResolved.Style = snapshot.StyleTag{Cluster: "street_night", Confidence: 0.7, Resolved: true}
	got = evalBuiltin(t, nil, &stubHistory{ref: ref, live: liveResolved})
	a := singleCategory(t, got, CategoryInfo)
	if a.ReasonCode != ReasonStyleMismatch || a.Detail != "street_night" {
		t.Errorf("unexpected info action: %+v", a)
	}
	if a.Direction != DirNone {
		t.Errorf("info actions are non-actionable, got direction %q", a.Direction)
	}
}

// #endregion style-tests
