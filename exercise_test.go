package main

import "testing"

// TestEstimateBurn_Running verifies the MET formula with known inputs.
// Running (MET 9.8) for 30 min at 150 lbs:
// weightKG = 150*0.453592 = 68.04, 9.8*3.5*68.04/200*30 = 350.06 → 350.
func TestEstimateBurn_Running(t *testing.T) {
	burned := estimateBurn("Running", 30, 150, nil)
	if burned != 350 {
		t.Errorf("estimateBurn(Running, 30, 150) = %d, want 350", burned)
	}
}

// TestEstimateBurn_UnknownActivity verifies an unrecognised activity returns
// 0 so callers can demand a manual calorie entry.
func TestEstimateBurn_UnknownActivity(t *testing.T) {
	if burned := estimateBurn("Quidditch", 30, 150, nil); burned != 0 {
		t.Errorf("expected 0 for unknown activity, got %d", burned)
	}
}

// TestEstimateBurn_CustomSport verifies custom sports resolve after the
// built-ins. Pickleball at MET 6.0 for 60 min at 200 lbs:
// weightKG = 90.72, 6.0*3.5*90.72/200*60 = 571.5 → 572.
func TestEstimateBurn_CustomSport(t *testing.T) {
	custom := map[string]float64{"Pickleball": 6.0}
	burned := estimateBurn("Pickleball", 60, 200, custom)
	if burned != 572 {
		t.Errorf("estimateBurn(Pickleball, 60, 200) = %d, want 572", burned)
	}
}

// TestEstimateBurn_BuiltinShadowsCustom verifies a custom sport can't
// override a built-in activity's MET value.
func TestEstimateBurn_BuiltinShadowsCustom(t *testing.T) {
	custom := map[string]float64{"Running": 1.0}
	if met := lookupMET("Running", custom); met != 9.8 {
		t.Errorf("lookupMET(Running) = %f, want builtin 9.8", met)
	}
}

// TestEstimateBurn_InvalidInputs verifies non-positive duration or weight
// yields 0.
func TestEstimateBurn_InvalidInputs(t *testing.T) {
	if burned := estimateBurn("Running", 0, 150, nil); burned != 0 {
		t.Errorf("expected 0 for zero duration, got %d", burned)
	}
	if burned := estimateBurn("Running", 30, 0, nil); burned != 0 {
		t.Errorf("expected 0 for zero weight, got %d", burned)
	}
}
