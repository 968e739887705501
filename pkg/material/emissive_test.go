package material

import (
	"math"
	"testing"
)

func TestEmissive_PeaksNearWiensLaw(t *testing.T) {
	e := NewEmissive(6504, 1.0)
	peak := (wiensConstant / 6504) * 1.0e9

	atPeak := e.EmittedRadiance(peak)
	atShorter := e.EmittedRadiance(peak - 100)
	atLonger := e.EmittedRadiance(peak + 100)

	if atPeak < atShorter || atPeak < atLonger {
		t.Errorf("expected radiance to peak near Wien's law wavelength %f: peak=%f shorter=%f longer=%f",
			peak, atPeak, atShorter, atLonger)
	}
	if math.Abs(atPeak-1.0) > 1e-6 {
		t.Errorf("expected the peak to be rescaled to the configured intensity, got %f", atPeak)
	}
}

func TestEmissive_HotterShiftsPeakShorter(t *testing.T) {
	cool := NewEmissive(3000, 1.0)
	hot := NewEmissive(9000, 1.0)

	coolPeak := (wiensConstant / cool.Temperature) * 1.0e9
	hotPeak := (wiensConstant / hot.Temperature) * 1.0e9

	if hotPeak >= coolPeak {
		t.Errorf("expected a hotter black body to peak at a shorter wavelength: cool=%f hot=%f", coolPeak, hotPeak)
	}
}
