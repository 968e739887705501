package material

import "math"

// Physical constants for Planck's law, from original_source/Constants.h.
const (
	planckConstant    = 6.62606957e-34
	boltzmannConstant = 1.3806488e-23
	speedOfLight      = 299792458.0
	wiensConstant     = 2.897772126e-3
)

// planckRadiance evaluates the Planck black-body spectral radiance at the
// given wavelength (nm) and temperature (K), grounded on
// original_source/EmissiveMaterial.cpp's boltzmann function.
func planckRadiance(wavelength, temperature float64) float64 {
	l := wavelength * 1.0e-9
	return (2.0 * planckConstant * speedOfLight * speedOfLight) /
		(l * l * l * l * l * (math.Exp(planckConstant*speedOfLight/(l*boltzmannConstant*temperature)) - 1.0))
}

// Emissive is a black-body light source. Its spectral distribution follows
// Planck's law at Temperature; Intensity rescales the peak of that
// distribution to a chosen brightness, since the physically correct
// radiance of a black body at typical light-bulb temperatures is
// otherwise far too dim or too bright to be a useful scene parameter.
type Emissive struct {
	Temperature float64 // Kelvin; 6504 is a warm white, higher is bluer
	Intensity   float64

	normalisation float64
}

// NewEmissive creates a black-body emitter at the given temperature,
// rescaled so its emission peaks at intensity.
func NewEmissive(temperature, intensity float64) *Emissive {
	peakWavelength := (wiensConstant / temperature) * 1.0e9
	return &Emissive{
		Temperature:   temperature,
		Intensity:     intensity,
		normalisation: intensity / planckRadiance(peakWavelength, temperature),
	}
}

// EmittedRadiance implements the emitter contract.
func (e *Emissive) EmittedRadiance(wavelength float64) float64 {
	return planckRadiance(wavelength, e.Temperature) * e.normalisation
}
