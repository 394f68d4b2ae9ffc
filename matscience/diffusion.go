package matscience

import (
	"math"

	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/constants"
)

// FickFirstLaw returns the steady-state flux through a plate of the given
// thickness, -D (c2 - c1) / thickness. With D in cm^2/s, concentrations in
// g/cm^3 and thickness in cm the flux is in g/(cm^2 s).
func FickFirstLaw(d, c2, c1, thickness float64) (float64, error) {
	if thickness == 0 || math.IsNaN(thickness) {
		return math.NaN(), common.DomainErrorf("fick first law needs a non-zero thickness, got %v", thickness)
	}
	return -d * (c2 - c1) / thickness, nil
}

// DiffusionCoefficient applies the Arrhenius temperature dependence
// D = D0 exp(-Q / (K T)). Q is per mole for constants.Joule (K = R) and per
// atom for constants.ElectronVolt (K = k_B in eV/K). t is in kelvin.
func DiffusionCoefficient(unit constants.UnitSystem, d0, q, t float64) (float64, error) {
	k, err := constants.MolarEnergyConstant(unit)
	if err != nil {
		return math.NaN(), err
	}
	if err := checkTemperature(t); err != nil {
		return math.NaN(), err
	}
	return d0 * math.Exp(-q/(k.Value*t)), nil
}

func checkTemperature(t float64) error {
	if !(t > 0) || math.IsInf(t, 0) {
		return common.DomainErrorf("absolute temperature must be positive, got %v K", t)
	}
	return nil
}
