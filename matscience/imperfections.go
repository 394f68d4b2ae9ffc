package matscience

import (
	"math"

	"github.com/uyouii/materials-algorithms/common"
	"github.com/uyouii/materials-algorithms/constants"
	"github.com/uyouii/materials-algorithms/functions"
)

// PointDefects evaluates Boltzmann factors exp(-Q / kT) for vacancy and
// Frenkel defects, with Q in the energy unit chosen at construction.
type PointDefects struct {
	unit constants.UnitSystem
	k    float64
}

func NewPointDefects(unit constants.UnitSystem) (*PointDefects, error) {
	k, err := constants.Boltzmann(unit)
	if err != nil {
		return nil, err
	}
	return &PointDefects{unit: unit, k: k.Value}, nil
}

func (d *PointDefects) Unit() constants.UnitSystem {
	return d.unit
}

// Vacancies returns the equilibrium number of vacancies among n lattice
// sites, given the vacancy formation energy qv at temperature t (K).
func (d *PointDefects) Vacancies(n, qv, t float64) (float64, error) {
	c, err := d.EquilibriumConcentration(qv, t)
	if err != nil {
		return math.NaN(), err
	}
	return n * c, nil
}

// EquilibriumConcentration is the vacancy fraction Nv/N = exp(-qv / kT).
func (d *PointDefects) EquilibriumConcentration(qv, t float64) (float64, error) {
	if err := checkTemperature(t); err != nil {
		return math.NaN(), err
	}
	return math.Exp(-qv / (d.k * t)), nil
}

// VacantProbability is the probability of finding a given site vacant,
// sigmoid(-qv / kT).
func (d *PointDefects) VacantProbability(qv, t float64) (float64, error) {
	if err := checkTemperature(t); err != nil {
		return math.NaN(), err
	}
	return functions.Sigmoid(-qv / (d.k * t)), nil
}

// FrenkelDefects counts neighbouring cation vacancy/interstitial pairs,
// n exp(-qv / 2kT).
func (d *PointDefects) FrenkelDefects(n, qv, t float64) (float64, error) {
	if err := checkTemperature(t); err != nil {
		return math.NaN(), err
	}
	return n * math.Exp(-qv/(2*d.k*t)), nil
}

// DefectConcentration is nv / n.
func DefectConcentration(n, nv float64) (float64, error) {
	if n == 0 {
		return math.NaN(), common.DomainErrorf("defect concentration needs lattice sites, got n=%v", n)
	}
	return nv / n, nil
}

// LatticeSites returns the number of lattice sites (formula units) per unit
// volume, density * N_A / molarMass. With g/cm^3 and g/mol the result is
// per cm^3.
func LatticeSites(density, molarMass float64) (float64, error) {
	if !(molarMass > 0) {
		return math.NaN(), common.DomainErrorf("molar mass must be positive, got %v", molarMass)
	}
	return density * constants.Avogadro.Value / molarMass, nil
}
