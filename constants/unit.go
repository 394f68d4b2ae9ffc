package constants

import (
	"fmt"

	"github.com/uyouii/materials-algorithms/common"
)

// UnitSystem selects the energy unit used by activation energies.
type UnitSystem int

const (
	Joule        UnitSystem = 1
	ElectronVolt UnitSystem = 2
)

func (u UnitSystem) String() string {
	switch u {
	case Joule:
		return "J"
	case ElectronVolt:
		return "eV"
	}
	return fmt.Sprintf("UnitSystem(%d)", int(u))
}

func ParseUnitSystem(unit string) (UnitSystem, error) {
	switch unit {
	case "J":
		return Joule, nil
	case "eV":
		return ElectronVolt, nil
	}
	return 0, common.DomainErrorf("unit %s is not accepted, units accepted: J and eV", unit)
}

// per-particle energy scale: k in J/K or eV/K
var boltzmannByUnit = map[UnitSystem]Constant{
	Joule:        BoltzmannJ,
	ElectronVolt: BoltzmannEV,
}

// Arrhenius denominators: J/mol energies divide by R, eV/atom energies by k.
var molarEnergyByUnit = map[UnitSystem]Constant{
	Joule:        GasConstant,
	ElectronVolt: BoltzmannEV,
}

func Boltzmann(unit UnitSystem) (Constant, error) {
	c, ok := boltzmannByUnit[unit]
	if !ok {
		return Constant{}, common.DomainErrorf("no Boltzmann constant for unit %v", unit)
	}
	return c, nil
}

func MolarEnergyConstant(unit UnitSystem) (Constant, error) {
	c, ok := molarEnergyByUnit[unit]
	if !ok {
		return Constant{}, common.DomainErrorf("no activation energy constant for unit %v", unit)
	}
	return c, nil
}
