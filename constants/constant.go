package constants

import (
	"fmt"

	"github.com/uyouii/materials-algorithms/common"
)

type System int

const (
	SI  System = 1
	CGS System = 2
)

func (s System) String() string {
	switch s {
	case SI:
		return "si"
	case CGS:
		return "cgs"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

func ParseSystem(name string) (System, error) {
	switch name {
	case "si", "SI":
		return SI, nil
	case "cgs", "CGS":
		return CGS, nil
	}
	return 0, common.DomainErrorf("system %q is not valid, systems: si, cgs", name)
}

// Constant is a named physical constant. Unit is the unit symbol as usually
// written, UnitBase the same unit expressed in base units.
type Constant struct {
	Name     string
	Value    float64
	System   System
	Unit     string
	UnitBase string
}

func NewConstant(name string, value float64, system System, unit, unitBase string) (Constant, error) {
	if system != SI && system != CGS {
		return Constant{}, common.DomainErrorf("constant %q: unknown system %v", name, system)
	}
	return Constant{
		Name:     name,
		Value:    value,
		System:   system,
		Unit:     unit,
		UnitBase: unitBase,
	}, nil
}

func (c Constant) String() string {
	return fmt.Sprintf("%s = %g %s", c.Name, c.Value, c.Unit)
}
