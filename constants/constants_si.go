package constants

import "github.com/uyouii/materials-algorithms/common"

// CODATA 2018 exact or recommended values.
var (
	BoltzmannJ = Constant{
		Name: "Boltzmann constant", Value: 1.380649e-23, System: SI,
		Unit: "J/K", UnitBase: "m^2*kg/(s^2*K)",
	}
	BoltzmannEV = Constant{
		Name: "Boltzmann constant (eV)", Value: 8.617333262e-5, System: SI,
		Unit: "eV/K",
	}
	GasConstant = Constant{
		Name: "Molar gas constant", Value: 8.314462618, System: SI,
		Unit: "J/(mol*K)", UnitBase: "m^2*kg/(s^2*K*mol)",
	}
	Avogadro = Constant{
		Name: "Avogadro constant", Value: 6.02214076e23, System: SI,
		Unit: "1/mol", UnitBase: "mol^-1",
	}
	ElementaryCharge = Constant{
		Name: "Elementary charge", Value: 1.602176634e-19, System: SI,
		Unit: "C", UnitBase: "A*s",
	}
	Planck = Constant{
		Name: "Planck constant", Value: 6.62607015e-34, System: SI,
		Unit: "J*s", UnitBase: "m^2*kg/s",
	}
)

var table = map[string]Constant{
	"k_boltzmann":    BoltzmannJ,
	"k_boltzmann_ev": BoltzmannEV,
	"r_gas":          GasConstant,
	"n_avogadro":     Avogadro,
	"e_charge":       ElementaryCharge,
	"h_planck":       Planck,
}

// Lookup returns the constant registered under key, e.g. "r_gas".
func Lookup(key string) (Constant, error) {
	c, ok := table[key]
	if !ok {
		return Constant{}, common.DomainErrorf("unknown constant %q", key)
	}
	return c, nil
}

// Keys lists every registered constant key.
func Keys() []string {
	res := make([]string, 0, len(table))
	for k := range table {
		res = append(res, k)
	}
	return res
}
