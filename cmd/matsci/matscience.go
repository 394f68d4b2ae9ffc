package main

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"github.com/uyouii/materials-algorithms/functions"
	"github.com/uyouii/materials-algorithms/matscience"
)

var DefectsCommand = cli.Command{
	Action: printDefects,
	Name:   "defects",
	Usage:  "equilibrium point defects in a crystal",
	Flags: []cli.Flag{
		&UnitFlag,
		&TemperatureFlag,
		&cli.Float64Flag{
			Name:     "n",
			Usage:    "number of lattice sites",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     "qv",
			Usage:    "vacancy formation energy",
			Required: true,
		},
	},
}

func printDefects(ctx *cli.Context) error {
	unit, err := unitFromFlag(ctx)
	if err != nil {
		return err
	}
	defects, err := matscience.NewPointDefects(unit)
	if err != nil {
		return err
	}
	n, qv, t := ctx.Float64("n"), ctx.Float64("qv"), ctx.Float64(TemperatureFlag.Name)

	vacancies, err := defects.Vacancies(n, qv, t)
	if err != nil {
		return err
	}
	concentration, err := defects.EquilibriumConcentration(qv, t)
	if err != nil {
		return err
	}
	probability, err := defects.VacantProbability(qv, t)
	if err != nil {
		return err
	}
	frenkel, err := defects.FrenkelDefects(n, qv, t)
	if err != nil {
		return err
	}

	tw := newTable(ctx, table.Row{"quantity", "value"})
	tw.AppendRows([]table.Row{
		{"vacancies", vacancies},
		{"equilibrium concentration", concentration},
		{"vacant probability", probability},
		{"frenkel defects", frenkel},
	})
	tw.Render()
	return nil
}

var DiffusionCommand = cli.Command{
	Action: printDiffusion,
	Name:   "diffusion",
	Usage:  "temperature dependent diffusion coefficient D0 exp(-Q/KT)",
	Flags: []cli.Flag{
		&UnitFlag,
		&TemperatureFlag,
		&cli.Float64Flag{
			Name:     "d0",
			Usage:    "pre-exponential diffusion coefficient",
			Required: true,
		},
		&cli.Float64Flag{
			Name:     "q",
			Usage:    "activation energy, per mole for J, per atom for eV",
			Required: true,
		},
	},
}

func printDiffusion(ctx *cli.Context) error {
	unit, err := unitFromFlag(ctx)
	if err != nil {
		return err
	}
	d, err := matscience.DiffusionCoefficient(unit, ctx.Float64("d0"), ctx.Float64("q"), ctx.Float64(TemperatureFlag.Name))
	if err != nil {
		return err
	}
	tw := newTable(ctx, table.Row{"unit", "diffusion coefficient"})
	tw.AppendRow(table.Row{unit.String(), d})
	tw.Render()
	return nil
}

var GammaCommand = cli.Command{
	Action:    printGamma,
	Name:      "gamma",
	Usage:     "evaluate the gamma function",
	ArgsUsage: "<x>...",
}

func printGamma(ctx *cli.Context) error {
	if ctx.Args().Len() == 0 {
		return errors.New("gamma needs at least one argument")
	}
	tw := newTable(ctx, table.Row{"x", "gamma(x)"})
	for _, arg := range ctx.Args().Slice() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return err
		}
		g, err := functions.GammaReal(x)
		if err != nil {
			return err
		}
		tw.AppendRow(table.Row{x, g})
	}
	tw.Render()
	return nil
}
