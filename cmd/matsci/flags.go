package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"github.com/uyouii/materials-algorithms/constants"
)

var (
	ShapeFlag = cli.Float64Flag{
		Name:     "shape",
		Aliases:  []string{"alpha"},
		Usage:    "Weibull shape parameter",
		Required: true,
	}
	ScaleFlag = cli.Float64Flag{
		Name:     "scale",
		Aliases:  []string{"beta"},
		Usage:    "Weibull scale parameter (characteristic life)",
		Required: true,
	}
	UnitFlag = cli.StringFlag{
		Name:  "unit",
		Usage: "energy unit of activation energies, J or eV",
		Value: "eV",
	}
	TemperatureFlag = cli.Float64Flag{
		Name:     "t",
		Usage:    "absolute temperature in K",
		Required: true,
	}
)

func unitFromFlag(ctx *cli.Context) (constants.UnitSystem, error) {
	return constants.ParseUnitSystem(ctx.String(UnitFlag.Name))
}

func newTable(ctx *cli.Context, header table.Row) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(ctx.App.Writer)
	tw.AppendHeader(header)
	return tw
}
