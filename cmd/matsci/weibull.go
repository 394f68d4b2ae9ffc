package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"github.com/uyouii/materials-algorithms/weibull"
)

var WeibullCommand = cli.Command{
	Action: printWeibull,
	Name:   "weibull",
	Usage:  "print the statistics of a Weibull distribution",
	Flags: []cli.Flag{
		&ShapeFlag,
		&ScaleFlag,
		&cli.Float64SliceFlag{
			Name:  "x",
			Usage: "failure times to evaluate pdf, cdf and failure rate at",
		},
		&cli.Float64SliceFlag{
			Name:  "p",
			Usage: "probabilities to evaluate the quantile at",
		},
	},
}

func printWeibull(ctx *cli.Context) error {
	shape, scale := ctx.Float64(ShapeFlag.Name), ctx.Float64(ScaleFlag.Name)
	summary, err := weibull.CalculateSummary(ctx.Context, shape, scale)
	if err != nil {
		return err
	}
	w, err := weibull.New(shape, scale)
	if err != nil {
		return err
	}

	tw := newTable(ctx, table.Row{"statistic", "value"})
	tw.AppendRows([]table.Row{
		{"mean", summary.Mean},
		{"median", summary.Median},
		{"mode", summary.Mode},
		{"variance", summary.Variance},
		{"std dev", summary.StdDev},
		{"skewness", summary.Skewness},
		{"excess kurtosis", summary.Kurtosis},
	})
	if summary.VarianceClamped {
		tw.AppendFooter(table.Row{"variance clamped", "yes"})
	}
	tw.Render()

	if xs := ctx.Float64Slice("x"); len(xs) > 0 {
		tw := newTable(ctx, table.Row{"x", "pdf", "cdf", "failure rate"})
		for _, x := range xs {
			tw.AppendRow(table.Row{x, w.Prob(x), w.CDF(x), w.FailureRate(x)})
		}
		tw.Render()
	}

	if ps := ctx.Float64Slice("p"); len(ps) > 0 {
		tw := newTable(ctx, table.Row{"p", "quantile"})
		for _, p := range ps {
			q, err := w.Quantile(p)
			if err != nil {
				return err
			}
			tw.AppendRow(table.Row{p, q})
		}
		tw.Render()
	}
	return nil
}

var AnalyzeCommand = cli.Command{
	Action:    analyzeSample,
	Name:      "analyze",
	Usage:     "compare a sample of failure times against a Weibull model",
	ArgsUsage: "<sample file>",
	Flags: []cli.Flag{
		&ShapeFlag,
		&ScaleFlag,
	},
	Description: `
The sample file holds a YAML or JSON list of failure times, e.g. [16, 34, 53, 75].`,
}

func analyzeSample(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errors.New("analyze needs exactly one sample file")
	}
	raw, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return err
	}

	report, err := weibull.AnalyzeSample(ctx.Context, raw, ctx.Float64(ShapeFlag.Name), ctx.Float64(ScaleFlag.Name))
	if err != nil {
		return err
	}

	tw := newTable(ctx, table.Row{"rank", "failure time", "plotting position", "model cdf"})
	for i, p := range report.PlottingPositions {
		tw.AppendRow(table.Row{p.Rank, p.X, p.Value, report.ModelCdf[i]})
	}
	tw.AppendFooter(table.Row{"", "", "max deviation", report.MaxDeviation})
	tw.Render()

	if report.Regression != nil {
		tw := newTable(ctx, table.Row{"rank regression", "value"})
		tw.AppendRows([]table.Row{
			{"shape", report.Regression.Shape},
			{"scale", report.Regression.Scale},
			{"r squared", report.Regression.RSquared},
		})
		tw.Render()
	}
	return nil
}
