package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "matsci",
		HelpName:  "matsci",
		Usage:     "materials science formulas and Weibull reliability statistics",
		Copyright: "(c) 2024 uyouii",
		Commands: []*cli.Command{
			&WeibullCommand,
			&AnalyzeCommand,
			&DefectsCommand,
			&DiffusionCommand,
			&GammaCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
