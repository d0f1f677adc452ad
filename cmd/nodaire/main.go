// Command nodaire parses Indental, Tablatal, and CSV documents and prints
// the parsed data as JSON. It is a thin caller: all parsing lives in the
// library packages.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	nodaire "github.com/KimNorgaard/go-nodaire"
	"github.com/KimNorgaard/go-nodaire/csv"
	"github.com/KimNorgaard/go-nodaire/indental"
	"github.com/KimNorgaard/go-nodaire/tablatal"
)

func main() {
	app := &cli.App{
		Name:  "nodaire",
		Usage: "parse Indental, Tablatal, and CSV documents into JSON",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail on the first problem instead of recovering",
			},
			&cli.BoolFlag{
				Name:    "preserve-keys",
				Aliases: []string{"p"},
				Usage:   "keep keys as written instead of symbolizing them",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "indental",
				Usage:     "parse an Indental (.ndtl) document",
				ArgsUsage: "[FILE]",
				Action:    runIndental,
			},
			{
				Name:      "tablatal",
				Usage:     "parse a Tablatal (.tbtl) document",
				ArgsUsage: "[FILE]",
				Action:    runTablatal,
			},
			{
				Name:      "csv",
				Usage:     "parse a CSV document with a header row",
				ArgsUsage: "[FILE]",
				Action:    runCSV,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nodaire:", err)
		os.Exit(1)
	}
}

// readInput returns the contents of the file argument, or stdin when no
// argument is given.
func readInput(c *cli.Context) ([]byte, error) {
	if name := c.Args().First(); name != "" {
		return os.ReadFile(name)
	}
	return io.ReadAll(os.Stdin)
}

func runIndental(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	var opts []indental.Option
	if c.Bool("preserve-keys") {
		opts = append(opts, indental.PreserveKeys())
	}
	var res *indental.Result
	if c.Bool("strict") {
		res, err = indental.ParseStrict(data, opts...)
	} else {
		res, err = indental.Parse(data, opts...)
	}
	if err != nil {
		return err
	}
	return report(res, res.Errors)
}

func runTablatal(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	var opts []tablatal.Option
	if c.Bool("preserve-keys") {
		opts = append(opts, tablatal.PreserveKeys())
	}
	var res *tablatal.Result
	if c.Bool("strict") {
		res, err = tablatal.ParseStrict(data, opts...)
	} else {
		res, err = tablatal.Parse(data, opts...)
	}
	if err != nil {
		return err
	}
	return report(res, res.Errors)
}

func runCSV(c *cli.Context) error {
	data, err := readInput(c)
	if err != nil {
		return err
	}
	var opts []csv.Option
	if c.Bool("preserve-keys") {
		opts = append(opts, csv.PreserveKeys())
	}
	var res *csv.Result
	if c.Bool("strict") {
		res, err = csv.ParseStrict(data, opts...)
	} else {
		res, err = csv.Parse(data, opts...)
	}
	if err != nil {
		return err
	}
	return report(res, res.Errors)
}

// report prints the parsed data as indented JSON on stdout and any
// diagnostics on stderr. Tolerant diagnostics do not change the exit code;
// the best-effort data is still printed.
func report(data any, errs nodaire.ParseErrors) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	for _, msg := range errs.Messages() {
		fmt.Fprintln(os.Stderr, msg)
	}
	return nil
}
