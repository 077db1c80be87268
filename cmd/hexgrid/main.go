// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hexgrid is a thin command-line front end over the hexgrid
// indexing library. It owns no algorithmic logic: every subcommand is a
// direct pass-through to the core package plus formatting.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/retrogolib/log"

	"github.com/kjhall/hexgrid"
	"github.com/kjhall/hexgrid/internal/appconfig"
	"github.com/kjhall/hexgrid/internal/batch"
	"github.com/kjhall/hexgrid/internal/format"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := appconfig.Load(os.Getenv("HEXGRID_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		return 1
	}

	logger := log.New()

	cmd := cli.NewCommand("hexgrid", "hexagonal geospatial cell address toolkit")
	cmd.SetVersion(version)

	cmd.AddSubcommand("encode", "encode a lat/lon pair to a cell address", func(args []string) int {
		return runEncode(args, cfg, logger)
	})
	cmd.AddSubcommand("decode", "decode a cell address to its center lat/lon", func(args []string) int {
		return runDecode(args, logger)
	})
	cmd.AddSubcommand("neighbors", "list the cell addresses within k grid steps", func(args []string) int {
		return runNeighbors(args, logger)
	})
	cmd.AddSubcommand("ring", "list the cell addresses at exactly k grid steps", func(args []string) int {
		return runRing(args, logger)
	})
	cmd.AddSubcommand("boundary", "print a cell's vertex boundary and area", func(args []string) int {
		return runBoundary(args, cfg, logger)
	})
	cmd.AddSubcommand("compact", "compact a list of same-resolution cell addresses", func(args []string) int {
		return runCompact(args, logger)
	})
	cmd.AddSubcommand("uncompact", "expand a compacted set to a uniform resolution", func(args []string) int {
		return runUncompact(args, logger)
	})

	return cmd.Execute(args)
}

func runEncode(args []string, cfg appconfig.Config, logger *log.Logger) int {
	fs := cli.NewFlagSet("hexgrid encode")
	var opts struct {
		Lat     float64 `flag:"lat" usage:"latitude in degrees" required:"true"`
		Lon     float64 `flag:"lon" usage:"longitude in degrees" required:"true"`
		Res     int     `flag:"res" usage:"resolution 0-15" default:"9"`
		Workers int     `flag:"workers" usage:"batch encode workers" default:"0"`
	}
	fs.AddSection("Options", &opts)
	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	workers := opts.Workers
	if workers == 0 {
		workers = cfg.BatchWorkers
	}

	results, err := batch.EncodeAll(context.Background(), []batch.Point{{LatDeg: opts.Lat, LonDeg: opts.Lon}}, opts.Res, workers)
	if err != nil {
		logger.Error("encoding point", log.Err(err))
		return 1
	}

	cell := results[0].Cell
	if cell == hexgrid.CELL_NULL {
		fmt.Fprintln(os.Stderr, "non-finite coordinate")
		return 1
	}

	fmt.Printf("%s\t%s\n", results[0].CorrelationID, cell.String())
	return 0
}

func runDecode(args []string, logger *log.Logger) int {
	fs := cli.NewFlagSet("hexgrid decode")
	var opts struct {
		Cell string `flag:"cell" usage:"cell address in hex" required:"true"`
	}
	fs.AddSection("Options", &opts)
	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cell := hexgrid.ParseCellID(opts.Cell)
	if cell == hexgrid.CELL_NULL {
		fmt.Fprintln(os.Stderr, "malformed cell address")
		return 1
	}

	var g hexgrid.GeoCoord
	hexgrid.ToGeo(cell, &g)
	fmt.Printf("%.6f\t%.6f\n", hexgrid.RadsToDegs(g.Lat()), hexgrid.RadsToDegs(g.Lon()))
	return 0
}

func runNeighbors(args []string, logger *log.Logger) int {
	fs := cli.NewFlagSet("hexgrid neighbors")
	var opts struct {
		Cell string `flag:"cell" usage:"cell address in hex" required:"true"`
		K    int    `flag:"k" usage:"grid distance" default:"1"`
	}
	fs.AddSection("Options", &opts)
	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	origin := hexgrid.ParseCellID(opts.Cell)
	if origin == hexgrid.CELL_NULL {
		fmt.Fprintln(os.Stderr, "malformed cell address")
		return 1
	}

	cells, distances := hexgrid.KRingDistances(origin, opts.K)
	for i, c := range cells {
		if c == hexgrid.CELL_NULL {
			continue
		}
		fmt.Printf("%s\t%d\n", c.String(), distances[i])
	}
	return 0
}

func runRing(args []string, logger *log.Logger) int {
	fs := cli.NewFlagSet("hexgrid ring")
	var opts struct {
		Cell string `flag:"cell" usage:"cell address in hex" required:"true"`
		K    int    `flag:"k" usage:"grid distance" default:"1"`
	}
	fs.AddSection("Options", &opts)
	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	origin := hexgrid.ParseCellID(opts.Cell)
	if origin == hexgrid.CELL_NULL {
		fmt.Fprintln(os.Stderr, "malformed cell address")
		return 1
	}

	ring, err := hexgrid.HexRing(origin, opts.K)
	if err != nil {
		logger.Error("tracing ring", log.Err(err))
		return 1
	}

	for _, c := range ring {
		fmt.Println(c.String())
	}
	return 0
}

func runBoundary(args []string, cfg appconfig.Config, logger *log.Logger) int {
	fs := cli.NewFlagSet("hexgrid boundary")
	var opts struct {
		Cell   string `flag:"cell" usage:"cell address in hex" required:"true"`
		Locale string `flag:"locale" usage:"BCP 47 locale for number formatting"`
	}
	fs.AddSection("Options", &opts)
	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cell := hexgrid.ParseCellID(opts.Cell)
	if cell == hexgrid.CELL_NULL {
		fmt.Fprintln(os.Stderr, "malformed cell address")
		return 1
	}

	locale := opts.Locale
	if locale == "" {
		locale = cfg.Locale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		logger.Warn("unrecognized locale, falling back to en", log.String("locale", locale))
		tag = language.English
	}

	printer := format.NewPrinter(tag)
	fmt.Println(printer.Summarize(cell).String())
	return 0
}

func runCompact(args []string, logger *log.Logger) int {
	cells, err := parseCellList(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	compacted, err := hexgrid.Compact(cells)
	if err != nil {
		logger.Error("compacting cell set", log.Err(err))
		return 1
	}

	for _, c := range compacted {
		fmt.Println(c.String())
	}
	return 0
}

func runUncompact(args []string, logger *log.Logger) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hexgrid uncompact <resolution> <cell> [cell...]")
		return 1
	}

	res, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid resolution:", args[0])
		return 1
	}

	cells, err := parseCellList(args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	uncompacted, err := hexgrid.Uncompact(cells, res)
	if err != nil {
		logger.Error("uncompacting cell set", log.Err(err))
		return 1
	}

	for _, c := range uncompacted {
		fmt.Println(c.String())
	}
	return 0
}

func parseCellList(args []string) ([]hexgrid.CellID, error) {
	cells := make([]hexgrid.CellID, 0, len(args))
	for _, a := range args {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		cell := hexgrid.ParseCellID(a)
		if cell == hexgrid.CELL_NULL {
			return nil, fmt.Errorf("malformed cell address: %q", a)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}
