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

// Package batch encodes many points to cell addresses concurrently. It is
// a caller of the core indexing package, never part of it: the core stays
// single-goroutine and pure, and this package exists to prove that claim
// by driving it from many goroutines at once.
package batch

import (
	"context"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/kjhall/hexgrid"
)

// Point is one input coordinate to encode, in degrees.
type Point struct {
	LatDeg float64
	LonDeg float64
}

// Result is the outcome of encoding one Point.
type Result struct {
	CorrelationID string
	Point         Point
	Cell          hexgrid.CellID
}

// EncodeAll encodes points to cell addresses at the given resolution,
// starting one goroutine per point via an errgroup, with at most workers of
// them encoding at a time. The
// returned slice preserves the input order regardless of which worker
// finished a given point first. If workers is less than 1, the points are
// encoded on the calling goroutine.
func EncodeAll(ctx context.Context, points []Point, res int, workers int) ([]Result, error) {
	results := make([]Result, len(points))

	if workers < 1 {
		for i, pt := range points {
			results[i] = encodeOne(pt, res)
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, workers)

	for i, pt := range points {
		i, pt := i, pt
		g.Go(func() error {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				return ctx.Err()
			}
			results[i] = encodeOne(pt, res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func encodeOne(pt Point, res int) Result {
	cell := hexgrid.CELL_NULL
	if !math.IsNaN(pt.LatDeg) && !math.IsNaN(pt.LonDeg) {
		coord := hexgrid.NewGeoCoord(hexgrid.DegsToRads(pt.LatDeg), hexgrid.DegsToRads(pt.LonDeg))
		cell = hexgrid.GeoToCellID(&coord, res)
	}
	return Result{
		CorrelationID: uuid.New().String(),
		Point:         pt,
		Cell:          cell,
	}
}
