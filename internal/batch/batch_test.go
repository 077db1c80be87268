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

package batch

import (
	"context"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/kjhall/hexgrid"
)

func testPoints() []Point {
	return []Point{
		{LatDeg: 37.775938728915946, LonDeg: -122.41795063018799},
		{LatDeg: 40.730610, LonDeg: -73.935242},
		{LatDeg: -33.868820, LonDeg: 151.209290},
		{LatDeg: 51.507351, LonDeg: -0.127758},
	}
}

func TestEncodeAllSingleGoroutine(t *testing.T) {
	results, err := EncodeAll(context.Background(), testPoints(), 9, 0)
	assert.NoError(t, err)
	assert.Len(t, results, 4)

	for i, r := range results {
		assert.Equal(t, testPoints()[i], r.Point)
		assert.True(t, r.Cell != hexgrid.CELL_NULL)
		assert.True(t, r.CorrelationID != "")
	}
}

func TestEncodeAllMatchesSingleGoroutineResult(t *testing.T) {
	points := testPoints()

	serial, err := EncodeAll(context.Background(), points, 7, 0)
	assert.NoError(t, err)

	concurrent, err := EncodeAll(context.Background(), points, 7, 3)
	assert.NoError(t, err)

	assert.Len(t, concurrent, len(serial))
	for i := range serial {
		assert.Equal(t, serial[i].Cell, concurrent[i].Cell)
		assert.Equal(t, serial[i].Point, concurrent[i].Point)
	}
}

func TestEncodeAllRejectsNaNCoordinateWithNullCell(t *testing.T) {
	points := []Point{{LatDeg: math.NaN(), LonDeg: math.NaN()}}
	results, err := EncodeAll(context.Background(), points, 9, 0)
	assert.NoError(t, err)
	assert.Equal(t, hexgrid.CELL_NULL, results[0].Cell)
}

func TestEncodeAllPreservesOrderAcrossWorkers(t *testing.T) {
	points := testPoints()
	results, err := EncodeAll(context.Background(), points, 9, 2)
	assert.NoError(t, err)

	for i, r := range results {
		assert.Equal(t, points[i], r.Point)
	}
}
