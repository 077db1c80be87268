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

package hexgrid

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestGeoToCellIDEncodesCenterStably(t *testing.T) {
	g := NewGeoCoord(DegsToRads(37.775938728915946), DegsToRads(-122.41795063018799))
	cell := GeoToCellID(&g, 9)
	assert.True(t, cell.IsValid())
	assert.Equal(t, 9, cell.GetResolution())

	var center GeoCoord
	ToGeo(cell, &center)

	reencoded := GeoToCellID(&center, 9)
	assert.Equal(t, cell, reencoded)
}

func TestGeoToCellIDRejectsOutOfRangeResolution(t *testing.T) {
	g := NewGeoCoord(0, 0)
	assert.Equal(t, CELL_NULL, GeoToCellID(&g, -1))
	assert.Equal(t, CELL_NULL, GeoToCellID(&g, MAX_RES+1))
}

func TestCellAreaPositiveAndShrinksWithResolution(t *testing.T) {
	g := NewGeoCoord(DegsToRads(10), DegsToRads(10))
	coarse := GeoToCellID(&g, 3)
	fine := GeoToCellID(&g, 6)

	assert.Greater(t, CellAreaKm2(coarse), CellAreaKm2(fine))
}

func TestEdgeLengthDecreasesWithResolution(t *testing.T) {
	assert.Greater(t, EdgeLengthKm(0), EdgeLengthKm(5))
}
