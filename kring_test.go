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

func TestMaxKringSize(t *testing.T) {
	assert.Equal(t, 1, maxKringSize(0))
	assert.Equal(t, 7, maxKringSize(1))
	assert.Equal(t, 19, maxKringSize(2))
	assert.Equal(t, MaxKringSize(2), maxKringSize(2))
}

func TestKRingZeroIsOrigin(t *testing.T) {
	origin := newCellID(0, 10, CENTER_DIGIT)
	cells := KRing(origin, 0)
	assert.Len(t, cells, 1)
	assert.Equal(t, origin, cells[0])
}

func TestKRingContainsOriginAndNeighbors(t *testing.T) {
	origin := newCellID(3, 10, CENTER_DIGIT)
	cells, distances := KRingDistances(origin, 1)
	assert.Len(t, cells, 7)

	found := 0
	for i, c := range cells {
		if c == CELL_NULL {
			continue
		}
		if c == origin {
			assert.Equal(t, 0, distances[i])
		}
		found++
	}
	assert.True(t, found >= 1)
}

func TestHexRingZeroIsOrigin(t *testing.T) {
	origin := newCellID(3, 10, CENTER_DIGIT)
	ring, err := HexRing(origin, 0)
	assert.NoError(t, err)
	assert.Equal(t, []CellID{origin}, ring)
}

func TestHexRingRejectsNegativeK(t *testing.T) {
	origin := newCellID(3, 10, CENTER_DIGIT)
	_, err := HexRing(origin, -1)
	assert.ErrorIs(t, err, ErrRingTraceFailed)
}

func TestHexRingMatchesKRingForInteriorCell(t *testing.T) {
	origin := newCellID(5, 16, CENTER_DIGIT)
	ring, err := HexRing(origin, 1)
	assert.NoError(t, err)
	assert.Len(t, ring, 6)

	kringCells, kringDistances := KRingDistances(origin, 1)
	atDistanceOne := make(map[CellID]bool)
	for i, c := range kringCells {
		if c != CELL_NULL && kringDistances[i] == 1 {
			atDistanceOne[c] = true
		}
	}

	for _, c := range ring {
		assert.True(t, atDistanceOne[c], "ring cell %s should be at grid distance 1 in the flood", c.String())
	}
}
