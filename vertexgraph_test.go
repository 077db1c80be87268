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

func TestCellsToOutlineLoopsEmptyInput(t *testing.T) {
	loops, err := CellsToOutlineLoops(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, len(loops))
}

func TestCellsToOutlineLoopsRejectsMixedResolutions(t *testing.T) {
	a := newCellID(5, 16, CENTER_DIGIT)
	b := newCellID(6, 16, CENTER_DIGIT)

	_, err := CellsToOutlineLoops([]CellID{a, b})
	assert.ErrorIs(t, err, ErrMixedResolutionCells)
}

func TestCellsToOutlineLoopsSingleCellMatchesBoundary(t *testing.T) {
	cell := newCellID(5, 16, CENTER_DIGIT)

	var boundary GeoBoundary
	ToGeoBoundary(cell, &boundary)

	loops, err := CellsToOutlineLoops([]CellID{cell})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(loops))
	assert.Equal(t, boundary.NumVerts(), len(loops[0]))
}

func TestCellsToOutlineLoopsDissolvesSharedEdges(t *testing.T) {
	origin := newCellID(5, 16, CENTER_DIGIT)
	ring := KRing(origin, 1)

	loops, err := CellsToOutlineLoops(ring)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(loops))

	// A filled 1-ring's outline has strictly more vertexes than a lone
	// hexagon's boundary, since its perimeter is longer, but the interior
	// edges shared between neighboring cells must not appear at all.
	var boundary GeoBoundary
	ToGeoBoundary(origin, &boundary)
	assert.Greater(t, len(loops[0]), boundary.NumVerts())
}
