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

func TestNeighborRotationsAreMutual(t *testing.T) {
	origin := newCellID(0, 10, CENTER_DIGIT)

	for _, dir := range DIRECTIONS {
		rotations := 0
		neighbor := neighborRotations(origin, dir, &rotations)
		if neighbor == CELL_NULL {
			continue
		}

		back := directionForNeighbor(neighbor, origin)
		assert.True(t, back != INVALID_DIGIT, "neighbor %s of %s should point back to origin", neighbor.String(), origin.String())
	}
}

func TestDirectionForNeighborRejectsNonNeighbors(t *testing.T) {
	a := newCellID(0, 10, CENTER_DIGIT)
	b := newCellID(0, 75, CENTER_DIGIT)
	assert.Equal(t, INVALID_DIGIT, directionForNeighbor(a, b))
}
