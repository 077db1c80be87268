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

func TestGridDistanceToSelfIsZero(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	assert.Equal(t, 0, GridDistance(origin, origin))
}

func TestGridDistanceToDirectNeighborIsOne(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	neighbor := firstNeighborOf(t, origin)
	assert.Equal(t, 1, GridDistance(origin, neighbor))
}

func TestGridLineEndpointsMatchInputs(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	neighbor := firstNeighborOf(t, origin)

	size := GridLineSize(origin, neighbor)
	assert.Equal(t, 2, size)

	line := make([]CellID, size)
	status := GridLine(origin, neighbor, &line)
	assert.Equal(t, 0, status)
	assert.Equal(t, origin, line[0])
	assert.Equal(t, neighbor, line[len(line)-1])
}

func TestGridLineSizeMatchesDistancePlusOne(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	neighbor := firstNeighborOf(t, origin)
	assert.Equal(t, GridDistance(origin, neighbor)+1, GridLineSize(origin, neighbor))
}
