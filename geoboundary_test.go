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

func TestToGeoBoundaryHexagonHasSixVertexes(t *testing.T) {
	hex := newCellID(3, 16, CENTER_DIGIT)
	var boundary GeoBoundary
	ToGeoBoundary(hex, &boundary)
	assert.Equal(t, NUM_HEX_VERTS, boundary.NumVerts())
}

func TestToGeoBoundaryClassIIIPentagonHasTenVertexes(t *testing.T) {
	pentagon := newCellID(3, 4, CENTER_DIGIT)
	var boundary GeoBoundary
	ToGeoBoundary(pentagon, &boundary)
	assert.Equal(t, 2*NUM_PENT_VERTS, boundary.NumVerts())
}

func TestGeoBoundaryVertexesAreWithinLatLonRange(t *testing.T) {
	hex := newCellID(4, 16, CENTER_DIGIT)
	var boundary GeoBoundary
	ToGeoBoundary(hex, &boundary)

	for i := 0; i < boundary.NumVerts(); i++ {
		v := boundary.Vertex(i)
		assert.True(t, v.Lat() >= -M_PI_2 && v.Lat() <= M_PI_2, "vertex latitude out of range")
		assert.True(t, v.Lon() >= -M_PI && v.Lon() <= M_PI, "vertex longitude out of range")
	}
}
