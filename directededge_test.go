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

func firstNeighborOf(t *testing.T, origin CellID) CellID {
	t.Helper()
	cells := KRing(origin, 1)
	for _, c := range cells {
		if c != CELL_NULL && c != origin {
			return c
		}
	}
	t.Fatalf("no neighbor found for %s", origin.String())
	return CELL_NULL
}

func TestCellsAreNeighborsRejectsSelf(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	assert.False(t, CellsAreNeighbors(origin, origin))
}

func TestDirectedEdgeRoundTrip(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	destination := firstNeighborOf(t, origin)

	edge := GetDirectedEdge(origin, destination)
	assert.True(t, IsValidDirectedEdge(edge))
	assert.Equal(t, origin, GetOriginFromDirectedEdge(edge))
	assert.Equal(t, destination, GetDestinationFromDirectedEdge(edge))

	pair := make([]CellID, 2)
	GetCellsFromDirectedEdge(edge, &pair)
	assert.Equal(t, []CellID{origin, destination}, pair)
}

func TestGetDirectedEdgesFromCellShareOrigin(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)

	edges := make([]CellID, 6)
	GetDirectedEdgesFromCell(origin, &edges)

	for _, edge := range edges {
		assert.Equal(t, origin, GetOriginFromDirectedEdge(edge))
	}
}

func TestDirectedEdgeBoundaryHasTwoVertexes(t *testing.T) {
	origin := newCellID(3, 16, CENTER_DIGIT)
	destination := firstNeighborOf(t, origin)
	edge := GetDirectedEdge(origin, destination)

	var boundary GeoBoundary
	GetDirectedEdgeBoundary(edge, &boundary)
	assert.True(t, boundary.NumVerts() == 2 || boundary.NumVerts() == 3, "edge boundary should have 2 vertexes, or 3 if it crosses an icosahedron edge")
}
