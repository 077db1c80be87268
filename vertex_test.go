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

func TestVertexNumForDirectionRejectsCenterAndInvalid(t *testing.T) {
	hex := newCellID(2, 10, CENTER_DIGIT)
	assert.Equal(t, INVALID_VERTEX_NUM, vertexNumForDirection(hex, CENTER_DIGIT))
	assert.Equal(t, INVALID_VERTEX_NUM, vertexNumForDirection(hex, INVALID_DIGIT+1))
}

func TestVertexNumForDirectionRejectsDeletedKAxisOnPentagon(t *testing.T) {
	pentagon := newCellID(2, 4, CENTER_DIGIT)
	assert.True(t, pentagon.IsPentagon())
	assert.Equal(t, INVALID_VERTEX_NUM, vertexNumForDirection(pentagon, K_AXES_DIGIT))
}

func TestVertexNumForDirectionHexagonYieldsAllSixVertexes(t *testing.T) {
	hex := newCellID(2, 10, CENTER_DIGIT)
	seen := make(map[int]bool)
	for _, dir := range DIRECTIONS {
		v := vertexNumForDirection(hex, dir)
		assert.True(t, v >= 0 && v < NUM_HEX_VERTS, "vertex %d out of range for direction %d", v, dir)
		seen[v] = true
	}
	assert.Len(t, seen, NUM_HEX_VERTS)
}
