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

// INVALID_VERTEX_NUM marks a direction with no corresponding topological
// vertex (CENTER_DIGIT, or the deleted k-axis on a pentagon).
const INVALID_VERTEX_NUM = -1

// directionToVertexNumHex2 maps a neighbor direction to the topological
// vertex number shared with that neighbor, for a hexagon at a Class II
// resolution.
var directionToVertexNumHex2 = [7]int{
	INVALID_VERTEX_NUM, 3, 1, 2, 5, 4, 0,
}

// directionToVertexNumHex3 is the Class III counterpart of
// directionToVertexNumHex2.
var directionToVertexNumHex3 = [7]int{
	INVALID_VERTEX_NUM, 1, 3, 2, 5, 0, 4,
}

// directionToVertexNumPent2 is the pentagon counterpart of
// directionToVertexNumHex2; the deleted k-axis direction has no vertex.
var directionToVertexNumPent2 = [7]int{
	INVALID_VERTEX_NUM, INVALID_VERTEX_NUM, 1, 2, 4, 3, 0,
}

// directionToVertexNumPent3 is the Class III counterpart of
// directionToVertexNumPent2.
var directionToVertexNumPent3 = [7]int{
	INVALID_VERTEX_NUM, INVALID_VERTEX_NUM, 2, 1, 3, 0, 4,
}

// vertexNumForDirection returns the vertex number (0-5 for hexagons, 0-4 for
// pentagons) of the vertex shared between origin and its neighbor in the
// given direction, or INVALID_VERTEX_NUM if direction names no such vertex.
func vertexNumForDirection(origin CellID, direction Direction) int {
	isPentagon := IsPentagon(origin)
	if direction == CENTER_DIGIT ||
		(isPentagon && direction == K_AXES_DIGIT) ||
		direction >= Direction(NUM_DIGITS) {
		return INVALID_VERTEX_NUM
	}

	res := CELL_GET_RESOLUTION(origin)
	classIII := isResClassIII(res)

	if isPentagon {
		if classIII {
			return directionToVertexNumPent3[direction]
		}
		return directionToVertexNumPent2[direction]
	}
	if classIII {
		return directionToVertexNumHex3[direction]
	}
	return directionToVertexNumHex2[direction]
}
