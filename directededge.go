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

// CellsAreNeighbors returns whether or not the provided cell addresses are
// neighbors.
func CellsAreNeighbors(origin CellID, destination CellID) bool {
	// Make sure they're hexagon indexes
	if CELL_GET_MODE(origin) != CELL_HEXAGON_MODE ||
		CELL_GET_MODE(destination) != CELL_HEXAGON_MODE {
		return false
	}

	// Hexagons cannot be neighbors with themselves
	if origin == destination {
		return false
	}

	// Only hexagons in the same resolution can be neighbors
	if CELL_GET_RESOLUTION(origin) != CELL_GET_RESOLUTION(destination) {
		return false
	}

	// the address Indexes that share the same parent are very likely to be neighbors
	// Child 0 is neighbor with all of its parent's 'offspring', the other
	// children are neighbors with 3 of the 7 children. So a simple comparison
	// of origin and destination parents and then a lookup table of the children
	// is a super-cheap way to possibly determine they are neighbors.
	parentRes := CELL_GET_RESOLUTION(origin) - 1
	if parentRes > 0 && (origin.ToParent(parentRes) == destination.ToParent(parentRes)) {
		originResDigit := CELL_GET_INDEX_DIGIT(origin, parentRes+1)
		destinationResDigit := CELL_GET_INDEX_DIGIT(destination, parentRes+1)
		if originResDigit == CENTER_DIGIT || destinationResDigit == CENTER_DIGIT {
			return true
		}
		// These sets are the relevant neighbors in the clockwise
		// and counter-clockwise
		var neighborSetClockwise = []Direction{
			CENTER_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
			IK_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT,
		}
		var neighborSetCounterclockwise = []Direction{
			CENTER_DIGIT, IK_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT,
			IJ_AXES_DIGIT, I_AXES_DIGIT, J_AXES_DIGIT,
		}
		if neighborSetClockwise[originResDigit] == destinationResDigit ||
			neighborSetCounterclockwise[originResDigit] == destinationResDigit {
			return true
		}
	}

	// Otherwise, we have to determine the neighbor relationship the "hard" way.
	neighborRing := KRing(origin, 1)
	for i := 0; i < 7; i++ {
		if neighborRing[i] == destination {
			return true
		}
	}

	// Made it here, they definitely aren't neighbors
	return false
}

// GetDirectedEdge returns a unidirectional edge cell address based on the
// provided origin and destination.
func GetDirectedEdge(origin CellID, destination CellID) CellID {
	// Short-circuit and return an invalid index value if they are not neighbors
	if CellsAreNeighbors(origin, destination) == false {
		return CELL_NULL
	}

	// Otherwise, determine the IJK direction from the origin to the destination
	output := origin
	CELL_SET_MODE(&output, CELL_UNIEDGE_MODE)

	isPentagon := IsPentagon(origin)

	// Checks each neighbor, in order, to determine which direction the
	// destination neighbor is located. Skips CENTER_DIGIT since that
	// would be this index.
	var neighbor CellID
	// Excluding from branch coverage as we never hit the end condition
	// LCOV_EXCL_BR_START
	direction := K_AXES_DIGIT
	if isPentagon {
		direction = J_AXES_DIGIT
	}

	for ; direction < Direction(NUM_DIGITS); direction++ {
		// LCOV_EXCL_BR_STOP
		rotations := 0
		neighbor = neighborRotations(origin, direction, &rotations)
		if neighbor == destination {
			CELL_SET_RESERVED_BITS(&output, int(direction))
			return output
		}
	}

	// This should be impossible, return CELL_NULL in this case;
	return CELL_NULL // LCOV_EXCL_LINE
}

// GetOriginFromDirectedEdge returns the origin hexagon from the
// unidirectional edge CellID.
func GetOriginFromDirectedEdge(edge CellID) CellID {
	if CELL_GET_MODE(edge) != CELL_UNIEDGE_MODE {
		return CELL_NULL
	}
	origin := edge
	CELL_SET_MODE(&origin, CELL_HEXAGON_MODE)
	CELL_SET_RESERVED_BITS(&origin, 0)
	return origin
}

// GetDestinationFromDirectedEdge returns the destination hexagon
// from the unidirectional edge CellID.
func GetDestinationFromDirectedEdge(edge CellID) CellID {
	if CELL_GET_MODE(edge) != CELL_UNIEDGE_MODE {
		return CELL_NULL
	}
	direction := CELL_GET_RESERVED_BITS(edge)
	rotations := 0
	destination := neighborRotations(
		GetOriginFromDirectedEdge(edge), Direction(direction), &rotations)
	return destination
}

// IsValidDirectedEdge determines if the provided CellID is a valid
// unidirectional edge index.
func IsValidDirectedEdge(edge CellID) bool {
	if CELL_GET_MODE(edge) != CELL_UNIEDGE_MODE {
		return false
	}

	neighborDirection := CELL_GET_RESERVED_BITS(edge)
	if neighborDirection <= int(CENTER_DIGIT) || neighborDirection >= NUM_DIGITS {
		return false
	}

	origin := GetOriginFromDirectedEdge(edge)
	if IsPentagon(origin) && neighborDirection == int(K_AXES_DIGIT) {
		return false
	}

	return IsValidCellID(origin)
}

// GetCellsFromDirectedEdge returns the origin, destination pair of
// hexagon IDs for the given edge ID.
func GetCellsFromDirectedEdge(edge CellID, originDestination *[]CellID) {
	(*originDestination)[0] = GetOriginFromDirectedEdge(edge)
	(*originDestination)[1] = GetDestinationFromDirectedEdge(edge)
}

// GetDirectedEdgesFromCell provides all of the unidirectional edges
// from the current CellID.
func GetDirectedEdgesFromCell(origin CellID, edges *[]CellID) {
	// Determine if the origin is a pentagon and special treatment needed.
	isPentagon := IsPentagon(origin)

	// This is actually quite simple. Just modify the bits of the origin
	// slightly for each direction, except the 'k' direction in pentagons,
	// which is zeroed.
	for i := 0; i < 6; i++ {
		if isPentagon && i == 0 {
			(*edges)[i] = CELL_NULL
		} else {
			(*edges)[i] = origin
			CELL_SET_MODE(&(*edges)[i], CELL_UNIEDGE_MODE)
			CELL_SET_RESERVED_BITS(&(*edges)[i], i+1)
		}
	}
}

// GetDirectedEdgeBoundary provides the coordinates defining the
// unidirectional edge.
func GetDirectedEdgeBoundary(edge CellID, gb *GeoBoundary) {
	// Get the origin and neighbor direction from the edge
	direction := CELL_GET_RESERVED_BITS(edge)
	origin := GetOriginFromDirectedEdge(edge)

	// Get the start vertex for the edge
	startVertex := vertexNumForDirection(origin, Direction(direction))
	if startVertex == INVALID_VERTEX_NUM {
		// This is not actually an edge (i.e. no valid direction),
		// so return no vertices.
		gb.numVerts = 0
		return
	}

	// Get the geo boundary for the appropriate vertexes of the origin. Note
	// that while there are always 2 topological vertexes per edge, the
	// resulting edge boundary may have an additional distortion vertex if it
	// crosses an edge of the icosahedron.
	var fijk FaceIJK
	toFaceIjk(origin, &fijk)
	res := CELL_GET_RESOLUTION(origin)
	isPentagon := IsPentagon(origin)

	if isPentagon {
		_faceIjkPentToGeoBoundary(&fijk, res, startVertex, 2, gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, startVertex, 2, gb)
	}
}
