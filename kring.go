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

// maxKringSize returns the maximum number of cells that result from the
// kRing algorithm with the given k.
//
// Formula source and proof: https://oeis.org/A003215
func maxKringSize(k int) int {
	return 3*k*(k+1) + 1
}

// MaxKringSize returns the maximum number of cells that result from the
// KRing algorithm with the given k.
func MaxKringSize(k int) int {
	return maxKringSize(k)
}

// _kRingInternal performs a breadth-first flood of the hex grid starting at
// origin, recording each visited cell and its distance from origin into the
// out/distances scratch slices (each of length maxIdx). Cells are stored
// using open-addressed hashing on the CellID value so that the same cell
// reached by a shorter path overwrites one reached by a longer path.
//
// Distortion around a pentagon may produce CELL_NULL neighbors; those
// branches are simply not explored further, following the same bounded
// flood-fill the teacher used for its kRing pseudocode.
func _kRingInternal(origin CellID, k int, out []CellID, distances []int, maxIdx int, curK int) {
	if origin == CELL_NULL {
		return
	}

	off := int(uint64(origin) % uint64(maxIdx))
	for out[off] != CELL_NULL && out[off] != origin {
		off = (off + 1) % maxIdx
	}

	if out[off] == origin && distances[off] <= curK {
		return
	}

	out[off] = origin
	distances[off] = curK

	if curK >= k {
		return
	}

	for i := 0; i < 6; i++ {
		rotations := 0
		neighbor := neighborRotations(origin, DIRECTIONS[i], &rotations)
		_kRingInternal(neighbor, k, out, distances, maxIdx, curK+1)
	}
}

// KRingDistances produces the hollow hexagonal rings centered at origin out
// to distance k (inclusive), returning each discovered cell alongside its
// distance from origin. The returned slice has length maxKringSize(k); some
// positions may be CELL_NULL where the hash probe found no cell (this can
// happen for positions made unreachable by pentagon distortion).
func KRingDistances(origin CellID, k int) ([]CellID, []int) {
	maxIdx := maxKringSize(k)
	out := make([]CellID, maxIdx)
	distances := make([]int, maxIdx)

	_kRingInternal(origin, k, out, distances, maxIdx, 0)

	return out, distances
}

// KRing produces all cells within grid distance k of origin, as a slice of
// length maxKringSize(k). The order of the cells is not defined.
func KRing(origin CellID, k int) []CellID {
	out, _ := KRingDistances(origin, k)
	return out
}

// HexRing produces the hollow hexagonal ring centered at origin at exactly
// distance k, returning an error if the ring cannot be traced cleanly (for
// example if it passes adjacent to a pentagon).
//
// Unlike KRing, which floods outward and tolerates distortion, HexRing walks
// the ring boundary directly and is therefore far cheaper when no pentagon
// distortion is present, but it must fail rather than silently skip cells
// when it is.
func HexRing(origin CellID, k int) ([]CellID, error) {
	if k < 0 {
		return nil, ErrRingTraceFailed
	}
	if k == 0 {
		return []CellID{origin}, nil
	}

	out := make([]CellID, 6*k)

	// Walk to the start of the ring: k steps in the "next ring" direction.
	ring := origin
	rotations := 0
	for i := 0; i < k; i++ {
		ring = neighborRotations(ring, NEXT_RING_DIRECTION, &rotations)
		if ring == CELL_NULL || IsPentagon(ring) {
			return nil, ErrRingTraceFailed
		}
	}

	if IsPentagon(ring) {
		// The direct walk cannot safely trace a ring through a pentagon;
		// callers needing cells near a pentagon should use KRing instead.
		return nil, ErrRingTraceFailed
	}

	idx := 0
	for face := 0; face < 6; face++ {
		for step := 0; step < k; step++ {
			out[idx] = ring
			idx++

			ring = neighborRotations(ring, DIRECTIONS[face], &rotations)
			if ring == CELL_NULL {
				return nil, ErrRingTraceFailed
			}
			if IsPentagon(ring) {
				return nil, ErrRingTraceFailed
			}
		}
	}

	// A clean walk ends back on the first cell of the ring.
	if ring != out[0] {
		return nil, ErrRingTraceFailed
	}

	return out, nil
}
