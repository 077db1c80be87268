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
	"math"
	"strconv"
)

type CellID uint64

// define's of constants for bitwise manipulation of CellID's.
const (
	// The number of bits in an cell address.
	CELL_NUM_BITS = 64

	// The bit offset of the highest (reserved) bit in an cell address.
	CELL_MAX_OFFSET = 63

	// The bit offset of the mode in an cell address.
	CELL_MODE_OFFSET = 59

	// The bit offset of the base cell in an cell address.
	CELL_BC_OFFSET = 45

	// The bit offset of the resolution in an cell address.
	CELL_RES_OFFSET = 52

	// The bit offset of the reserved bits in an cell address.
	CELL_RESERVED_OFFSET = 56

	// The number of bits in a single resolution digit.
	CELL_PER_DIGIT_OFFSET = 3

	// 1 in the highest bit, 0's everywhere else.
	CELL_HIGH_BIT_MASK = uint64(1) << CELL_MAX_OFFSET

	// 0 in the highest bit, 1's everywhere else.
	CELL_HIGH_BIT_MASK_NEGATIVE = ^CELL_HIGH_BIT_MASK

	// 1's in the 4 mode bits, 0's everywhere else.
	CELL_MODE_MASK = uint64(15) << CELL_MODE_OFFSET

	// 0's in the 4 mode bits, 1's everywhere else.
	CELL_MODE_MASK_NEGATIVE = ^CELL_MODE_MASK

	// 1's in the 7 base cell bits, 0's everywhere else.
	CELL_BC_MASK = uint64(127) << CELL_BC_OFFSET

	// 0's in the 7 base cell bits, 1's everywhere else.
	CELL_BC_MASK_NEGATIVE = ^CELL_BC_MASK

	// 1's in the 4 resolution bits, 0's everywhere else.
	CELL_RES_MASK = uint64(15) << CELL_RES_OFFSET

	// 0's in the 4 resolution bits, 1's everywhere else.
	CELL_RES_MASK_NEGATIVE = ^CELL_RES_MASK

	// 1's in the 3 reserved bits, 0's everywhere else.
	CELL_RESERVED_MASK = uint64(7) << CELL_RESERVED_OFFSET

	// 0's in the 3 reserved bits, 1's everywhere else.
	CELL_RESERVED_MASK_NEGATIVE = ^CELL_RESERVED_MASK

	// 1's in the 3 bits of res 15 digit bits, 0's everywhere else.
	CELL_DIGIT_MASK = uint64(7)

	// 0's in the 3 bits of res 15 digit bits, 1's everywhere else.
	CELL_DIGIT_MASK_NEGATIVE = ^CELL_DIGIT_MASK
)

// cell address with mode 0, res 0, base cell 0, and 7 for all index digits.
// Typically used to initialize the creation of an cell index, which
// expects all direction digits to be 7 beyond the cell's resolution.
const CELL_INIT = CellID(35184372088831)

// Invalid index used to indicate an error from geoToCellID and related functions
// or missing data in arrays of cell indices. Analogous to NaN in floating point.
const CELL_NULL = CellID(0)

// CELL_GET_HIGH_BIT gets the highest bit of the cell address.
func CELL_GET_HIGH_BIT(cell CellID) int {
	return int((uint64(cell) & CELL_HIGH_BIT_MASK) >> CELL_MAX_OFFSET)
}

// GetHighBit gets the highest bit of the cell address.
func (cell CellID) GetHighBit() int {
	return CELL_GET_HIGH_BIT(cell)
}

// CELL_SET_HIGH_BIT sets the highest bit of the cell to v.
func CELL_SET_HIGH_BIT(cell *CellID, v int) {
	*cell = CellID((uint64(*cell) & CELL_HIGH_BIT_MASK_NEGATIVE) | ((uint64(v)) << CELL_MAX_OFFSET))
}

// SetHighBit sets the highest bit of the cell to v.
func (cell *CellID) SetHighBit(v int) {
	CELL_SET_HIGH_BIT(cell, v)
}

// CELL_GET_MODE gets the integer mode of cell.
func CELL_GET_MODE(cell CellID) int {
	return int((uint64(cell) & CELL_MODE_MASK) >> CELL_MODE_OFFSET)
}

// GetMode gets the integer mode of cell.
func (cell CellID) GetMode() int {
	return CELL_GET_MODE(cell)
}

// CELL_SET_MODE sets the integer mode of cell to v.
func CELL_SET_MODE(cell *CellID, v int) {
	*cell = CellID((uint64(*cell) & CELL_MODE_MASK_NEGATIVE) | (uint64(v) << CELL_MODE_OFFSET))
}

// SetMode sets the integer mode of cell to v.
func (cell *CellID) SetMode(v int) {
	CELL_SET_MODE(cell, v)
}

// CELL_GET_BASE_CELL gets the integer base cell of cell.
func CELL_GET_BASE_CELL(cell CellID) int {
	return int((uint64(cell) & CELL_BC_MASK) >> CELL_BC_OFFSET)
}

// GetBaseCell gets the integer base cell of cell.
func (cell CellID) GetBaseCell() int {
	return CELL_GET_BASE_CELL(cell)
}

// CELL_SET_BASE_CELL sets the integer base cell of cell to bc.
func CELL_SET_BASE_CELL(cell *CellID, bc int) {
	*cell = CellID((uint64(*cell) & CELL_BC_MASK_NEGATIVE) | (uint64(bc) << CELL_BC_OFFSET))
}

// SetBaseCell sets the integer base cell of cell to bc.
func (cell *CellID) SetBaseCell(bc int) {
	CELL_SET_BASE_CELL(cell, bc)
}

// CELL_GET_RESOLUTION gets the integer resolution of cell.
func CELL_GET_RESOLUTION(cell CellID) int {
	return int((uint64(cell) & CELL_RES_MASK) >> CELL_RES_OFFSET)
}

// GetResolution gets the integer resolution of cell.
func (cell CellID) GetResolution() int {
	return CELL_GET_RESOLUTION(cell)
}

// CELL_SET_RESOLUTION sets the integer resolution of cell.
func CELL_SET_RESOLUTION(cell *CellID, res int) {
	*cell = CellID((uint64(*cell) & CELL_RES_MASK_NEGATIVE) | (uint64(res) << CELL_RES_OFFSET))
}

// SetResolution sets the integer resolution of cell.
func (cell *CellID) SetResolution(res int) {
	CELL_SET_RESOLUTION(cell, res)
}

// CELL_GET_RESERVED_BITS gets a value in the reserved space. Should always be zero for valid indexes.
func CELL_GET_RESERVED_BITS(cell CellID) int {
	return int((uint64(cell) & CELL_RESERVED_MASK) >> CELL_RESERVED_OFFSET)
}

// GetReservedBits gets a value in the reserved space. Should always be zero for valid indexes.
func (cell CellID) GetReservedBits() int {
	return CELL_GET_RESERVED_BITS(cell)
}

// CELL_SET_RESERVED_BITS sets a value in the reserved space. Setting to non-zero
// may produce invalid indexes.
func CELL_SET_RESERVED_BITS(cell *CellID, v int) {
	*cell = CellID((uint64(*cell) & CELL_RESERVED_MASK_NEGATIVE) | (uint64(v) << CELL_RESERVED_OFFSET))
}

// SetReservedBits sets a value in the reserved space. Setting to non-zero
// may produce invalid indexes.
func (cell *CellID) SetReservedBits(v int) {
	CELL_SET_RESERVED_BITS(cell, v)
}

// CELL_GET_INDEX_DIGIT gets the resolution res integer digit (0-7) of cell.
func CELL_GET_INDEX_DIGIT(cell CellID, res int) Direction {
	resDigit := (MAX_RES - res) * CELL_PER_DIGIT_OFFSET

	return Direction((uint64(cell) >> resDigit) & CELL_DIGIT_MASK)
}

// GetIndexDigit gets the resolution res integer digit (0-7) of cell.
func (cell CellID) GetIndexDigit(res int) Direction {
	return CELL_GET_INDEX_DIGIT(cell, res)
}

// CELL_SET_INDEX_DIGIT sets the resolution res digit of cell to the integer digit (0-7)
func CELL_SET_INDEX_DIGIT(cell *CellID, res int, digit Direction) {
	resDigit := (MAX_RES - res) * CELL_PER_DIGIT_OFFSET

	*cell = CellID((uint64(*cell) & ^(CELL_DIGIT_MASK << resDigit)) |
		(uint64(digit) << resDigit))
}

// SetIndexDigit sets the resolution res digit of cell to the integer digit (0-7)
func (cell *CellID) SetIndexDigit(res int, digit Direction) {
	CELL_SET_INDEX_DIGIT(cell, res, digit)
}

// Return codes for compact
const (
	COMPACT_SUCCESS       = 0
	COMPACT_LOOP_EXCEEDED = -1
	COMPACT_DUPLICATE     = -2
	COMPACT_ALLOC_FAILED  = -3
)

// GetResolution returns the resolution of an cell address.
//
// Deprecated: Use (CellID).GetResolution instead.
func GetResolution(h CellID) int { return CELL_GET_RESOLUTION(h) }

// GetBaseCell returns the base cell "number" of an cell (hexagon or pentagon).
//
// Note: Technically works on the address edges, but will return base cell of the
// origin cell.
//
// Deprecated: Use (CellID).GetBaseCell instead.
func GetBaseCell(h CellID) int { return CELL_GET_BASE_CELL(h) }

// ParseCellID converts a string representation of an cell address into an cell address.
//
// Return The cell address corresponding to the string argument, or CELL_NULL if
// invalid.
func ParseCellID(str string) CellID {
	// If failed, h will be unmodified and we should return CELL_NULL anyways.
	u64, err := strconv.ParseUint(str, 16, 64)
	if err != nil {
		return CELL_NULL
	}
	return CellID(u64)
}

// ToHexString converts an cell address into a string representation.
//
// Deprecated: Use (CellID).String instead.
func ToHexString(h CellID) string {
	return strconv.FormatUint(uint64(h), 16)
}

// String converts an cell address into a string representation.
func (cell CellID) String() string {
	return strconv.FormatUint(uint64(cell), 16)
}

// IsValid returns whether or not an cell address is a valid cell (hexagon or
// pentagon).
//
// Return true if the cell address if valid, and false if it is not.
func (cell CellID) IsValid() bool {
	if CELL_GET_HIGH_BIT(cell) != 0 {
		return false
	}

	if CELL_GET_MODE(cell) != CELL_HEXAGON_MODE {
		return false
	}

	if CELL_GET_RESERVED_BITS(cell) != 0 {
		return false
	}

	baseCell := CELL_GET_BASE_CELL(cell)
	if baseCell < 0 || baseCell >= NUM_BASE_CELLS {
		return false
	}

	res := CELL_GET_RESOLUTION(cell)
	if res < 0 || res > MAX_RES {
		return false
	}

	foundFirstNonZeroDigit := false
	for r := 1; r <= res; r++ {
		digit := CELL_GET_INDEX_DIGIT(cell, r)

		if !foundFirstNonZeroDigit && digit != CENTER_DIGIT {
			foundFirstNonZeroDigit = true
			if _isBaseCellPentagon(baseCell) && digit == K_AXES_DIGIT {
				return false
			}
		}

		if digit < CENTER_DIGIT || digit >= Direction(NUM_DIGITS) {
			return false
		}
	}

	for r := res + 1; r <= MAX_RES; r++ {
		digit := CELL_GET_INDEX_DIGIT(cell, r)
		if digit != INVALID_DIGIT {
			return false
		}
	}

	return true
}

// IsValidCellID returns whether or not an cell address is a valid cell (hexagon or
// pentagon).
//
// Return true if the cell address if valid, and false if it is not.
func IsValidCellID(h CellID) bool {
	return h.IsValid()
}

// newCellID initializes an cell address.
func newCellID(res int, baseCell int, initDigit Direction) CellID {
	h := CELL_INIT
	CELL_SET_MODE(&h, CELL_HEXAGON_MODE)
	CELL_SET_RESOLUTION(&h, res)
	CELL_SET_BASE_CELL(&h, baseCell)
	for r := 1; r <= res; r++ {
		CELL_SET_INDEX_DIGIT(&h, r, initDigit)
	}
	return h
}

// ToParent produces the parent index for a given cell address
//
// Return CellID of the parent, or CELL_NULL if you actually asked for a child
func (cell CellID) ToParent(parentRes int) CellID {
	childRes := CELL_GET_RESOLUTION(cell)
	if parentRes > childRes {
		return CELL_NULL
	} else if parentRes == childRes {
		return cell
	} else if parentRes < 0 || parentRes > MAX_RES {
		return CELL_NULL
	}

	parentH := cell
	CELL_SET_RESOLUTION(&parentH, parentRes)
	for i := parentRes + 1; i <= childRes; i++ {
		CELL_SET_INDEX_DIGIT(&parentH, i, Direction(CELL_DIGIT_MASK))
	}
	return parentH
}

// _isValidChildRes determines whether one resolution is a valid child
// resolution of another. Each resolution is considered a valid child resolution
// of itself.
//
// Return The validity of the child resolution.
func _isValidChildRes(parentRes int, childRes int) bool {
	if childRes < parentRes || childRes > MAX_RES {
		return false
	}
	return true
}

// MaxChildrenSize returns the maximum number of children possible for a
// given child level.
//
// Return int count of maximum number of children (equal for hexagons, less for
// pentagons.
func MaxChildrenSize(h CellID, childRes int) int {
	parentRes := CELL_GET_RESOLUTION(h)
	if !_isValidChildRes(parentRes, childRes) {
		return 0
	}
	return ipow(7, childRes-parentRes)
}

// makeDirectChild takes an index and immediately returns the immediate child
// index based on the specified cell number. Bit operations only, could generate
// invalid indexes if not careful (deleted cell under a pentagon).
//
// Return The new CellID for the child.
func makeDirectChild(h CellID, cellNumber Direction) CellID {
	childRes := CELL_GET_RESOLUTION(h) + 1

	childH := h
	CELL_SET_RESOLUTION(&childH, childRes)
	CELL_SET_INDEX_DIGIT(&childH, childRes, cellNumber)
	return childH
}

// ToChildren takes the given hexagon id and generates all of the children
// at the specified resolution storing them into the provided memory pointer.
// It's assumed that MaxChildrenSize was used to determine the allocation.
//
// Deprecated: Use (CellID).ToChildren instead.
func ToChildren(h CellID, childRes int, children *[]CellID) {
	parentRes := CELL_GET_RESOLUTION(h)
	if !_isValidChildRes(parentRes, childRes) {
		return
	} else if parentRes == childRes {
		*children = append(*children, h)
		return
	}

	isAPentagon := IsPentagon(h)
	for i := CENTER_DIGIT; i < 7; i++ {
		if isAPentagon && i == K_AXES_DIGIT {
			continue
		}

		ToChildren(makeDirectChild(h, i), childRes, children)
	}
}

// ToChildren takes the given hexagon id and generates all of the children
// at the specified resolution.
//
// TODO: enhance algorithm
func (cell CellID) ToChildren(childRes int) []CellID {
	buffer := make([]CellID, 0, MaxChildrenSize(cell, childRes))
	ToChildren(cell, childRes, &buffer)
	return buffer
}

// ToCenterChild produces the center child index for a given cell address at
// the specified resolution.
//
// Return CellID of the center child, or CELL_NULL if you actually asked for a
// parent.
func (cell CellID) ToCenterChild(childRes int) CellID {
	parentRes := CELL_GET_RESOLUTION(cell)
	if !_isValidChildRes(parentRes, childRes) {
		return CELL_NULL
	} else if childRes == parentRes {
		return cell
	}

	child := cell
	CELL_SET_RESOLUTION(&child, childRes)
	for i := parentRes + 1; i <= childRes; i++ {
		CELL_SET_INDEX_DIGIT(&child, i, 0)
	}
	return child
}

// Compact takes a set of hexagons all at the same resolution and compresses
// them by pruning full child branches to the parent level. This is also done
// for all parents recursively to get the minimum number of hex addresses that
// perfectly cover the defined space.
//
// Return an error code on bad input data.
func Compact(cellSet []CellID) ([]CellID, error) {
	if len(cellSet) == 0 {
		return nil, nil
	}

	res := CELL_GET_RESOLUTION(cellSet[0])
	if res == 0 {
		compacted := make([]CellID, len(cellSet))
		copy(compacted, cellSet)
		return compacted, nil
	}

	result := make([]CellID, 0, len(cellSet))
	remaining := make([]CellID, len(cellSet))
	copy(remaining, cellSet)

	for len(remaining) > 0 {
		if len(remaining) < 6 {
			// cannot compact more. append and break
			result = append(result, remaining...)
			break
		}

		// map[cell]count
		compactable := make(map[CellID]int, len(remaining))

		res := CELL_GET_RESOLUTION(remaining[0])
		parentRes := res - 1

		// count parent cells
		for _, cell := range remaining {
			parent := cell.ToParent(parentRes)
			isPentagon := IsPentagon(parent)
			if _, ok := compactable[parent]; ok {
				compactable[parent]++
				if compactable[parent] > 7 {
					return nil, ErrCompactDuplicate
				}
			} else if isPentagon {
				// set 2 if cell is pentagon. it helps checking if dragonball is completed.
				compactable[parent] = 2
			} else {
				compactable[parent] = 1
			}
		}

		// append uncompactable cells into result and cleanup remaining
		for i, cell := range remaining {
			parent := cell.ToParent(parentRes)
			if compactable[parent] < 7 {
				result = append(result, cell)
			}
			remaining[i] = 0
		}
		remaining = remaining[:0]

		// move compactable cells to remaining
		for cell, count := range compactable {
			if count == 7 {
				remaining = append(remaining, cell)
			}
		}
	}

	return result, nil
}

// Uncompact takes a compressed set of hexagons and expands back to the original
// set of hexagons.
//
// Return ErrUncompactResExceeded if any hexagon is smaller than the output
// resolution.
func Uncompact(compactedSet []CellID, res int) ([]CellID, error) {
	maxSize, err := MaxUncompactSize(compactedSet, res)
	if err != nil {
		return nil, err
	}

	cellSet := make([]CellID, 0, maxSize)

	for _, cell := range compactedSet {
		if cell == 0 {
			continue
		}

		if cell.GetResolution() == res {
			cellSet = append(cellSet, cell)
		} else {
			cellSet = append(cellSet, cell.ToChildren(res)...)
		}
	}

	return cellSet, nil
}

// MaxUncompactSize takes a compacted set of hexagons are provides an
// upper-bound estimate of the size of the uncompacted set of hexagons.
//
// Return The number of hexagons to allocate memory for, or a negative number
// if an error occurs.
func MaxUncompactSize(compactedSet []CellID, res int) (int, error) {
	maxNumHexagons := 0
	for i := 0; i < len(compactedSet); i++ {
		if compactedSet[i] == 0 {
			continue
		}
		currentRes := CELL_GET_RESOLUTION(compactedSet[i])
		if !_isValidChildRes(currentRes, res) {
			// Nonsensical. Abort.
			return 0, ErrUncompactResExceeded
		}
		if currentRes == res {
			maxNumHexagons++
		} else {
			// Bigger hexagon to reduce in size
			maxNumHexagons += MaxChildrenSize(compactedSet[i], res)
		}
	}
	return maxNumHexagons, nil
}

// IsResClassIII takes a hexagon ID and determines if it is in a Class III
// resolution (rotated versus the icosahedron and subject to shape distortion
// adding extra points on icosahedron edges, making them not true hexagons).
//
// Return true if the hexagon is class III, otherwise false.
func (cell CellID) IsResClassIII() bool {
	return CELL_GET_RESOLUTION(cell)%2 == 1
}

// IsPentagon takes an CellID and determines if it is actually a
// pentagon.
//
// Return true if it is a pentagon, otherwise false.
func IsPentagon(h CellID) bool {
	return _isBaseCellPentagon(CELL_GET_BASE_CELL(h)) &&
		leadingNonZeroDigit(h) == CENTER_DIGIT
}

// IsPentagon takes an CellID and determines if it is actually a
// pentagon.
//
// Return true if it is a pentagon, otherwise false.
func (cell CellID) IsPentagon() bool {
	return IsPentagon(cell)
}

// leadingNonZeroDigit returns the first non-zero digit of an CellID, scanning
// from resolution 1 towards finer resolutions.
func leadingNonZeroDigit(h CellID) Direction {
	for r := 1; r <= CELL_GET_RESOLUTION(h); r++ {
		if CELL_GET_INDEX_DIGIT(h, r) != CENTER_DIGIT {
			return CELL_GET_INDEX_DIGIT(h, r)
		}
	}

	// if we're here it's all 0's
	return CENTER_DIGIT
}

// rotateCell rotates every index digit of h once using the given per-digit
// rotation. rotateCell60ccw and rotateCell60cw share this walk and differ
// only in which direction digits rotate.
func rotateCell(h CellID, rotateDigit func(Direction) Direction) CellID {
	for r, res := 1, CELL_GET_RESOLUTION(h); r <= res; r++ {
		CELL_SET_INDEX_DIGIT(&h, r, rotateDigit(CELL_GET_INDEX_DIGIT(h, r)))
	}
	return h
}

// rotatePent rotates an CellID 60 degrees about a pentagonal center, skipping
// any leading 1 digits (k-axis) and correcting for the deleted k-axes
// sub-sequence once the first non-zero digit is found.
func rotatePent(h CellID, rotateDigit func(Direction) Direction) CellID {
	foundFirstNonZeroDigit := false
	for r, res := 1, CELL_GET_RESOLUTION(h); r <= res; r++ {
		// rotate this digit
		CELL_SET_INDEX_DIGIT(&h, r, rotateDigit(CELL_GET_INDEX_DIGIT(h, r)))

		// look for the first non-zero digit so we
		// can adjust for deleted k-axes sequence
		// if necessary
		if !foundFirstNonZeroDigit && CELL_GET_INDEX_DIGIT(h, r) != 0 {
			foundFirstNonZeroDigit = true

			// adjust for deleted k-axes sequence
			if leadingNonZeroDigit(h) == K_AXES_DIGIT {
				h = rotateCell(h, rotateDigit)
			}
		}
	}
	return h
}

// rotatePent60ccw rotate an CellID 60 degrees counter-clockwise about a
// pentagonal center.
func rotatePent60ccw(h CellID) CellID {
	return rotatePent(h, _rotate60ccw)
}

// rotatePent60cw rotate an CellID 60 degrees clockwise about a pentagonal
// center.
func rotatePent60cw(h CellID) CellID {
	return rotatePent(h, _rotate60cw)
}

// rotateCell60ccw rotate an CellID 60 degrees counter-clockwise.
func rotateCell60ccw(h CellID) CellID {
	return rotateCell(h, _rotate60ccw)
}

// rotateCell60cw rotate an CellID 60 degrees clockwise.
func rotateCell60cw(h CellID) CellID {
	return rotateCell(h, _rotate60cw)
}

// faceIjkToCellID convert an FaceIJK address to the corresponding CellID.
//
// Return The encoded CellID (or CELL_NULL on failure).
func faceIjkToCellID(fijk *FaceIJK, res int) CellID {
	// initialize the index
	h := CELL_INIT
	CELL_SET_MODE(&h, CELL_HEXAGON_MODE)
	CELL_SET_RESOLUTION(&h, res)

	// check for res 0/base cell
	if res == 0 {
		if fijk.coord.i > MAX_FACE_COORD ||
			fijk.coord.j > MAX_FACE_COORD ||
			fijk.coord.k > MAX_FACE_COORD {
			// out of range input
			return CELL_NULL
		}

		CELL_SET_BASE_CELL(&h, _faceIjkToBaseCell(fijk))
		return h
	}

	// we need to find the correct base cell FaceIJK for this cell address;
	// start with the passed in face and resolution res ijk coordinates
	// in that face's coordinate system
	fijkBC := *fijk

	// build the CellID from finest res up
	// adjust r for the fact that the res 0 base cell offsets the indexing
	// digits
	ijk := &fijkBC.coord
	for r := res - 1; r >= 0; r-- {
		lastIJK := *ijk
		var lastCenter CoordIJK
		if isResClassIII(r + 1) {
			// rotate ccw
			_upAp7(ijk)
			lastCenter = *ijk
			_downAp7(&lastCenter)
		} else {
			// rotate cw
			_upAp7r(ijk)
			lastCenter = *ijk
			_downAp7r(&lastCenter)
		}

		var diff CoordIJK
		_ijkSub(&lastIJK, &lastCenter, &diff)
		_ijkNormalize(&diff)

		CELL_SET_INDEX_DIGIT(&h, r+1, _unitIjkToDigit(&diff))
	}

	// fijkBC should now hold the IJK of the base cell in the
	// coordinate system of the current face

	if fijkBC.coord.i > MAX_FACE_COORD ||
		fijkBC.coord.j > MAX_FACE_COORD ||
		fijkBC.coord.k > MAX_FACE_COORD {
		// out of range input
		return CELL_NULL
	}

	// lookup the correct base cell
	baseCell := _faceIjkToBaseCell(&fijkBC)
	CELL_SET_BASE_CELL(&h, baseCell)

	// rotate if necessary to get canonical base cell orientation
	// for this base cell
	numRots := _faceIjkToBaseCellCCWrot60(&fijkBC)
	if _isBaseCellPentagon(baseCell) {
		// force rotation out of missing k-axes sub-sequence
		if leadingNonZeroDigit(h) == K_AXES_DIGIT {
			// check for a cw/ccw offset face; default is ccw
			if _baseCellIsCwOffset(baseCell, fijkBC.face) {
				h = rotateCell60cw(h)
			} else {
				h = rotateCell60ccw(h)
			}
		}

		for i := 0; i < numRots; i++ {
			h = rotatePent60ccw(h)
		}
	} else {
		for i := 0; i < numRots; i++ {
			h = rotateCell60ccw(h)
		}
	}

	return h
}

// GeoToCellID encodes a coordinate on the sphere to the cell address of the containing cell at
// the specified resolution.
//
// Return The encoded CellID (or CELL_NULL on failure).
func GeoToCellID(g *GeoCoord, res int) CellID {
	if res < 0 || res > MAX_RES {
		return CELL_NULL
	}

	if math.IsNaN(g.lat) || math.IsNaN(g.lon) || math.IsInf(g.lat, 0) || math.IsInf(g.lon, 0) {
		return CELL_NULL
	}

	var fijk FaceIJK
	_geoToFaceIjk(g, res, &fijk)
	return faceIjkToCellID(&fijk, res)
}

// toFaceIjkWithInitializedFijk convert an CellID to the FaceIJK address on
// a specified icosahedral face.
//
// Return true if the possibility of overage exists, otherwise false.
func toFaceIjkWithInitializedFijk(h CellID, fijk *FaceIJK) bool {
	ijk := &fijk.coord
	res := CELL_GET_RESOLUTION(h)

	// center base cell hierarchy is entirely on this face
	possibleOverage := true
	if !_isBaseCellPentagon(CELL_GET_BASE_CELL(h)) &&
		(res == 0 ||
			(fijk.coord.i == 0 && fijk.coord.j == 0 && fijk.coord.k == 0)) {
		possibleOverage = false
	}

	for r := 1; r <= res; r++ {
		if isResClassIII(r) {
			// Class III == rotate ccw
			_downAp7(ijk)
		} else {
			// Class II == rotate cw
			_downAp7r(ijk)
		}

		_neighbor(ijk, CELL_GET_INDEX_DIGIT(h, r))
	}

	return possibleOverage
}

// toFaceIjk convert an CellID to a FaceIJK address.
func toFaceIjk(h CellID, fijk *FaceIJK) {
	baseCell := CELL_GET_BASE_CELL(h)
	// adjust for the pentagonal missing sequence; all of sub-sequence 5 needs
	// to be adjusted (and some of sub-sequence 4 below)
	if _isBaseCellPentagon(baseCell) && leadingNonZeroDigit(h) == 5 {
		h = rotateCell60cw(h)
	}

	// start with the "home" face and ijk+ coordinates for the base cell of c
	*fijk = baseCellData[baseCell].homeFijk
	if !toFaceIjkWithInitializedFijk(h, fijk) {
		return // no overage is possible; h lies on this face
	}

	// if we're here we have the potential for an "overage"; i.e., it is
	// possible that c lies on an adjacent face

	origIJK := fijk.coord

	// if we're in Class III, drop into the next finer Class II grid
	res := CELL_GET_RESOLUTION(h)
	if isResClassIII(res) {
		// Class III
		_downAp7r(&fijk.coord)
		res++
	}

	// adjust for overage if needed
	// a pentagon base cell with a leading 4 digit requires special handling
	pentLeading4 := (_isBaseCellPentagon(baseCell) && leadingNonZeroDigit(h) == 4)
	if _adjustOverageClassII(fijk, res, pentLeading4, false) != NO_OVERAGE {
		// if the base cell is a pentagon we have the potential for secondary
		// overages
		if _isBaseCellPentagon(baseCell) {
			for _adjustOverageClassII(fijk, res, false, false) != NO_OVERAGE {
				continue
			}
		}

		if res != CELL_GET_RESOLUTION(h) {
			_upAp7r(&fijk.coord)
		}
	} else if res != CELL_GET_RESOLUTION(h) {
		fijk.coord = origIJK
	}
}

// ToGeo determines the spherical coordinates of the center point of an
// CellID.
func ToGeo(cell CellID, g *GeoCoord) {
	var fijk FaceIJK
	toFaceIjk(cell, &fijk)
	_faceIjkToGeo(&fijk, CELL_GET_RESOLUTION(cell), g)
}

// ToGeoBoundary determines the cell boundary in spherical coordinates for an cell address.
func ToGeoBoundary(cell CellID, gb *GeoBoundary) {
	var fijk FaceIJK
	toFaceIjk(cell, &fijk)
	if IsPentagon(cell) {
		_faceIjkPentToGeoBoundary(&fijk, CELL_GET_RESOLUTION(cell), 0,
			NUM_PENT_VERTS, gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, CELL_GET_RESOLUTION(cell), 0, NUM_HEX_VERTS,
			gb)
	}
}

// MaxFaceCount returns the max number of possible icosahedron faces an cell address
// may intersect.
func MaxFaceCount(cell CellID) int {
	// a pentagon always intersects 5 faces, a hexagon never intersects more
	// than 2 (but may only intersect 1)
	if IsPentagon(cell) {
		return 5
	}
	return 2
}

// GetFaces find all icosahedron faces intersected by a given cell address,
// represented as integers from 0-19. The array is sparse; since 0 is a valid
// value, invalid array values are represented as -1. It is the responsibility
// of the caller to filter out invalid values.
//
// @param out Output array. Must be of size maxFaceCount(cell).
func GetFaces(cell CellID, out *[]int) {
	res := CELL_GET_RESOLUTION(cell)
	isPentagon := IsPentagon(cell)

	// We can't use the vertex-based approach here for class II pentagons,
	// because all their vertices are on the icosahedron edges. Their
	// direct child pentagons cross the same faces, so use those instead.
	if isPentagon && !isResClassIII(res) {
		// Note that this would not work for res 15, but this is only run on
		// Class II pentagons, it should never be invoked for a res 15 index.
		childPentagon := makeDirectChild(cell, 0)
		GetFaces(childPentagon, out)
		return
	}

	// convert to FaceIJK
	var fijk FaceIJK
	toFaceIjk(cell, &fijk)

	// Get all vertices as FaceIJK addresses. For simplicity, always
	// initialize the array with 6 verts, ignoring the last one for pentagons
	var fijkVerts []FaceIJK
	var vertexCount int

	if isPentagon {
		vertexCount = NUM_PENT_VERTS
		fijkVerts = faceIjkPentToVerts(&fijk, &res)
	} else {
		vertexCount = NUM_HEX_VERTS
		fijkVerts = faceIjkToVerts(&fijk, &res)
	}

	// We may not use all of the slots in the output array,
	// so fill with invalid values to indicate unused slots
	faceCount := MaxFaceCount(cell)
	for i := 0; i < faceCount; i++ {
		(*out)[i] = INVALID_FACE
	}

	// add each vertex face, using the output array as a hash set
	for i := 0; i < vertexCount; i++ {
		vert := &fijkVerts[i]

		// Adjust overage, determining whether this vertex is
		// on another face
		if isPentagon {
			_adjustPentVertOverage(vert, res)
		} else {
			_adjustOverageClassII(vert, res, false, true)
		}

		// Save the face to the output array
		face := vert.face
		pos := 0
		// Find the first empty output position, or the first position
		// matching the current face
		for (*out)[pos] != INVALID_FACE && (*out)[pos] != face {
			pos++
		}
		(*out)[pos] = face
	}
}

// PentagonIndexCount returns the number of pentagons (same at any resolution)
func PentagonIndexCount() int {
	return NUM_PENTAGONS
}

// GetPentagonIndexes generates all pentagons at the specified resolution.
func GetPentagonIndexes(res int, out *[]CellID) {
	i := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			(*out)[i] = newCellID(res, bc, 0)
			i++
		}
	}
}

// GetRes0Cells returns the resolution-0 cell address for each of the 122
// base cells, in base-cell order.
func GetRes0Cells() []CellID {
	cells := make([]CellID, NUM_BASE_CELLS)
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		cells[bc] = newCellID(0, bc, CENTER_DIGIT)
	}
	return cells
}

// isResClassIII returns whether or not a resolution is a Class III grid. Note
// that odd resolutions are Class III and even resolutions are Class II.
//
// Return true if the resolution is a Class III grid, and false if the
// resolution is a Class II grid.
func isResClassIII(res int) bool {
	return res%2 == 1
}
