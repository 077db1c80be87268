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

// INVALID_BASE_CELL marks a missing neighbor in baseCellNeighbors, used by
// pentagon base cells in the position of their deleted k-axis neighbor.
const INVALID_BASE_CELL = 127

// MAX_FACE_COORD is the largest possible coordinate value for an the address base
// cell home FaceIJK; coordinates greater than this cannot represent a valid
// base cell location.
const MAX_FACE_COORD = 2

// BaseCellData holds metadata about a single base cell: its home face and
// ijk coordinates, whether it is a pentagon, and, for pentagons, the two
// faces (if any) on which it is clockwise-offset from the icosahedron.
type BaseCellData struct {
	homeFijk     FaceIJK
	isPentagon   bool
	cwOffsetPent [2]int
}

// baseCellData lists the 122 base cells in canonical numbering order.
var baseCellData = [NUM_BASE_CELLS]BaseCellData{
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 0
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 1
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 2
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 3
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{-1, -1}}, // 4
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 5
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 6
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 7
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 8
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 9
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 10
	{homeFijk: FaceIJK{face: 1, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 11
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 12
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 13
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{2, 6}}, // 14
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 15
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 16
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 17
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 18
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 19
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 20
	{homeFijk: FaceIJK{face: 2, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 21
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 22
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 23
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{1, 5}}, // 24
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 25
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 26
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 27
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 28
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 29
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 30
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 31
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 32
	{homeFijk: FaceIJK{face: 0, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 33
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 34
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 35
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 36
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 37
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{3, 7}}, // 38
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 39
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 40
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 41
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 42
	{homeFijk: FaceIJK{face: 3, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 43
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 44
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 45
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 46
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 47
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 48
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{0, 9}}, // 49
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 50
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 51
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 52
	{homeFijk: FaceIJK{face: 4, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 53
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 54
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 55
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 56
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 57
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{4, 8}}, // 58
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 59
	{homeFijk: FaceIJK{face: 11, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 60
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 61
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 62
	{homeFijk: FaceIJK{face: 6, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{11, 15}}, // 63
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 64
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 65
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 66
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 67
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 68
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 69
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 70
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 71
	{homeFijk: FaceIJK{face: 7, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{12, 16}}, // 72
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 73
	{homeFijk: FaceIJK{face: 10, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 74
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 75
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 76
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 77
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 78
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 79
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 80
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 81
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{1, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 82
	{homeFijk: FaceIJK{face: 5, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{10, 19}}, // 83
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 84
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 85
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 86
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 87
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 88
	{homeFijk: FaceIJK{face: 12, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 89
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 90
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 91
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 92
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 93
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 94
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 95
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 96
	{homeFijk: FaceIJK{face: 8, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{13, 17}}, // 97
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 98
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 99
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 100
	{homeFijk: FaceIJK{face: 14, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 101
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 102
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 103
	{homeFijk: FaceIJK{face: 13, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 104
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 105
	{homeFijk: FaceIJK{face: 16, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 106
	{homeFijk: FaceIJK{face: 9, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{14, 18}}, // 107
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 108
	{homeFijk: FaceIJK{face: 15, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 109
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{0, 1, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 110
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 111
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{0, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 112
	{homeFijk: FaceIJK{face: 17, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 113
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 114
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{0, 1, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 115
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 116
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{2, 0, 0}}, isPentagon: true, cwOffsetPent: [2]int{-1, -1}}, // 117
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 118
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{0, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 119
	{homeFijk: FaceIJK{face: 19, coord: CoordIJK{1, 0, 1}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 120
	{homeFijk: FaceIJK{face: 18, coord: CoordIJK{1, 0, 0}}, isPentagon: false, cwOffsetPent: [2]int{0, 0}}, // 121
}

// baseCellNeighbors holds, for each base cell and each of the 7 Direction
// values (CENTER_DIGIT through IJ_AXES_DIGIT), the neighboring base cell in
// that direction, or INVALID_BASE_CELL for the deleted k-axis subsequence of
// a pentagon.
var baseCellNeighbors = [NUM_BASE_CELLS][7]int{
	{0, 1, 5, 2, 4, 3, 8}, // 0
	{1, 7, 6, 9, 0, 3, 2}, // 1
	{2, 6, 10, 11, 0, 1, 5}, // 2
	{3, 13, 1, 7, 4, 12, 0}, // 3
	{4, 127, 15, 8, 3, 0, 12}, // 4
	{5, 2, 18, 10, 8, 0, 16}, // 5
	{6, 14, 11, 17, 1, 9, 2}, // 6
	{7, 21, 9, 19, 3, 13, 1}, // 7
	{8, 5, 22, 16, 4, 0, 15}, // 8
	{9, 19, 14, 20, 1, 7, 6}, // 9
	{10, 11, 24, 23, 5, 2, 18}, // 10
	{11, 17, 23, 25, 2, 6, 10}, // 11
	{12, 28, 13, 26, 4, 15, 3}, // 12
	{13, 26, 21, 29, 3, 12, 7}, // 13
	{14, 127, 17, 27, 9, 20, 6}, // 14
	{15, 22, 28, 31, 4, 8, 12}, // 15
	{16, 18, 33, 30, 8, 5, 22}, // 16
	{17, 11, 14, 6, 35, 25, 27}, // 17
	{18, 24, 30, 32, 5, 10, 16}, // 18
	{19, 34, 20, 36, 7, 21, 9}, // 19
	{20, 14, 19, 9, 40, 27, 36}, // 20
	{21, 38, 19, 34, 13, 29, 7}, // 21
	{22, 16, 41, 33, 15, 8, 31}, // 22
	{23, 24, 11, 10, 39, 37, 25}, // 23
	{24, 127, 32, 37, 10, 23, 18}, // 24
	{25, 23, 17, 11, 45, 39, 35}, // 25
	{26, 42, 29, 43, 12, 28, 13}, // 26
	{27, 40, 35, 46, 14, 20, 17}, // 27
	{28, 31, 42, 44, 12, 15, 26}, // 28
	{29, 43, 38, 47, 13, 26, 21}, // 29
	{30, 32, 48, 50, 16, 18, 33}, // 30
	{31, 41, 44, 53, 15, 22, 28}, // 31
	{32, 30, 24, 18, 52, 50, 37}, // 32
	{33, 30, 49, 48, 22, 16, 41}, // 33
	{34, 19, 38, 21, 54, 36, 51}, // 34
	{35, 46, 45, 56, 17, 27, 25}, // 35
	{36, 20, 34, 19, 55, 40, 54}, // 36
	{37, 39, 52, 57, 24, 23, 32}, // 37
	{38, 127, 34, 51, 29, 47, 21}, // 38
	{39, 37, 25, 23, 59, 57, 45}, // 39
	{40, 27, 36, 20, 60, 46, 55}, // 40
	{41, 49, 53, 61, 22, 33, 31}, // 41
	{42, 58, 43, 62, 28, 44, 26}, // 42
	{43, 62, 47, 64, 26, 42, 29}, // 43
	{44, 53, 58, 65, 28, 31, 42}, // 44
	{45, 39, 35, 25, 63, 59, 56}, // 45
	{46, 60, 56, 68, 27, 40, 35}, // 46
	{47, 38, 43, 29, 69, 51, 64}, // 47
	{48, 49, 30, 33, 67, 66, 50}, // 48
	{49, 127, 61, 66, 33, 48, 41}, // 49
	{50, 48, 32, 30, 70, 67, 52}, // 50
	{51, 69, 54, 71, 38, 47, 34}, // 51
	{52, 57, 70, 74, 32, 37, 50}, // 52
	{53, 61, 65, 75, 31, 41, 44}, // 53
	{54, 71, 55, 73, 34, 51, 36}, // 54
	{55, 40, 54, 36, 72, 60, 73}, // 55
	{56, 68, 63, 77, 35, 46, 45}, // 56
	{57, 59, 74, 78, 37, 39, 52}, // 57
	{58, 127, 62, 76, 44, 65, 42}, // 58
	{59, 63, 78, 79, 39, 45, 57}, // 59
	{60, 72, 68, 80, 40, 55, 46}, // 60
	{61, 53, 49, 41, 81, 75, 66}, // 61
	{62, 43, 58, 42, 82, 64, 76}, // 62
	{63, 127, 56, 45, 79, 59, 77}, // 63
	{64, 47, 62, 43, 84, 69, 82}, // 64
	{65, 58, 53, 44, 86, 76, 75}, // 65
	{66, 67, 81, 85, 49, 48, 61}, // 66
	{67, 66, 50, 48, 87, 85, 70}, // 67
	{68, 56, 60, 46, 90, 77, 80}, // 68
	{69, 51, 64, 47, 89, 71, 84}, // 69
	{70, 67, 52, 50, 83, 87, 74}, // 70
	{71, 89, 73, 91, 51, 69, 54}, // 71
	{72, 127, 73, 55, 80, 60, 88}, // 72
	{73, 91, 72, 88, 54, 71, 55}, // 73
	{74, 78, 83, 92, 52, 57, 70}, // 74
	{75, 65, 61, 53, 94, 86, 81}, // 75
	{76, 86, 82, 96, 58, 65, 62}, // 76
	{77, 63, 68, 56, 93, 79, 90}, // 77
	{78, 74, 59, 57, 95, 92, 79}, // 78
	{79, 78, 63, 59, 93, 95, 77}, // 79
	{80, 68, 72, 60, 99, 90, 88}, // 80
	{81, 85, 94, 101, 61, 66, 75}, // 81
	{82, 96, 84, 98, 62, 76, 64}, // 82
	{83, 127, 74, 70, 100, 87, 92}, // 83
	{84, 69, 82, 64, 97, 89, 98}, // 84
	{85, 87, 101, 102, 66, 67, 81}, // 85
	{86, 76, 75, 65, 104, 96, 94}, // 86
	{87, 83, 102, 100, 67, 70, 85}, // 87
	{88, 72, 91, 73, 99, 80, 105}, // 88
	{89, 97, 91, 103, 69, 84, 71}, // 89
	{90, 77, 80, 68, 106, 93, 99}, // 90
	{91, 73, 89, 71, 105, 88, 103}, // 91
	{92, 83, 78, 74, 108, 100, 95}, // 92
	{93, 79, 90, 77, 109, 95, 106}, // 93
	{94, 86, 81, 75, 107, 104, 101}, // 94
	{95, 92, 79, 78, 109, 108, 93}, // 95
	{96, 104, 98, 110, 76, 86, 82}, // 96
	{97, 127, 98, 84, 103, 89, 111}, // 97
	{98, 110, 97, 111, 82, 96, 84}, // 98
	{99, 80, 105, 88, 106, 90, 113}, // 99
	{100, 102, 83, 87, 108, 114, 92}, // 100
	{101, 102, 107, 112, 81, 85, 94}, // 101
	{102, 101, 87, 85, 114, 112, 100}, // 102
	{103, 91, 97, 89, 116, 105, 111}, // 103
	{104, 107, 110, 115, 86, 94, 96}, // 104
	{105, 88, 103, 91, 113, 99, 116}, // 105
	{106, 93, 99, 90, 117, 109, 113}, // 106
	{107, 127, 101, 94, 115, 104, 112}, // 107
	{108, 100, 95, 92, 118, 114, 109}, // 108
	{109, 108, 93, 95, 117, 118, 106}, // 109
	{110, 98, 104, 96, 119, 111, 115}, // 110
	{111, 97, 110, 98, 116, 103, 119}, // 111
	{112, 107, 102, 101, 120, 115, 114}, // 112
	{113, 99, 116, 105, 117, 106, 121}, // 113
	{114, 112, 100, 102, 118, 120, 108}, // 114
	{115, 110, 107, 104, 120, 119, 112}, // 115
	{116, 103, 119, 111, 113, 105, 121}, // 116
	{117, 127, 109, 118, 113, 121, 106}, // 117
	{118, 120, 108, 114, 117, 121, 109}, // 118
	{119, 111, 115, 110, 121, 116, 120}, // 119
	{120, 115, 114, 112, 121, 119, 118}, // 120
	{121, 116, 120, 119, 117, 113, 118}, // 121
}

// baseCellNeighbor60CCWRots holds, for each base cell and each Direction,
// the number of 60 degree counterclockwise rotations to apply when crossing
// into the neighbor in that direction.
var baseCellNeighbor60CCWRots = [NUM_BASE_CELLS][7]int{
	{0, 5, 0, 0, 1, 5, 1}, // 0
	{0, 0, 1, 0, 1, 0, 1}, // 1
	{0, 0, 0, 0, 0, 5, 0}, // 2
	{0, 5, 0, 0, 2, 5, 1}, // 3
	{0, -1, 1, 0, 3, 4, 2}, // 4
	{0, 0, 1, 0, 1, 0, 1}, // 5
	{0, 0, 0, 3, 5, 5, 0}, // 6
	{0, 0, 0, 0, 0, 5, 0}, // 7
	{0, 5, 0, 0, 0, 5, 1}, // 8
	{0, 0, 1, 3, 0, 0, 1}, // 9
	{0, 0, 1, 3, 0, 0, 1}, // 10
	{0, 3, 3, 3, 0, 0, 0}, // 11
	{0, 5, 0, 0, 3, 5, 1}, // 12
	{0, 0, 1, 0, 1, 0, 1}, // 13
	{0, -1, 3, 0, 5, 2, 0}, // 14
	{0, 5, 0, 0, 4, 5, 1}, // 15
	{0, 0, 0, 0, 0, 5, 0}, // 16
	{0, 3, 3, 3, 3, 0, 3}, // 17
	{0, 0, 0, 3, 5, 5, 0}, // 18
	{0, 3, 3, 3, 0, 0, 0}, // 19
	{0, 3, 3, 3, 0, 3, 0}, // 20
	{0, 0, 0, 3, 5, 5, 0}, // 21
	{0, 0, 1, 0, 1, 0, 1}, // 22
	{0, 3, 3, 3, 0, 3, 0}, // 23
	{0, -1, 3, 0, 5, 2, 0}, // 24
	{0, 0, 0, 3, 0, 0, 3}, // 25
	{0, 0, 0, 0, 0, 5, 0}, // 26
	{0, 3, 0, 0, 0, 3, 3}, // 27
	{0, 0, 1, 0, 1, 0, 1}, // 28
	{0, 0, 1, 3, 0, 0, 1}, // 29
	{0, 3, 3, 3, 0, 0, 0}, // 30
	{0, 0, 0, 0, 0, 5, 0}, // 31
	{0, 3, 3, 3, 3, 0, 3}, // 32
	{0, 0, 1, 3, 0, 0, 1}, // 33
	{0, 3, 3, 3, 3, 0, 3}, // 34
	{0, 0, 3, 0, 3, 0, 3}, // 35
	{0, 0, 0, 3, 0, 0, 3}, // 36
	{0, 3, 0, 0, 0, 3, 3}, // 37
	{0, -1, 3, 0, 5, 2, 0}, // 38
	{0, 3, 0, 0, 3, 3, 0}, // 39
	{0, 3, 0, 0, 3, 3, 0}, // 40
	{0, 0, 0, 3, 5, 5, 0}, // 41
	{0, 0, 0, 3, 5, 5, 0}, // 42
	{0, 3, 3, 3, 0, 0, 0}, // 43
	{0, 0, 1, 3, 0, 0, 1}, // 44
	{0, 0, 3, 0, 0, 3, 3}, // 45
	{0, 0, 0, 3, 0, 3, 0}, // 46
	{0, 3, 3, 3, 0, 3, 0}, // 47
	{0, 3, 3, 3, 0, 3, 0}, // 48
	{0, -1, 3, 0, 5, 2, 0}, // 49
	{0, 0, 0, 3, 0, 0, 3}, // 50
	{0, 3, 0, 0, 0, 3, 3}, // 51
	{0, 0, 3, 0, 3, 0, 3}, // 52
	{0, 3, 3, 3, 0, 0, 0}, // 53
	{0, 0, 3, 0, 3, 0, 3}, // 54
	{0, 0, 3, 0, 0, 3, 3}, // 55
	{0, 3, 3, 3, 0, 0, 3}, // 56
	{0, 0, 0, 3, 0, 3, 0}, // 57
	{0, -1, 3, 0, 5, 2, 0}, // 58
	{0, 3, 3, 3, 3, 3, 0}, // 59
	{0, 3, 3, 3, 3, 3, 0}, // 60
	{0, 3, 3, 3, 3, 0, 3}, // 61
	{0, 3, 3, 3, 3, 0, 3}, // 62
	{0, -1, 3, 0, 5, 2, 0}, // 63
	{0, 0, 0, 3, 0, 0, 3}, // 64
	{0, 3, 3, 3, 0, 3, 0}, // 65
	{0, 3, 0, 0, 0, 3, 3}, // 66
	{0, 3, 0, 0, 3, 3, 0}, // 67
	{0, 3, 3, 3, 0, 0, 0}, // 68
	{0, 3, 0, 0, 3, 3, 0}, // 69
	{0, 0, 3, 0, 0, 3, 3}, // 70
	{0, 0, 0, 3, 0, 3, 0}, // 71
	{0, -1, 3, 0, 5, 2, 0}, // 72
	{0, 3, 3, 3, 0, 0, 3}, // 73
	{0, 3, 3, 3, 0, 0, 3}, // 74
	{0, 0, 0, 3, 0, 0, 3}, // 75
	{0, 3, 0, 0, 0, 3, 3}, // 76
	{0, 0, 0, 3, 0, 5, 0}, // 77
	{0, 3, 3, 3, 0, 0, 0}, // 78
	{0, 0, 1, 3, 1, 0, 1}, // 79
	{0, 0, 1, 3, 1, 0, 1}, // 80
	{0, 0, 3, 0, 3, 0, 3}, // 81
	{0, 0, 3, 0, 3, 0, 3}, // 82
	{0, -1, 3, 0, 5, 2, 0}, // 83
	{0, 0, 3, 0, 0, 3, 3}, // 84
	{0, 0, 0, 3, 0, 3, 0}, // 85
	{0, 3, 0, 0, 3, 3, 0}, // 86
	{0, 3, 3, 3, 3, 3, 0}, // 87
	{0, 0, 0, 3, 0, 5, 0}, // 88
	{0, 3, 3, 3, 3, 3, 0}, // 89
	{0, 0, 0, 0, 0, 0, 1}, // 90
	{0, 3, 3, 3, 0, 0, 0}, // 91
	{0, 0, 0, 3, 0, 5, 0}, // 92
	{0, 5, 0, 0, 5, 5, 0}, // 93
	{0, 0, 3, 0, 0, 3, 3}, // 94
	{0, 0, 0, 0, 0, 0, 1}, // 95
	{0, 0, 0, 3, 0, 3, 0}, // 96
	{0, -1, 3, 0, 5, 2, 0}, // 97
	{0, 3, 3, 3, 0, 0, 3}, // 98
	{0, 5, 0, 0, 5, 5, 0}, // 99
	{0, 0, 1, 3, 1, 0, 1}, // 100
	{0, 3, 3, 3, 0, 0, 3}, // 101
	{0, 3, 3, 3, 0, 0, 0}, // 102
	{0, 0, 1, 3, 1, 0, 1}, // 103
	{0, 3, 3, 3, 3, 3, 0}, // 104
	{0, 0, 0, 0, 0, 0, 1}, // 105
	{0, 0, 1, 0, 3, 5, 1}, // 106
	{0, -1, 3, 0, 5, 2, 0}, // 107
	{0, 5, 0, 0, 5, 5, 0}, // 108
	{0, 0, 1, 0, 4, 5, 1}, // 109
	{0, 3, 3, 3, 0, 0, 0}, // 110
	{0, 0, 0, 3, 0, 5, 0}, // 111
	{0, 0, 0, 3, 0, 5, 0}, // 112
	{0, 0, 1, 0, 2, 5, 1}, // 113
	{0, 0, 0, 0, 0, 0, 1}, // 114
	{0, 0, 1, 3, 1, 0, 1}, // 115
	{0, 5, 0, 0, 5, 5, 0}, // 116
	{0, -1, 1, 0, 3, 4, 2}, // 117
	{0, 0, 1, 0, 0, 5, 1}, // 118
	{0, 0, 0, 0, 0, 0, 1}, // 119
	{0, 5, 0, 0, 5, 5, 0}, // 120
	{0, 0, 1, 0, 1, 5, 1}, // 121
}

// baseCellRotation pairs a base cell with the number of 60 degree
// counterclockwise rotations needed to reach its canonical orientation from
// a particular icosahedron face/ijk home position.
type baseCellRotation struct {
	baseCell int
	ccwRot60 int
}

// faceIjkBaseCells maps an icosahedron face and a res-0-scale ijk coordinate
// (each component 0, 1 or 2) to the base cell occupying that position, along
// with the rotation needed to align it.
var faceIjkBaseCells = [NUM_ICOSA_FACES][3][3][3]baseCellRotation{
	{ // face 0
		{
			{{16, 0}, {18, 0}, {24, 0}},
			{{33, 0}, {30, 0}, {32, 3}},
			{{49, 1}, {48, 3}, {50, 3}},
		},
		{
			{{8, 0}, {5, 5}, {10, 5}},
			{{22, 0}, {16, 0}, {18, 0}},
			{{41, 1}, {33, 0}, {30, 0}},
		},
		{
			{{4, 0}, {0, 5}, {2, 5}},
			{{15, 1}, {8, 0}, {5, 5}},
			{{31, 1}, {22, 0}, {16, 0}},
		},
	},
	{ // face 1
		{
			{{2, 0}, {6, 0}, {14, 0}},
			{{10, 0}, {11, 0}, {17, 3}},
			{{24, 1}, {23, 3}, {25, 3}},
		},
		{
			{{0, 0}, {1, 5}, {9, 5}},
			{{5, 0}, {2, 0}, {6, 0}},
			{{18, 1}, {10, 0}, {11, 0}},
		},
		{
			{{4, 1}, {3, 5}, {7, 5}},
			{{8, 1}, {0, 0}, {1, 5}},
			{{16, 1}, {5, 0}, {2, 0}},
		},
	},
	{ // face 2
		{
			{{7, 0}, {21, 0}, {38, 0}},
			{{9, 0}, {19, 0}, {34, 3}},
			{{14, 1}, {20, 3}, {36, 3}},
		},
		{
			{{3, 0}, {13, 5}, {29, 5}},
			{{1, 0}, {7, 0}, {21, 0}},
			{{6, 1}, {9, 0}, {19, 0}},
		},
		{
			{{4, 2}, {12, 5}, {26, 5}},
			{{0, 1}, {3, 0}, {13, 5}},
			{{2, 1}, {1, 0}, {7, 0}},
		},
	},
	{ // face 3
		{
			{{26, 0}, {42, 0}, {58, 0}},
			{{29, 0}, {43, 0}, {62, 3}},
			{{38, 1}, {47, 3}, {64, 3}},
		},
		{
			{{12, 0}, {28, 5}, {44, 5}},
			{{13, 0}, {26, 0}, {42, 0}},
			{{21, 1}, {29, 0}, {43, 0}},
		},
		{
			{{4, 3}, {15, 5}, {31, 5}},
			{{3, 1}, {12, 0}, {28, 5}},
			{{7, 1}, {13, 0}, {26, 0}},
		},
	},
	{ // face 4
		{
			{{31, 0}, {41, 0}, {49, 0}},
			{{44, 0}, {53, 0}, {61, 3}},
			{{58, 1}, {65, 3}, {75, 3}},
		},
		{
			{{15, 0}, {22, 5}, {33, 5}},
			{{28, 0}, {31, 0}, {41, 0}},
			{{42, 1}, {44, 0}, {53, 0}},
		},
		{
			{{4, 4}, {8, 5}, {16, 5}},
			{{12, 1}, {15, 0}, {22, 5}},
			{{26, 1}, {28, 0}, {31, 0}},
		},
	},
	{ // face 5
		{
			{{50, 0}, {48, 0}, {49, 3}},
			{{32, 0}, {30, 3}, {33, 3}},
			{{24, 3}, {18, 3}, {16, 3}},
		},
		{
			{{70, 0}, {67, 0}, {66, 3}},
			{{52, 3}, {50, 0}, {48, 0}},
			{{37, 3}, {32, 0}, {30, 3}},
		},
		{
			{{83, 0}, {87, 3}, {85, 3}},
			{{74, 3}, {70, 0}, {67, 0}},
			{{57, 1}, {52, 3}, {50, 0}},
		},
	},
	{ // face 6
		{
			{{25, 0}, {23, 0}, {24, 3}},
			{{17, 0}, {11, 3}, {10, 3}},
			{{14, 3}, {6, 3}, {2, 3}},
		},
		{
			{{45, 0}, {39, 0}, {37, 3}},
			{{35, 3}, {25, 0}, {23, 0}},
			{{27, 3}, {17, 0}, {11, 3}},
		},
		{
			{{63, 0}, {59, 3}, {57, 3}},
			{{56, 3}, {45, 0}, {39, 0}},
			{{46, 3}, {35, 3}, {25, 0}},
		},
	},
	{ // face 7
		{
			{{36, 0}, {20, 0}, {14, 3}},
			{{34, 0}, {19, 3}, {9, 3}},
			{{38, 3}, {21, 3}, {7, 3}},
		},
		{
			{{55, 0}, {40, 0}, {27, 3}},
			{{54, 3}, {36, 0}, {20, 0}},
			{{51, 3}, {34, 0}, {19, 3}},
		},
		{
			{{72, 0}, {60, 3}, {46, 3}},
			{{73, 3}, {55, 0}, {40, 0}},
			{{71, 3}, {54, 3}, {36, 0}},
		},
	},
	{ // face 8
		{
			{{64, 0}, {47, 0}, {38, 3}},
			{{62, 0}, {43, 3}, {29, 3}},
			{{58, 3}, {42, 3}, {26, 3}},
		},
		{
			{{84, 0}, {69, 0}, {51, 3}},
			{{82, 3}, {64, 0}, {47, 0}},
			{{76, 3}, {62, 0}, {43, 3}},
		},
		{
			{{97, 0}, {89, 3}, {71, 3}},
			{{98, 3}, {84, 0}, {69, 0}},
			{{96, 3}, {82, 3}, {64, 0}},
		},
	},
	{ // face 9
		{
			{{75, 0}, {65, 0}, {58, 3}},
			{{61, 0}, {53, 3}, {44, 3}},
			{{49, 3}, {41, 3}, {31, 3}},
		},
		{
			{{94, 0}, {86, 0}, {76, 3}},
			{{81, 3}, {75, 0}, {65, 0}},
			{{66, 3}, {61, 0}, {53, 3}},
		},
		{
			{{107, 0}, {104, 3}, {96, 3}},
			{{101, 3}, {94, 0}, {86, 0}},
			{{85, 3}, {81, 3}, {75, 0}},
		},
	},
	{ // face 10
		{
			{{57, 0}, {59, 0}, {63, 3}},
			{{74, 0}, {78, 3}, {79, 3}},
			{{83, 3}, {92, 3}, {95, 3}},
		},
		{
			{{37, 0}, {39, 3}, {45, 3}},
			{{52, 0}, {57, 0}, {59, 0}},
			{{70, 3}, {74, 0}, {78, 3}},
		},
		{
			{{24, 0}, {23, 3}, {25, 3}},
			{{32, 3}, {37, 0}, {39, 3}},
			{{50, 3}, {52, 0}, {57, 0}},
		},
	},
	{ // face 11
		{
			{{46, 0}, {60, 0}, {72, 3}},
			{{56, 0}, {68, 3}, {80, 3}},
			{{63, 3}, {77, 3}, {90, 3}},
		},
		{
			{{27, 0}, {40, 3}, {55, 3}},
			{{35, 0}, {46, 0}, {60, 0}},
			{{45, 3}, {56, 0}, {68, 3}},
		},
		{
			{{14, 0}, {20, 3}, {36, 3}},
			{{17, 3}, {27, 0}, {40, 3}},
			{{25, 3}, {35, 0}, {46, 0}},
		},
	},
	{ // face 12
		{
			{{71, 0}, {89, 0}, {97, 3}},
			{{73, 0}, {91, 3}, {103, 3}},
			{{72, 3}, {88, 3}, {105, 3}},
		},
		{
			{{51, 0}, {69, 3}, {84, 3}},
			{{54, 0}, {71, 0}, {89, 0}},
			{{55, 3}, {73, 0}, {91, 3}},
		},
		{
			{{38, 0}, {47, 3}, {64, 3}},
			{{34, 3}, {51, 0}, {69, 3}},
			{{36, 3}, {54, 0}, {71, 0}},
		},
	},
	{ // face 13
		{
			{{96, 0}, {104, 0}, {107, 3}},
			{{98, 0}, {110, 3}, {115, 3}},
			{{97, 3}, {111, 3}, {119, 3}},
		},
		{
			{{76, 0}, {86, 3}, {94, 3}},
			{{82, 0}, {96, 0}, {104, 0}},
			{{84, 3}, {98, 0}, {110, 3}},
		},
		{
			{{58, 0}, {65, 3}, {75, 3}},
			{{62, 3}, {76, 0}, {86, 3}},
			{{64, 3}, {82, 0}, {96, 0}},
		},
	},
	{ // face 14
		{
			{{85, 0}, {87, 0}, {83, 3}},
			{{101, 0}, {102, 3}, {100, 3}},
			{{107, 3}, {112, 3}, {114, 3}},
		},
		{
			{{66, 0}, {67, 3}, {70, 3}},
			{{81, 0}, {85, 0}, {87, 0}},
			{{94, 3}, {101, 0}, {102, 3}},
		},
		{
			{{49, 0}, {48, 3}, {50, 3}},
			{{61, 3}, {66, 0}, {67, 3}},
			{{75, 3}, {81, 0}, {85, 0}},
		},
	},
	{ // face 15
		{
			{{95, 0}, {92, 0}, {83, 0}},
			{{79, 0}, {78, 0}, {74, 3}},
			{{63, 1}, {59, 3}, {57, 3}},
		},
		{
			{{109, 0}, {108, 0}, {100, 5}},
			{{93, 1}, {95, 0}, {92, 0}},
			{{77, 1}, {79, 0}, {78, 0}},
		},
		{
			{{117, 4}, {118, 5}, {114, 5}},
			{{106, 1}, {109, 0}, {108, 0}},
			{{90, 1}, {93, 1}, {95, 0}},
		},
	},
	{ // face 16
		{
			{{90, 0}, {77, 0}, {63, 0}},
			{{80, 0}, {68, 0}, {56, 3}},
			{{72, 1}, {60, 3}, {46, 3}},
		},
		{
			{{106, 0}, {93, 0}, {79, 5}},
			{{99, 1}, {90, 0}, {77, 0}},
			{{88, 1}, {80, 0}, {68, 0}},
		},
		{
			{{117, 3}, {109, 5}, {95, 5}},
			{{113, 1}, {106, 0}, {93, 0}},
			{{105, 1}, {99, 1}, {90, 0}},
		},
	},
	{ // face 17
		{
			{{105, 0}, {88, 0}, {72, 0}},
			{{103, 0}, {91, 0}, {73, 3}},
			{{97, 1}, {89, 3}, {71, 3}},
		},
		{
			{{113, 0}, {99, 0}, {80, 5}},
			{{116, 1}, {105, 0}, {88, 0}},
			{{111, 1}, {103, 0}, {91, 0}},
		},
		{
			{{117, 2}, {106, 5}, {90, 5}},
			{{121, 1}, {113, 0}, {99, 0}},
			{{119, 1}, {116, 1}, {105, 0}},
		},
	},
	{ // face 18
		{
			{{119, 0}, {111, 0}, {97, 0}},
			{{115, 0}, {110, 0}, {98, 3}},
			{{107, 1}, {104, 3}, {96, 3}},
		},
		{
			{{121, 0}, {116, 0}, {103, 5}},
			{{120, 1}, {119, 0}, {111, 0}},
			{{112, 1}, {115, 0}, {110, 0}},
		},
		{
			{{117, 1}, {113, 5}, {105, 5}},
			{{118, 1}, {121, 0}, {116, 0}},
			{{114, 1}, {120, 1}, {119, 0}},
		},
	},
	{ // face 19
		{
			{{114, 0}, {112, 0}, {107, 0}},
			{{100, 0}, {102, 0}, {101, 3}},
			{{83, 1}, {87, 3}, {85, 3}},
		},
		{
			{{118, 0}, {120, 0}, {115, 5}},
			{{108, 1}, {114, 0}, {112, 0}},
			{{92, 1}, {100, 0}, {102, 0}},
		},
		{
			{{117, 0}, {121, 5}, {119, 5}},
			{{109, 1}, {118, 0}, {120, 0}},
			{{95, 1}, {108, 1}, {114, 0}},
		},
	},
}

// _isBaseCellPentagon returns whether the given base cell number is a
// pentagon.
func _isBaseCellPentagon(baseCell int) bool {
	return baseCellData[baseCell].isPentagon
}

// _isBaseCellPolarPentagon returns whether the given base cell is one of the
// two pentagons centered on an icosahedron vertex that has no adjacent
// cw-offset faces.
func _isBaseCellPolarPentagon(baseCell int) bool {
	return baseCell == 4 || baseCell == 117
}

// _baseCellIsCwOffset returns whether a base cell is a cw offset pentagon on
// the given face.
func _baseCellIsCwOffset(baseCell int, face int) bool {
	if !baseCellData[baseCell].isPentagon {
		return false
	}
	offsets := baseCellData[baseCell].cwOffsetPent
	return offsets[0] == face || offsets[1] == face
}

// _getBaseCellNeighbor returns the neighbor of the given base cell in the
// given direction, or INVALID_BASE_CELL if the base cell has no neighbor in
// that direction (the deleted k-axis subsequence of a pentagon).
func _getBaseCellNeighbor(baseCell int, dir Direction) int {
	return baseCellNeighbors[baseCell][dir]
}

// _getBaseCellDirection returns the direction from the origin base cell to
// the given neighboring base cell, or INVALID_DIGIT if the two base cells
// are not neighbors.
func _getBaseCellDirection(originBaseCell int, neighboringBaseCell int) Direction {
	for dir := CENTER_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
		if baseCellNeighbors[originBaseCell][dir] == neighboringBaseCell {
			return dir
		}
	}
	return INVALID_DIGIT
}

// _faceIjkToBaseCell finds the base cell located at the given FaceIJK
// coordinates, which must be in the range [0, MAX_FACE_COORD].
func _faceIjkToBaseCell(h *FaceIJK) int {
	return faceIjkBaseCells[h.face][h.coord.i][h.coord.j][h.coord.k].baseCell
}

// _faceIjkToBaseCellCCWrot60 finds the number of 60 degree counterclockwise
// rotations off from the canonical orientation of the base cell located at
// the given FaceIJK coordinates.
func _faceIjkToBaseCellCCWrot60(h *FaceIJK) int {
	return faceIjkBaseCells[h.face][h.coord.i][h.coord.j][h.coord.k].ccwRot60
}
