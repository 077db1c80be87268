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

func TestBaseCellPentagons(t *testing.T) {
	pentagons := []int{4, 14, 24, 38, 49, 58, 63, 72, 83, 97, 107, 117}
	count := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	assert.Equal(t, len(pentagons), count)

	for _, bc := range pentagons {
		assert.True(t, _isBaseCellPentagon(bc), "base cell %d should be a pentagon", bc)
	}
}

func TestBaseCellPolarPentagons(t *testing.T) {
	assert.True(t, _isBaseCellPolarPentagon(4))
	assert.True(t, _isBaseCellPolarPentagon(117))

	for _, bc := range []int{14, 24, 38, 49, 58, 63, 72, 83, 97, 107} {
		assert.False(t, _isBaseCellPolarPentagon(bc), "base cell %d is a pentagon but not a polar one", bc)
	}
}

func TestBaseCellNonPentagonHasNoCwOffset(t *testing.T) {
	assert.False(t, _baseCellIsCwOffset(0, baseCellData[0].homeFijk.face))
}
