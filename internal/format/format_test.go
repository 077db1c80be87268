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

package format

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/retroenv/retrogolib/assert"

	"github.com/kjhall/hexgrid"
)

func TestSummarizeHexagon(t *testing.T) {
	g := hexgrid.NewGeoCoord(hexgrid.DegsToRads(37.775938728915946), hexgrid.DegsToRads(-122.41795063018799))
	cell := hexgrid.GeoToCellID(&g, 9)

	p := NewPrinter(language.English)
	summary := p.Summarize(cell)

	assert.Equal(t, cell.String(), summary.Address)
	assert.Equal(t, 9, summary.Resolution)
	assert.False(t, summary.Pentagon)
	assert.Len(t, summary.Vertexes, hexgrid.NUM_HEX_VERTS)
}

func TestCellSummaryStringContainsAddress(t *testing.T) {
	g := hexgrid.NewGeoCoord(0, 0)
	cell := hexgrid.GeoToCellID(&g, 5)

	p := NewPrinter(language.English)
	line := p.Summarize(cell).String()

	assert.True(t, strings.Contains(line, cell.String()))
	assert.True(t, strings.Contains(line, "res=5"))
}
