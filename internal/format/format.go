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

// Package format renders cell addresses and their geometry for display,
// the pretty-printing layer the core indexing package deliberately leaves
// out.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/kjhall/hexgrid"
)

// Printer renders cell summaries in a given locale. The zero value is not
// usable; construct one with NewPrinter.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer that formats numbers for the given locale.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

// CellSummary is a human-readable rendering of a cell's identity and
// geometry.
type CellSummary struct {
	Address    string
	Resolution int
	Pentagon   bool
	AreaKm2    string
	EdgeKm     string
	Vertexes   []string
}

// Summarize renders cell as a CellSummary, formatting its area and edge
// length with the printer's locale conventions.
func (p *Printer) Summarize(cell hexgrid.CellID) CellSummary {
	var boundary hexgrid.GeoBoundary
	hexgrid.ToGeoBoundary(cell, &boundary)

	vertexes := make([]string, boundary.NumVerts())
	for i := range vertexes {
		v := boundary.Vertex(i)
		vertexes[i] = fmt.Sprintf("(%s, %s)",
			p.p.Sprintf("%.6f", hexgrid.RadsToDegs(v.Lat())),
			p.p.Sprintf("%.6f", hexgrid.RadsToDegs(v.Lon())))
	}

	return CellSummary{
		Address:    cell.String(),
		Resolution: cell.GetResolution(),
		Pentagon:   cell.IsPentagon(),
		AreaKm2:    p.p.Sprintf("%.4f", hexgrid.CellAreaKm2(cell)),
		EdgeKm:     p.p.Sprintf("%.4f", hexgrid.EdgeLengthKm(cell.GetResolution())),
		Vertexes:   vertexes,
	}
}

// String renders the summary as the single-line form used by cmd/hexgrid.
func (s CellSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s res=%d pentagon=%t area_km2=%s edge_km=%s vertexes=%s",
		s.Address, s.Resolution, s.Pentagon, s.AreaKm2, s.EdgeKm,
		strings.Join(s.Vertexes, " "))
	return b.String()
}
