package abg

import (
	"fmt"
	"log/slog"
)

// Grid is the classification color of every node of a regular lattice
// over an Extent. Row 0 lies at HCO3Min; column 0 at PHMin.
type Grid struct {
	Extent Extent
	Cols   int
	Rows   int
	cells  []Color
}

// RegionGrid classifies each lattice node of ext. Node coordinates are
// evenly spaced with both edges included; PaCO2 at each node is the value
// that makes the node consistent under Henderson-Hasselbalch.
func RegionGrid(ext Extent, cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("abg: invalid grid size %dx%d", cols, rows)
	}
	if err := ext.Validate(); err != nil {
		return nil, err
	}

	g := &Grid{Extent: ext, Cols: cols, Rows: rows, cells: make([]Color, cols*rows)}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := g.Node(col, row)
			paco2, err := PaCO2For(p.PH, p.HCO3)
			if err != nil {
				g.cells[row*cols+col] = Gray
				continue
			}
			g.cells[row*cols+col] = Classify(p.PH, paco2, p.HCO3).Color
		}
	}

	Logger().Debug("abg: region grid classified", slog.Int("cols", cols), slog.Int("rows", rows))
	return g, nil
}

// Node returns the data coordinates of lattice node (col, row).
func (g *Grid) Node(col, row int) Point {
	return Point{
		PH:   lerp(g.Extent.PHMin, g.Extent.PHMax, fraction(col, g.Cols)),
		HCO3: lerp(g.Extent.HCO3Min, g.Extent.HCO3Max, fraction(row, g.Rows)),
	}
}

// At returns the color of node (col, row). Out-of-range indices report Gray.
func (g *Grid) At(col, row int) Color {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return Gray
	}
	return g.cells[row*g.Cols+col]
}

// Counts returns the number of nodes per color.
func (g *Grid) Counts() map[Color]int {
	out := make(map[Color]int)
	for _, c := range g.cells {
		out[c]++
	}
	return out
}

func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}
