package field

// PoolSize is the number of panel source images cycled through by the
// layout engine.
const PoolSize = 20

// Default grid spacing between neighbouring panels, in world units.
const (
	DefaultSpacingX = 2.0
	DefaultSpacingY = 2.0
)

// Placement is a panel's position within its layer, layer-relative
// (the layer depth is applied once to the whole group, not per panel).
type Placement struct {
	X, Y float64
}

// Grid maps panel indices to placements on a grid centered on the
// origin in both axes.
type Grid struct {
	Count    int
	Columns  int
	SpacingX float64
	SpacingY float64
}

func (g Grid) Rows() int {
	return (g.Count + g.Columns - 1) / g.Columns
}

// At returns the placement for panel index i. Valid for 0 <= i < Count.
func (g Grid) At(i int) Placement {
	row := i / g.Columns
	col := i % g.Columns
	rows := g.Rows()
	return Placement{
		X: (float64(col) - float64(g.Columns-1)/2) * g.SpacingX,
		Y: (float64(rows-1)/2 - float64(row)) * g.SpacingY,
	}
}

// ImageIndex cycles panel index i through the 1-based image pool.
func ImageIndex(i int) int {
	return i%PoolSize + 1
}

// Placements computes every panel position for a layer. A spec with a
// non-positive panel or column count fails with ErrInvalidLayout.
func Placements(spec LayerSpec, spacingX, spacingY float64) ([]Placement, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	g := Grid{
		Count:    spec.PanelCount,
		Columns:  spec.Columns,
		SpacingX: spacingX,
		SpacingY: spacingY,
	}
	out := make([]Placement, spec.PanelCount)
	for i := range out {
		out[i] = g.At(i)
	}
	return out, nil
}
