package field

import (
	"errors"
	"fmt"
)

// ErrInvalidLayout reports a layer spec that violates the layout
// engine's preconditions (non-positive panel count or column count).
var ErrInvalidLayout = errors.New("invalid layout")

// LayerSpec describes one depth-grouped layer of the panel field.
// Immutable once constructed.
type LayerSpec struct {
	PanelCount int     `json:"panelCount"`
	Depth      float64 `json:"depth"`
	TintLevel  float64 `json:"tintLevel"`
	Columns    int     `json:"columns"`
}

func (s LayerSpec) Validate() error {
	if s.PanelCount <= 0 {
		return fmt.Errorf("%w: panelCount must be > 0, got %d", ErrInvalidLayout, s.PanelCount)
	}
	if s.Columns <= 0 {
		return fmt.Errorf("%w: columns must be > 0, got %d", ErrInvalidLayout, s.Columns)
	}
	return nil
}

// DefaultLayers returns the reference four-layer field, nearest layer first.
func DefaultLayers() []LayerSpec {
	return []LayerSpec{
		{PanelCount: 150, Depth: 6, TintLevel: 0, Columns: 7},
		{PanelCount: 100, Depth: 2, TintLevel: -5, Columns: 8},
		{PanelCount: 100, Depth: -3, TintLevel: -8, Columns: 9},
		{PanelCount: 100, Depth: -8, TintLevel: -12, Columns: 9},
	}
}
