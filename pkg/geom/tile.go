package geom

import (
	"github.com/matzehuels/dominosheet/pkg/errors"
)

// Base tile constants, in inches.
const (
	BaseTileWidth    = 1.7
	BaseTileHeight   = 0.5
	BaseTilePadding  = 0.125
	BaseCornerRadius = 0.10
	BasePipDiameter  = 0.10
	BasePipRadius    = 0.05
	BasePipPadding   = 0.10
	BaseLabelX       = 1.45
	BaseLabelY       = 0.60

	// DefaultRowSpacing is the vertical gap between tile rows, in inches.
	DefaultRowSpacing = 0.5
)

// Pip slot layout of a tile face: two rows of eight slots, the outer two
// of which are always-lit end markers.
const (
	Rows         = 2
	SlotsPerRow  = 8
	DataSlots    = 6
	LastSlot     = SlotsPerRow - 1
	BitsPerValue = Rows * DataSlots
)

// Tile is the physical footprint of one domino, in page units.
type Tile struct {
	Unit         Unit    `json:"unit"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	Padding      float64 `json:"padding"`
	RowSpacing   float64 `json:"row_spacing"`
	CornerRadius float64 `json:"corner_radius"`
	PipDiameter  float64 `json:"pip_diameter"`
	PipRadius    float64 `json:"pip_radius"`
	PipPadding   float64 `json:"pip_padding"`
	LabelX       float64 `json:"label_x"`
	LabelY       float64 `json:"label_y"`
}

// NewTile derives the tile footprint for unit u. rowSpacing is a base
// length in inches and is scaled like every other dimension.
func NewTile(u Unit, rowSpacing float64) Tile {
	s := u.Scale()
	return Tile{
		Unit:         u,
		Width:        Dimension(BaseTileWidth, s),
		Height:       Dimension(BaseTileHeight, s),
		Padding:      Dimension(BaseTilePadding, s),
		RowSpacing:   Dimension(rowSpacing, s),
		CornerRadius: Dimension(BaseCornerRadius, s),
		PipDiameter:  Dimension(BasePipDiameter, s),
		PipRadius:    Dimension(BasePipRadius, s),
		PipPadding:   Dimension(BasePipPadding, s),
		LabelX:       Dimension(BaseLabelX, s),
		LabelY:       Dimension(BaseLabelY, s),
	}
}

// Validate rejects footprints the grid arithmetic cannot divide by.
func (t Tile) Validate() error {
	if err := errors.ValidateLength("tile width", t.Width); err != nil {
		return err
	}
	if err := errors.ValidateLength("tile height", t.Height); err != nil {
		return err
	}
	if err := errors.ValidateOffset("tile padding", t.Padding); err != nil {
		return err
	}
	return errors.ValidateOffset("row spacing", t.RowSpacing)
}
