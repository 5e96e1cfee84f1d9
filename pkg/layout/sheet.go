package layout

import (
	"github.com/matzehuels/dominosheet/pkg/geom"
)

// Sheet is the complete instruction stream for a document.
type Sheet struct {
	Spec    geom.PageSpec `json:"page"`
	Tile    geom.Tile     `json:"tile"`
	Grid    Grid          `json:"grid"`
	Offsets Offsets       `json:"offsets"`
	Options Options       `json:"-"`
	Pages   []Page        `json:"pages"`
}

// Page holds the tiles of one physical sheet.
type Page struct {
	Index  int    `json:"index"`
	Border *Rect  `json:"border,omitempty"`
	Tiles  []Tile `json:"tiles"`
}

// maxPrealloc caps the per-page tile capacity reserved up front.
const maxPrealloc = 4096

// Build runs Paginate and collects its output. Every page is present in the
// result even when no tile fits on it. A negative page count yields no
// pages, as in Paginate.
func Build(page geom.PageSpec, tile geom.Tile, src ValueSource, opts Options) (Sheet, error) {
	grid := ComputeGrid(page, tile)
	s := Sheet{
		Spec:    page,
		Tile:    tile,
		Grid:    grid,
		Offsets: ComputeOffsets(page, tile, grid),
		Options: opts,
		Pages:   make([]Page, max(page.Count, 0)),
	}
	for i := range s.Pages {
		s.Pages[i] = Page{Index: i, Tiles: make([]Tile, 0, min(grid.Cells(), maxPrealloc))}
		if opts.MarginBorder {
			s.Pages[i].Border = &Rect{
				X: page.Margin.Left, Y: page.Margin.Top,
				W: page.WorkWidth(), H: page.WorkHeight(),
			}
		}
	}
	err := Paginate(page, tile, src, opts, func(t Tile) error {
		s.Pages[t.Page].Tiles = append(s.Pages[t.Page].Tiles, t)
		return nil
	})
	if err != nil {
		return Sheet{}, err
	}
	return s, nil
}

// TileCount returns the number of tiles across all pages.
func (s Sheet) TileCount() int {
	n := 0
	for _, p := range s.Pages {
		n += len(p.Tiles)
	}
	return n
}

// Values returns every tile value in emission order.
func (s Sheet) Values() []int {
	out := make([]int, 0, s.TileCount())
	for _, p := range s.Pages {
		for _, t := range p.Tiles {
			out = append(out, t.Value)
		}
	}
	return out
}
