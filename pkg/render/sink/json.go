package sink

import (
	"encoding/json"

	"github.com/matzehuels/dominosheet/pkg/layout"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id        string
	seed      uint64
	randomize bool
	style     string
}

// WithJSONDocumentID records the document identifier.
func WithJSONDocumentID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONRandomize records the shuffle seed so the sheet can be reproduced.
func WithJSONRandomize(seed uint64) JSONOption {
	return func(r *jsonRenderer) { r.randomize = true; r.seed = seed }
}

// WithJSONStyle records the style name (e.g., "solid", "outline").
func WithJSONStyle(s string) JSONOption { return func(r *jsonRenderer) { r.style = s } }

type jsonOutput struct {
	DocumentID string  `json:"document_id,omitempty"`
	Style      string  `json:"style,omitempty"`
	Seed       uint64  `json:"seed,omitempty"`
	Randomize  bool    `json:"randomize,omitempty"`
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Tiles      int     `json:"tiles"`
	Sheet      jsonDoc `json:"sheet"`
}

type jsonDoc struct {
	layout.Sheet
	Options layout.Options `json:"options"`
}

// RenderJSON exports the sheet's full instruction stream as a pretty-printed
// JSON document. Pip faces are carried by the pip list; the raw face matrix
// is omitted.
func RenderJSON(s layout.Sheet, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		DocumentID: r.id,
		Style:      r.style,
		Seed:       r.seed,
		Randomize:  r.randomize,
		Rows:       s.Grid.Rows,
		Cols:       s.Grid.Cols,
		Tiles:      s.TileCount(),
		Sheet:      jsonDoc{Sheet: s, Options: s.Options},
	}
	return json.MarshalIndent(out, "", "  ")
}
