package sink

import (
	"encoding/json"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/layout"
)

func TestRenderJSON(t *testing.T) {
	s := letterSheet(t, layout.Options{PrintValues: true})

	data, err := RenderJSON(s)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Rows != 10 || out.Cols != 4 {
		t.Errorf("grid = %dx%d, want 10x4", out.Rows, out.Cols)
	}
	if out.Tiles != 40 {
		t.Errorf("Tiles = %d, want 40", out.Tiles)
	}
	if out.DocumentID != "" || out.Randomize {
		t.Error("optional fields set without options")
	}
	if !out.Sheet.Options.PrintValues {
		t.Error("options not exported")
	}
	first := out.Sheet.Pages[0].Tiles[0]
	if first.Value != 1 || first.Label == nil || first.Label.Text != "0001" {
		t.Errorf("first tile = %+v", first)
	}
	if len(first.Pips) != 5 {
		t.Errorf("first tile pips = %d, want 5", len(first.Pips))
	}
}

func TestRenderJSONWithOptions(t *testing.T) {
	s := tileSheet(t, 1, []int{0, 0}, layout.Options{})

	data, err := RenderJSON(s,
		WithJSONDocumentID("0b5a7a2e-4f39-4d7e-9c66-8d0f5c3e1a11"),
		WithJSONStyle("outline"),
		WithJSONRandomize(12345),
	)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}
	if raw["document_id"] != "0b5a7a2e-4f39-4d7e-9c66-8d0f5c3e1a11" {
		t.Errorf("document_id = %v", raw["document_id"])
	}
	if raw["style"] != "outline" {
		t.Errorf("style = %v", raw["style"])
	}
	if raw["seed"] != float64(12345) || raw["randomize"] != true {
		t.Errorf("seed = %v, randomize = %v", raw["seed"], raw["randomize"])
	}
	sheet := raw["sheet"].(map[string]any)
	for _, key := range []string{"page", "tile", "grid", "offsets", "pages", "options"} {
		if _, ok := sheet[key]; !ok {
			t.Errorf("sheet missing %q", key)
		}
	}
}
