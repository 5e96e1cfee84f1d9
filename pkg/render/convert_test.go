package render

import (
	"bytes"
	"context"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/errors"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10" width="10" height="10"><rect width="10" height="10"/></svg>`

func TestToPDFNoPages(t *testing.T) {
	_, err := ToPDF(context.Background())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ToPDF() error = %v, want invalid input", err)
	}
}

func TestToPDF(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	tests := []struct {
		name  string
		pages int
	}{
		{"single page", 1},
		{"multi page", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages := make([][]byte, tt.pages)
			for i := range pages {
				pages[i] = []byte(testSVG)
			}
			out, err := ToPDF(context.Background(), pages...)
			if err != nil {
				t.Fatalf("ToPDF() error: %v", err)
			}
			if !bytes.HasPrefix(out, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF")
			}
		})
	}
}

func TestConvertCancelled(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ToPDF(ctx, []byte(testSVG)); err == nil {
		t.Error("ToPDF() with cancelled context succeeded")
	}
}
