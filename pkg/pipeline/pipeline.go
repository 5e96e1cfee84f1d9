// Package pipeline provides the sheet generation pipeline for dominosheet.
//
// This package implements the complete layout → render pipeline that is
// used by the CLI and the HTTP server. By centralizing this logic, both
// entry points validate, default, cache and log identically.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: draw values from a pool and place tiles on every page
//  2. Render: encode the sheet in the requested formats (SVG, PDF, PNG, JSON)
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Page.Count = 3
//	opts.Formats = []string{"pdf", "json"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pdf := result.Artifacts["pdf"]
//
// Options are usually loaded from a TOML file with [LoadOptions]; keys
// missing from the file keep their [DefaultOptions] value.
package pipeline

import (
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dominosheet/pkg/cache"
	"github.com/matzehuels/dominosheet/pkg/dominoes"
	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/pool"
	"github.com/matzehuels/dominosheet/pkg/render/sink"
	"github.com/matzehuels/dominosheet/pkg/render/styles"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultMargin is the margin on every side, in the sheet unit.
	DefaultMargin = 0.6

	// DefaultStyle is the default visual style.
	DefaultStyle = styles.NameSolid

	// DefaultDPI is the PNG resolution.
	DefaultDPI = sink.DefaultDPI
)

// Size limits enforced by Validate. A sheet is held in memory while it
// renders, so requests beyond these are rejected rather than attempted.
const (
	MaxPages = 500
	MaxTiles = 50_000
)

// DefaultUnit is the default measurement unit.
const DefaultUnit = geom.UnitInch

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one sheet. It supports both TOML
// (configuration files) and JSON (HTTP requests).
type Options struct {
	// Geometry. RowSpacing is a base length in inches, scaled by the unit.
	Page       geom.PageSpec `json:"page" toml:"page"`
	Unit       string        `json:"unit" toml:"unit"`
	RowSpacing float64       `json:"row_spacing" toml:"row_spacing"`

	// Values come from Values, else ValuesFile, else every value (AllValues)
	// or one value per rotation pair. A zero Seed draws a fresh one.
	Values       []int  `json:"values,omitempty" toml:"values,omitempty"`
	ValuesFile   string `json:"-" toml:"values_file,omitempty"`
	AllValues    bool   `json:"all_values,omitempty" toml:"all_values,omitempty"`
	Randomize    bool   `json:"randomize" toml:"randomize"`
	Seed         uint64 `json:"seed,omitempty" toml:"seed,omitempty"`
	StrictCursor bool   `json:"strict_cursor,omitempty" toml:"strict_cursor,omitempty"`

	// Drawing
	RoundedCorners bool `json:"rounded_corners" toml:"rounded_corners"`
	PrintValues    bool `json:"print_values" toml:"print_values"`
	MarginBorder   bool `json:"margin_border" toml:"margin_border"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`
	Style   string   `json:"style,omitempty" toml:"style"`
	DPI     float64  `json:"dpi,omitempty" toml:"dpi"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-"` // ignore cached artifacts
	Logger  *log.Logger `json:"-" toml:"-"`
}

// DefaultOptions returns the configuration of a one-page US Letter sheet.
func DefaultOptions() Options {
	return Options{
		Page:           geom.Letter(DefaultMargin),
		Unit:           string(DefaultUnit),
		RowSpacing:     geom.DefaultRowSpacing,
		Randomize:      true,
		RoundedCorners: true,
		Formats:        []string{FormatPDF},
		Style:          DefaultStyle,
		DPI:            DefaultDPI,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Sheet is the full instruction stream.
	Sheet layout.Sheet

	// DocumentID identifies this run in JSON exports and HTTP responses.
	DocumentID string

	// Seed is the shuffle seed actually used (drawn when Options.Seed was 0).
	Seed uint64

	// SeedDrawn reports that Seed was drawn at random for this run.
	SeedDrawn bool

	// Artifacts contains rendered outputs keyed by format. The "svg"
	// artifact is the first page; see [SVGPages] for all of them.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Pages      int
	Rows       int
	Cols       int
	Tiles      int
	Candidates int
	CycleLen   int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache use during rendering.
type CacheInfo struct {
	Enabled   bool     // Whether the cache was consulted at all
	Hits      []string // Formats served from the cache
	RenderHit bool     // Whether all cacheable artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !styles.Valid(style) || style == "" {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: %s)", style, strings.Join(styles.Names(), ", "))
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming and
// lower-casing each entry and dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills the fields whose zero value is never meaningful. Page
// geometry is left alone: a zero page size is reported by Validate.
func (o *Options) SetDefaults() {
	if o.Unit == "" {
		o.Unit = string(DefaultUnit)
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPDF}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.DPI == 0 {
		o.DPI = DefaultDPI
	}
	if o.Page.XScale == 0 {
		o.Page.XScale = 1
	}
	if o.Page.YScale == 0 {
		o.Page.YScale = 1
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks geometry, formats, style and explicit values. An unknown
// unit is not an error: it falls back to inches.
func (o *Options) Validate() error {
	if err := o.Page.Validate(); err != nil {
		return err
	}
	if err := o.Tile().Validate(); err != nil {
		return err
	}
	if err := o.validateSize(); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if err := ValidateStyle(strings.ToLower(strings.TrimSpace(o.Style))); err != nil {
		return err
	}
	if err := errors.ValidateLength("dpi", o.DPI); err != nil {
		return err
	}
	for _, v := range o.Values {
		if err := errors.ValidateValue(v); err != nil {
			return err
		}
	}
	return nil
}

// validateSize rejects sheets with more than MaxPages pages or MaxTiles
// tiles in total.
func (o *Options) validateSize() error {
	if o.Page.Count > MaxPages {
		return errors.Configuration("page count %d exceeds the limit of %d", o.Page.Count, MaxPages)
	}
	cells := layout.ComputeGrid(o.Page, o.Tile()).Cells()
	if cells > MaxTiles || cells*o.Page.Count > MaxTiles {
		return errors.Configuration("%d tiles per page on %d page(s) exceeds the limit of %d tiles",
			cells, o.Page.Count, MaxTiles)
	}
	return nil
}

// GeomUnit returns the parsed unit.
func (o *Options) GeomUnit() geom.Unit {
	return geom.ParseUnit(o.Unit)
}

// Tile returns the tile footprint for the configured unit and row spacing.
func (o *Options) Tile() geom.Tile {
	return geom.NewTile(o.GeomUnit(), o.RowSpacing)
}

// LayoutOptions returns the drawing switches for the layout engine.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		RoundedCorners: o.RoundedCorners,
		PrintValues:    o.PrintValues,
		MarginBorder:   o.MarginBorder,
	}
}

// CandidateValues returns the values the pool is filled with: Values when
// set, else the contents of ValuesFile, else every value or the canonical
// set depending on AllValues.
func (o *Options) CandidateValues() ([]int, error) {
	switch {
	case len(o.Values) > 0:
		return slices.Clone(o.Values), nil
	case o.ValuesFile != "":
		f, err := os.Open(o.ValuesFile)
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "values file %s", o.ValuesFile)
		}
		if err != nil {
			return nil, fmt.Errorf("open values file: %w", err)
		}
		defer f.Close()
		return dominoes.ReadValues(f)
	case o.AllValues:
		return dominoes.All(), nil
	}
	return dominoes.Canonical(), nil
}

// PoolOptions returns the pool configuration for the given seed.
func (o *Options) PoolOptions(seed uint64) []pool.Option {
	var opts []pool.Option
	if o.Randomize {
		opts = append(opts, pool.WithRandomize(seed))
	}
	if o.StrictCursor {
		opts = append(opts, pool.WithStrictCursor())
	}
	return opts
}

// ResolveSeed returns the shuffle seed for a run. A zero Seed on a
// randomized pool draws a fresh one, reported by drawn.
func (o *Options) ResolveSeed() (seed uint64, drawn bool) {
	if o.Randomize && o.Seed == 0 {
		return rand.Uint64(), true
	}
	return o.Seed, false
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format: format,
		Style:  strings.ToLower(strings.TrimSpace(o.Style)),
	}
	if format == FormatPNG {
		k.DPI = o.DPI
	}
	return k
}
