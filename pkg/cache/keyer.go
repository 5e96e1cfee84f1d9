package cache

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact of the sheet whose
	// configuration hashes to sheetHash.
	ArtifactKey(sheetHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Style  string  `json:"style"`
	DPI    float64 `json:"dpi,omitempty"`
}

// DefaultKeyer produces keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key scheme.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey hashes sheetHash together with opts.
func (DefaultKeyer) ArtifactKey(sheetHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sheetHash, opts)
}
