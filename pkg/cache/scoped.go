package cache

// ScopedKeyer prefixes every key of an inner Keyer. The CLI scopes keys by
// build version; deployments sharing one Redis can scope by environment:
//
//	staging := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) ArtifactKey(sheetHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(sheetHash, opts)
}
