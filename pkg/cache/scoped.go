package cache

// ScopedKeyer wraps a Keyer with a prefix so that entries written by
// different builds never collide. The CLI scopes keys by release version,
// since a change to the generator invalidates every cached image.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(opts)
}

// TreeKey generates a prefixed tree key.
func (k *ScopedKeyer) TreeKey(opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.TreeKey(opts)
}
