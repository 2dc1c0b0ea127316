package cache

// ScopedKeyer prefixes every key of an inner Keyer. Several tools sharing
// one Redis instance use it to keep their entries apart:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "graphstab:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with prefix. A nil inner uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// GeneratorsKey implements Keyer.
func (k *ScopedKeyer) GeneratorsKey(patternHash string) string {
	return k.prefix + k.inner.GeneratorsKey(patternHash)
}

// GroupKey implements Keyer.
func (k *ScopedKeyer) GroupKey(generatorsHash string) string {
	return k.prefix + k.inner.GroupKey(generatorsHash)
}

// CircuitKey implements Keyer.
func (k *ScopedKeyer) CircuitKey(patternHash string, opts CircuitKeyOpts) string {
	return k.prefix + k.inner.CircuitKey(patternHash, opts)
}
