package cache

// ScopedKeyer prefixes every key of an inner Keyer, so several deployments
// can share one Redis without seeing each other's plans:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
//	keyer.PlanKey(h, opts) // "staging:plan:<sha256>"
type ScopedKeyer struct {
	Inner  Keyer
	Prefix string
}

// NewScopedKeyer wraps inner, or the default keyer if inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{Inner: inner, Prefix: prefix}
}

func (k ScopedKeyer) PlanKey(configHash string, opts PlanKeyOpts) string {
	return k.Prefix + k.Inner.PlanKey(configHash, opts)
}

func (k ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.Prefix + k.Inner.ArtifactKey(planHash, opts)
}
