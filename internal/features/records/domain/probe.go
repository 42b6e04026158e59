package domain

// Probe describes where a logical field may live on a record: which JSON
// sub-object, which nested object inside it, and the key spellings to try.
// Only the fixed variants of each key are tried, never a substring scan.
type Probe struct {
	Source Source
	Path   []string
	Keys   []string
}

// Lookup runs the probe against a record.
func (p Probe) Lookup(r OrderRecord) (string, bool) {
	return p.lookupBlob(r.Blob(p.Source))
}

func (p Probe) lookupBlob(root Blob) (string, bool) {
	blob := root.Descend(p.Path...)
	if blob == nil {
		return "", false
	}
	for _, key := range p.Keys {
		if v, ok := ResolveExact(blob, key); ok {
			return v, true
		}
	}
	return "", false
}

// Probes is an ordered fallback chain; the first hit wins.
type Probes []Probe

// Lookup returns the first value found by any probe.
func (ps Probes) Lookup(r OrderRecord) (string, bool) {
	for _, p := range ps {
		if v, ok := p.Lookup(r); ok {
			return v, true
		}
	}
	return "", false
}
