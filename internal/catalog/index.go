package catalog

// MaxIndexedVariations caps how many of an entry's variations get index
// keys. Keeps index size linear in catalog size even when variation
// generation is productive.
const MaxIndexedVariations = 3

// Index maps a normalized title or variation to its catalog entry.
// First writer wins on key collisions, so earlier catalog entries take
// precedence; every entry's canonical normalized title is always a key.
type Index map[string]*Entry

// BuildIndex constructs the exact-lookup index for a catalog.
func BuildIndex(c *Catalog) Index {
	if c == nil {
		return Index{}
	}
	idx := make(Index, len(c.Entries)*2)
	for i := range c.Entries {
		entry := &c.Entries[i]
		if _, taken := idx[entry.Normalized]; !taken {
			idx[entry.Normalized] = entry
		}
		n := 0
		for _, v := range entry.Variations {
			if n >= MaxIndexedVariations {
				break
			}
			if _, taken := idx[v]; !taken {
				idx[v] = entry
				n++
			}
		}
	}
	return idx
}

// Lookup returns the entry for an already-normalized key.
func (idx Index) Lookup(norm string) (*Entry, bool) {
	e, ok := idx[norm]
	return e, ok
}
