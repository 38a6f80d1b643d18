package registry

// IndexBy maps each record by key. When several records share a key the
// first one in slice order is kept.
func IndexBy[R any](records []R, key func(R) string) map[string]R {
	idx := make(map[string]R, len(records))
	for _, r := range records {
		k := key(r)
		if _, seen := idx[k]; seen {
			continue
		}
		idx[k] = r
	}
	return idx
}
