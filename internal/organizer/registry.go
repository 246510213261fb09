package organizer

// Registry maps content digests to the first path observed with that digest
// during one run.
type Registry struct {
	seen map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{seen: make(map[string]string)}
}

// Observe records path under digest unless the digest is already known, in
// which case it returns the original path and true.
func (r *Registry) Observe(digest, path string) (string, bool) {
	if original, ok := r.seen[digest]; ok {
		return original, true
	}
	r.seen[digest] = path
	return "", false
}

// Len returns the number of distinct digests seen.
func (r *Registry) Len() int {
	return len(r.seen)
}
