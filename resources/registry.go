package resources

// Registry is the mutable set of resource descriptors an Element populates
// during SetupResources (spec §4.E). It is intentionally dumber than a
// TileGroup/ObjectGroup: it only guards against id collisions, leaving
// homogeneity and other per-kind rules to the descriptor types themselves.
type Registry struct {
	entries map[string]Descriptor
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Descriptor)}
}

// Add registers a descriptor under its own resource id, returning
// ErrDuplicateResource if that id is already present.
func (r *Registry) Add(d Descriptor) error {
	id := d.ResourceID()
	if _, exists := r.entries[id]; exists {
		return ErrDuplicateResource
	}
	r.entries[id] = d
	r.order = append(r.order, id)
	return nil
}

// Put installs a descriptor under id unconditionally, overwriting any
// existing entry. Used when merging override descriptors over defaults
// (spec §4.E: "missing ids are filled from defaults").
func (r *Registry) Put(id string, d Descriptor) {
	if _, exists := r.entries[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entries[id] = d
}

// Get returns the descriptor registered under id.
func (r *Registry) Get(id string) (Descriptor, bool) {
	d, ok := r.entries[id]
	return d, ok
}

// IDs returns the registered resource ids in insertion order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Snapshot returns a copy of the registry's descriptors keyed by id.
func (r *Registry) Snapshot() map[string]Descriptor {
	out := make(map[string]Descriptor, len(r.entries))
	for k, v := range r.entries {
		out[k] = v
	}
	return out
}

// Len reports how many descriptors are registered.
func (r *Registry) Len() int { return len(r.entries) }
