package keymap

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action // key -> action
}

// NewResolver creates a resolver from bindings. Later bindings win when a
// key appears twice.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action, len(bindings)*2),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
	}
	return r
}

// Resolve returns the action for a key, or the empty action if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}
