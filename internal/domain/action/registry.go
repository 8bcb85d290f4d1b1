package action

import (
	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Registry is the read-only lookup of actions by key
type Registry struct {
	actions map[string]*Action
	order   []string
}

// NewRegistry creates a registry from definitions. Duplicate or empty keys
// are rejected.
func NewRegistry(actions ...*Action) (*Registry, error) {
	r := &Registry{actions: make(map[string]*Action, len(actions))}
	for _, a := range actions {
		if a == nil || a.Key == "" {
			return nil, errors.InvalidArgument("action key is required")
		}
		if _, exists := r.actions[a.Key]; exists {
			return nil, errors.InvalidArgumentf("duplicate action key %s", a.Key)
		}
		r.actions[a.Key] = a
		r.order = append(r.order, a.Key)
	}
	return r, nil
}

// Get looks up an action by key
func (r *Registry) Get(key string) (*Action, bool) {
	a, ok := r.actions[key]
	return a, ok
}

// Keys returns the registered keys in registration order
func (r *Registry) Keys() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
