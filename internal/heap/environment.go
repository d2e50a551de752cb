package heap

import "github.com/conneroisu/scm/pkg/scmerr"

// Lookup searches env and its ancestor frames for name, nearest frame
// first, and returns the bound value. It returns a *scmerr.NameError if no
// frame in the chain binds name.
func (h *Heap) Lookup(env Handle, name string) (Handle, error) {
	for cur := env; cur != InvalidHandle; {
		obj := h.get(cur)
		if v, ok := obj.env.bindings[name]; ok {
			return v, nil
		}
		cur = obj.env.parent
	}
	return InvalidHandle, scmerr.NewNameError(name)
}

// Define binds name to val in env directly, creating the binding if it
// doesn't already exist in this frame and overwriting it if it does. It
// never touches an ancestor frame, matching the define special form.
func (h *Heap) Define(env Handle, name string, val Handle) {
	h.get(env).env.bindings[name] = val
}

// Assign rebinds an existing binding for name in env or the nearest
// ancestor frame that has one, matching the set! special form. It
// returns a *scmerr.NameError if name is unbound anywhere in the chain.
func (h *Heap) Assign(env Handle, name string, val Handle) error {
	for cur := env; cur != InvalidHandle; {
		obj := h.get(cur)
		if _, ok := obj.env.bindings[name]; ok {
			obj.env.bindings[name] = val
			return nil
		}
		cur = obj.env.parent
	}
	return scmerr.NewNameError(name)
}

// Extend allocates a fresh frame whose parent is env.
func (h *Heap) Extend(env Handle) Handle {
	return h.NewEnvironment(env)
}
