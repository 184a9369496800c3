package tactic

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cnf/structhash"
	"github.com/npillmayer/cnl/spec"
)

// Errors returned when registering tactics.
var (
	ErrConflictingName = errors.New("pattern already registered under a different name")
	ErrFrozen          = errors.New("registry is frozen")
)

// Registry holds a set of tactics in order of registration. Every pattern is
// parsed and compiled exactly once. Registries are meant to be filled during
// initialization and frozen afterwards; from then on they are safe for
// concurrent use.
type Registry struct {
	sync.RWMutex
	tactics []*Tactic
	byKey   map[string]*Tactic // structural key of (textual, name)
	frozen  bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]*Tactic)}
}

type tacticKey struct {
	Textual string
	Name    string
}

func keyFor(name, textual string) string {
	h, err := structhash.Hash(tacticKey{Textual: textual, Name: name}, 1)
	if err != nil { // cannot happen for plain string structs
		panic(err)
	}
	return h
}

// Register parses a pattern, compiles it and adds the resulting tactic to the
// registry. name may be empty.
//
// Registering the same pattern under the same name again returns the tactic
// already present. Registering a pattern already present under a
// different name is an error.
func (r *Registry) Register(name, textual string, fn Transformer) (*Tactic, error) {
	r.Lock()
	defer r.Unlock()
	if r.frozen {
		return nil, fmt.Errorf("cannot register tactic %q: %w", name, ErrFrozen)
	}
	key := keyFor(name, textual)
	if t, ok := r.byKey[key]; ok {
		return t, nil
	}
	for _, t := range r.tactics {
		if t.Textual == textual {
			return nil, fmt.Errorf("tactic %q, pattern %s: %w (%q)", name, textual, ErrConflictingName, t.Name)
		}
	}
	sp, err := spec.Parse(textual)
	if err != nil {
		return nil, fmt.Errorf("tactic %q: %w", name, err)
	}
	t := &Tactic{
		Name:        name,
		Textual:     textual,
		Spec:        sp,
		Transformer: fn,
		index:       len(r.tactics),
	}
	t.frag = compile(t)
	r.tactics = append(r.tactics, t)
	r.byKey[key] = t
	tracer().Debugf("registered tactic #%d %v", t.index, t)
	return t, nil
}

// MustRegister is like Register, but panics on errors. Use it to define
// tactics in package initialization code.
func (r *Registry) MustRegister(name, textual string, fn Transformer) *Tactic {
	t, err := r.Register(name, textual, fn)
	if err != nil {
		panic(err)
	}
	return t
}

// Tactics returns the registered tactics in order of registration.
// The returned slice is a copy.
func (r *Registry) Tactics() []*Tactic {
	r.RLock()
	defer r.RUnlock()
	return append([]*Tactic{}, r.tactics...)
}

// Lookup returns the first tactic registered under name, or nil.
func (r *Registry) Lookup(name string) *Tactic {
	r.RLock()
	defer r.RUnlock()
	for _, t := range r.tactics {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Size returns the number of registered tactics.
func (r *Registry) Size() int {
	r.RLock()
	defer r.RUnlock()
	return len(r.tactics)
}

// Freeze makes the registry read-only. Subsequent calls to Register fail
// with ErrFrozen.
func (r *Registry) Freeze() *Registry {
	r.Lock()
	defer r.Unlock()
	r.frozen = true
	return r
}
