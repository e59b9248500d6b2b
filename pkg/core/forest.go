package core

import "fmt"

// Forest is what gets materialized: the root baskets and the tag registry.
type Forest struct {
	Baskets []*Basket
	Tags    []*Tag
}

// NewForest bundles roots and tags after validating them.
func NewForest(baskets []*Basket, tags []*Tag) (Forest, error) {
	f := Forest{Baskets: baskets, Tags: tags}
	if err := f.Validate(); err != nil {
		return Forest{}, err
	}
	return f, nil
}

// Walk visits every basket depth-first, pre-order. depth is 0 for roots.
// Returning an error stops the walk.
func (f Forest) Walk(fn func(b *Basket, depth int) error) error {
	var visit func(b *Basket, depth int) error
	visit = func(b *Basket, depth int) error {
		if err := fn(b, depth); err != nil {
			return err
		}
		for _, child := range b.children {
			if err := visit(child, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	for _, b := range f.Baskets {
		if err := visit(b, 0); err != nil {
			return err
		}
	}
	return nil
}

// Flatten returns every basket in pre-order.
func (f Forest) Flatten() []*Basket {
	var flat []*Basket
	for _, b := range f.Baskets {
		flat = append(flat, b.Flatten()...)
	}
	return flat
}

// States returns every registered state, tag by tag.
func (f Forest) States() []*State {
	var states []*State
	for _, t := range f.Tags {
		states = append(states, t.states...)
	}
	return states
}

// Validate checks the invariants that span the whole forest: each basket
// appears once, state ids are unique across the registry, and every state a
// note references belongs to a registered tag.
func (f Forest) Validate() error {
	registered := make(map[*State]bool)
	ids := make(map[string]string)
	for _, t := range f.Tags {
		if t == nil {
			return fmt.Errorf("tag: %w", ErrNilItem)
		}
		for _, s := range t.states {
			if owner, dup := ids[s.id]; dup {
				return fmt.Errorf("%w: %q in tags %q and %q", ErrDuplicateStateID, s.id, owner, t.name)
			}
			ids[s.id] = t.name
			registered[s] = true
		}
	}

	seen := make(map[*Basket]bool)
	for _, b := range f.Baskets {
		if b == nil {
			return fmt.Errorf("basket: %w", ErrNilItem)
		}
		if b.attached {
			return fmt.Errorf("root %s is a child of another basket: %w", b, ErrDuplicateBasket)
		}
	}
	return f.Walk(func(b *Basket, _ int) error {
		if seen[b] {
			return fmt.Errorf("%s: %w", b, ErrDuplicateBasket)
		}
		seen[b] = true
		for _, n := range b.FlatNotes() {
			for _, s := range n.states {
				if !registered[s] {
					return fmt.Errorf("%s in %s, state %q: %w", n, b, s.id, ErrUnregisteredState)
				}
			}
		}
		return nil
	})
}
