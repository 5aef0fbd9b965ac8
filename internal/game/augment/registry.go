package augment

import (
	"fmt"
	"slices"
	"sync"
)

// Registry is the catalog of every known augmentation template.
// It is populated once at startup, then frozen; after that it is read-only and
// safe for concurrent readers.
type Registry struct {
	rules PricingRules

	mu        sync.RWMutex
	frozen    bool
	byName    map[string]*Template
	templates []*Template
	cohorts   map[string][]string
}

// NewRegistry creates an empty registry. Templates added through Add are
// classified with rules.
func NewRegistry(rules PricingRules) *Registry {
	return &Registry{
		rules: PricingRules{
			RepeatableName: rules.RepeatableName,
			CohortFactions: slices.Clone(rules.CohortFactions),
		},
		byName:  make(map[string]*Template),
		cohorts: make(map[string][]string),
	}
}

// Rules returns the pricing rules of the registry.
func (r *Registry) Rules() PricingRules {
	return PricingRules{
		RepeatableName: r.rules.RepeatableName,
		CohortFactions: slices.Clone(r.rules.CohortFactions),
	}
}

// Add builds a template from p with the registry rules and registers it.
func (r *Registry) Add(p Params) (*Template, error) {
	t, err := NewTemplate(p, r.rules)
	if err != nil {
		return nil, err
	}
	if err := r.Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Register adds t to the catalog.
// Returns *DuplicateTemplateError if the name is taken.
func (r *Registry) Register(t *Template) error {
	if t == nil {
		return fmt.Errorf("%w: nil template", ErrInvalidTemplate)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("registering %q: %w", t.name, ErrRegistryFrozen)
	}
	if _, ok := r.byName[t.name]; ok {
		return &DuplicateTemplateError{Name: t.name}
	}

	r.byName[t.name] = t
	r.templates = append(r.templates, t)
	if t.CohortMember() {
		r.cohorts[t.cohort] = append(r.cohorts[t.cohort], t.name)
	}
	return nil
}

// Lookup returns the canonical template for name.
// Returns *UnknownTemplateError if absent.
func (r *Registry) Lookup(name string) (*Template, error) {
	r.mu.RLock()
	t, ok := r.byName[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &UnknownTemplateError{Name: name}
	}
	return t, nil
}

// All returns every template in registration order.
func (r *Registry) All() []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.templates)
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Cohort returns the ordered roster of templates belonging to cohort id.
func (r *Registry) Cohort(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.cohorts[id])
}

// Freeze ends the initialization phase. Further Register calls fail.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Validate checks catalog integrity: every prerequisite must be registered
// and the prerequisite graph must be acyclic.
func (r *Registry) Validate() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.templates {
		for _, pre := range t.prereqs {
			if _, ok := r.byName[pre]; !ok {
				return fmt.Errorf("augmentation %q prerequisite: %w", t.name, &UnknownTemplateError{Name: pre})
			}
		}
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(r.templates))

	var visit func(name string, path []string) error
	visit = func(name string, path []string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: %v", ErrPrerequisiteCycle, slices.Concat(path, []string{name}))
		}
		state[name] = visiting
		next := slices.Concat(path, []string{name})
		for _, pre := range r.byName[name].prereqs {
			if err := visit(pre, next); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}

	for _, t := range r.templates {
		if err := visit(t.name, nil); err != nil {
			return err
		}
	}
	return nil
}
