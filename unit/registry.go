package unit

import (
	"fmt"
	"sort"

	"github.com/BhaskerGarudadri/Physical/errors"
)

// Registry is the immutable catalog of named units. It follows an
// initialize-then-freeze lifecycle: all registrations happen at process start,
// Freeze is called once, and only then may lookups be reached from concurrent
// code. No locking is needed because the registry is never mutated after the
// freeze point; Register refuses to run on a frozen registry.
type Registry struct {
	byName   map[string]*Definition
	bySymbol map[string]*Definition
	frozen   bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:   make(map[string]*Definition),
		bySymbol: make(map[string]*Definition),
	}
}

// Register adds a unit definition. Duplicate names or symbols are fatal
// because lookups must stay total and the registry cannot be repaired after
// the freeze point. Registering a second canonical unit for an existing
// dimension is likewise fatal: the conversion engine needs exactly one
// reference unit per dimension.
func (r *Registry) Register(def Definition) error {
	if r.frozen {
		return errors.WrapFatal(
			errors.ErrRegistryFrozen, "Registry", "Register", "registration after freeze")
	}
	if err := def.Validate(); err != nil {
		return err
	}
	if _, exists := r.byName[def.Name]; exists {
		return errors.WrapFatal(errors.ErrDuplicateUnitName, "Registry", "Register",
			fmt.Sprintf("unit name %q registration", def.Name))
	}
	if _, exists := r.bySymbol[def.Symbol]; exists {
		return errors.WrapFatal(errors.ErrDuplicateUnitName, "Registry", "Register",
			fmt.Sprintf("unit symbol %q registration", def.Symbol))
	}
	if def.IsCanonical() {
		for _, existing := range r.byName {
			if existing.IsCanonical() && existing.Dimension.Equal(def.Dimension) {
				return errors.WrapFatal(errors.ErrDuplicateUnitName, "Registry", "Register",
					fmt.Sprintf("second canonical unit %q for dimension %s", def.Name, def.Dimension))
			}
		}
	}

	stored := def
	r.byName[def.Name] = &stored
	r.bySymbol[def.Symbol] = &stored
	return nil
}

// Freeze marks the registry read-only. Idempotent.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Lookup resolves a unit by name or symbol. Lookups are total over the
// registry: any unrecognized string is ErrUnknownUnit.
func (r *Registry) Lookup(nameOrSymbol string) (*Definition, error) {
	if def, ok := r.byName[nameOrSymbol]; ok {
		return def, nil
	}
	if def, ok := r.bySymbol[nameOrSymbol]; ok {
		return def, nil
	}
	return nil, errors.WrapInvalid(errors.ErrUnknownUnit, "Registry", "Lookup",
		fmt.Sprintf("resolution of %q", nameOrSymbol))
}

// Units returns all registered definitions sorted by name.
func (r *Registry) Units() []*Definition {
	defs := make([]*Definition, 0, len(r.byName))
	for _, def := range r.byName {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.byName)
}
