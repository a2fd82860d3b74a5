// Package rules holds the validator registry and the engine that executes
// the group-ordered validation protocol.
package rules

import (
	"fmt"
	"iter"

	"github.com/codegauntlet/gauntlet/pkg/check"
)

// group is a named bundle of error and warning validators. The error
// sequence gates the run; the warning sequence only records findings.
type group struct {
	name     string
	errors   []check.Entry
	warnings []check.Entry
}

// Registry is the ordered catalogue of checks and their configuration.
// Group order is fixed by first registration and is part of the observable
// contract: earlier groups gate later ones.
//
// Registry performs no validator execution; it is pure bookkeeping. Its
// mutation methods are not safe for concurrent use with Engine.Run and
// belong to a setup phase before any run starts.
type Registry struct {
	groups     []*group
	byName     map[string]*group
	exceptions check.ExceptionLists
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]*group),
		exceptions: make(check.ExceptionLists),
	}
}

// ensureGroup returns the named group, creating and appending it on first
// reference so registration order is preserved.
func (r *Registry) ensureGroup(name string) *group {
	if g, ok := r.byName[name]; ok {
		return g
	}
	g := &group{name: name}
	r.groups = append(r.groups, g)
	r.byName[name] = g
	return g
}

// AddErrorValidator appends an entry to the named group's error sequence,
// creating the group if absent. Duplicate insertion is not prevented; the
// caller is responsible for not double-counting a check.
func (r *Registry) AddErrorValidator(groupName string, entry check.Entry) {
	g := r.ensureGroup(groupName)
	g.errors = append(g.errors, entry)
}

// AddWarningValidator appends an entry to the named group's warning
// sequence, creating the group if absent.
func (r *Registry) AddWarningValidator(groupName string, entry check.Entry) {
	g := r.ensureGroup(groupName)
	g.warnings = append(g.warnings, entry)
}

// InsertErrorValidator inserts an entry into the named group's error
// sequence at the given position. Position len(sequence) appends. An
// out-of-range position is a configuration error and is reported
// immediately rather than at run time.
func (r *Registry) InsertErrorValidator(groupName string, pos int, entry check.Entry) error {
	g := r.ensureGroup(groupName)
	inserted, err := insertAt(g.errors, pos, entry)
	if err != nil {
		return fmt.Errorf("insert error validator %q into group %q: %w", entry.ID, groupName, err)
	}
	g.errors = inserted
	return nil
}

// InsertWarningValidator inserts an entry into the named group's warning
// sequence at the given position, with the same position semantics as
// InsertErrorValidator.
func (r *Registry) InsertWarningValidator(groupName string, pos int, entry check.Entry) error {
	g := r.ensureGroup(groupName)
	inserted, err := insertAt(g.warnings, pos, entry)
	if err != nil {
		return fmt.Errorf("insert warning validator %q into group %q: %w", entry.ID, groupName, err)
	}
	g.warnings = inserted
	return nil
}

// insertAt inserts entry at pos, returning the new slice.
func insertAt(entries []check.Entry, pos int, entry check.Entry) ([]check.Entry, error) {
	if pos < 0 || pos > len(entries) {
		return nil, fmt.Errorf("position %d out of range [0,%d]", pos, len(entries))
	}
	entries = append(entries, check.Entry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = entry
	return entries, nil
}

// RemoveValidator removes every entry with the given ID from both sequences
// of the named group. It reports whether anything was removed. Referencing
// an unknown group is a configuration error.
func (r *Registry) RemoveValidator(groupName string, id check.ID) (bool, error) {
	g, ok := r.byName[groupName]
	if !ok {
		return false, fmt.Errorf("remove validator %q: unknown group %q", id, groupName)
	}
	removed := false
	g.errors, removed = removeID(g.errors, id, removed)
	g.warnings, removed = removeID(g.warnings, id, removed)
	return removed, nil
}

func removeID(entries []check.Entry, id check.ID, removed bool) ([]check.Entry, bool) {
	kept := entries[:0]
	for _, e := range entries {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	return kept, removed
}

// SetExceptionList replaces (or creates) the exemption set for the given
// validator identity.
func (r *Registry) SetExceptionList(id check.ID, values ...string) {
	r.exceptions[id] = check.NewSet(values...)
}

// Exceptions returns the exception-list store threaded to validators.
func (r *Registry) Exceptions() check.ExceptionLists {
	return r.exceptions
}

// GroupsInOrder returns a restartable iterator over group names in
// registration order.
func (r *Registry) GroupsInOrder() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, g := range r.groups {
			if !yield(g.name) {
				return
			}
		}
	}
}

// ErrorValidators returns the error sequence of the named group. The
// returned slice must not be mutated.
func (r *Registry) ErrorValidators(groupName string) []check.Entry {
	if g, ok := r.byName[groupName]; ok {
		return g.errors
	}
	return nil
}

// WarningValidators returns the warning sequence of the named group. The
// returned slice must not be mutated.
func (r *Registry) WarningValidators(groupName string) []check.Entry {
	if g, ok := r.byName[groupName]; ok {
		return g.warnings
	}
	return nil
}

// Builder assembles a registry at construction time. It replaces in-place
// map mutation with a chainable setup so the registry's final shape is
// inspectable before it is handed to an engine.
type Builder struct {
	reg *Registry
}

// NewBuilder returns a builder over an empty registry.
func NewBuilder() *Builder {
	return &Builder{reg: NewRegistry()}
}

// WithErrorValidator appends an error validator to the named group.
func (b *Builder) WithErrorValidator(groupName string, entry check.Entry) *Builder {
	b.reg.AddErrorValidator(groupName, entry)
	return b
}

// WithWarningValidator appends a warning validator to the named group.
func (b *Builder) WithWarningValidator(groupName string, entry check.Entry) *Builder {
	b.reg.AddWarningValidator(groupName, entry)
	return b
}

// WithExceptionList sets the exemption values for a validator identity.
func (b *Builder) WithExceptionList(id check.ID, values ...string) *Builder {
	b.reg.SetExceptionList(id, values...)
	return b
}

// Build hands over the assembled registry. The builder must not be reused
// afterwards.
func (b *Builder) Build() *Registry {
	reg := b.reg
	b.reg = nil
	return reg
}
