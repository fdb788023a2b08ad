// SPDX-License-Identifier: MIT

package core

import "fmt"

// Variable is a named random variable bound to one Domain.
//
// Variables are immutable and compared by name. Create one per logical
// variable and pass the pointer around; never copy it under a new name.
type Variable struct {
	name   string
	domain Domain
}

// NewVariable binds name to domain.
//
// Errors:
//   - ErrEmptyName if name == "".
//   - ErrNilDomain if domain is nil, including a nil *FiniteDomain.
func NewVariable(name string, domain Domain) (*Variable, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if domain == nil {
		return nil, ErrNilDomain
	}
	if fd, ok := domain.(*FiniteDomain); ok && fd == nil {
		return nil, ErrNilDomain
	}

	return &Variable{name: name, domain: domain}, nil
}

// NewBoolean is shorthand for a Variable over NewBooleanDomain().
func NewBoolean(name string) (*Variable, error) {
	return NewVariable(name, NewBooleanDomain())
}

// Name returns the variable name; it is the identity key.
func (v *Variable) Name() string { return v.name }

// Domain returns the variable's domain.
func (v *Variable) Domain() Domain { return v.domain }

// FiniteDomain returns the domain as *FiniteDomain, if it is one.
func (v *Variable) FiniteDomain() (*FiniteDomain, bool) {
	fd, ok := v.domain.(*FiniteDomain)
	if !ok || fd == nil {
		return nil, false
	}

	return fd, true
}

// Equal reports whether v and other name the same variable.
// Two nil variables are equal; nil never equals non-nil.
func (v *Variable) Equal(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.name == other.name
}

// String returns the variable name.
func (v *Variable) String() string { return v.name }

// Assignment binds a Variable to one of its values (the proposition X = x).
type Assignment struct {
	Var   *Variable
	Value Value
}

// NewAssignment validates that value belongs to dom(v).
// An assignment outside the domain is a programming error; it is reported
// immediately and never recovered from.
func NewAssignment(v *Variable, value Value) (Assignment, error) {
	if v == nil {
		return Assignment{}, ErrNilVariable
	}
	if !v.domain.Contains(value) {
		return Assignment{}, fmt.Errorf("core: %s=%s: %w", v.name, value, ErrValueNotInDomain)
	}

	return Assignment{Var: v, Value: value}, nil
}

// String renders the assignment as Name=value.
func (a Assignment) String() string {
	if a.Var == nil {
		return "<nil>=" + a.Value.String()
	}

	return a.Var.name + "=" + a.Value.String()
}
