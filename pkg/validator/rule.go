package validator

import (
	"fmt"
	"reflect"
	"slices"
)

// Predicate reports whether the rule holds for the given arguments.
// A panicking predicate counts as a failure; the panic value becomes the
// reported failure instead of the rule's configured one.
type Predicate func(args ...any) bool

// Rule is a unit of deferred validation.
type Rule struct {
	key     string
	id      uintptr
	check   Predicate
	args    []any
	failure *ValidationFailure
}

func newRule(key string, pred Predicate, args []any, err error) (Rule, error) {
	if pred == nil {
		return Rule{}, fmt.Errorf("%w: predicate is nil", ErrInvalidArgument)
	}
	if err == nil || isNilFailure(err) {
		return Rule{}, fmt.Errorf("%w: failure is nil", ErrInvalidArgument)
	}
	return Rule{
		key:     key,
		id:      predicateID(pred),
		check:   pred,
		args:    slices.Clone(args),
		failure: asFailure(err),
	}, nil
}

// predicateID identifies a predicate by its code pointer. Every closure
// created from the same function literal, and every method value of the same
// method, shares one identity.
func predicateID(pred Predicate) uintptr {
	return reflect.ValueOf(pred).Pointer()
}

// Key returns the key the rule was registered under, empty for unkeyed rules.
func (r Rule) Key() string { return r.key }

// Failure returns the failure reported when the predicate returns false.
func (r Rule) Failure() *ValidationFailure { return r.failure }

func (r Rule) eval() (failure *ValidationFailure) {
	defer func() {
		if rec := recover(); rec != nil {
			failure = failureFromPanic(rec)
		}
	}()
	if r.check(r.args...) {
		return nil
	}
	return r.failure
}

// Register queues a rule for the next validation pass.
//
// Rules are deduplicated by predicate identity only: registering the same
// predicate again is a silent no-op even when args or err differ, and the
// first registration wins. This makes it safe to call Register from a setter
// on every write. A nil pred or err fails with ErrInvalidArgument.
func (v *Validator) Register(pred Predicate, args []any, err error) error {
	rule, e := newRule("", pred, args, err)
	if e != nil {
		return e
	}
	for _, r := range v.rules {
		if r.id == rule.id {
			return nil
		}
	}
	v.rules = append(v.rules, rule)
	return nil
}

// RegisterKeyed adds a rule identified by key. A later call with the same key
// replaces the rule in place, so its position in the evaluation order is
// preserved. Use it when one predicate serves several rules.
func (v *Validator) RegisterKeyed(key string, pred Predicate, args []any, err error) error {
	if key == "" {
		return fmt.Errorf("%w: rule key is empty", ErrInvalidArgument)
	}
	rule, e := newRule(key, pred, args, err)
	if e != nil {
		return e
	}
	for i, r := range v.rules {
		if r.key == key {
			v.rules[i] = rule
			return nil
		}
	}
	v.rules = append(v.rules, rule)
	return nil
}

// Rules returns the number of registered rules.
func (v *Validator) Rules() int {
	return len(v.rules)
}
