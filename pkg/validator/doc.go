// Package validator implements delayed validation for domain objects whose
// fields depend on each other, for example two fields that must be edited
// together before either is valid on its own.
//
// Instead of rejecting every intermediate state on write, a host object
// registers rules as its setters run and reads its fields through the
// validator. Rules are evaluated only when a value is read while the object is
// dirty, when the error list is requested, or when the object is serialized
// (serialization calls the getters).
//
// # Architecture
//
// A Validator owns three pieces of state for its host:
//
//   - rules  – ordered by registration, deduplicated by predicate identity
//   - errors – violation messages of the latest pass, rebuilt on every pass
//   - dirty  – set on every write, cleared by a pass that found nothing
//
// Validate evaluates the rules in one of two modes. FailFast returns the first
// violation as a *ValidationFailure and skips the remaining rules. CollectAll
// records every violation. A host implementing Draftable with IsDraft() ==
// true is always validated in collecting fashion, whatever mode was asked
// for, so drafts can be read, displayed and persisted while invalid.
//
// The dirty flag only saves work: once a pass finds no violations, reads
// return immediately until the next write.
//
// # Usage
//
//	type Person struct {
//	    v    *validator.Validator
//	    age  validator.Field[int]
//	    name validator.Field[string]
//	}
//
//	func NewPerson(name string, age int) *Person {
//	    p := &Person{}
//	    p.v = validator.New(p)
//	    p.age = validator.NewField(p.v, 0)
//	    p.name = validator.NewField(p.v, "")
//	    _ = p.SetAge(age)
//	    _ = p.SetName(name)
//	    return p
//	}
//
//	func (p *Person) SetAge(age int) error {
//	    if err := p.v.Register(p.ageInRange, nil,
//	        validator.NewValidationFailure("age must be less than 100")); err != nil {
//	        return err
//	    }
//	    return p.age.Set(age)
//	}
//
//	func (p *Person) ageInRange(...any) bool { return p.age.Peek() < 100 }
//
//	func (p *Person) Age() (int, error) { return p.age.Get() }
//
// # Error Handling
//
// Two kinds of error leave the package. ErrInvalidArgument marks a broken
// calling contract and is returned regardless of draft mode. A
// *ValidationFailure marks a violated rule; it matches ErrValidationFailed via
// errors.Is and can be pulled out of wrapped errors with
// ExtractValidationFailure. A panicking predicate is reported as a failure
// built from the panic value.
//
// # Concurrency
//
// A Validator mutates its state on reads as well as writes and has no internal
// locking. Serialise access per host object.
package validator
