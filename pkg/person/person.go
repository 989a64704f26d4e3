package person

import (
	"fmt"
	"unicode/utf8"

	"github.com/dmitrymomot/draftkit/pkg/validator"
)

// Violation messages, in evaluation order.
const (
	MsgAgeTooHigh      = "age must be less than 100"
	MsgAgeNotPositive  = "age must be greater than zero"
	MsgFirstNameEmpty  = "first name cannot be empty"
	MsgFirstNameShort  = "first name must be at least 3 characters long"
	MsgNamesMustDiffer = "first name and last name cannot be the same"
)

const (
	maxAge             = 100
	minFirstNameLength = 3
)

// Person is a domain object with interdependent fields.
type Person struct {
	v         *validator.Validator
	age       validator.Field[int]
	firstName validator.Field[string]
	lastName  validator.Field[string]
	draft     bool
}

// New creates a person. Invalid values are accepted here; they surface on the
// first read.
func New(firstName, lastName string, age int, opts ...validator.Option) *Person {
	p := &Person{}
	p.init(opts...)
	// Setters only fail on an uninitialised person.
	_ = p.SetAge(age)
	_ = p.SetFirstName(firstName)
	_ = p.SetLastName(lastName)
	return p
}

func (p *Person) init(opts ...validator.Option) {
	p.v = validator.New(p, opts...)
	p.age = validator.NewField(p.v, 0)
	p.firstName = validator.NewField(p.v, "")
	p.lastName = validator.NewField(p.v, "")
}

func (p *Person) Age() (int, error) { return p.age.Get() }

func (p *Person) FirstName() (string, error) { return p.firstName.Get() }

func (p *Person) LastName() (string, error) { return p.lastName.Get() }

func (p *Person) SetAge(age int) error {
	if err := p.register(
		rule{p.ageBelowLimit, MsgAgeTooHigh},
		rule{p.agePositive, MsgAgeNotPositive},
	); err != nil {
		return err
	}
	return p.age.Set(age)
}

func (p *Person) SetFirstName(name string) error {
	if err := p.register(
		rule{p.firstNameNotEmpty, MsgFirstNameEmpty},
		rule{p.firstNameLongEnough, MsgFirstNameShort},
		rule{p.namesDiffer, MsgNamesMustDiffer},
	); err != nil {
		return err
	}
	return p.firstName.Set(name)
}

func (p *Person) SetLastName(name string) error {
	if err := p.register(rule{p.namesDiffer, MsgNamesMustDiffer}); err != nil {
		return err
	}
	return p.lastName.Set(name)
}

// IsDraft implements validator.Draftable.
func (p *Person) IsDraft() bool { return p.draft }

// SetDraft switches draft mode. The change applies to the very next read.
func (p *Person) SetDraft(draft bool) { p.draft = draft }

// Errors returns one message per violated rule. It never fails.
func (p *Person) Errors() []string {
	if p.v == nil {
		return []string{}
	}
	return p.v.Errors()
}

// Valid reports whether no rule is violated.
func (p *Person) Valid() bool {
	return p.v == nil || p.v.Valid()
}

type rule struct {
	check   validator.Predicate
	message string
}

func (p *Person) register(rules ...rule) error {
	if p.v == nil {
		return fmt.Errorf("%w: person is not initialised", validator.ErrInvalidArgument)
	}
	for _, r := range rules {
		if err := p.v.Register(r.check, nil, validator.NewValidationFailure(r.message)); err != nil {
			return err
		}
	}
	return nil
}

func (p *Person) ageBelowLimit(...any) bool { return p.age.Peek() < maxAge }

func (p *Person) agePositive(...any) bool { return p.age.Peek() > 0 }

func (p *Person) firstNameNotEmpty(...any) bool { return p.firstName.Peek() != "" }

func (p *Person) firstNameLongEnough(...any) bool {
	return utf8.RuneCountInString(p.firstName.Peek()) >= minFirstNameLength
}

func (p *Person) namesDiffer(...any) bool { return p.firstName.Peek() != p.lastName.Peek() }
