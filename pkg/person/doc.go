// Package person is a small domain object built on the validator package.
//
// A Person must always be valid when it is read, yet its rules span fields
// (the first name may not equal the last name), so a caller has to be able to
// change both names before either is checked. Setters only store values and
// register rules; getters validate lazily and return a
// *validator.ValidationFailure for an invalid, non-draft person.
//
// Marking a person as a draft (SetDraft(true)) turns failures into data: all
// getters succeed and Errors lists every violated rule. JSON and YAML
// encoding go through the getters, so an invalid non-draft person cannot be
// serialized, while a draft can.
//
// A Person must not be copied after creation; always pass *Person.
package person
