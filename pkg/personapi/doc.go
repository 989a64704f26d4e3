// Package personapi exposes person drafts over HTTP with a chi router.
//
// Bodies use the wire form of person.Person. Every response is wrapped in a
// Response envelope; saving or reading an invalid non-draft person yields 422
// with the violation messages under error.details.violations, while drafts
// are stored and returned as they are.
package personapi
