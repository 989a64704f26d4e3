package validator

// Draftable is an optional capability of a host object. A host that reports
// IsDraft() == true never gets a *ValidationFailure back from the validator;
// violations are only recorded.
type Draftable interface {
	IsDraft() bool
}
