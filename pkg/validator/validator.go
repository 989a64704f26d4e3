package validator

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/draftkit/pkg/logger"
)

// Mode selects how a validation pass reacts to a violated rule.
type Mode int

const (
	// FailFast stops at the first violation and returns it as an error,
	// unless the host is a draft.
	FailFast Mode = iota
	// CollectAll evaluates every rule and records each violation.
	CollectAll
)

func (m Mode) String() string {
	switch m {
	case FailFast:
		return "fail_fast"
	case CollectAll:
		return "collect_all"
	default:
		return "unknown"
	}
}

// Result describes a finished validation pass.
// After a FailFast pass that was aborted, Violations holds only the violation
// that stopped it.
type Result struct {
	Violations []string
	Draft      bool
}

// Valid reports whether the pass found no violations.
func (r Result) Valid() bool {
	return len(r.Violations) == 0
}

// Validator accumulates rules for a host object and evaluates them lazily.
//
// A Validator is not safe for concurrent use. Callers sharing a host between
// goroutines must serialise access to it.
type Validator struct {
	host   any
	rules  []Rule
	errors []string
	dirty  bool
	logger *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for per-pass debug records.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator for host. host is only used to probe for the
// Draftable capability and may be nil.
func New(host any, opts ...Option) *Validator {
	v := &Validator{
		host:   host,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Draft reports whether the host currently is a draft.
// The host is probed on every call; nothing is cached.
func (v *Validator) Draft() bool {
	d, ok := v.host.(Draftable)
	return ok && d.IsDraft()
}

// Dirty reports whether a field was written since the last clean pass.
func (v *Validator) Dirty() bool {
	return v.dirty
}

// MarkDirty forces the next field read to revalidate.
func (v *Validator) MarkDirty() {
	v.dirty = true
}

// Validate runs every registered rule in registration order.
//
// In FailFast mode on a non-draft host the first violation is returned as a
// *ValidationFailure and the remaining rules are skipped. Otherwise every
// violation message is recorded and the returned error is nil.
func (v *Validator) Validate(mode Mode) (Result, error) {
	draft := v.Draft()
	raise := mode == FailFast && !draft

	v.errors = v.errors[:0]
	for _, rule := range v.rules {
		failure := rule.eval()
		if failure == nil {
			continue
		}
		if raise {
			// The pass did not finish, so the object still needs validating.
			v.dirty = true
			v.log(mode, draft, []string{failure.Error()})
			return Result{Violations: []string{failure.Error()}, Draft: draft}, failure
		}
		v.errors = append(v.errors, failure.Error())
	}
	v.dirty = len(v.errors) > 0

	violations := v.snapshot()
	v.log(mode, draft, violations)
	return Result{Violations: violations, Draft: draft}, nil
}

// Valid runs a collecting pass and reports whether it found no violations.
func (v *Validator) Valid() bool {
	res, _ := v.Validate(CollectAll)
	return res.Valid()
}

// Errors runs a collecting pass and returns a copy of the violation messages,
// one per violated rule in registration order. It never returns a
// *ValidationFailure, drafts and non-drafts alike.
func (v *Validator) Errors() []string {
	res, _ := v.Validate(CollectAll)
	return res.Violations
}

func (v *Validator) snapshot() []string {
	out := make([]string, len(v.errors))
	copy(out, v.errors)
	return out
}

func (v *Validator) log(mode Mode, draft bool, violations []string) {
	ctx := context.Background()
	if !v.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	v.logger.LogAttrs(ctx, slog.LevelDebug, "validation pass",
		logger.Component("validator"),
		logger.Mode(mode.String()),
		logger.Draft(draft),
		logger.Rules(len(v.rules)),
		logger.Violations(violations),
	)
}
