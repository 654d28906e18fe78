// Package errors provides error handling for sciseed.
//
// It re-exports github.com/cockroachdb/errors so callers get stack traces,
// wrapping and hints from a single import, and declares the sentinel errors
// the generation engine raises. Check them with errors.Is:
//
//	if errors.Is(err, errors.ErrUnevenDistribution) {
//	    // adjust counts and re-run
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	FlattenHints  = crdb.FlattenHints
	GetAllHints   = crdb.GetAllHints
	CombineErrors = crdb.CombineErrors
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// GetStack returns the reportable stack trace attached to err, if any.
var GetStack = crdb.GetReportableStackTrace

// AssertionFailedf reports a broken internal invariant.
var AssertionFailedf = crdb.AssertionFailedf

// Sentinel errors raised by the generation engine. None of them is retried
// internally; they are returned before any batch reaches a gateway.
var (
	// ErrInvalidArgument reports a bad count, identifier offset or amount.
	ErrInvalidArgument = New("invalid argument")

	// ErrInvalidRange reports inverted or empty bounds on text/date generation,
	// or a unique field whose value domain is exhausted.
	ErrInvalidRange = New("invalid range")

	// ErrInvalidWeights reports an empty catalog, a negative weight or all-zero weights.
	ErrInvalidWeights = New("invalid weights")

	// ErrUnevenDistribution reports a conference count that is not an exact
	// multiple of the faculty count.
	ErrUnevenDistribution = New("uneven distribution")

	// ErrNoSupervisorAvailable reports junior scientists with no senior scientist to supervise them.
	ErrNoSupervisorAvailable = New("no supervisor available")
)

// InvalidArgumentf wraps ErrInvalidArgument with a formatted message.
func InvalidArgumentf(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidArgument, format, args...)
}

// InvalidRangef wraps ErrInvalidRange with a formatted message.
func InvalidRangef(format string, args ...interface{}) error {
	return Wrapf(ErrInvalidRange, format, args...)
}

// IsGenerationError reports whether err belongs to the engine's taxonomy
// rather than to infrastructure (connections, inserts, files).
func IsGenerationError(err error) bool {
	return err != nil && IsAny(err,
		ErrInvalidArgument,
		ErrInvalidRange,
		ErrInvalidWeights,
		ErrUnevenDistribution,
		ErrNoSupervisorAvailable,
	)
}
