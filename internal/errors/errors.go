// Package errors is the single import for error handling in hivewatch.
// Sentinels and matching come from the standard library, wrapping from
// pkg/errors so that every wrapped error carries a stack trace.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Creation and matching.
var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Wrapping with stack traces.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
)
