// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w: "Bracketing: n=0 < min=1: ...".
//   • Option constructors panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidArity indicates a negative maximum edge arity.
var ErrInvalidArity = errors.New("builder: invalid arity")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the orchestrator could not produce a valid
// forest, e.g. a nil constructor or a failed validation.
var ErrConstructFailed = errors.New("builder: construction failed")
