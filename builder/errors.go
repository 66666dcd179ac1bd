// SPDX-License-Identifier: MIT
// Package: pathsearch/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers MUST use errors.Is(err, ErrX) to branch on semantics;
// implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
