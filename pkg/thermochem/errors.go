package thermochem

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers zero denominators, non-positive volumes under a
	// logarithm and non-finite inputs or results.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAmbiguousReaction is returned when a reaction does not have exactly
	// one component with an unknown enthalpy of formation.
	ErrAmbiguousReaction = errors.New("ambiguous reaction")

	// ErrNothingToCompute is the zero-unknowns case. It matches
	// ErrAmbiguousReaction under errors.Is.
	ErrNothingToCompute = fmt.Errorf("%w: all enthalpies are known; nothing to calculate", ErrAmbiguousReaction)
)
