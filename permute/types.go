package permute

import (
	"errors"

	"github.com/katalvlaran/rondo/config"
)

// Sentinel errors for the permutation domain.
var (
	// ErrEmptyPermutation indicates a state was constructed over no items.
	ErrEmptyPermutation = errors.New("permute: empty permutation")

	// ErrNilCost indicates a state was constructed without a cost function.
	ErrNilCost = errors.New("permute: cost function is nil")

	// ErrIndexOutOfRange indicates a move referenced a position outside the
	// permutation.
	ErrIndexOutOfRange = errors.New("permute: index out of range")

	// ErrStateMismatch indicates a move or selector was used against a state
	// that is not a *permute.State.
	ErrStateMismatch = errors.New("permute: state is not a permutation state")
)

// CostFunc scores a permutation; lower is better under MinimizeCost.
// It must not retain or mutate the slice it is given.
type CostFunc func(perm []int) float64

// propertyCarrier is the optional capability selectors probe on the context
// to pick up named options; solver.Context satisfies it.
type propertyCarrier interface {
	Properties() config.Properties
}
