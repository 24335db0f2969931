// SPDX-License-Identifier: MIT

package mcmc

// Move is the kind of local transition proposed at one step.
type Move int

const (
	// Stay records the current state again without an accept/reject test.
	Stay Move = iota
	// Flip adds an absent element or removes a present one (add-delete chain).
	Flip
	// Add inserts one element from outside the sample.
	Add
	// Exchange removes one element and inserts one from outside.
	Exchange
	// Delete removes one element.
	Delete
	// Swap replaces the element at one position (basis-exchange chain).
	Swap
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case Stay:
		return "stay"
	case Flip:
		return "flip"
	case Add:
		return "add"
	case Exchange:
		return "exchange"
	case Delete:
		return "delete"
	case Swap:
		return "swap"
	default:
		return "unknown"
	}
}

// moveProb is the probability of attempting a move in the add-delete and
// basis-exchange chains; the complement is a stay step.
const moveProb = 0.5

// SelectBinary maps u ∈ [0,1) onto {move, Stay}: move when u < 1/2.
func SelectBinary(u float64, move Move) Move {
	if u < moveProb {
		return move
	}

	return Stay
}

// SelectAED maps u ∈ [0,1) onto the add-exchange-delete mixture for a
// sample of the given size over a ground set of n elements, p = size/n:
//
//	Add       u ∈ [0, ½(1−p)²)
//	Exchange  u ∈ [½(1−p)², ½(1−p))
//	Delete    u ∈ [½(1−p), ½(p²+1−p))
//	Stay      otherwise
//
// At p = 0 only Add and Stay are reachable; at p = 1 only Delete and Stay,
// so a move never needs an element that does not exist.
func SelectAED(u float64, size, n int) Move {
	p := float64(size) / float64(n)
	q := 1 - p

	addEnd := 0.5 * q * q
	exchEnd := 0.5 * q
	delEnd := 0.5 * (p*p + q)

	switch {
	case u < addEnd:
		return Add
	case u < exchEnd:
		return Exchange
	case u < delEnd:
		return Delete
	default:
		return Stay
	}
}

// AcceptanceFactor is the cardinality reweighting applied to the
// determinant ratio of a move from a sample of the given size (n = |ground set|):
//
//	Add     (size+1)/(n−size)
//	Delete  size/(n−size+1)
//	others  1
func AcceptanceFactor(m Move, size, n int) float64 {
	switch m {
	case Add:
		return float64(size+1) / float64(n-size)
	case Delete:
		return float64(size) / float64(n-size+1)
	default:
		return 1
	}
}
