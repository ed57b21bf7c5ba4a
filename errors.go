package vector

import "errors"

// Precondition violations are reported by panicking with one of these
// values. The Error text of each is stable and may be matched by callers.
var (
	ErrOutOfBounds      = errors.New("Index out of bounds.")
	ErrNoSortCompare    = errors.New("Failed sort, no compare function provided")
	ErrNoVisitor        = errors.New("Map function was not provided.")
	ErrNoSearchCompare  = errors.New("Failed to search, no compare function provided.")
	ErrSearchStart      = errors.New("Failed to search, start index out of bounds.")
	ErrRealloc          = errors.New("Couldn't reallocate vector.")
	ErrElemSize         = errors.New("vector: element size must be positive")
	ErrNegativeCapacity = errors.New("vector: negative initial capacity")
	ErrDisposed         = errors.New("vector: use after Dispose()")
)

// NotFound is returned by Search when no element matches the key.
const NotFound = -1

// GrowthFactor is the multiplier applied to the logical length when an
// insertion finds the buffer full.
const GrowthFactor = 2

// grownCapacity returns the capacity to reallocate to when length elements
// fill the buffer. An empty vector grows as if it held one element.
func grownCapacity(length int) int {
	return max(length, 1) * GrowthFactor
}

// checkIndex panics unless 0 <= i < length.
func checkIndex(i, length int) {
	if i < 0 || i >= length {
		panic(ErrOutOfBounds)
	}
}

// checkInsertIndex panics unless 0 <= i <= length.
func checkInsertIndex(i, length int) {
	if i < 0 || i > length {
		panic(ErrOutOfBounds)
	}
}

// checkSearch validates Search preconditions shared by Vector and Raw.
func checkSearch(hasCmp bool, start, length int) {
	if !hasCmp {
		panic(ErrNoSearchCompare)
	}
	if length > 0 && (start < 0 || start >= length) {
		panic(ErrSearchStart)
	}
}

// checkBudget panics with ErrRealloc when growing to newCap elements of
// elemSize bytes would exceed maxBytes. A zero budget is unlimited.
func checkBudget(newCap, elemSize, maxBytes int) {
	if newCap < 0 || elemSize > 0 && newCap > int(^uint(0)>>1)/elemSize {
		panic(ErrRealloc)
	}
	if maxBytes > 0 && newCap*elemSize > maxBytes {
		panic(ErrRealloc)
	}
}
