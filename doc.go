// Package vector implements a growable contiguous array for Go.
//
// # Overview
//
// A Vector keeps its elements in a single buffer and tracks the number of
// live elements separately from the number of allocated slots. When an
// insertion finds the buffer full, the buffer is reallocated to twice the
// current length (an empty vector grows to two slots).
//
// Elements may own resources. A destructor passed at construction is
// called on an element right before it is discarded:
//
//   - Replace: on the outgoing element, before the new value is written
//   - Delete: on the removed element, before the gap is closed
//   - Dispose and Clear: on every live element, in index order
//
// It is never called on slots beyond Len().
//
// # Basic Usage
//
//	v := vector.New[int](nil, 1)
//	defer v.Dispose()
//
//	v.Append(3)
//	v.Append(2)          // grows to capacity 2
//	v.Insert(4, 0)       // grows to capacity 4: [4 3 2]
//	*v.At(1) = 5         // in-place write through the returned pointer
//	v.Sort(cmp.Compare[int])
//
// # Opaque Elements
//
// Raw stores fixed-size byte blocks for data whose layout is managed by
// the caller:
//
//	r := vector.NewRaw(16, nil, 0)
//	r.Append(record[:16])
//
// # Errors
//
// Invalid calls (an index out of range, a missing callback, a growth over
// the configured byte budget, use after Dispose) panic with one of the
// Err* values so the failure happens before the vector is corrupted.
// The panic value is an error and can be matched with errors.Is after
// recover.
//
// # Search
//
// Search validates its start argument but always scans every element from
// index 0 and ignores its sorted flag; code that relies on this keeps
// working. SearchFrom honours both: a linear scan from start, or a binary
// search of [start, Len()) when sorted is true.
//
// # Thread Safety
//
// Vector and Raw are not thread-safe. For concurrent access, use SafeVector:
//
//	s := vector.NewSafe[string](nil, 0)
//	defer s.Dispose()
//	s.Append("a")
package vector
