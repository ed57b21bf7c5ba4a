package vector

import "sync"

// SafeVector is a mutex-protected wrapper around Vector for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Element pointers never leave the lock: reads return copies and in-place
// mutation goes through Update.
type SafeVector[T any] struct {
	mu sync.Mutex
	v  *Vector[T]
}

// NewSafe creates a new thread-safe vector. Arguments are as for New.
func NewSafe[T any](destroy func(*T), initialCapacity int) *SafeVector[T] {
	return &SafeVector[T]{v: New(destroy, initialCapacity)}
}

// Dispose thread-safely releases every live element and the buffer.
func (s *SafeVector[T]) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Dispose()
}

// Len thread-safely returns the number of live elements.
func (s *SafeVector[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Len()
}

// Cap thread-safely returns the buffer capacity in elements.
func (s *SafeVector[T]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Cap()
}

// SetMaxBytes thread-safely sets the growth budget.
func (s *SafeVector[T]) SetMaxBytes(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.SetMaxBytes(n)
}

// Get thread-safely returns a copy of the element at index i.
func (s *SafeVector[T]) Get(i int) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.v.At(i)
}

// Update thread-safely calls fn with a pointer to element i. The pointer
// must not be retained after fn returns.
func (s *SafeVector[T]) Update(i int, fn func(elem *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.v.At(i))
}

// Replace thread-safely overwrites the element at index i.
func (s *SafeVector[T]) Replace(elem T, i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Replace(elem, i)
}

// Insert thread-safely inserts elem at index i.
func (s *SafeVector[T]) Insert(elem T, i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Insert(elem, i)
}

// Append thread-safely appends elem.
func (s *SafeVector[T]) Append(elem T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Append(elem)
}

// Delete thread-safely removes the element at index i.
func (s *SafeVector[T]) Delete(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Delete(i)
}

// Map thread-safely visits every live element. visit runs with the lock
// held and must not call back into s.
func (s *SafeVector[T]) Map(visit func(elem *T, ctx any), ctx any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Map(visit, ctx)
}

// Sort thread-safely sorts the live elements.
func (s *SafeVector[T]) Sort(cmp func(a, b T) int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Sort(cmp)
}

// Search thread-safely searches for key. See Vector.Search.
func (s *SafeVector[T]) Search(key T, cmp func(elem, key T) int, start int, sorted bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Search(key, cmp, start, sorted)
}

// SearchFrom thread-safely searches [start, Len()). See Vector.SearchFrom.
func (s *SafeVector[T]) SearchFrom(key T, cmp func(elem, key T) int, start int, sorted bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.SearchFrom(key, cmp, start, sorted)
}

// Clear thread-safely releases and removes every live element.
func (s *SafeVector[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Clear()
}

// Snapshot thread-safely returns a copy of the live elements.
func (s *SafeVector[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, s.v.Len())
	copy(out, s.v.Slice())
	return out
}
