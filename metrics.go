package vector

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	v.panicIfDisposed()
	return newMetrics(v.length, len(v.buf), v.ElemSize(), v.reallocs)
}

// Reallocs returns how many times the buffer has been reallocated.
func (v *Vector[T]) Reallocs() int {
	v.panicIfDisposed()
	return v.reallocs
}

// Metrics returns a snapshot of vector statistics.
func (r *Raw) Metrics() VectorMetrics {
	r.panicIfDisposed()
	return newMetrics(r.length, r.Cap(), r.elemSize, r.reallocs)
}

// Reallocs returns how many times the buffer has been reallocated.
func (r *Raw) Reallocs() int {
	r.panicIfDisposed()
	return r.reallocs
}

func newMetrics(length, capacity, elemSize, reallocs int) VectorMetrics {
	m := VectorMetrics{
		Len:       length,
		Cap:       capacity,
		ElemSize:  elemSize,
		SizeInUse: length * elemSize,
		Capacity:  capacity * elemSize,
		Reallocs:  reallocs,
	}
	if capacity > 0 {
		m.Utilization = float64(length) / float64(capacity)
	}
	return m
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Element slots in the buffer
	ElemSize    int     // Bytes per element
	SizeInUse   int     // Bytes holding live elements
	Capacity    int     // Buffer size in bytes
	Reallocs    int     // Buffer reallocations so far
	Utilization float64 // Ratio of live to total slots (0.0-1.0)
}

// Thread-safe metrics for SafeVector

// Metrics thread-safely returns a snapshot of vector statistics.
func (s *SafeVector[T]) Metrics() VectorMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.v.Metrics()
}
