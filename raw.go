package vector

import "sort"

// Raw is a vector of opaque fixed-size byte elements. It is meant for
// data whose layout the caller manages, such as records decoded from a
// file; typed data should use Vector. Not goroutine-safe.
type Raw struct {
	buf      []byte // capacity*elemSize bytes
	elemSize int
	length   int
	destroy  func(elem []byte)
	maxBytes int
	reallocs int
	disposed bool
	scratch  []byte // one element, holds Insert's source across the shift
}

// NewRaw creates a vector of elemSize-byte elements with room for
// initialCapacity of them. destroy may be nil.
func NewRaw(elemSize int, destroy func(elem []byte), initialCapacity int) *Raw {
	if elemSize <= 0 {
		panic(ErrElemSize)
	}
	if initialCapacity < 0 {
		panic(ErrNegativeCapacity)
	}
	checkBudget(initialCapacity, elemSize, 0)
	return &Raw{
		buf:      make([]byte, initialCapacity*elemSize),
		elemSize: elemSize,
		destroy:  destroy,
		scratch:  make([]byte, elemSize),
	}
}

// Dispose calls the destructor on every live element in index order and
// drops the buffer. Any further call panics.
func (r *Raw) Dispose() {
	r.panicIfDisposed()
	if r.destroy != nil {
		for i := 0; i < r.length; i++ {
			r.destroy(r.slot(i))
		}
	}
	r.buf = nil
	r.length = 0
	r.disposed = true
}

// Len returns the number of live elements.
func (r *Raw) Len() int {
	r.panicIfDisposed()
	return r.length
}

// Cap returns the number of element slots in the buffer.
func (r *Raw) Cap() int {
	r.panicIfDisposed()
	return len(r.buf) / r.elemSize
}

// ElemSize returns the element size in bytes.
func (r *Raw) ElemSize() int {
	r.panicIfDisposed()
	return r.elemSize
}

// SetMaxBytes limits the size of the buffer; zero removes the limit.
func (r *Raw) SetMaxBytes(n int) {
	r.panicIfDisposed()
	if n < 0 {
		n = 0
	}
	r.maxBytes = n
}

// At returns the bytes of element i. The slice aliases the buffer and is
// valid until the next reallocation or shift.
func (r *Raw) At(i int) []byte {
	r.panicIfDisposed()
	checkIndex(i, r.length)
	return r.slot(i)
}

// Replace copies elem over element i after passing the old bytes to the
// destructor.
func (r *Raw) Replace(elem []byte, i int) {
	r.panicIfDisposed()
	checkIndex(i, r.length)
	r.checkElem(elem)
	if r.destroy != nil {
		r.destroy(r.slot(i))
	}
	copy(r.slot(i), elem)
}

// Insert copies elem into index i, moving elements at and after i one
// slot right. i may equal Len(). elem may alias the vector's own buffer,
// e.g. a slice returned by At.
func (r *Raw) Insert(elem []byte, i int) {
	r.panicIfDisposed()
	checkInsertIndex(i, r.length)
	r.checkElem(elem)
	copy(r.scratch, elem)
	if r.length == r.Cap() {
		r.grow(grownCapacity(r.length))
	}
	es := r.elemSize
	copy(r.buf[(i+1)*es:(r.length+1)*es], r.buf[i*es:r.length*es])
	copy(r.slot(i), r.scratch)
	r.length++
}

// Append copies elem after the last live element.
func (r *Raw) Append(elem []byte) {
	r.panicIfDisposed()
	r.checkElem(elem)
	if r.length == r.Cap() {
		r.grow(grownCapacity(r.length))
	}
	copy(r.slot(r.length), elem)
	r.length++
}

// Delete passes element i to the destructor and closes the gap.
func (r *Raw) Delete(i int) {
	r.panicIfDisposed()
	checkIndex(i, r.length)
	if r.destroy != nil {
		r.destroy(r.slot(i))
	}
	es := r.elemSize
	copy(r.buf[i*es:(r.length-1)*es], r.buf[(i+1)*es:r.length*es])
	r.length--
}

// Map calls visit on each live element in index order with ctx unchanged.
func (r *Raw) Map(visit func(elem []byte, ctx any), ctx any) {
	r.panicIfDisposed()
	if visit == nil {
		panic(ErrNoVisitor)
	}
	for i := 0; i < r.length; i++ {
		visit(r.slot(i), ctx)
	}
}

// Sort orders the live elements with a three-way comparator. Not stable.
func (r *Raw) Sort(cmp func(a, b []byte) int) {
	r.panicIfDisposed()
	if cmp == nil {
		panic(ErrNoSortCompare)
	}
	sort.Sort(&rawSorter{r: r, cmp: cmp, tmp: make([]byte, r.elemSize)})
}

// Search returns the first index whose element compares equal to key, or
// NotFound. Like Vector.Search it validates start but scans from index 0
// and ignores sorted.
func (r *Raw) Search(key []byte, cmp func(elem, key []byte) int, start int, sorted bool) int {
	r.panicIfDisposed()
	checkSearch(cmp != nil, start, r.length)
	for i := 0; i < r.length; i++ {
		if cmp(r.slot(i), key) == 0 {
			return i
		}
	}
	return NotFound
}

func (r *Raw) slot(i int) []byte {
	lo := i * r.elemSize
	hi := lo + r.elemSize
	return r.buf[lo:hi:hi]
}

func (r *Raw) checkElem(elem []byte) {
	if len(elem) < r.elemSize {
		panic(ErrElemSize)
	}
}

func (r *Raw) grow(newCap int) {
	checkBudget(newCap, r.elemSize, r.maxBytes)
	buf := make([]byte, newCap*r.elemSize)
	copy(buf, r.buf[:r.length*r.elemSize])
	r.buf = buf
	r.reallocs++
}

func (r *Raw) panicIfDisposed() {
	if r.disposed {
		panic(ErrDisposed)
	}
}

// rawSorter adapts the live range of a Raw to sort.Interface.
type rawSorter struct {
	r   *Raw
	cmp func(a, b []byte) int
	tmp []byte
}

func (s *rawSorter) Len() int           { return s.r.length }
func (s *rawSorter) Less(i, j int) bool { return s.cmp(s.r.slot(i), s.r.slot(j)) < 0 }
func (s *rawSorter) Swap(i, j int) {
	a, b := s.r.slot(i), s.r.slot(j)
	copy(s.tmp, a)
	copy(a, b)
	copy(b, s.tmp)
}
