// Package scenario replays scripted operation sequences against a vector
// and records its state after every step.
package scenario

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/pavanmanishd/vector"
	"gopkg.in/yaml.v3"
)

// Operation names accepted in a script's op field.
const (
	OpAppend     = "append"
	OpInsert     = "insert"
	OpReplace    = "replace"
	OpDelete     = "delete"
	OpSort       = "sort"
	OpSearch     = "search"
	OpSearchFrom = "search_from"
	OpClear      = "clear"
	OpReserve    = "reserve"
)

var knownOps = map[string]bool{
	OpAppend: true, OpInsert: true, OpReplace: true, OpDelete: true, OpSort: true,
	OpSearch: true, OpSearchFrom: true, OpClear: true, OpReserve: true,
}

// Script is an operation sequence run against a fresh vector.
type Script struct {
	Name            string `yaml:"name"`
	InitialCapacity int    `yaml:"initial_capacity"`
	MaxBytes        int    `yaml:"max_bytes"`
	Steps           []Step `yaml:"steps"`
}

// Step is one operation. Value is the element (or search key, or reserve
// size); Index is the position for insert, replace and delete.
type Step struct {
	Op     string `yaml:"op"`
	Value  int64  `yaml:"value"`
	Index  int    `yaml:"index"`
	Start  int    `yaml:"start"`
	Sorted bool   `yaml:"sorted"`
}

// Snapshot is the vector state after one step.
type Snapshot struct {
	Step      int
	Op        string
	Len       int
	Cap       int
	Values    []int64
	Found     int // search result, NotFound for other ops
	Destroyed int // destructor calls so far
}

// Result holds the snapshots of a run. Destroyed counts every destructor
// call, including the final Dispose.
type Result struct {
	Name      string
	Snapshots []Snapshot
	Destroyed int
	Metrics   vector.VectorMetrics
}

// StepError reports a step that violated a vector precondition.
type StepError struct {
	Step int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Load reads and parses a YAML script from path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML script and validates it.
func Parse(data []byte) (*Script, error) {
	s := &Script{Name: "unnamed"}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the capacity settings and step op names.
func (s *Script) Validate() error {
	if s.InitialCapacity < 0 {
		return fmt.Errorf("initial_capacity %d is negative", s.InitialCapacity)
	}
	if s.MaxBytes < 0 {
		return fmt.Errorf("max_bytes %d is negative", s.MaxBytes)
	}
	for i, st := range s.Steps {
		if !knownOps[st.Op] {
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// Demo returns the reference scenario: capacity hint 1, append 3 and 2,
// then insert 4 at the front.
func Demo() *Script {
	return &Script{
		Name:            "demo",
		InitialCapacity: 1,
		Steps: []Step{
			{Op: OpAppend, Value: 3},
			{Op: OpAppend, Value: 2},
			{Op: OpInsert, Value: 4, Index: 0},
			{Op: OpSearch, Value: 3},
			{Op: OpSort},
			{Op: OpDelete, Index: 0},
		},
	}
}

// Run executes the script against a fresh vector of int64. It stops at the
// first step that panics and returns the snapshots taken so far together
// with a *StepError. The vector is disposed on both paths.
func Run(s *Script) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	res := &Result{Name: s.Name}
	v := vector.New[int64](func(*int64) { res.Destroyed++ }, s.InitialCapacity)
	v.SetMaxBytes(s.MaxBytes)

	defer v.Dispose()

	for i, st := range s.Steps {
		found, err := apply(v, st)
		if err != nil {
			res.Metrics = v.Metrics()
			return res, &StepError{Step: i, Op: st.Op, Err: err}
		}
		res.Snapshots = append(res.Snapshots, Snapshot{
			Step:      i,
			Op:        st.Op,
			Len:       v.Len(),
			Cap:       v.Cap(),
			Values:    append([]int64(nil), v.Slice()...),
			Found:     found,
			Destroyed: res.Destroyed,
		})
	}
	res.Metrics = v.Metrics()
	return res, nil
}

func apply(v *vector.Vector[int64], st Step) (int, error) {
	found := vector.NotFound
	var opErr error
	err := guard(func() {
		switch st.Op {
		case OpAppend:
			v.Append(st.Value)
		case OpInsert:
			v.Insert(st.Value, st.Index)
		case OpReplace:
			v.Replace(st.Value, st.Index)
		case OpDelete:
			v.Delete(st.Index)
		case OpSort:
			v.Sort(cmp.Compare[int64])
		case OpSearch:
			found = v.Search(st.Value, cmp.Compare[int64], st.Start, st.Sorted)
		case OpSearchFrom:
			found = v.SearchFrom(st.Value, cmp.Compare[int64], st.Start, st.Sorted)
		case OpClear:
			v.Clear()
		case OpReserve:
			v.Reserve(int(st.Value))
		default:
			opErr = errors.New("unknown op " + st.Op)
		}
	})
	if err != nil {
		return found, err
	}
	return found, opErr
}

// guard runs fn and returns the error it panicked with. Runtime errors and
// non-error panic values are bugs, not precondition violations, and are
// re-raised.
func guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(error)
			if _, isRuntime := r.(runtime.Error); !ok || isRuntime {
				panic(r)
			}
			err = perr
		}
	}()
	fn()
	return nil
}

// Point is one (length, capacity) sample taken by Growth.
type Point struct {
	Len int
	Cap int
}

// Growth appends n elements to a vector created with initialCapacity and
// records length and capacity after each append. It also returns the
// vector's final metrics.
func Growth(initialCapacity, n int) ([]Point, vector.VectorMetrics, error) {
	if initialCapacity < 0 || n < 0 {
		return nil, vector.VectorMetrics{}, fmt.Errorf("invalid growth parameters: initial=%d count=%d", initialCapacity, n)
	}
	v := vector.New[int64](nil, initialCapacity)
	defer v.Dispose()

	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		v.Append(int64(i))
		points = append(points, Point{Len: v.Len(), Cap: v.Cap()})
	}
	return points, v.Metrics(), nil
}
