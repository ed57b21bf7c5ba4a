package vector

import (
	"cmp"
	"testing"
)

// BenchmarkRealisticUsage compares Vector against a plain slice for the
// patterns it is used for
func BenchmarkRealisticUsage(b *testing.B) {

	// Test 1: Appends from an empty vector, so every growth step is taken
	b.Run("Append/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int](nil, 0)
			for j := 0; j < 1000; j++ {
				v.Append(j)
			}
		}
	})

	b.Run("Append/Builtin", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var s []int
			for j := 0; j < 1000; j++ {
				s = append(s, j)
			}
			_ = s
		}
	})

	// Test 2: Front insertion, the worst case for shifting
	b.Run("InsertFront/Vector", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v := New[int](nil, 256)
			for j := 0; j < 256; j++ {
				v.Insert(j, 0)
			}
		}
	})

	// Test 3: Delete from the front until empty, with a destructor
	b.Run("DeleteFront/Vector", func(b *testing.B) {
		freed := 0
		for i := 0; i < b.N; i++ {
			v := New[int](func(*int) { freed++ }, 256)
			for j := 0; j < 256; j++ {
				v.Append(j)
			}
			for v.Len() > 0 {
				v.Delete(0)
			}
		}
	})

	// Test 4: Sort reversed input
	b.Run("Sort/Vector", func(b *testing.B) {
		v := New[int](nil, 1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Clear()
			for j := 1024; j > 0; j-- {
				v.Append(j)
			}
			v.Sort(cmp.Compare[int])
		}
	})

	// Test 5: Fixed-size records through the byte interface
	b.Run("Append/Raw", func(b *testing.B) {
		rec := make([]byte, 32)
		for i := 0; i < b.N; i++ {
			r := NewRaw(32, nil, 0)
			for j := 0; j < 1000; j++ {
				r.Append(rec)
			}
		}
	})
}

func BenchmarkSearch(b *testing.B) {
	v := New[int](nil, 4096)
	for j := 0; j < 4096; j++ {
		v.Append(j)
	}

	b.Run("Linear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.Search(4000, cmp.Compare[int], 0, true)
		}
	})

	b.Run("Binary", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			v.SearchFrom(4000, cmp.Compare[int], 0, true)
		}
	})
}
