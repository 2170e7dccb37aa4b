package bytestats

import "testing"

func prev(v byte) *byte { return &v }

func TestNextMin(t *testing.T) {
	seqs := [][]byte{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 1, 0, 0, 1, 1},
		{8, 1, 4, 5, 6, 3, 2, 7},
		{7, 4, 6, 7, 2, 3, 2, 2},
	}

	cases := []struct {
		name string
		data []byte
		prev *byte
		want Found
		ok   bool
	}{
		{"empty no bound", nil, nil, Found{}, false},
		{"empty with bound", nil, prev(3), Found{}, false},

		{"constant min", seqs[0], nil, Found{0, 8}, true},
		{"constant exhausted at value", seqs[0], prev(0), Found{}, false},
		{"constant exhausted past value", seqs[0], prev(1), Found{}, false},

		{"binary min", seqs[1], nil, Found{0, 4}, true},
		{"binary next", seqs[1], prev(0), Found{1, 4}, true},
		{"binary exhausted", seqs[1], prev(1), Found{}, false},
		{"binary exhausted past max", seqs[1], prev(2), Found{}, false},

		{"distinct min", seqs[2], nil, Found{1, 1}, true},
		{"distinct past 0", seqs[2], prev(0), Found{1, 1}, true},
		{"distinct past 1", seqs[2], prev(1), Found{6, 1}, true},
		{"distinct past 2", seqs[2], prev(2), Found{5, 1}, true},
		{"distinct past 3", seqs[2], prev(3), Found{2, 1}, true},
		{"distinct past 4", seqs[2], prev(4), Found{3, 1}, true},
		{"distinct past 5", seqs[2], prev(5), Found{4, 1}, true},
		{"distinct past 6", seqs[2], prev(6), Found{7, 1}, true},
		{"distinct past 7", seqs[2], prev(7), Found{0, 1}, true},
		{"distinct exhausted", seqs[2], prev(8), Found{}, false},
		{"distinct exhausted past", seqs[2], prev(9), Found{}, false},

		{"dupes min", seqs[3], nil, Found{4, 3}, true},
		{"dupes past 0", seqs[3], prev(0), Found{4, 3}, true},
		{"dupes past 1", seqs[3], prev(1), Found{4, 3}, true},
		{"dupes past 2", seqs[3], prev(2), Found{5, 1}, true},
		{"dupes past 3", seqs[3], prev(3), Found{1, 1}, true},
		{"dupes past 4", seqs[3], prev(4), Found{2, 1}, true},
		{"dupes past 5", seqs[3], prev(5), Found{2, 1}, true},
		{"dupes past 6", seqs[3], prev(6), Found{0, 2}, true},
		{"dupes exhausted", seqs[3], prev(7), Found{}, false},
		{"dupes exhausted past", seqs[3], prev(8), Found{}, false},
	}

	for _, tc := range cases {
		f, ok := NextMin(tc.data, tc.prev)
		if ok != tc.ok || f != tc.want {
			t.Errorf("%s: NextMin = (%+v, %v), want (%+v, %v)", tc.name, f, ok, tc.want, tc.ok)
		}
	}
}

func TestNextMin_DuplicateRun(t *testing.T) {
	data := []byte{0, 2, 5, 7, 2, 1}
	f, ok := NextMin(data, prev(1))
	if !ok {
		t.Fatal("expected a value above 1")
	}
	if f.Index != 1 || f.Count != 2 {
		t.Fatalf("got %+v, want index 1 count 2", f)
	}
	if data[f.Index] != 2 {
		t.Fatalf("value at index %d is %d, want 2", f.Index, data[f.Index])
	}
}

func TestNextMin_DomainMaximum(t *testing.T) {
	// 255 is a legitimate found value, not the uninitialized default.
	data := []byte{255, 3, 255}
	f, ok := NextMin(data, prev(3))
	if !ok || f.Index != 0 || f.Count != 2 {
		t.Fatalf("got (%+v, %v), want index 0 count 2", f, ok)
	}

	// With the bound already at the top of the domain nothing can follow.
	if _, ok := NextMin(data, prev(255)); ok {
		t.Fatal("expected exhaustion for bound 255")
	}
}

func TestKthIndex(t *testing.T) {
	t.Run("constant", func(t *testing.T) {
		data := []byte{0, 0, 0, 0, 0, 0, 0, 0}
		for k := range data {
			idx, ok := KthIndex(data, k)
			if !ok || idx != 0 {
				t.Fatalf("k=%d: got (%d, %v), want index 0", k, idx, ok)
			}
		}
	})

	t.Run("binary", func(t *testing.T) {
		data := []byte{0, 1, 0, 1, 0, 0, 1, 1}
		for k := range data {
			idx, ok := KthIndex(data, k)
			if !ok {
				t.Fatalf("k=%d: unexpected miss", k)
			}
			want := 0
			if k >= 4 {
				want = 1
			}
			if idx != want {
				t.Fatalf("k=%d: got index %d, want %d", k, idx, want)
			}
		}
	})

	t.Run("distinct", func(t *testing.T) {
		data := []byte{8, 1, 4, 5, 6, 3, 2, 7}
		want := []int{1, 6, 5, 2, 3, 4, 7, 0}
		for k, w := range want {
			idx, ok := KthIndex(data, k)
			if !ok || idx != w {
				t.Fatalf("k=%d: got (%d, %v), want %d", k, idx, ok, w)
			}
		}
	})

	t.Run("duplicates first index", func(t *testing.T) {
		data := []byte{7, 4, 6, 7, 2, 3, 2, 2}
		want := []int{4, 4, 4, 5, 1, 2, 0, 0}
		for k, w := range want {
			idx, ok := KthIndex(data, k)
			if !ok || idx != w {
				t.Fatalf("k=%d: got (%d, %v), want %d", k, idx, ok, w)
			}
		}
	})

	t.Run("rank out of bounds", func(t *testing.T) {
		data := []byte{7, 4, 6, 7, 2, 3, 2, 2}
		for _, k := range []int{-1, len(data), len(data) + 1} {
			if _, ok := KthIndex(data, k); ok {
				t.Fatalf("k=%d: expected miss", k)
			}
		}
		if _, ok := KthIndex(nil, 0); ok {
			t.Fatal("empty input: expected miss")
		}
	})

	t.Run("mixed values", func(t *testing.T) {
		data := []byte{0, 2, 5, 7, 2, 1}
		idx, ok := KthIndex(data, 3)
		if !ok || data[idx] != 2 {
			t.Fatalf("got (%d, %v), want an index holding value 2", idx, ok)
		}
	})
}

func TestKthIndex_MonotonicValues(t *testing.T) {
	data := []byte{13, 200, 0, 77, 77, 5, 255, 13, 42, 199, 0, 3}
	var last byte
	for k := range data {
		idx, ok := KthIndex(data, k)
		if !ok {
			t.Fatalf("k=%d: unexpected miss", k)
		}
		if v := data[idx]; v < last {
			t.Fatalf("k=%d: value %d below previous rank's value %d", k, v, last)
		} else {
			last = v
		}
	}
}
